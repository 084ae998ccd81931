package dialogue

// StepKind discriminates the sequential elements of a section.
type StepKind string

const (
	// StepComment carries free text with no playback effect.
	StepComment StepKind = "comment"
	// StepLogInfo and StepLogWarning emit their text to standard output
	// during playback; StepLogError emits to the error stream.
	StepLogInfo    StepKind = "log_info"
	StepLogWarning StepKind = "log_warning"
	StepLogError   StepKind = "log_error"
	// StepPage renders a block of lines together as one turn.
	StepPage StepKind = "page"
	// StepAssign overwrites a runtime variable with a new Value.
	StepAssign StepKind = "assign"
	// StepBounce redirects to a section and returns when it ends.
	StepBounce StepKind = "bounce"
	// StepJump permanently redirects to a section.
	StepJump StepKind = "jump"
	// StepEnd returns from the nearest enclosing bounce, or ends the
	// session if there is none.
	StepEnd StepKind = "end"
	// StepTerminate ends the session unconditionally.
	StepTerminate StepKind = "terminate"
)

// Step is one sequential element of a section. Only the fields relevant
// to its Kind are populated.
type Step struct {
	Kind StepKind `json:"kind" yaml:"kind"`

	// Text holds the body of comment and log steps.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Name and Value describe a variable assignment.
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Value Value  `json:"value,omitzero" yaml:"value,omitempty"`

	// Target is the section name of a jump or bounce, matched
	// case-sensitively at playback time.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Lines holds the content of a page.
	Lines []Line `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// LineKind discriminates the content lines inside a page.
type LineKind string

const (
	// LineText is plain prose rendered verbatim.
	LineText LineKind = "text"
	// LineSpeaker is spoken text attributed to a speaker.
	LineSpeaker LineKind = "speaker"
	// LineResponse is a player choice label.
	LineResponse LineKind = "response"
)

// Line is one rendered row of a page.
type Line struct {
	Kind LineKind `json:"kind" yaml:"kind"`

	// Speaker is either a lowercase actor id (when the script used the
	// `@id:` form) or a verbatim speaker label.
	Speaker string `json:"speaker,omitempty" yaml:"speaker,omitempty"`

	Text string `json:"text" yaml:"text"`

	// Pages is reserved for nested choice branches. No grammar path
	// currently populates it; it is kept so the serialized shape stays
	// stable if nested responses land later.
	Pages []Step `json:"pages,omitempty" yaml:"pages,omitempty"`
}
