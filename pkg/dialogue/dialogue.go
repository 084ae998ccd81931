package dialogue

// Actor is a named speaker with a display name and arbitrary typed
// properties. The map key under Dialogue.Actors is the lowercase actor
// id; Name preserves the display identity (or the "name" property
// override).
type Actor struct {
	Name       string           `json:"name" yaml:"name"`
	Properties map[string]Value `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Function is an external function declaration. Nothing in the core
// invokes functions; the declaration only records the optional argument
// defaults and default return value.
type Function struct {
	Args   map[string]Value `json:"args,omitempty" yaml:"args,omitempty"`
	Result *Value           `json:"result,omitempty" yaml:"result,omitempty"`
}

// Section is a named, ordered sequence of steps; the unit of navigation
// targeting.
type Section struct {
	Name  string `json:"name" yaml:"name"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Dialogue is the parsed document. Actor, variable and function keys
// are always lowercase.
type Dialogue struct {
	Actors    map[string]Actor    `json:"actors" yaml:"actors"`
	Variables map[string]Value    `json:"variables" yaml:"variables"`
	Functions map[string]Function `json:"functions" yaml:"functions"`
	Sections  []Section           `json:"sections" yaml:"sections"`
}

// New returns an empty Dialogue with initialized maps.
func New() *Dialogue {
	return &Dialogue{
		Actors:    make(map[string]Actor),
		Variables: make(map[string]Value),
		Functions: make(map[string]Function),
	}
}

// SectionIndex resolves a navigation target by exact name match,
// returning the index of the first section with that name.
func (d *Dialogue) SectionIndex(name string) (int, bool) {
	for i, s := range d.Sections {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}

// CloneVariables returns a copy of the static variable table, used to
// seed a playback session without mutating the document.
func (d *Dialogue) CloneVariables() map[string]Value {
	vars := make(map[string]Value, len(d.Variables))
	for name, value := range d.Variables {
		vars[name] = value
	}
	return vars
}

// ActorName resolves a stored speaker key to a display name, falling
// back to the raw key when no actor is declared under it.
func (d *Dialogue) ActorName(speaker string) string {
	if actor, ok := d.Actors[speaker]; ok {
		return actor.Name
	}
	return speaker
}
