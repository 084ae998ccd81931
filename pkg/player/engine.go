// Package player walks a parsed dialogue as an interactive sequence.
//
// The core is a pure transition engine: Start validates the structural
// precondition and Step executes exactly one step, returning the
// rendered output rows and the next state. Control flow is a pop-driven
// work loop with an explicit last-in-first-out return stack for bounce
// navigation; returns survive arbitrary intervening jumps because they
// are frames, not native call frames. The Player type wraps the engine
// in an IO loop for terminal playback.
package player

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/lex/internal/logging"
	"github.com/aretw0/lex/pkg/dialogue"
)

// Engine executes dialogue steps one at a time. It never mutates the
// document; all session state lives in State.
type Engine struct {
	doc    *dialogue.Dialogue
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEngineLogger sets a structured logger for advisory events.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine over a parsed document.
func NewEngine(doc *dialogue.Dialogue, opts ...EngineOption) *Engine {
	e := &Engine{doc: doc, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start returns the initial session state, pointing at the first step
// of the first section. A document with no sections, or whose first
// section has no steps, cannot be played.
func (e *Engine) Start() (*State, error) {
	if len(e.doc.Sections) == 0 {
		return nil, fmt.Errorf("no sections: %w", dialogue.ErrEmptyDialogue)
	}
	if len(e.doc.Sections[0].Steps) == 0 {
		return nil, fmt.Errorf("first section %q has no steps: %w", e.doc.Sections[0].Name, dialogue.ErrEmptyDialogue)
	}
	return &State{
		Frame:     Frame{},
		Status:    StatusActive,
		Variables: e.doc.CloneVariables(),
	}, nil
}

// Output is one rendered row produced by a step.
type Output struct {
	Text string `json:"text"`

	// Stderr routes the row to the error stream (log-error steps and
	// runtime advisories).
	Stderr bool `json:"stderr,omitempty"`
}

// Tick is the observable result of executing a single step.
type Tick struct {
	Kind   dialogue.StepKind `json:"kind"`
	Output []Output          `json:"output,omitempty"`
}

func (t *Tick) say(text string) {
	t.Output = append(t.Output, Output{Text: text})
}

func (t *Tick) warn(text string) {
	t.Output = append(t.Output, Output{Text: text, Stderr: true})
}

// Step executes the step addressed by the state's frame and computes
// the next state. An explicit redirect wins over the fall-through rule;
// the input state is never mutated.
func (e *Engine) Step(ctx context.Context, state *State) (*Tick, *State, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if state == nil || state.Done() {
		return nil, nil, fmt.Errorf("step on inactive session")
	}
	step, err := e.stepAt(state.Frame)
	if err != nil {
		return nil, nil, err
	}

	tick := &Tick{Kind: step.Kind}
	next := state.clone()
	var redirect *Frame

	switch step.Kind {
	case dialogue.StepComment:
		// No observable effect.

	case dialogue.StepLogInfo, dialogue.StepLogWarning:
		tick.say(step.Text)

	case dialogue.StepLogError:
		tick.warn(step.Text)

	case dialogue.StepAssign:
		if _, declared := next.Variables[step.Name]; !declared {
			e.logger.Warn("assignment to undeclared variable", "name", step.Name)
			tick.warn(fmt.Sprintf("variable %s assigned without declaration", step.Name))
		}
		next.Variables[step.Name] = step.Value

	case dialogue.StepPage:
		tick.say(e.renderPage(step.Lines))

	case dialogue.StepJump:
		redirect = e.resolve(step.Target, tick)

	case dialogue.StepBounce:
		redirect = e.resolve(step.Target, tick)
		if redirect != nil {
			// Save the natural next step so control resumes here once
			// the target section (or an end inside it) finishes.
			if resume := e.fallthroughFrom(state.Frame); resume != nil {
				next.Stack = append(next.Stack, *resume)
			}
		}

	case dialogue.StepEnd:
		if n := len(next.Stack); n > 0 {
			next.Frame = next.Stack[n-1]
			next.Stack = next.Stack[:n-1]
		} else {
			next.Status = StatusEnded
		}
		return tick, next, nil

	case dialogue.StepTerminate:
		next.Status = StatusTerminated
		return tick, next, nil

	default:
		return nil, nil, fmt.Errorf("unknown step kind %q", step.Kind)
	}

	if redirect == nil {
		redirect = e.fallthroughFrom(state.Frame)
	}
	switch {
	case redirect != nil:
		next.Frame = *redirect
	case len(next.Stack) > 0:
		// Exhausting the document inside a bounced section resumes
		// after the bounce, exactly as an explicit end would.
		n := len(next.Stack)
		next.Frame = next.Stack[n-1]
		next.Stack = next.Stack[:n-1]
	default:
		next.Status = StatusEnded
	}
	return tick, next, nil
}

func (e *Engine) stepAt(f Frame) (dialogue.Step, error) {
	if f.Section >= len(e.doc.Sections) {
		return dialogue.Step{}, fmt.Errorf("frame section %d out of range", f.Section)
	}
	section := e.doc.Sections[f.Section]
	if f.Step >= len(section.Steps) {
		return dialogue.Step{}, fmt.Errorf("frame step %d out of range in section %q", f.Step, section.Name)
	}
	return section.Steps[f.Step], nil
}

// resolve matches a navigation target by exact section name. An
// unresolved or empty target is reported on the tick and treated as a
// dead end: the caller falls back to natural fall-through.
func (e *Engine) resolve(target string, tick *Tick) *Frame {
	idx, ok := e.doc.SectionIndex(target)
	if !ok {
		e.logger.Warn("navigation target not found", "target", target)
		tick.warn(fmt.Sprintf("section not found: %s", target))
		return nil
	}
	if len(e.doc.Sections[idx].Steps) == 0 {
		e.logger.Warn("navigation target has no steps", "target", target)
		tick.warn(fmt.Sprintf("section has no steps: %s", target))
		return nil
	}
	return &Frame{Section: idx}
}

// fallthroughFrom computes the default next state: the next step within
// the current section, else the first step of the next non-empty
// section in document order, else nil (the session ends naturally).
func (e *Engine) fallthroughFrom(f Frame) *Frame {
	if f.Step+1 < len(e.doc.Sections[f.Section].Steps) {
		return &Frame{Section: f.Section, Step: f.Step + 1}
	}
	for section := f.Section + 1; section < len(e.doc.Sections); section++ {
		if len(e.doc.Sections[section].Steps) > 0 {
			return &Frame{Section: section}
		}
	}
	return nil
}

// renderPage joins the page's lines into one output block: plain text
// verbatim, speaker lines as "Name: text" with the display name
// resolved through the actor map, responses as "- text".
func (e *Engine) renderPage(lines []dialogue.Line) string {
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		switch line.Kind {
		case dialogue.LineSpeaker:
			rows = append(rows, e.doc.ActorName(line.Speaker)+": "+line.Text)
		case dialogue.LineResponse:
			rows = append(rows, "- "+line.Text)
		default:
			rows = append(rows, line.Text)
		}
	}
	return strings.Join(rows, "\n")
}
