package player

import "github.com/aretw0/lex/pkg/dialogue"

// Status describes where a playback session is in its lifecycle.
type Status string

const (
	// StatusActive means the session has a current step to execute.
	StatusActive Status = "active"
	// StatusEnded means the session ran out of navigable state.
	StatusEnded Status = "ended"
	// StatusTerminated means a terminate directive stopped the session.
	StatusTerminated Status = "terminated"
)

// Frame addresses one step inside the document by index.
type Frame struct {
	Section int `json:"section"`
	Step    int `json:"step"`
}

// State is the complete snapshot of a playback session: the in-flight
// frame, the bounce return stack, and the working variable table. It is
// JSON-serializable so stores can persist sessions across processes.
type State struct {
	Frame  Frame   `json:"frame"`
	Stack  []Frame `json:"stack,omitempty"`
	Status Status  `json:"status"`

	// Variables is the session's mutable variable table, seeded from
	// the document's static declarations. Assignments replace values
	// wholesale.
	Variables map[string]dialogue.Value `json:"variables"`
}

// Done reports whether the session can make no further progress.
func (s *State) Done() bool {
	return s.Status != StatusActive
}

// clone deep-copies the state so a Step never mutates its input.
func (s *State) clone() *State {
	next := *s
	next.Stack = make([]Frame, len(s.Stack))
	copy(next.Stack, s.Stack)
	next.Variables = make(map[string]dialogue.Value, len(s.Variables))
	for name, value := range s.Variables {
		next.Variables[name] = value
	}
	return &next
}
