package dialogue

import "errors"

// ErrEmptyDialogue is returned when playback is started on a document
// with no sections, or whose first section has no steps.
var ErrEmptyDialogue = errors.New("dialogue has no playable steps")

// ErrSessionNotFound is returned when a session ID cannot be found in a
// store.
var ErrSessionNotFound = errors.New("session not found")
