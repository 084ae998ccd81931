// Package ports defines the interfaces between the core and its
// adapters (persistence backends, serving surfaces).
package ports

import (
	"context"

	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/aretw0/lex/pkg/player"
)

// Session couples a parsed document with its playback state so a
// step-wise session can be persisted and resumed across requests or
// processes.
type Session struct {
	Dialogue *dialogue.Dialogue `json:"dialogue"`
	State    *player.State      `json:"state"`
	Warnings []string           `json:"warnings,omitempty"`
}

// SessionStore persists playback sessions. Implementations must return
// dialogue.ErrSessionNotFound when an ID does not exist.
type SessionStore interface {
	// Save persists the session under the given ID.
	Save(ctx context.Context, sessionID string, session *Session) error

	// Load retrieves the session for the given ID.
	Load(ctx context.Context, sessionID string) (*Session, error)

	// Delete removes the session.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of active sessions.
	List(ctx context.Context) ([]string, error)
}
