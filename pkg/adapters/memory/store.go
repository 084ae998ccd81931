// Package memory provides an in-process SessionStore.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/aretw0/lex/pkg/ports"
)

// Store implements ports.SessionStore in memory. Sessions are kept in
// their serialized form, so callers get the same isolation guarantees
// as with an external backend. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Save persists the session in memory.
func (s *Store) Save(ctx context.Context, sessionID string, session *ports.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = data
	return nil
}

// Load retrieves the session from memory.
func (s *Store) Load(ctx context.Context, sessionID string) (*ports.Session, error) {
	s.mu.RLock()
	data, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, dialogue.ErrSessionNotFound
	}

	var session ports.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns active session IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	return sessions, nil
}
