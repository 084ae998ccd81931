package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/aretw0/lex/pkg/parser"
	"github.com/aretw0/lex/pkg/player"
)

// RunSessionStoreContract verifies that a SessionStore implementation
// adheres to the interface contract. Adapters call it from their own
// test files.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	newSession := func(t *testing.T) *Session {
		doc, warnings := parser.Parse("$mood: calm\n#Intro\nHello")
		state, err := player.NewEngine(doc).Start()
		require.NoError(t, err)
		return &Session{Dialogue: doc, State: state, Warnings: warnings}
	}

	t.Run("Save and Load", func(t *testing.T) {
		session := newSession(t)
		session.State.Variables["mood"] = dialogue.TextValue("tense")

		err := store.Save(ctx, sessionID, session)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, session.State.Frame, loaded.State.Frame)
		assert.Equal(t, dialogue.TextValue("tense"), loaded.State.Variables["mood"])
		require.NotNil(t, loaded.Dialogue)
		assert.Equal(t, session.Dialogue.Sections, loaded.Dialogue.Sections)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, dialogue.ErrSessionNotFound)
	})

	t.Run("Isolation", func(t *testing.T) {
		session := newSession(t)
		require.NoError(t, store.Save(ctx, sessionID, session))

		// Mutating the saved session must not reach the store.
		session.State.Variables["mood"] = dialogue.TextValue("mutated")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, dialogue.TextValue("calm"), loaded.State.Variables["mood"])
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, newSession(t)))

		err := store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, dialogue.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		require.NoError(t, store.Save(ctx, id1, newSession(t)))
		require.NoError(t, store.Save(ctx, id2, newSession(t)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
