package dialogue_test

import (
	"testing"

	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionIndex(t *testing.T) {
	doc := dialogue.New()
	doc.Sections = []dialogue.Section{
		{Name: "Intro"},
		{Name: "Outro"},
		{Name: "Intro"}, // duplicate; first match wins
	}

	idx, ok := doc.SectionIndex("Intro")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	// Matching is exact, not case-insensitive.
	_, ok = doc.SectionIndex("intro")
	assert.False(t, ok)
}

func TestCloneVariables(t *testing.T) {
	doc := dialogue.New()
	doc.Variables["mood"] = dialogue.TextValue("calm")

	vars := doc.CloneVariables()
	vars["mood"] = dialogue.TextValue("angry")

	assert.Equal(t, dialogue.TextValue("calm"), doc.Variables["mood"])
}

func TestActorName(t *testing.T) {
	doc := dialogue.New()
	doc.Actors["oscar"] = dialogue.Actor{Name: "Oscar the Grouch"}

	assert.Equal(t, "Oscar the Grouch", doc.ActorName("oscar"))
	assert.Equal(t, "ghost", doc.ActorName("ghost"))
}
