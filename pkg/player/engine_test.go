package player_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/aretw0/lex/pkg/parser"
	"github.com/aretw0/lex/pkg/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(lines ...string) string {
	return strings.Join(lines, "\n")
}

// playAll steps a fresh session to completion and returns every tick.
func playAll(t *testing.T, engine *player.Engine) ([]*player.Tick, *player.State) {
	t.Helper()

	state, err := engine.Start()
	require.NoError(t, err)

	ctx := context.Background()
	var ticks []*player.Tick
	for !state.Done() {
		tick, next, err := engine.Step(ctx, state)
		require.NoError(t, err)
		ticks = append(ticks, tick)
		state = next

		require.Less(t, len(ticks), 100, "playback did not finish")
	}
	return ticks, state
}

func stdout(ticks []*player.Tick) []string {
	var rows []string
	for _, tick := range ticks {
		for _, row := range tick.Output {
			if !row.Stderr {
				rows = append(rows, row.Text)
			}
		}
	}
	return rows
}

func stderr(ticks []*player.Tick) []string {
	var rows []string
	for _, tick := range ticks {
		for _, row := range tick.Output {
			if row.Stderr {
				rows = append(rows, row.Text)
			}
		}
	}
	return rows
}

func TestEngineStartEmptyDocument(t *testing.T) {
	doc, _ := parser.Parse("")
	_, err := player.NewEngine(doc).Start()
	require.ErrorIs(t, err, dialogue.ErrEmptyDialogue)
}

func TestEngineFallThrough(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"First.",
		"",
		"#Outro",
		"Second.",
	))

	ticks, state := playAll(t, player.NewEngine(doc))

	assert.Equal(t, []string{"First.", "Second."}, stdout(ticks))
	assert.Equal(t, player.StatusEnded, state.Status)
}

func TestEnginePageRendering(t *testing.T) {
	doc, _ := parser.Parse(script(
		"@Oscar",
		"Name: Oscar the Grouch",
		"",
		"#Intro",
		"@oscar: Scram!",
		"Narrator: The lid slams shut.",
		"- Sorry!",
	))

	ticks, _ := playAll(t, player.NewEngine(doc))

	require.Len(t, stdout(ticks), 1)
	assert.Equal(t, script(
		"Oscar the Grouch: Scram!",
		"Narrator: The lid slams shut.",
		"- Sorry!",
	), stdout(ticks)[0])
}

func TestEngineUndeclaredSpeakerFallsBack(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"@ghost: Boo.",
	))

	ticks, _ := playAll(t, player.NewEngine(doc))

	// The raw id is used when no actor supplies a display name.
	assert.Equal(t, []string{"ghost: Boo."}, stdout(ticks))
}

func TestEngineJump(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"One.",
		"=> Outro",
		"",
		"#Skipped",
		"Never shown.",
		"",
		"#Outro",
		"Two.",
	))

	ticks, state := playAll(t, player.NewEngine(doc))

	assert.Equal(t, []string{"One.", "Two."}, stdout(ticks))
	assert.Equal(t, player.StatusEnded, state.Status)
}

func TestEngineJumpEnd(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"One.",
		"=> END",
		"Never shown.",
	))

	ticks, state := playAll(t, player.NewEngine(doc))

	assert.Equal(t, []string{"One."}, stdout(ticks))
	assert.Equal(t, player.StatusEnded, state.Status)
}

func TestEngineBounceReturns(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"Before.",
		"=><= Aside",
		"After.",
		"=> end",
		"",
		"#Aside",
		"Inside.",
		"=> end",
	))

	ticks, state := playAll(t, player.NewEngine(doc))

	// The end inside the bounced section pops back to the step after
	// the bounce instead of finishing the session.
	assert.Equal(t, []string{"Before.", "Inside.", "After."}, stdout(ticks))
	assert.Equal(t, player.StatusEnded, state.Status)
}

func TestEngineBounceToLastSectionReturns(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"Before.",
		"=><= Aside",
		"After.",
		"=> end",
		"",
		"#Aside",
		"Inside.",
	))

	ticks, state := playAll(t, player.NewEngine(doc))

	// The bounced section has no explicit end; running out of document
	// still pops the return frame instead of finishing the session.
	assert.Equal(t, []string{"Before.", "Inside.", "After."}, stdout(ticks))
	assert.Equal(t, player.StatusEnded, state.Status)
}

func TestEngineNestedBounceExhaustion(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"One.",
		"=><= Mid",
		"Four.",
		"=> end",
		"",
		"#Mid",
		"Two.",
		"=><= Tail",
		"",
		"#Tail",
		"Three.",
	))

	ticks, state := playAll(t, player.NewEngine(doc))

	// Both pending return frames unwind in order when the tail section
	// exhausts the document. The bounce into Tail is the last step of
	// Mid, so its saved resume frame is Tail's own first step (the
	// fall-through rule crosses section boundaries); Three. plays twice
	// before the first bounce's frame brings control back to Four.
	assert.Equal(t, []string{"One.", "Two.", "Three.", "Three.", "Four."}, stdout(ticks))
	assert.Equal(t, player.StatusEnded, state.Status)
}

func TestEngineTerminateInsideBounce(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"Before.",
		"=><= Aside",
		"Never shown.",
		"",
		"#Aside",
		"=> TERMINATE",
	))

	ticks, state := playAll(t, player.NewEngine(doc))

	// Terminate is unconditional: the pending return frame is ignored.
	assert.Equal(t, []string{"Before."}, stdout(ticks))
	assert.Equal(t, player.StatusTerminated, state.Status)
}

func TestEngineUnresolvedTarget(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"=> Nowhere",
		"Still here.",
	))

	ticks, state := playAll(t, player.NewEngine(doc))

	// A dead target is reported and playback continues by fall-through.
	assert.Equal(t, []string{"section not found: Nowhere"}, stderr(ticks))
	assert.Equal(t, []string{"Still here."}, stdout(ticks))
	assert.Equal(t, player.StatusEnded, state.Status)
}

func TestEngineLogSteps(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"/// all good",
		"//? watch out",
		"//! on fire",
		"// invisible",
	))

	ticks, _ := playAll(t, player.NewEngine(doc))

	assert.Equal(t, []string{"all good", "watch out"}, stdout(ticks))
	assert.Equal(t, []string{"on fire"}, stderr(ticks))
}

func TestEngineAssign(t *testing.T) {
	doc, _ := parser.Parse(script(
		"$mood: calm",
		"#Intro",
		"$mood = angry",
		"$ghost = 1",
		"Done.",
	))

	ticks, state := playAll(t, player.NewEngine(doc))

	assert.Equal(t, dialogue.TextValue("angry"), state.Variables["mood"])
	// Undeclared assignment still lands, with an advisory.
	assert.Equal(t, dialogue.NumberValue(1), state.Variables["ghost"])
	assert.Equal(t, []string{"variable ghost assigned without declaration"}, stderr(ticks))

	// The document itself is untouched.
	assert.Equal(t, dialogue.TextValue("calm"), doc.Variables["mood"])
}

func TestEngineStepDoesNotMutateInput(t *testing.T) {
	doc, _ := parser.Parse(script(
		"$mood: calm",
		"#Intro",
		"$mood = angry",
	))

	engine := player.NewEngine(doc)
	state, err := engine.Start()
	require.NoError(t, err)

	_, next, err := engine.Step(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, dialogue.TextValue("calm"), state.Variables["mood"])
	assert.Equal(t, dialogue.TextValue("angry"), next.Variables["mood"])
}

func TestEngineStepOnFinishedSession(t *testing.T) {
	doc, _ := parser.Parse(script("#Intro", "Only."))
	engine := player.NewEngine(doc)

	_, state := playAll(t, engine)
	_, _, err := engine.Step(context.Background(), state)
	require.Error(t, err)
}

func TestEngineStateRoundTripsThroughJSON(t *testing.T) {
	doc, _ := parser.Parse(script(
		"$count: 2",
		"#Intro",
		"One.",
		"=><= Aside",
		"Three.",
		"",
		"#Aside",
		"Two.",
		"=> end",
	))

	engine := player.NewEngine(doc)
	state, err := engine.Start()
	require.NoError(t, err)

	ctx := context.Background()
	var rows []string
	for !state.Done() {
		tick, next, err := engine.Step(ctx, state)
		require.NoError(t, err)
		rows = append(rows, stdout([]*player.Tick{tick})...)

		// Simulate external persistence between every step.
		data, err := json.Marshal(next)
		require.NoError(t, err)
		state = new(player.State)
		require.NoError(t, json.Unmarshal(data, state))
	}

	assert.Equal(t, []string{"One.", "Two.", "Three."}, rows)
	assert.Equal(t, dialogue.NumberValue(2), state.Variables["count"])
}
