package parser_test

import (
	"strings"
	"testing"

	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/aretw0/lex/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestParseSections(t *testing.T) {
	doc, warnings := parser.Parse(script(
		"#Intro",
		"Hello there.",
		"",
		"#  Outro ",
		"Goodbye.",
	))
	require.Empty(t, warnings)

	// The implicit leading section had no steps, so only the named
	// sections survive.
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Intro", doc.Sections[0].Name)
	assert.Equal(t, "Outro", doc.Sections[1].Name)
	assert.Len(t, doc.Sections[0].Steps, 1)
	assert.Len(t, doc.Sections[1].Steps, 1)
}

func TestParseMetaSection(t *testing.T) {
	doc, _ := parser.Parse(script(
		"Before any header.",
		"#Intro",
		"Hello.",
	))

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Meta", doc.Sections[0].Name)
	assert.Equal(t, dialogue.StepPage, doc.Sections[0].Steps[0].Kind)
}

func TestParseTrailingEmptySection(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"Hello.",
		"#Stub",
	))

	// A trailing header still counts as a section, even with no steps.
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Stub", doc.Sections[1].Name)
	assert.Empty(t, doc.Sections[1].Steps)
}

func TestParseActor(t *testing.T) {
	doc, warnings := parser.Parse(script(
		"@Oscar",
		"Name: Oscar the Grouch",
		"Age: 43",
		"Grumpy: true",
		"",
		"#Intro",
		"@oscar: Scram!",
	))
	require.Empty(t, warnings)

	actor, ok := doc.Actors["oscar"]
	require.True(t, ok, "actor ids are lowercased")
	assert.Equal(t, "Oscar the Grouch", actor.Name)
	assert.Equal(t, dialogue.NumberValue(43), actor.Properties["age"])
	assert.Equal(t, dialogue.BooleanValue(true), actor.Properties["grumpy"])
}

func TestParseActorWithoutProperties(t *testing.T) {
	doc, _ := parser.Parse(script(
		"@Narrator",
		"",
		"#Intro",
		"Hello.",
	))

	actor, ok := doc.Actors["narrator"]
	require.True(t, ok)
	assert.Equal(t, "Narrator", actor.Name)
	assert.Empty(t, actor.Properties)
}

func TestParseVariableTypes(t *testing.T) {
	doc, warnings := parser.Parse(script(
		"$mood: calm",
		"$count: 42",
		"$ratio: 0.5",
		"$ready: true",
		"$tags: [red, green, blue]",
	))
	require.Empty(t, warnings)

	assert.Equal(t, dialogue.TextValue("calm"), doc.Variables["mood"])
	assert.Equal(t, dialogue.NumberValue(42), doc.Variables["count"])
	assert.Equal(t, dialogue.NumberValue(0.5), doc.Variables["ratio"])
	assert.Equal(t, dialogue.BooleanValue(true), doc.Variables["ready"])
	assert.Equal(t, dialogue.ArrayValue("red", "green", "blue"), doc.Variables["tags"])
}

func TestParseAssignment(t *testing.T) {
	doc, warnings := parser.Parse(script(
		"$foo: 1",
		"#Intro",
		"$foo = 2",
	))
	require.Empty(t, warnings)

	// The declaration keeps its value; the assignment is a step that
	// takes effect only during playback.
	assert.Equal(t, dialogue.NumberValue(1), doc.Variables["foo"])

	step := doc.Sections[0].Steps[0]
	assert.Equal(t, dialogue.StepAssign, step.Kind)
	assert.Equal(t, "foo", step.Name)
	assert.Equal(t, dialogue.NumberValue(2), step.Value)
}

func TestParseAssignmentUndeclared(t *testing.T) {
	doc, warnings := parser.Parse(script(
		"#Intro",
		"$ghost = 7",
	))

	require.Len(t, warnings, 1)
	assert.Equal(t, `line 2: assignment to undeclared variable "ghost"`, warnings[0])
	assert.Equal(t, dialogue.StepAssign, doc.Sections[0].Steps[0].Kind)
}

func TestParseFunction(t *testing.T) {
	doc, warnings := parser.Parse(script(
		"!roll(sides = 6): 3",
		"!ping",
		"!greet(name)",
	))
	require.Empty(t, warnings)

	roll, ok := doc.Functions["roll"]
	require.True(t, ok)
	require.NotNil(t, roll.Result)
	assert.Equal(t, dialogue.NumberValue(3), *roll.Result)
	assert.Equal(t, dialogue.NumberValue(6), roll.Args["sides"])

	ping, ok := doc.Functions["ping"]
	require.True(t, ok)
	assert.Nil(t, ping.Result)
	assert.Nil(t, ping.Args)

	greet, ok := doc.Functions["greet"]
	require.True(t, ok)
	assert.Equal(t, dialogue.TextValue(""), greet.Args["name"], "argument without default is empty text")
}

func TestParseCommentsAndLogs(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"// just a note",
		"/// shown to the player",
		"//? heads up",
		"//! something broke",
	))

	steps := doc.Sections[0].Steps
	require.Len(t, steps, 4)
	assert.Equal(t, dialogue.StepComment, steps[0].Kind)
	assert.Equal(t, "just a note", steps[0].Text)
	assert.Equal(t, dialogue.StepLogInfo, steps[1].Kind)
	assert.Equal(t, dialogue.StepLogWarning, steps[2].Kind)
	assert.Equal(t, dialogue.StepLogError, steps[3].Kind)
	assert.Equal(t, "something broke", steps[3].Text)
}

func TestParsePage(t *testing.T) {
	doc, warnings := parser.Parse(script(
		"@Oscar",
		"",
		"#Intro",
		"@Oscar: Go away.",
		"Narrator: Oscar slams the lid.",
		"Just some text.",
		"- Sorry!",
		"- I brought trash.",
	))
	require.Empty(t, warnings)

	steps := doc.Sections[0].Steps
	require.Len(t, steps, 1, "consecutive lines fold into one page")
	lines := steps[0].Lines
	require.Len(t, lines, 5)

	assert.Equal(t, dialogue.LineSpeaker, lines[0].Kind)
	assert.Equal(t, "oscar", lines[0].Speaker, "actor references are lowercased")
	assert.Equal(t, "Go away.", lines[0].Text)

	assert.Equal(t, dialogue.LineSpeaker, lines[1].Kind)
	assert.Equal(t, "Narrator", lines[1].Speaker, "free labels stay verbatim")

	assert.Equal(t, dialogue.LineText, lines[2].Kind)
	assert.Equal(t, "Just some text.", lines[2].Text)

	assert.Equal(t, dialogue.LineResponse, lines[3].Kind)
	assert.Equal(t, "Sorry!", lines[3].Text)
	assert.Equal(t, dialogue.LineResponse, lines[4].Kind)
}

func TestParseUndeclaredSpeakerWarns(t *testing.T) {
	_, warnings := parser.Parse(script(
		"#Intro",
		"@ghost: Boo.",
	))

	require.Len(t, warnings, 1)
	assert.Equal(t, `line 2: speaker references undeclared actor "ghost"`, warnings[0])
}

func TestParseEmptyLineSplitsPages(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"First page.",
		"",
		"Second page.",
	))

	steps := doc.Sections[0].Steps
	require.Len(t, steps, 2)
	assert.Equal(t, dialogue.StepPage, steps[0].Kind)
	assert.Equal(t, dialogue.StepPage, steps[1].Kind)
}

func TestParseJumps(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"=> Outro",
		"=> END",
		"=> Terminate",
		"=><= Aside",
	))

	steps := doc.Sections[0].Steps
	require.Len(t, steps, 4)

	assert.Equal(t, dialogue.StepJump, steps[0].Kind)
	assert.Equal(t, "Outro", steps[0].Target)

	// The keywords match case-insensitively.
	assert.Equal(t, dialogue.StepEnd, steps[1].Kind)
	assert.Equal(t, dialogue.StepTerminate, steps[2].Kind)

	assert.Equal(t, dialogue.StepBounce, steps[3].Kind)
	assert.Equal(t, "Aside", steps[3].Target)
}

func TestParseNeverFails(t *testing.T) {
	doc, _ := parser.Parse(script(
		"#Intro",
		"===>>> not a real jump",
		"]broken[ stuff",
	))

	// Unrecognized lines degrade to plain text inside a page.
	steps := doc.Sections[0].Steps
	require.Len(t, steps, 1)
	require.Equal(t, dialogue.StepPage, steps[0].Kind)
	assert.Equal(t, dialogue.LineText, steps[0].Lines[1].Kind)
}

func TestParseEmptyInput(t *testing.T) {
	doc, warnings := parser.Parse("")

	require.Empty(t, warnings)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Meta", doc.Sections[0].Name)
	assert.Empty(t, doc.Sections[0].Steps)
}
