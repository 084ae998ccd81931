package lex

import (
	"context"

	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/aretw0/lex/pkg/parser"
	"github.com/aretw0/lex/pkg/player"
)

// Parse turns a dialogue script into its structured document. It never
// fails: unrecognized syntax degrades to plain text and advisory
// warnings are returned alongside the document.
func Parse(script string) (*dialogue.Dialogue, []string) {
	return parser.Parse(script)
}

// Play parses the script and plays it back on standard output with the
// default pacing. Options customize output streams, delay and
// rendering.
func Play(ctx context.Context, script string, opts ...player.Option) error {
	doc, _ := parser.Parse(script)
	return player.New(doc, opts...).Play(ctx)
}
