package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders page content as styled
// terminal markdown, word-wrapped to the terminal width.
func NewRenderer() func(string) (string, error) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fall back to passthrough rather than failing playback.
		return func(content string) (string, error) { return content, nil }
	}

	return func(content string) (string, error) {
		return r.Render(content)
	}
}
