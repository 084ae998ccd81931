package parser

import "strings"

// cursor is an index-based scanner over the physical lines of a script,
// with one-line lookahead. Lines are stored trimmed; empty lines are
// kept so multi-line consumers can stop on them.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(input string) *cursor {
	raw := strings.Split(input, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return &cursor{lines: lines}
}

// next consumes and returns the next line.
func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

// peek returns the next line without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

// lineno is the 1-based number of the most recently consumed line.
func (c *cursor) lineno() int {
	return c.pos
}
