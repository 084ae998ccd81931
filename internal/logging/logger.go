// Package logging provides the application logger configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured application logger writing to stderr, so
// structured logs never interleave with script playback on stdout.
// The "error" key is standardized to "err".
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter creates a logger against an explicit sink, for tests and
// adapters that redirect output.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
