package player

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/lex/internal/logging"
	"github.com/aretw0/lex/pkg/dialogue"
)

// DefaultDelay is the pacing pause between playback ticks. It is purely
// cosmetic; set zero to disable.
const DefaultDelay = 500 * time.Millisecond

// Player drives an Engine to completion against a pair of output sinks.
type Player struct {
	engine *Engine
	out    io.Writer
	errOut io.Writer
	delay  time.Duration
	render func(string) (string, error)
	logger *slog.Logger
}

// Option configures a Player.
type Option func(*Player)

// WithOutput sets the standard output sink (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(p *Player) { p.out = w }
}

// WithErrOutput sets the error output sink (default os.Stderr).
func WithErrOutput(w io.Writer) Option {
	return func(p *Player) { p.errOut = w }
}

// WithDelay overrides the pacing delay between ticks.
func WithDelay(d time.Duration) Option {
	return func(p *Player) { p.delay = d }
}

// WithLogger sets a structured logger for the underlying engine.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRenderer sets a transform applied to page output before printing.
// This keeps TUI concerns (markdown, color) out of the core loop.
func WithRenderer(render func(string) (string, error)) Option {
	return func(p *Player) { p.render = render }
}

// New creates a Player over a parsed document.
func New(doc *dialogue.Dialogue, opts ...Option) *Player {
	p := &Player{
		out:    os.Stdout,
		errOut: os.Stderr,
		delay:  DefaultDelay,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.engine = NewEngine(doc, WithEngineLogger(p.logger))
	return p
}

// Play runs the session to completion or termination. It fails only on
// the structural precondition (an unplayable document) or context
// cancellation; malformed navigation inside the script is reported to
// the error sink and playback continues by fall-through.
func (p *Player) Play(ctx context.Context) error {
	state, err := p.engine.Start()
	if err != nil {
		return err
	}

	for !state.Done() {
		tick, next, err := p.engine.Step(ctx, state)
		if err != nil {
			return err
		}

		for _, row := range tick.Output {
			if row.Stderr {
				fmt.Fprintln(p.errOut, row.Text)
				continue
			}
			text := row.Text
			if p.render != nil && tick.Kind == dialogue.StepPage {
				if rendered, err := p.render(text); err == nil {
					text = rendered
				}
			}
			fmt.Fprintln(p.out, text)
		}

		if p.delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.delay):
			}
		}

		state = next
	}

	fmt.Fprintln(p.out, "Playback completed.")
	return nil
}
