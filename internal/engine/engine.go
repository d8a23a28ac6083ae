// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed tick code.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/engine/boot"
	"github.com/michaelmacinnis/tick/internal/engine/commands"
	"github.com/michaelmacinnis/tick/internal/engine/task"
	"github.com/michaelmacinnis/tick/internal/reader"
)

// DefaultQuantum is the number of ticks performed between checks for
// cancellation.
const DefaultQuantum = 1024

// T (engine) is a facade in front of the machinery for evaluating tick code.
type T struct {
	bindings *bindings.T
	log      *slog.Logger
	quantum  int
}

// Option configures an engine.
type Option func(*T)

// WithLogger sets the logger used to trace evaluation.
func WithLogger(l *slog.Logger) Option {
	return func(e *T) {
		e.log = l
	}
}

// WithQuantum sets the number of ticks performed between checks for
// cancellation.
func WithQuantum(n int) Option {
	return func(e *T) {
		if n > 0 {
			e.quantum = n
		}
	}
}

// New creates a new engine with the builtin procedures and the boot script
// installed.
func New(opts ...Option) (*T, error) {
	e := &T{
		bindings: bindings.New(),
		log:      slog.Default(),
		quantum:  DefaultQuantum,
	}

	for _, opt := range opts {
		opt(e)
	}

	commands.Install(e.bindings)

	exprs, err := reader.Parse("boot", boot.Script())
	if err != nil {
		return nil, fmt.Errorf("parsing boot script: %w", err)
	}

	for _, c := range exprs {
		if _, err := e.Evaluate(context.Background(), c); err != nil {
			return nil, fmt.Errorf("evaluating boot script: %w", err)
		}
	}

	return e, nil
}

// Bindings returns the environment shared by every evaluation.
func (e *T) Bindings() *bindings.T {
	return e.bindings
}

// Evaluate reduces c to a value. It checks ctx every quantum ticks and
// abandons the evaluation if ctx is done.
func (e *T) Evaluate(ctx context.Context, c cell.I) (cell.I, error) {
	t := task.New(e.bindings, e.log).Begin(c)

	for !t.RunFor(e.quantum) {
		if err := ctx.Err(); err != nil {
			t.Abort(err)

			break
		}
	}

	stats := t.Stats()
	e.log.Debug(
		"evaluated",
		slog.Int("ticks", stats.Ticks),
		slog.Int("peak", stats.Peak),
		slog.Int("tail-calls", stats.TailCalls),
	)

	v, err, _ := t.Outcome()

	return v, err
}
