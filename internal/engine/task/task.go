// Released under an MIT license. See LICENSE.

// Package task provides tick's incremental evaluation machine.
//
// A task evaluates one expression a step at a time. Every step pops the top
// frame off an explicit stack and performs it. Performing a frame may push
// new frames and may hand a value to the frame below it. Nothing in a step
// recurses on the Go stack so a task can be paused after any step, and proper
// tail calls run in constant stack space.
package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
)

// T (task) encapsulates a single evaluation.
type T struct {
	*stack
	*state

	bindings *bindings.T
	log      *slog.Logger

	base      int
	tailCalls int
	ticks     int
}

// New creates a new task that evaluates in the environment b.
// A nil logger discards trace output.
func New(b *bindings.T, l *slog.Logger) *T {
	if l == nil {
		l = slog.New(discard{})
	}

	return &T{
		bindings: b,
		log:      l,
		stack:    &stack{},
		state:    &state{},
	}
}

// Begin installs c as the root expression of the task t.
func (t *T) Begin(c cell.I) *T {
	t.stack = &stack{}
	t.state = &state{}

	t.base = t.bindings.Depth()
	t.tailCalls = 0
	t.ticks = 0

	t.PushOp(&evaluateFrame{expression: c})

	return t
}

// Abort stops the task t, releasing any layers its frames own.
func (t *T) Abort(err error) {
	if t.done {
		return
	}

	t.fail(err)
}

// Bindings returns the environment the task t evaluates in.
func (t *T) Bindings() *bindings.T {
	return t.bindings
}

// Run steps through the task t until it is done.
func (t *T) Run() {
	for !t.done {
		t.Step()
	}
}

// RunFor performs at most n steps and returns true if the task t is done.
func (t *T) RunFor(n int) bool {
	for ; n > 0 && !t.done; n-- {
		t.Step()
	}

	return t.done
}

// Stack returns a description of each frame, top first.
func (t *T) Stack() []string {
	s := make([]string, 0, len(t.ops))

	for i := len(t.ops) - 1; i >= 0; i-- {
		s = append(s, opString(t.ops[i]))
	}

	return s
}

// Stats returns counts describing the work done by the task t.
func (t *T) Stats() Stats {
	return Stats{
		Ticks:     t.ticks,
		Depth:     t.Depth(),
		Peak:      t.peak,
		TailCalls: t.tailCalls,
	}
}

// Step performs a single action. It does nothing once the task t is done.
func (t *T) Step() {
	if t.done {
		return
	}

	if t.Depth() == 0 {
		panic("task has no outcome and nothing to do")
	}

	t.ticks++

	if t.log.Enabled(context.Background(), slog.LevelDebug) {
		t.log.Debug(
			"tick",
			slog.Int("n", t.ticks),
			slog.Int("layers", t.bindings.Depth()-t.base),
			slog.Any("stack", t.Stack()),
		)
	}

	t.PopOp().Perform(t)
}

// Return hands the value c to the frame now at the top of the stack.
// If the stack is empty c is the outcome of the task.
func (t *T) Return(c cell.I) {
	if t.Depth() == 0 {
		t.finish(c, nil)

		return
	}

	top := t.Op()

	r, ok := top.(receiver)
	if !ok {
		panic(fmt.Sprintf("%s cannot accept a value", opString(top)))
	}

	r.Receive(c)
}

func (t *T) fail(err error) {
	t.Clear()
	t.bindings.Unwind(t.base)
	t.finish(nil, err)

	t.log.Debug("failed", slog.Int("n", t.ticks), slog.Any("error", err))
}

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }
