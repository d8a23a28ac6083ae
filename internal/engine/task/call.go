// Released under an MIT license. See LICENSE.

package task

import (
	"strconv"

	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/type/env"
	"github.com/michaelmacinnis/tick/internal/common/type/proc"
)

// argParseFrame evaluates a procedure's arguments, left to right.
//
// Result (arguments remain):
//
//	stack: evaluateFrame(Arg_I) argParseFrame Previous ...
//
// Result (a lambda in tail position):
//
//	layers: Previous layer replaced by a layer binding the parameters.
//	stack: lambdaCallFrame ...
//
// Result (otherwise):
//
//	layers: New layer binding the parameters (or holding the arguments).
//	stack: lambdaCallFrame|builtinCallFrame Previous ...
//
// Requires:
//
//	stack: argParseFrame(Procedure, Arg_I ... Arg_N) Previous ...
type argParseFrame struct {
	procedure proc.I
	remaining []cell.I
	values    []cell.I
}

func (a *argParseFrame) Perform(t *T) {
	if len(a.remaining) > 0 {
		next := a.remaining[0]
		a.remaining = a.remaining[1:]

		t.PushOp(a)
		t.PushOp(&evaluateFrame{expression: next})

		return
	}

	switch p := a.procedure.(type) {
	case *proc.Builtin:
		t.bindings.Push(env.Positional(a.values))
		t.PushOp(&builtinCallFrame{builtin: p})

	case *proc.Lambda:
		layer := p.Bind(a.values)

		if l, ok := t.Op().(*lambdaCallFrame); ok && l.awaiting() {
			t.PopOp()
			t.bindings.Pop()

			t.tailCalls++
		}

		t.bindings.Push(layer)
		t.PushOp(&lambdaCallFrame{body: p.Body})

	default:
		panic("unknown procedure type " + a.procedure.Name())
	}
}

func (a *argParseFrame) Receive(c cell.I) {
	a.values = append(a.values, c)
}

func (a *argParseFrame) String() string {
	return "argParse(" + a.procedure.Identity() + ", " +
		strconv.Itoa(len(a.remaining)) + " remaining)"
}

// builtinCallFrame waits out a builtin's declared number of ticks then
// calls it with the arguments held by the top layer.
//
// Result (ticks remain):
//
//	stack: builtinCallFrame Previous ...
//
// Result (otherwise):
//
//	layers: Top layer popped.
//	stack: Previous ...
//	value: Builtin's result handed to Previous.
//
// Requires:
//
//	layers: Layer holding the arguments ...
//	stack: builtinCallFrame(Builtin) Previous ...
type builtinCallFrame struct {
	builtin *proc.Builtin
	elapsed int
}

func (b *builtinCallFrame) Perform(t *T) {
	b.elapsed++
	if b.elapsed < b.builtin.Ticks {
		t.PushOp(b)

		return
	}

	layer := t.bindings.Pop()

	t.resolve(b.builtin.Fn(layer.Args(), t.bindings))
}

func (b *builtinCallFrame) String() string {
	return "builtinCall(" + b.builtin.Label + ", " +
		strconv.Itoa(b.elapsed) + "/" + strconv.Itoa(b.builtin.Ticks) + ")"
}

// lambdaCallFrame evaluates the body of a lambda.
//
// Result (body remains):
//
//	stack: evaluateFrame(Expr_I) lambdaCallFrame Previous ...
//
// Result (final value received):
//
//	layers: Top layer popped.
//	stack: Previous ...
//	value: Final value handed to Previous.
//
// Requires:
//
//	layers: Layer binding the parameters ...
//	stack: lambdaCallFrame(Expr_I ... Expr_N) Previous ...
type lambdaCallFrame struct {
	body []cell.I

	returning bool
	received  bool
	value     cell.I
}

// awaiting returns true if the frame is waiting for the value of the final
// expression in its body. A call made directly from that position can take
// this frame's place.
func (l *lambdaCallFrame) awaiting() bool {
	return l.returning && !l.received
}

func (l *lambdaCallFrame) Perform(t *T) {
	if l.received {
		t.bindings.Pop()
		t.Return(l.value)

		return
	}

	next := l.body[0]
	l.body = l.body[1:]
	l.returning = len(l.body) == 0

	t.PushOp(l)
	t.PushOp(&evaluateFrame{expression: next})
}

func (l *lambdaCallFrame) Receive(c cell.I) {
	if l.returning {
		l.value = c
		l.received = true
	}
}

func (l *lambdaCallFrame) String() string {
	if l.returning {
		return "lambdaCall(returning)"
	}

	return "lambdaCall(" + strconv.Itoa(len(l.body)) + " remaining)"
}
