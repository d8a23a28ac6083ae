// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/literal"
	"github.com/michaelmacinnis/tick/internal/common/type/failure"
	"github.com/michaelmacinnis/tick/internal/common/type/pair"
	"github.com/michaelmacinnis/tick/internal/common/type/proc"
	"github.com/michaelmacinnis/tick/internal/common/type/sym"
	"github.com/michaelmacinnis/tick/internal/common/validate"
)

// evaluateFrame reduces an expression to a value.
//
// Result (self-evaluating or symbol):
//
//	stack: Previous ...
//	value: Expression's value handed to Previous.
//
// Result (call with a symbol or procedure in head position):
//
//	stack: argParseFrame Previous ...
//
// Result (call with a compound head):
//
//	stack: evaluateFrame(Head) applyFrame(Args) Previous ...
//
// Requires:
//
//	stack: evaluateFrame(Expression) Previous ...
type evaluateFrame struct {
	expression cell.I
}

func (e *evaluateFrame) Perform(t *T) {
	switch c := e.expression.(type) {
	case *sym.T:
		v, err := t.bindings.Lookup(c.String())
		if err != nil {
			t.fail(err)

			return
		}

		t.Return(v)

	case *pair.T:
		if c == pair.Null {
			t.Return(c)

			return
		}

		head := pair.Car(c)
		args := pair.Cdr(c)

		switch {
		case sym.Is(head):
			v, err := t.bindings.Lookup(sym.To(head).String())
			if err != nil {
				t.fail(err)

				return
			}

			t.call(v, args)

		case pair.Is(head) && head != pair.Null:
			t.PushOp(&applyFrame{args: args})
			t.PushOp(&evaluateFrame{expression: head})

		default:
			t.call(head, args)
		}

	default:
		t.Return(c)
	}
}

func (e *evaluateFrame) String() string {
	return "evaluate(" + literal.String(e.expression) + ")"
}

// applyFrame calls the procedure produced by a compound head.
//
// Result:
//
//	stack: argParseFrame Previous ...
//
// Requires:
//
//	stack: applyFrame(Args) Previous ...
//	value: Procedure received from evaluateFrame(Head).
type applyFrame struct {
	args   cell.I
	callee cell.I
}

func (a *applyFrame) Perform(t *T) {
	t.call(a.callee, a.args)
}

func (a *applyFrame) Receive(c cell.I) {
	a.callee = c
}

func (a *applyFrame) String() string {
	return "apply"
}

// continueFrame passes the value of a builtin's sub-evaluation to the
// function that continues the builtin.
//
// Result:
//
//	The same as a builtinCallFrame that returned what then returns.
//
// Requires:
//
//	stack: continueFrame(Then) Previous ...
//	value: Value received from evaluateFrame(Expression).
type continueFrame struct {
	then  func(cell.I) (cell.I, error)
	value cell.I
}

func (c *continueFrame) Perform(t *T) {
	t.resolve(c.then(c.value))
}

func (c *continueFrame) Receive(v cell.I) {
	c.value = v
}

func (c *continueFrame) String() string {
	return "continue"
}

// call checks the arguments to the procedure v and, if they are acceptable,
// pushes the frame that will evaluate them.
func (t *T) call(v cell.I, args cell.I) {
	p, ok := v.(proc.I)
	if !ok {
		t.fail(failure.NotAProcedure(v))

		return
	}

	min, max := p.Arity()

	unevaluated, err := validate.Arguments(p.Identity(), args, min, max)
	if err != nil {
		t.fail(err)

		return
	}

	a := &argParseFrame{procedure: p, values: make([]cell.I, 0, len(unevaluated))}

	if b, ok := p.(*proc.Builtin); ok && b.Syntax {
		a.values = unevaluated
	} else {
		a.remaining = unevaluated
	}

	t.PushOp(a)
}

// resolve handles what a builtin, or the function continuing it, returned.
func (t *T) resolve(v cell.I, err error) {
	if err != nil {
		t.fail(err)

		return
	}

	d, ok := v.(*proc.Deferred)
	if !ok {
		t.Return(v)

		return
	}

	if d.Then != nil {
		t.PushOp(&continueFrame{then: d.Then})
	}

	t.PushOp(&evaluateFrame{expression: d.Expression})
}
