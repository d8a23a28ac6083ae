// Released under an MIT license. See LICENSE.

package task

import (
	"testing"

	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/num"
	"github.com/michaelmacinnis/tick/internal/common/type/proc"
)

func TestValueToBuiltinCallPanics(t *testing.T) {
	tk := New(bindings.New(), nil)
	tk.PushOp(&builtinCallFrame{builtin: &proc.Builtin{Label: "x", Ticks: 1}})

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()

	tk.Return(num.New(1))
}

func TestValueToEmptyStackIsOutcome(t *testing.T) {
	tk := New(bindings.New(), nil)

	tk.Return(num.New(7))

	v, err, done := tk.Outcome()
	if !done || err != nil || !v.Equal(num.New(7)) {
		t.Fatalf("expected outcome 7, got %v, %v, %v", v, err, done)
	}
}

func TestStackDescription(t *testing.T) {
	tk := New(bindings.New(), nil).Begin(num.New(1))

	s := tk.Stack()
	if len(s) != 1 || s[0] != "evaluate(1)" {
		t.Fatalf("unexpected stack %v", s)
	}
}
