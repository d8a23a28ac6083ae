// Released under an MIT license. See LICENSE.

package proc

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
)

// Builtin is a procedure implemented in Go.
type Builtin struct {
	Fn    Native
	Label string

	Min int
	Max int // Negative for variadic builtins.

	// Ticks is the number of engine steps a call takes before Fn is invoked.
	Ticks int

	// Syntax builtins receive their arguments unevaluated.
	Syntax bool
}

// Arity returns the minimum and maximum number of arguments for b.
func (b *Builtin) Arity() (int, int) {
	return b.Min, b.Max
}

// Equal returns true if c is the same builtin as b.
func (b *Builtin) Equal(c cell.I) bool {
	o, ok := c.(*Builtin)

	return ok && o == b
}

// Identity returns the name of b.
func (b *Builtin) Identity() string {
	return b.Label
}

// Name returns the type name for b.
func (b *Builtin) Name() string {
	return name
}

// String returns the text of b.
func (b *Builtin) String() string {
	return "#<procedure:" + b.Label + ">"
}
