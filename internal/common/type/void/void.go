// Released under an MIT license. See LICENSE.

// Package void provides the value of expressions that have no useful value.
package void

import (
	"github.com/michaelmacinnis/tick/internal/common"
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
)

const name = "void"

// T (void) has a single value, Void.
type T struct{}

type void = T

// Void is returned by define and by a cond with no matching clause.
var Void cell.I = &void{} //nolint:gochecknoglobals

// Equal returns true if c is also void.
func (v *void) Equal(c cell.I) bool {
	_, ok := c.(*void)

	return ok
}

// Name returns the type name for void.
func (v *void) Name() string {
	return name
}

// String returns the text of void.
func (v *void) String() string {
	return "#<void>"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t void

	// The void type is a cell.
	_ = cell.I(&t)

	// The void type is a stringer.
	_ = common.Stringer(&t)
}
