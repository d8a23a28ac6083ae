// Released under an MIT license. See LICENSE.

// Package proc provides tick's procedure types.
package proc

import (
	"github.com/michaelmacinnis/tick/internal/common"
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
)

const name = "procedure"

// I is the interface shared by lambdas and builtins.
type I interface {
	cell.I

	// Arity returns the minimum and maximum number of arguments.
	// A negative maximum means there is no maximum.
	Arity() (int, int)

	// Identity is the name used when reporting errors.
	Identity() string
}

// Native is the Go function behind a builtin.
//
// It may return a *Deferred instead of a value when it needs the engine to
// evaluate an expression on its behalf.
type Native func(args []cell.I, b *bindings.T) (cell.I, error)

// Is returns true if c is a procedure.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var b Builtin

	// The builtin type is a procedure.
	_ = I(&b)

	// The builtin type is a stringer.
	_ = common.Stringer(&b)

	var l Lambda

	// The lambda type is a procedure.
	_ = I(&l)

	// The lambda type is a stringer.
	_ = common.Stringer(&l)
}
