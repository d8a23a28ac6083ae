// Released under an MIT license. See LICENSE.

// Package env provides tick's binding layer type.
package env

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/struct/hash"
)

const name = "environment"

// T (env) is one scope's worth of bindings. Lookups that miss fall through
// to the enclosing layer.
type T struct {
	previous *env
	args     []cell.I
	*hash.T
}

type env = T

// New creates a new env enclosed by previous. A nil previous is allowed.
func New(previous *T) *env {
	return &env{
		previous: previous,
		T:        hash.New(),
	}
}

// Positional creates a new env holding the unnamed argument values args.
func Positional(args []cell.I) *env {
	e := New(nil)
	e.args = args

	return e
}

// Args returns the unnamed argument values held by the env e.
func (e *env) Args() []cell.I {
	return e.args
}

// Define associates the name k with the cell v in the env e.
func (e *env) Define(k string, v cell.I) {
	e.Set(k, v)
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Lookup retrieves the value associated with the name k in the env e or
// any layer that encloses it.
func (e *env) Lookup(k string) (cell.I, bool) {
	for ; e != nil; e = e.previous {
		if v, ok := e.Get(k); ok {
			return v, true
		}
	}

	return nil, false
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Is returns true if c is an env.
func Is(c cell.I) bool {
	_, ok := c.(*env)

	return ok
}

// To returns an *env if c is an env; Otherwise it panics.
func To(c cell.I) *env {
	if e, ok := c.(*env); ok {
		return e
	}

	panic(c.Name() + " is not an environment")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)
}
