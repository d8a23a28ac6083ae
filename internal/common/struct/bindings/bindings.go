// Released under an MIT license. See LICENSE.

// Package bindings provides the layered environment an evaluation runs in:
// one global layer plus a stack of call-local layers.
package bindings

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/type/env"
	"github.com/michaelmacinnis/tick/internal/common/type/failure"
)

// T (bindings) is a global layer and a stack of local layers.
// The global layer may be shared. The local stack may not.
type T struct {
	global *env.T
	locals []*env.T
}

type bindings = T

// New creates bindings with an empty global layer.
func New() *bindings {
	return &bindings{global: env.New(nil)}
}

// Share creates bindings that use the same global layer as b and have an
// empty local stack.
func (b *bindings) Share() *bindings {
	return &bindings{global: b.global}
}

// Define associates name with v in the innermost layer.
func (b *bindings) Define(name string, v cell.I) {
	if top := b.Scope(); top != nil {
		top.Define(name, v)

		return
	}

	b.global.Define(name, v)
}

// Depth returns the number of local layers.
func (b *bindings) Depth() int {
	return len(b.locals)
}

// Global returns the global layer.
func (b *bindings) Global() *env.T {
	return b.global
}

// Lookup searches the innermost layer, the layers it encloses, and then the
// global layer for name.
func (b *bindings) Lookup(name string) (cell.I, error) {
	if v, ok := b.Scope().Lookup(name); ok {
		return v, nil
	}

	if v, ok := b.global.Get(name); ok {
		return v, nil
	}

	return nil, failure.UndefinedSymbol(name)
}

// Pop removes and returns the innermost local layer.
func (b *bindings) Pop() *env.T {
	n := len(b.locals) - 1
	if n < 0 {
		panic("no local layer to pop")
	}

	top := b.locals[n]
	b.locals[n] = nil
	b.locals = b.locals[:n]

	return top
}

// Push makes e the innermost local layer.
func (b *bindings) Push(e *env.T) {
	b.locals = append(b.locals, e)
}

// Scope returns the innermost local layer or nil if there are none.
func (b *bindings) Scope() *env.T {
	if len(b.locals) == 0 {
		return nil
	}

	return b.locals[len(b.locals)-1]
}

// Unwind pops local layers until only depth remain.
func (b *bindings) Unwind(depth int) {
	for len(b.locals) > depth {
		b.Pop()
	}
}
