// Released under an MIT license. See LICENSE.

package proc

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/type/env"
	"github.com/michaelmacinnis/tick/internal/common/type/list"
)

const anonymous = "#<procedure>"

// Lambda is a user-defined procedure.
type Lambda struct {
	Params []string
	Rest   string // Empty if there is no rest parameter.
	Body   []cell.I

	// Scope is the layer the lambda was created in. Nil means global.
	Scope *env.T

	// Label is the name given by define. It is only used for display.
	Label string
}

// Arity returns the minimum and maximum number of arguments for l.
func (l *Lambda) Arity() (int, int) {
	n := len(l.Params)
	if l.Rest != "" {
		return n, -1
	}

	return n, n
}

// Bind creates the layer for a call to l with the argument values in args.
// The caller is responsible for checking the number of arguments.
func (l *Lambda) Bind(args []cell.I) *env.T {
	layer := env.New(l.Scope)

	for i, p := range l.Params {
		layer.Define(p, args[i])
	}

	if l.Rest != "" {
		layer.Define(l.Rest, list.New(args[len(l.Params):]...))
	}

	return layer
}

// Equal returns true if c is the same lambda as l.
func (l *Lambda) Equal(c cell.I) bool {
	o, ok := c.(*Lambda)

	return ok && o == l
}

// Identity returns the name used when reporting errors for l.
func (l *Lambda) Identity() string {
	return anonymous
}

// Name returns the type name for l.
func (l *Lambda) Name() string {
	return name
}

// Named returns a copy of l labelled s. Lambdas that already have a label
// are returned unchanged.
func (l *Lambda) Named(s string) *Lambda {
	if l.Label != "" {
		return l
	}

	n := *l
	n.Label = s

	return &n
}

// String returns the text of l.
func (l *Lambda) String() string {
	if l.Label == "" {
		return anonymous
	}

	return "#<procedure:" + l.Label + ">"
}
