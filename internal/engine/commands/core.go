// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/tick/internal/common"
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/failure"
	"github.com/michaelmacinnis/tick/internal/common/type/list"
	"github.com/michaelmacinnis/tick/internal/common/type/pair"
	"github.com/michaelmacinnis/tick/internal/common/type/proc"
	"github.com/michaelmacinnis/tick/internal/common/type/sym"
	"github.com/michaelmacinnis/tick/internal/common/type/void"
)

// apropos returns the sorted list of global names matching a glob pattern.
func apropos(args []cell.I, b *bindings.T) (cell.I, error) {
	if !sym.Is(args[0]) {
		return nil, failure.InvalidArgument("apropos", "symbol", args[0])
	}

	pattern := common.String(args[0])

	matches := []cell.I{}

	for _, name := range b.Global().Names() {
		ok, err := adapted.Match(pattern, name)
		if err != nil {
			return nil, failure.InvalidArgument("apropos", "pattern", args[0])
		}

		if ok {
			matches = append(matches, sym.New(name))
		}
	}

	return list.New(matches...), nil
}

func begin(args []cell.I, _ *bindings.T) (cell.I, error) {
	return sequence(args), nil
}

func define(args []cell.I, b *bindings.T) (cell.I, error) {
	if !sym.Is(args[0]) {
		return nil, failure.InvalidArgument("define", "symbol", args[0])
	}

	name := common.String(args[0])

	return &proc.Deferred{
		Expression: args[1],
		Then: func(v cell.I) (cell.I, error) {
			if l, ok := v.(*proc.Lambda); ok {
				v = l.Named(name)
			}

			b.Define(name, v)

			return void.Void, nil
		},
	}, nil
}

func lambda(args []cell.I, b *bindings.T) (cell.I, error) {
	formals := args[0]

	l := &proc.Lambda{
		Body:  args[1:],
		Scope: b.Scope(),
	}

	if sym.Is(formals) {
		l.Rest = common.String(formals)

		return l, nil
	}

	if !pair.Is(formals) {
		return nil, failure.InvalidArgument("lambda", "list", formals)
	}

	for formals != pair.Null {
		if !pair.Is(formals) {
			if !sym.Is(formals) {
				return nil, failure.InvalidArgument("lambda", "symbol", formals)
			}

			l.Rest = common.String(formals)

			break
		}

		p := pair.Car(formals)
		if !sym.Is(p) {
			return nil, failure.InvalidArgument("lambda", "list of symbols", formals)
		}

		l.Params = append(l.Params, common.String(p))

		formals = pair.Cdr(formals)
	}

	return l, nil
}

func quote(args []cell.I, _ *bindings.T) (cell.I, error) {
	return args[0], nil
}

// sequence evaluates each expression in exprs in turn. The last is
// evaluated in tail position.
func sequence(exprs []cell.I) cell.I {
	if len(exprs) == 1 {
		return proc.Tail(exprs[0])
	}

	return &proc.Deferred{
		Expression: exprs[0],
		Then: func(cell.I) (cell.I, error) {
			return sequence(exprs[1:]), nil
		},
	}
}
