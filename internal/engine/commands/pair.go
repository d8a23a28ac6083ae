// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/failure"
	"github.com/michaelmacinnis/tick/internal/common/type/list"
	"github.com/michaelmacinnis/tick/internal/common/type/pair"
)

func car(args []cell.I, _ *bindings.T) (cell.I, error) {
	p, err := nonEmpty("car", args[0])
	if err != nil {
		return nil, err
	}

	return pair.Car(p), nil
}

func cdr(args []cell.I, _ *bindings.T) (cell.I, error) {
	p, err := nonEmpty("cdr", args[0])
	if err != nil {
		return nil, err
	}

	return pair.Cdr(p), nil
}

func cons(args []cell.I, _ *bindings.T) (cell.I, error) {
	return pair.Cons(args[0], args[1]), nil
}

func makeList(args []cell.I, _ *bindings.T) (cell.I, error) {
	return list.New(args...), nil
}

func nonEmpty(name string, c cell.I) (cell.I, error) {
	if !pair.Is(c) || c == pair.Null {
		return nil, failure.InvalidArgument(name, "list", c)
	}

	return c, nil
}
