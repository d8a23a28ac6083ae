// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/truth"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/boolean"
	"github.com/michaelmacinnis/tick/internal/common/type/pair"
	"github.com/michaelmacinnis/tick/internal/common/type/proc"
)

func isAtom(args []cell.I, _ *bindings.T) (cell.I, error) {
	c := args[0]

	return boolean.Bool(!pair.Is(c) || c == pair.Null), nil
}

func isNull(args []cell.I, _ *bindings.T) (cell.I, error) {
	return boolean.Bool(args[0] == pair.Null), nil
}

func isPair(args []cell.I, _ *bindings.T) (cell.I, error) {
	c := args[0]

	return boolean.Bool(pair.Is(c) && c != pair.Null), nil
}

func isProcedure(args []cell.I, _ *bindings.T) (cell.I, error) {
	return boolean.Bool(proc.Is(args[0])), nil
}

func not(args []cell.I, _ *bindings.T) (cell.I, error) {
	return boolean.Bool(!truth.Value(args[0])), nil
}
