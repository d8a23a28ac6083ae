// Released under an MIT license. See LICENSE.

// Package validate checks argument lists before a call is committed.
package validate

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/type/failure"
	"github.com/michaelmacinnis/tick/internal/common/type/list"
)

// Arguments checks that actual is a proper list with a length acceptable to
// the procedure named name. A negative max means there is no maximum.
func Arguments(name string, actual cell.I, min, max int) ([]cell.I, error) {
	args, ok := list.Slice(actual)
	if !ok {
		return nil, failure.InvalidArgument(name, "list", actual)
	}

	return args, Count(name, len(args), min, max)
}

// Count checks that n arguments are acceptable to the procedure named name.
func Count(name string, n, min, max int) error {
	switch {
	case min == max && n != min:
		return failure.WrongNumberOfArguments(name, min, n)
	case n < min:
		return failure.WrongNumberOfVariableArguments(name, min, n)
	case max >= 0 && n > max:
		return failure.WrongNumberOfArguments(name, max, n)
	}

	return nil
}
