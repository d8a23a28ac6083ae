// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/integer"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/failure"
	"github.com/michaelmacinnis/tick/internal/common/type/num"
)

func add(args []cell.I, _ *bindings.T) (cell.I, error) {
	v, err := integers("+", args)
	if err != nil {
		return nil, err
	}

	sum := v[0]
	for _, i := range v[1:] {
		sum += i
	}

	return num.New(sum), nil
}

func div(args []cell.I, _ *bindings.T) (cell.I, error) {
	v, err := integers("/", args)
	if err != nil {
		return nil, err
	}

	if len(v) == 1 {
		if v[0] == 0 {
			return nil, failure.DivideByZero(num.New(1))
		}

		return num.New(1 / v[0]), nil
	}

	quotient := v[0]
	for _, i := range v[1:] {
		if i == 0 {
			return nil, failure.DivideByZero(num.New(quotient))
		}

		quotient /= i
	}

	return num.New(quotient), nil
}

func mul(args []cell.I, _ *bindings.T) (cell.I, error) {
	v, err := integers("*", args)
	if err != nil {
		return nil, err
	}

	product := v[0]
	for _, i := range v[1:] {
		product *= i
	}

	return num.New(product), nil
}

func sub(args []cell.I, _ *bindings.T) (cell.I, error) {
	v, err := integers("-", args)
	if err != nil {
		return nil, err
	}

	if len(v) == 1 {
		return num.New(-v[0]), nil
	}

	difference := v[0]
	for _, i := range v[1:] {
		difference -= i
	}

	return num.New(difference), nil
}

// integers extracts the value of every argument, reporting the first
// argument that is not an integer.
func integers(name string, args []cell.I) ([]int32, error) {
	v := make([]int32, len(args))

	for n, c := range args {
		i, ok := integer.Value(c)
		if !ok {
			return nil, failure.InvalidArgument(name, "number", c)
		}

		v[n] = i
	}

	return v, nil
}
