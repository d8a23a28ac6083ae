// Released under an MIT license. See LICENSE.

package failure_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/tick/internal/common/type/failure"
	"github.com/michaelmacinnis/tick/internal/common/type/list"
	"github.com/michaelmacinnis/tick/internal/common/type/num"
	"github.com/michaelmacinnis/tick/internal/common/type/sym"
)

func TestMessages(t *testing.T) {
	for _, tc := range []struct {
		err      error
		expected string
	}{
		{failure.UndefinedSymbol("x"), "undefined symbol: x"},
		{failure.NotAProcedure(num.New(1)), "not a procedure: 1"},
		{
			failure.WrongNumberOfArguments("car", 1, 2),
			"car: expected 1 argument, passed 2",
		},
		{
			failure.WrongNumberOfArguments("cons", 2, 0),
			"cons: expected 2 arguments, passed 0",
		},
		{
			failure.WrongNumberOfVariableArguments("+", 1, 0),
			"+: expected at least 1 argument, passed 0",
		},
		{
			failure.InvalidArgument("car", "list", sym.New("a")),
			"car: expected list, got 'a",
		},
		{failure.DivideByZero(num.New(7)), "divide by zero: 7 / 0"},
	} {
		assert.EqualError(t, tc.err, tc.expected)
	}
}

func TestKinds(t *testing.T) {
	err := failure.InvalidArgument("+", "number", list.New())

	assert.ErrorIs(t, err, failure.ErrInvalidArgument)
	assert.NotErrorIs(t, err, failure.ErrDivideByZero)

	wrapped := errors.Join(errors.New("context"), err)
	assert.ErrorIs(t, wrapped, failure.ErrInvalidArgument)
}

func TestEqual(t *testing.T) {
	var f *failure.T

	err := failure.DivideByZero(num.New(3))
	assert.True(t, errors.As(err, &f))

	assert.True(t, f.Equal(failure.DivideByZero(num.New(3))))
	assert.False(t, f.Equal(failure.DivideByZero(num.New(4))))
	assert.False(t, f.Equal(failure.UndefinedSymbol("x")))
	assert.False(t, f.Equal(errors.New("divide by zero")))
}
