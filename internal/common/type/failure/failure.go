// Released under an MIT license. See LICENSE.

// Package failure provides the errors that terminate an evaluation.
package failure

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/tick/internal/common"
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/literal"
)

// Kind sentinels. Use errors.Is to classify a failure.
var (
	ErrUndefinedSymbol                = errors.New("undefined symbol")
	ErrNotAProcedure                  = errors.New("not a procedure")
	ErrWrongNumberOfArguments         = errors.New("wrong number of arguments")
	ErrWrongNumberOfVariableArguments = errors.New("wrong number of variable arguments")
	ErrInvalidArgument                = errors.New("invalid argument")
	ErrDivideByZero                   = errors.New("divide by zero")
)

// T (failure) is an evaluation error.
type T struct {
	kind error

	Procedure string // Name of the procedure reporting the failure, if any.
	Symbol    string // Undefined symbol name.
	Expected  string // Expected count or description.
	Actual    cell.I // Offending value, if any.
	Count     int    // Actual number of arguments.
}

type failure = T

// UndefinedSymbol reports that name is not bound in any layer.
func UndefinedSymbol(name string) error {
	return &failure{kind: ErrUndefinedSymbol, Symbol: name}
}

// NotAProcedure reports that c appeared in call position.
func NotAProcedure(c cell.I) error {
	return &failure{kind: ErrNotAProcedure, Actual: c}
}

// WrongNumberOfArguments reports a fixed-arity mismatch.
func WrongNumberOfArguments(proc string, expected, actual int) error {
	return &failure{
		kind:      ErrWrongNumberOfArguments,
		Procedure: proc,
		Expected:  fmt.Sprint(expected),
		Count:     actual,
	}
}

// WrongNumberOfVariableArguments reports a variable-arity underflow.
func WrongNumberOfVariableArguments(proc string, min, actual int) error {
	return &failure{
		kind:      ErrWrongNumberOfVariableArguments,
		Procedure: proc,
		Expected:  fmt.Sprint(min),
		Count:     actual,
	}
}

// InvalidArgument reports that proc expected a value described by expected.
func InvalidArgument(proc, expected string, actual cell.I) error {
	return &failure{
		kind:      ErrInvalidArgument,
		Procedure: proc,
		Expected:  expected,
		Actual:    actual,
	}
}

// DivideByZero reports a division of dividend by zero.
func DivideByZero(dividend cell.I) error {
	return &failure{kind: ErrDivideByZero, Actual: dividend}
}

// Equal returns true if err is a failure with the same kind and details as f.
func (f *failure) Equal(err error) bool {
	var o *failure
	if !errors.As(err, &o) {
		return false
	}

	if f.kind != o.kind || f.Procedure != o.Procedure ||
		f.Symbol != o.Symbol || f.Expected != o.Expected ||
		f.Count != o.Count {
		return false
	}

	if f.Actual == nil || o.Actual == nil {
		return f.Actual == o.Actual
	}

	return f.Actual.Equal(o.Actual)
}

// Error returns the human-readable message for f.
func (f *failure) Error() string {
	switch f.kind {
	case ErrUndefinedSymbol:
		return "undefined symbol: " + f.Symbol
	case ErrNotAProcedure:
		return "not a procedure: " + literal.String(f.Actual)
	case ErrWrongNumberOfArguments:
		return fmt.Sprintf(
			"%s: expected %s, passed %d",
			f.Procedure, count(f.Expected), f.Count,
		)
	case ErrWrongNumberOfVariableArguments:
		return fmt.Sprintf(
			"%s: expected at least %s, passed %d",
			f.Procedure, count(f.Expected), f.Count,
		)
	case ErrInvalidArgument:
		return fmt.Sprintf(
			"%s: expected %s, got %s",
			f.Procedure, f.Expected, literal.String(f.Actual),
		)
	case ErrDivideByZero:
		return "divide by zero: " + common.String(f.Actual) + " / 0"
	}

	return f.kind.Error()
}

// Is allows errors.Is to match f against its kind sentinel.
func (f *failure) Is(target error) bool {
	return f.kind == target
}

// Unwrap returns the kind sentinel for f.
func (f *failure) Unwrap() error {
	return f.kind
}

func count(n string) string {
	if n == "1" {
		return n + " argument"
	}

	return n + " arguments"
}
