// Released under an MIT license. See LICENSE.

// Package num provides tick's fixed-width integer type.
package num

import (
	"strconv"

	"github.com/michaelmacinnis/tick/internal/common"
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/integer"
	"github.com/michaelmacinnis/tick/internal/common/interface/literal"
)

const name = "integer"

// T (num) wraps Go's int32 type. Arithmetic on nums wraps on overflow.
type T int32

type num = T

// New creates a num cell from the int32 i.
func New(i int32) cell.I {
	n := num(i)

	return &n
}

// Parse creates a num cell from its decimal text.
func Parse(s string) (cell.I, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, err
	}

	return New(int32(i)), nil
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && *n == *To(c)
}

// Int returns the value of the num n as an int32.
func (n *num) Int() int32 {
	return int32(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return strconv.FormatInt(int64(*n), 10)
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *num if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if n, ok := c.(*num); ok {
		return n
	}

	panic(c.Name() + " is not an integer")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has an integer value.
	_ = integer.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
