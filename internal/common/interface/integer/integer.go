// Released under an MIT license. See LICENSE.

// Package integer converts a tick cell to an int32 value, if possible.
package integer

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
)

// I (integer) is anything that has a fixed-width integer value.
type I interface {
	Int() int32
}

// Value returns the int32 value for a cell and true, or zero and false if
// the cell is not an integer.
func Value(c cell.I) (int32, bool) {
	i, ok := c.(I)
	if !ok {
		return 0, false
	}

	return i.Int(), true
}
