// Released under an MIT license. See LICENSE.

// Package literal defines the interface for tick types that can be expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal. Reading the
// literal representation of a value produces an equal value.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
// Cells without a literal representation, like procedures, are returned in
// their display form.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		if s, ok := c.(interface{ String() string }); ok {
			return s.String()
		}

		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
