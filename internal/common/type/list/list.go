// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/type/pair"
)

// Is returns true if c is a proper list. Null is a proper list.
func Is(c cell.I) bool {
	_, ok := Slice(c)

	return ok
}

// Length returns the number of pairs in the chain starting at c.
// An improper tail is not counted.
func Length(c cell.I) int {
	n := 0

	for pair.Is(c) && c != pair.Null {
		n++

		c = pair.Cdr(c)
	}

	return n
}

// New creates a new proper list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Improper(pair.Null, elements...)
}

// Improper creates a list composed of elements and terminated by tail.
func Improper(tail cell.I, elements ...cell.I) cell.I {
	l := tail

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// Reverse reverses the proper list c.
// A non-pair value where a pair is expected will cause a panic.
func Reverse(c cell.I) cell.I {
	reversed := pair.Null

	for c != pair.Null {
		reversed = pair.Cons(pair.Car(c), reversed)

		c = pair.Cdr(c)
	}

	return reversed
}

// Slice returns the elements of the proper list c.
// The second return value is false if c is not a proper list.
func Slice(c cell.I) ([]cell.I, bool) {
	s := []cell.I{}

	for c != pair.Null {
		if !pair.Is(c) {
			return s, false
		}

		s = append(s, pair.Car(c))

		c = pair.Cdr(c)
	}

	return s, true
}
