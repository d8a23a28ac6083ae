// Released under an MIT license. See LICENSE.

// Package pair provides tick's cons cell type.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/tick/internal/common"
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/literal"
)

const name = "pair"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell. Pairs are never modified after construction.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return cell.I(p) == c
	}

	o, ok := c.(*pair)
	if !ok {
		return false
	}

	return p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// Literal returns the literal representation of the pair p.
// The quote keeps the reader from treating the list as a call.
func (p *pair) Literal() string {
	return "'" + p.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "null"
	}

	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	if p == Null {
		return "()"
	}

	var b strings.Builder

	b.WriteByte('(')

	var c cell.I = p
	for {
		b.WriteString(common.String(Car(c)))

		c = Cdr(c)
		if c == Null {
			break
		}

		if !Is(c) {
			b.WriteString(" . ")
			b.WriteString(common.String(c))

			break
		}

		b.WriteByte(' ')
	}

	b.WriteByte(')')

	return b.String()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair. The empty list is a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// To returns a *pair if c is a pair; Otherwise it panics.
func To(c cell.I) *pair {
	if p, ok := c.(*pair); ok {
		return p
	}

	panic(c.Name() + " is not a pair")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
