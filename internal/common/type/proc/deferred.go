// Released under an MIT license. See LICENSE.

package proc

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
)

// Deferred asks the engine to evaluate Expression in the caller's scope.
//
// If Then is nil the value of Expression is the value of the call and the
// evaluation happens in tail position. Otherwise the value is passed to Then,
// which may return a value, another Deferred, or an error.
type Deferred struct {
	Expression cell.I
	Then       func(cell.I) (cell.I, error)
}

// Tail creates a Deferred that evaluates c in tail position.
func Tail(c cell.I) *Deferred {
	return &Deferred{Expression: c}
}

// Equal returns true if c is the same deferred evaluation as d.
func (d *Deferred) Equal(c cell.I) bool {
	o, ok := c.(*Deferred)

	return ok && o == d
}

// Name returns the type name for d.
func (d *Deferred) Name() string {
	return "deferred"
}
