// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
)

// Op represents a single step of a task. Ops are the frames on a task's stack.
type Op interface {
	Perform(*T)
	String() string
}

// A receiver accepts the value produced by the frame above it.
type receiver interface {
	Receive(cell.I)
}

func opString(o Op) string {
	if o == nil {
		return "<nil>"
	}

	return o.String()
}
