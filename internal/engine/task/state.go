// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
)

// Stats counts the work done by a task.
type Stats struct {
	Ticks     int // Steps performed.
	Depth     int // Current number of frames.
	Peak      int // Largest number of frames seen.
	TailCalls int // Calls that reused the slot of the call they returned from.
}

// The type state is a task's terminal outcome.
//
// D
// 0 Task is running. No outcome is set.
// 1 Task is done. Exactly one of result or err is set.
type state struct {
	result cell.I
	err    error

	done bool
}

func (s *state) finish(result cell.I, err error) {
	if s.done {
		panic("outcome already set")
	}

	s.done = true

	if err != nil {
		s.err = err

		return
	}

	s.result = result
}

// Done returns true once a task has an outcome.
func (s *state) Done() bool {
	return s.done
}

// Outcome returns the task's value or error and whether it is done.
func (s *state) Outcome() (cell.I, error, bool) { //nolint:stylecheck
	return s.result, s.err, s.done
}
