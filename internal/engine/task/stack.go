// Released under an MIT license. See LICENSE.

package task

// The stack type holds the frames of tick's stack-based abstract machine.
// The last element is the top of the stack.
type stack struct {
	ops  []Op
	peak int
}

// Depth returns the number of frames on the stack.
func (s *stack) Depth() int {
	return len(s.ops)
}

// Op returns the operation at the top of the stack or nil if it is empty.
func (s *stack) Op() Op {
	if len(s.ops) == 0 {
		return nil
	}

	return s.ops[len(s.ops)-1]
}

// PopOp removes and returns the operation at the top of the stack.
func (s *stack) PopOp() Op {
	n := len(s.ops) - 1

	o := s.ops[n]
	s.ops[n] = nil
	s.ops = s.ops[:n]

	return o
}

// PushOp pushes a new operation onto the stack.
func (s *stack) PushOp(o Op) Op {
	s.ops = append(s.ops, o)

	if len(s.ops) > s.peak {
		s.peak = len(s.ops)
	}

	return o
}

// Clear removes every operation from the stack.
func (s *stack) Clear() {
	for i := range s.ops {
		s.ops[i] = nil
	}

	s.ops = s.ops[:0]
}
