// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/boolean"
	"github.com/michaelmacinnis/tick/internal/common/type/proc"
)

func eq(a, b int32) bool { return a == b }
func ge(a, b int32) bool { return a >= b }
func gt(a, b int32) bool { return a > b }
func le(a, b int32) bool { return a <= b }
func lt(a, b int32) bool { return a < b }

// relational creates a builtin that is true when cmp holds for every
// adjacent pair of arguments.
func relational(name string, cmp func(a, b int32) bool) proc.Native {
	return func(args []cell.I, _ *bindings.T) (cell.I, error) {
		v, err := integers(name, args)
		if err != nil {
			return nil, err
		}

		for n := 1; n < len(v); n++ {
			if !cmp(v[n-1], v[n]) {
				return boolean.False, nil
			}
		}

		return boolean.True, nil
	}
}

func equal(args []cell.I, _ *bindings.T) (cell.I, error) {
	return boolean.Bool(args[0].Equal(args[1])), nil
}
