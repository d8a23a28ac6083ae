// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/truth"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/failure"
	"github.com/michaelmacinnis/tick/internal/common/type/list"
	"github.com/michaelmacinnis/tick/internal/common/type/pair"
	"github.com/michaelmacinnis/tick/internal/common/type/proc"
	"github.com/michaelmacinnis/tick/internal/common/type/sym"
	"github.com/michaelmacinnis/tick/internal/common/type/void"
)

//nolint:gochecknoglobals
var (
	arrow = sym.New("=>")
	elseq = sym.New("else")
)

// cond validates every clause before evaluating any test.
func cond(args []cell.I, _ *bindings.T) (cell.I, error) {
	clauses := make([][]cell.I, len(args))

	for n, c := range args {
		clause, ok := list.Slice(c)
		if !ok {
			return nil, failure.InvalidArgument("cond", "list", c)
		}

		if len(clause) == 0 {
			return nil, failure.InvalidArgument(
				"cond", "clause is not a test-value pair", pair.Null,
			)
		}

		clauses[n] = clause
	}

	var otherwise []cell.I

	if n := len(clauses) - 1; n >= 0 && clauses[n][0].Equal(elseq) {
		if len(clauses[n]) < 2 {
			return nil, failure.InvalidArgument(
				"cond", "missing expressions in else clause", args[n],
			)
		}

		otherwise = clauses[n][1:]
		clauses = clauses[:n]
	}

	return clause(clauses, otherwise), nil
}

func clause(clauses [][]cell.I, otherwise []cell.I) cell.I {
	if len(clauses) == 0 {
		if otherwise == nil {
			return void.Void
		}

		return sequence(otherwise)
	}

	c := clauses[0]

	return &proc.Deferred{
		Expression: c[0],
		Then: func(v cell.I) (cell.I, error) {
			if !truth.Value(v) {
				return clause(clauses[1:], otherwise), nil
			}

			body := c[1:]
			if len(body) > 0 && body[0].Equal(arrow) {
				body = body[1:]
			}

			if len(body) == 0 {
				return v, nil
			}

			return sequence(body), nil
		},
	}
}

func when(args []cell.I, _ *bindings.T) (cell.I, error) {
	return &proc.Deferred{
		Expression: args[0],
		Then: func(v cell.I) (cell.I, error) {
			if truth.Value(v) {
				return proc.Tail(args[1]), nil
			}

			if len(args) < 3 {
				return void.Void, nil
			}

			return proc.Tail(args[2]), nil
		},
	}, nil
}
