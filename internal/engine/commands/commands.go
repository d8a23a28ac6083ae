// Released under an MIT license. See LICENSE.

// Package commands provides tick's builtin procedures.
package commands

import (
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/proc"
)

const variadic = -1

// Builtins returns a fresh copy of every builtin procedure.
func Builtins() []*proc.Builtin {
	return []*proc.Builtin{
		// Arithmetic.
		function("+", add, 1, variadic),
		function("-", sub, 1, variadic),
		function("*", mul, 1, variadic),
		function("/", div, 1, variadic),

		// Relational.
		function("=", relational("=", eq), 1, variadic),
		function("<", relational("<", lt), 1, variadic),
		function(">", relational(">", gt), 1, variadic),
		function("<=", relational("<=", le), 1, variadic),
		function(">=", relational(">=", ge), 1, variadic),
		function("eq?", equal, 2, 2),

		// Pairs and lists.
		function("car", car, 1, 1),
		function("cdr", cdr, 1, 1),
		function("cons", cons, 2, 2),
		function("list", makeList, 0, variadic),

		// Predicates.
		function("atom?", isAtom, 1, 1),
		function("not", not, 1, 1),
		function("null?", isNull, 1, 1),
		function("pair?", isPair, 1, 1),
		function("procedure?", isProcedure, 1, 1),

		// Introspection.
		function("apropos", apropos, 1, 1),

		// Syntax.
		syntax("begin", begin, 1, variadic),
		syntax("cond", cond, 0, variadic),
		syntax("define", define, 2, 2),
		syntax("if", when, 2, 3),
		syntax("lambda", lambda, 2, variadic),
		syntax("quote", quote, 1, 1),
	}
}

// Install defines every builtin procedure in the global layer of b.
func Install(b *bindings.T) {
	g := b.Global()

	for _, p := range Builtins() {
		g.Define(p.Label, p)
	}
}

func function(name string, fn proc.Native, min, max int) *proc.Builtin {
	return &proc.Builtin{
		Fn:    fn,
		Label: name,
		Min:   min,
		Max:   max,
		Ticks: 1,
	}
}

func syntax(name string, fn proc.Native, min, max int) *proc.Builtin {
	b := function(name, fn, min, max)
	b.Syntax = true

	return b
}
