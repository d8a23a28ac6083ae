// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the tick language.
package parser

import (
	"errors"

	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/struct/loc"
	"github.com/michaelmacinnis/tick/internal/common/struct/token"
	"github.com/michaelmacinnis/tick/internal/common/type/boolean"
	"github.com/michaelmacinnis/tick/internal/common/type/list"
	"github.com/michaelmacinnis/tick/internal/common/type/num"
	"github.com/michaelmacinnis/tick/internal/common/type/sym"
)

// Parse errors. Use errors.Is to classify an *Error.
var (
	ErrIllegalUseOfDot        = errors.New("illegal use of '.'")
	ErrIntegerOutOfRange      = errors.New("integer out of range")
	ErrUnexpectedClosingParen = errors.New("unexpected ')'")
	ErrUnexpectedEOF          = errors.New("unexpected end of input")
)

// Error is a parse error and where it happened.
type Error struct {
	Err    error
	Source loc.T
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.I)    // Function to call to emit a parsed expression.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.

	busy bool         // An expression has been started but not finished.
	last func() loc.T // Where input ended.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
// The function last reports where the input ended.
func New(emit func(cell.I), item func() *token.T, last func() loc.T) *T {
	return &T{emit: emit, item: item, last: last}
}

// Parse consumes tokens and emits cells until there are no more tokens.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}

		err = e
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.busy = true
		c := p.expression()
		p.busy = false

		p.emit(c)
	}

	return nil
}

// Partial returns true if an expression has been started but not finished.
func (p *T) Partial() bool {
	return p.busy
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) fail(err error, t *token.T) {
	source := p.last()
	if t != nil {
		source = *t.Source()
	}

	panic(&Error{Err: err, Source: source})
}

func (p *T) peek() *token.T {
	if p.ahead == 0 {
		p.token = p.item()
		p.ahead = 1
	}

	return p.token
}

func (p *T) expression() cell.I {
	t := p.peek()
	if t == nil {
		p.fail(ErrUnexpectedEOF, nil)
	}

	p.consume()

	switch {
	case t.Is('('):
		return p.list()
	case t.Is(')'):
		p.fail(ErrUnexpectedClosingParen, t)
	case t.Is('\''):
		return list.New(sym.New("quote"), p.expression())
	case t.Is(token.Dot):
		p.fail(ErrIllegalUseOfDot, t)
	}

	return p.atom(t)
}

func (p *T) list() cell.I {
	elements := []cell.I{}

	for {
		t := p.peek()

		switch {
		case t == nil:
			p.fail(ErrUnexpectedEOF, nil)
		case t.Is(')'):
			p.consume()

			return list.New(elements...)
		case t.Is(token.Dot):
			if len(elements) == 0 {
				p.fail(ErrIllegalUseOfDot, t)
			}

			p.consume()

			if p.peek().Is(')') {
				p.fail(ErrIllegalUseOfDot, t)
			}

			tail := p.expression()

			end := p.peek()
			if end == nil {
				p.fail(ErrUnexpectedEOF, nil)
			} else if !end.Is(')') {
				p.fail(ErrIllegalUseOfDot, t)
			}

			p.consume()

			return list.Improper(tail, elements...)
		default:
			elements = append(elements, p.expression())
		}
	}
}

func (p *T) atom(t *token.T) cell.I {
	s := t.Value()

	if b, ok := boolean.New(s); ok {
		return b
	}

	if integer(s) {
		n, err := num.Parse(s)
		if err != nil {
			p.fail(ErrIntegerOutOfRange, t)
		}

		return n
	}

	return sym.New(s)
}

// integer returns true if s matches -?[0-9]+.
func integer(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
