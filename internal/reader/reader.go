// Released under an MIT license. See LICENSE.

// Package reader turns tick source text into expressions.
package reader

import (
	"strings"

	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/struct/token"
	"github.com/michaelmacinnis/tick/internal/reader/lexer"
	"github.com/michaelmacinnis/tick/internal/reader/parser"
)

// Error is a parse error and where it happened.
type Error = parser.Error

// Parse returns every expression in text. If text contains a parse error,
// Parse returns the expressions that precede it along with the error.
func Parse(name, text string) ([]cell.I, error) {
	s := lexer.New(name)
	s.Scan(text)
	s.Scan("\n")

	exprs := []cell.I{}

	err := parser.New(func(c cell.I) {
		exprs = append(exprs, c)
	}, s.Token, s.Location).Parse()

	return exprs, err
}

// T (reader) encapsulates the tick lexer and parser.
// Lines are passed in one at a time and expressions come out as soon as
// they are complete.
type T struct {
	i chan string
	o chan scanned
	p *parser.T
	s *lexer.T

	closed  bool
	name    string
	pending []cell.I
}

type reader = T

type scanned struct {
	exprs []cell.I
	err   error
}

// New creates a new reader for name.
func New(name string) *T {
	r := &T{
		i:    make(chan string),
		o:    make(chan scanned),
		name: name,
	}

	r.reset()

	go r.start()

	return r
}

// Close terminates the reader.
func (r *reader) Close() {
	close(r.i)
}

// Scan reads the line and returns any expressions it completes.
// An incomplete expression is held until a later line completes it.
// If scan encounters an error it returns the expressions completed before
// the error, along with the error, and discards the rest of the line.
func (r *reader) Scan(line string) ([]cell.I, error) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	r.i <- line

	s := <-r.o

	return s.exprs, s.err
}

// Partial returns true if the lines scanned so far end in the middle of an
// expression.
func (r *reader) Partial() bool {
	return r.p.Partial()
}

func (r *reader) item() *token.T {
	t := r.s.Token()

	for t == nil {
		r.o <- scanned{exprs: r.pending}

		r.pending = nil

		if !r.next() {
			r.closed = true

			return nil
		}

		t = r.s.Token()
	}

	return t
}

func (r *reader) next() bool {
	line, ok := <-r.i
	if ok {
		r.s.Scan(line)
	}

	return ok
}

func (r *reader) reset() {
	r.pending = nil
	r.s = lexer.New(r.name)
	r.p = parser.New(func(c cell.I) {
		r.pending = append(r.pending, c)
	}, r.item, r.s.Location)
}

func (r *reader) start() {
	for r.next() {
		err := r.p.Parse()
		if err == nil || r.closed {
			return
		}

		pending := r.pending

		r.reset()

		r.o <- scanned{exprs: pending, err: err}
	}
}
