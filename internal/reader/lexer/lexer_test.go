// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/tick/internal/common/struct/loc"
	"github.com/michaelmacinnis/tick/internal/common/struct/token"
)

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("; (ignored)\nx ; trailing\n",
		h.newline(),
		h.symbol("x"),
		h.space(1),
		h.newline(),
		nil,
	)
}

func TestDottedPair(t *testing.T) {
	h := setup(t, "DottedPair")

	h.scan("(a . b)\n",
		h.literal("("),
		h.symbol("a"),
		h.space(1),
		h.dot(),
		h.space(1),
		h.symbol("b"),
		h.literal(")"),
		h.newline(),
		nil,
	)
}

func TestDotInSymbol(t *testing.T) {
	h := setup(t, "DotInSymbol")

	h.scan("a.b ...\n",
		h.symbol("a.b"),
		h.space(1),
		h.symbol("..."),
		h.newline(),
		nil,
	)
}

func TestMultipleLines(t *testing.T) {
	h := setup(t, "MultipleLines")

	h.scan("(define x\n  42)\n",
		h.literal("("),
		h.symbol("define"),
		h.space(1),
		h.symbol("x"),
		h.newline(),
		h.space(2),
		h.symbol("42"),
		h.literal(")"),
		h.newline(),
		nil,
	)
}

func TestQuote(t *testing.T) {
	h := setup(t, "Quote")

	h.scan("'x '(1)\n",
		h.literal("'"),
		h.symbol("x"),
		h.space(1),
		h.literal("'"),
		h.literal("("),
		h.symbol("1"),
		h.literal(")"),
		h.newline(),
		nil,
	)
}

func TestSplitSymbol(t *testing.T) {
	h := setup(t, "SplitSymbol")

	// A symbol is not complete until a delimiter is seen.
	h.scan("car", nil)
	h.scan("dr)\n",
		h.symbol("cardr"),
		h.literal(")"),
		h.newline(),
		nil,
	)
}

func TestLocation(t *testing.T) {
	l := New("Location")

	l.Scan("(a\n  b")

	for l.Token() != nil {
	}

	if s := l.Location(); s.Line != 2 || s.Char != 4 {
		t.Fatalf("Expected Location:2:4; got %s", s.String())
	}
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New(token.Error, "", loc.T{}) //nolint:gochecknoglobals

func setup(t *testing.T, label string) *harness {
	return &harness{
		index: 1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == e:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) dot() *token.T {
	return h.other(token.Dot, ".")
}

func (h *harness) literal(s string) *token.T {
	return h.other(token.Class(s[0]), s)
}

func (h *harness) newline() *token.T {
	h.index = 1
	h.source.Line++

	return skip
}

func (h *harness) other(id token.Class, s string) *token.T {
	h.source.Char = h.index
	h.index += len(s)

	return token.New(id, s, h.source)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.index += n

	return skip
}

func (h *harness) symbol(s string) *token.T {
	return h.other(token.Symbol, s)
}
