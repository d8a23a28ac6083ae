// Released under an MIT license. See LICENSE.

package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/literal"
	"github.com/michaelmacinnis/tick/internal/common/type/boolean"
	"github.com/michaelmacinnis/tick/internal/common/type/list"
	"github.com/michaelmacinnis/tick/internal/common/type/num"
	"github.com/michaelmacinnis/tick/internal/common/type/pair"
	"github.com/michaelmacinnis/tick/internal/common/type/sym"
	"github.com/michaelmacinnis/tick/internal/reader"
	"github.com/michaelmacinnis/tick/internal/reader/parser"
)

func TestAtoms(t *testing.T) {
	exprs, err := reader.Parse("test", "42 -7 - -x #t #true #f #false foo")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"42", "-7", "'-", "'-x", "#t", "#t", "#f", "#f", "'foo",
	}, outer(exprs))

	assert.Equal(t, boolean.True, exprs[4])
	assert.Equal(t, boolean.False, exprs[7])
}

func TestLists(t *testing.T) {
	exprs, err := reader.Parse("test", "(1 (2 3) . 4) () 'x '(a . b)")
	require.NoError(t, err)
	require.Len(t, exprs, 4)

	assert.Equal(t,
		list.Improper(num.New(4), num.New(1), list.New(num.New(2), num.New(3))),
		exprs[0],
	)
	assert.Equal(t, pair.Null, exprs[1])
	assert.Equal(t, list.New(sym.New("quote"), sym.New("x")), exprs[2])
	assert.Equal(t,
		list.New(sym.New("quote"), pair.Cons(sym.New("a"), sym.New("b"))),
		exprs[3],
	)
}

func TestComments(t *testing.T) {
	exprs, err := reader.Parse("test", "; leading\n(+ 1 ; inner\n 2) ; trailing")
	require.NoError(t, err)

	assert.Equal(t, []string{"'(+ 1 2)"}, outer(exprs))
}

func TestErrors(t *testing.T) {
	for src, expected := range map[string]error{
		"(":           parser.ErrUnexpectedEOF,
		"(1 2":        parser.ErrUnexpectedEOF,
		"'":           parser.ErrUnexpectedEOF,
		")":           parser.ErrUnexpectedClosingParen,
		"(1))":        parser.ErrUnexpectedClosingParen,
		".":           parser.ErrIllegalUseOfDot,
		"(. 1)":       parser.ErrIllegalUseOfDot,
		"(1 .)":       parser.ErrIllegalUseOfDot,
		"(1 . 2 3)":   parser.ErrIllegalUseOfDot,
		"99999999999": parser.ErrIntegerOutOfRange,
	} {
		_, err := reader.Parse("test", src)
		assert.ErrorIs(t, err, expected, src)
	}
}

func TestErrorLocation(t *testing.T) {
	_, err := reader.Parse("test", "(+ 1 2)\n  )")
	require.Error(t, err)

	assert.Equal(t, "test:2:3: unexpected ')'", err.Error())
}

func TestIncremental(t *testing.T) {
	r := reader.New("test")
	defer r.Close()

	exprs, err := r.Scan("(+ 1")
	require.NoError(t, err)
	assert.Empty(t, exprs)
	assert.True(t, r.Partial())

	exprs, err = r.Scan("2) 3")
	require.NoError(t, err)
	assert.Equal(t, []string{"'(+ 1 2)", "3"}, outer(exprs))
	assert.False(t, r.Partial())

	_, err = r.Scan(")")
	assert.ErrorIs(t, err, parser.ErrUnexpectedClosingParen)

	// The reader recovers after an error.
	exprs, err = r.Scan("'(4 . 5)")
	require.NoError(t, err)
	assert.Equal(t, []string{"'(quote (4 . 5))"}, outer(exprs))

	// Expressions completed before an error are kept. The rest of the line
	// is discarded.
	exprs, err = r.Scan("1 (2) ) 3")
	assert.ErrorIs(t, err, parser.ErrUnexpectedClosingParen)
	assert.Equal(t, []string{"1", "'(2)"}, outer(exprs))

	exprs, err = r.Scan("4")
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, outer(exprs))
}

func TestParseKeepsPrecedingExpressions(t *testing.T) {
	exprs, err := reader.Parse("test", "(+ 1 2)\n(define x 5)\n)\n7")
	assert.ErrorIs(t, err, parser.ErrUnexpectedClosingParen)
	assert.Equal(t, []string{"'(+ 1 2)", "'(define x 5)"}, outer(exprs))
}

func outer(exprs []cell.I) []string {
	s := make([]string, len(exprs))

	for i, c := range exprs {
		s[i] = literal.String(c)
	}

	return s
}
