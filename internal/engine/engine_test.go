// Released under an MIT license. See LICENSE.

package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/literal"
	"github.com/michaelmacinnis/tick/internal/engine"
	"github.com/michaelmacinnis/tick/internal/reader"
)

func eval(t *testing.T, e *engine.T, src string) (cell.I, error) {
	t.Helper()

	exprs, err := reader.Parse("test", src)
	require.NoError(t, err)
	require.Len(t, exprs, 1)

	return e.Evaluate(context.Background(), exprs[0])
}

func outer(t *testing.T, e *engine.T, src string) string {
	t.Helper()

	v, err := eval(t, e, src)
	require.NoError(t, err, src)

	return literal.String(v)
}

func TestPrelude(t *testing.T) {
	e, err := engine.New()
	require.NoError(t, err)

	for src, expected := range map[string]string{
		"(abs -4)":                 "4",
		"(abs 4)":                  "4",
		"(length '())":             "0",
		"(length '(1 2 3))":        "3",
		"(reverse '(1 2 3))":       "'(3 2 1)",
		"(append '(1 2) '(3 4))":   "'(1 2 3 4)",
		"(map abs '(-1 2 -3))":     "'(1 2 3)",
		"(map (lambda (x) x) '())": "'()",
		"(apropos 'c?r)":           "'(car cdr)",
		"(apropos 'nothing-here*)": "'()",
	} {
		assert.Equal(t, expected, outer(t, e, src), src)
	}

	assert.Zero(t, e.Bindings().Depth())
}

func TestRoundTrip(t *testing.T) {
	e, err := engine.New()
	require.NoError(t, err)

	for _, src := range []string{
		"42", "-7", "#t", "#f", "'foo", "'(1 2 3)", "'(1 . 2)", "'()",
		"'(a (b c) . d)",
	} {
		assert.Equal(t, src, outer(t, e, src))
	}
}

func TestLongLoop(t *testing.T) {
	e, err := engine.New(engine.WithQuantum(64))
	require.NoError(t, err)

	_, err = eval(t, e, "(define count (lambda (n) (if (= n 0) 'done (count (- n 1)))))")
	require.NoError(t, err)

	assert.Equal(t, "'done", outer(t, e, "(count 100000)"))

	_, err = eval(t, e, "(define build (lambda (n acc) (if (= n 0) acc (build (- n 1) (cons n acc)))))")
	require.NoError(t, err)

	assert.Equal(t, "10000", outer(t, e, "(length (reverse (build 10000 '())))"))
}

func TestCancel(t *testing.T) {
	e, err := engine.New()
	require.NoError(t, err)

	_, err = eval(t, e, "(define forever (lambda () (forever)))")
	require.NoError(t, err)

	exprs, err := reader.Parse("test", "(+ 1 (forever))")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := e.Evaluate(ctx, exprs[0])
	assert.Nil(t, v)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, e.Bindings().Depth())

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = e.Evaluate(ctx, exprs[0])
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, e.Bindings().Depth())

	// The engine is still usable.
	assert.Equal(t, "3", outer(t, e, "(+ 1 2)"))
}
