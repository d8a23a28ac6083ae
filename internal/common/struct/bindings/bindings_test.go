// Released under an MIT license. See LICENSE.

package bindings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/env"
	"github.com/michaelmacinnis/tick/internal/common/type/failure"
	"github.com/michaelmacinnis/tick/internal/common/type/num"
)

func TestDefineWithoutLocals(t *testing.T) {
	b := bindings.New()

	b.Define("x", num.New(1))

	v, err := b.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, num.New(1), v)

	v, ok := b.Global().Get("x")
	require.True(t, ok)
	assert.Equal(t, num.New(1), v)
}

func TestLayers(t *testing.T) {
	b := bindings.New()

	b.Define("x", num.New(1))
	b.Define("y", num.New(2))

	outer := env.New(nil)
	outer.Define("y", num.New(20))

	inner := env.New(outer)
	b.Push(inner)

	b.Define("z", num.New(300))
	assert.Equal(t, 1, b.Depth())

	for name, expected := range map[string]int32{
		"x": 1, "y": 20, "z": 300,
	} {
		v, err := b.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, num.New(expected), v, name)
	}

	_, ok := b.Global().Get("z")
	assert.False(t, ok)

	assert.Same(t, inner, b.Pop())

	_, err := b.Lookup("z")
	assert.ErrorIs(t, err, failure.ErrUndefinedSymbol)
	assert.EqualError(t, err, "undefined symbol: z")
}

func TestShareAndUnwind(t *testing.T) {
	b := bindings.New()
	s := b.Share()

	b.Define("x", num.New(1))

	v, err := s.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, num.New(1), v)

	for i := 0; i < 5; i++ {
		b.Push(env.New(nil))
	}

	assert.Equal(t, 0, s.Depth())

	b.Unwind(2)
	assert.Equal(t, 2, b.Depth())

	b.Unwind(0)
	assert.Nil(t, b.Scope())
	assert.Panics(t, func() { b.Pop() })
}
