// Released under an MIT license. See LICENSE.

package history

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)

	called := false

	require.NoError(t, Load(func(io.Reader) (int, error) {
		called = true

		return 0, nil
	}))
	assert.False(t, called, "Load should ignore a missing history file")

	require.NoError(t, Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "(+ 1 2)\n")
	}))

	var buf bytes.Buffer

	require.NoError(t, Load(func(r io.Reader) (int, error) {
		n, err := buf.ReadFrom(r)

		return int(n), err
	}))
	assert.Equal(t, "(+ 1 2)\n", buf.String())
}

func TestReadError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)

	require.NoError(t, Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "x\n")
	}))

	err := Load(func(io.Reader) (int, error) {
		return 0, io.ErrUnexpectedEOF
	})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
