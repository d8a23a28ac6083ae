// Released under an MIT license. See LICENSE.

package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/tick/internal/system/options"
)

func TestCommand(t *testing.T) {
	options.ParseArgs([]string{"-q", "64", "-c", "(+ 1 2)"})

	assert.Equal(t, "(+ 1 2)", options.Command())
	assert.Equal(t, 64, options.Quantum())
	assert.Empty(t, options.Scripts())
	assert.False(t, options.Interactive())
	assert.False(t, options.Trace())
}

func TestScripts(t *testing.T) {
	options.ParseArgs([]string{"-t", "--log=tick.log", "a.tick", "b.tick"})

	assert.Equal(t, []string{"a.tick", "b.tick"}, options.Scripts())
	assert.Equal(t, "tick.log", options.Log())
	assert.Equal(t, 1024, options.Quantum())
	assert.Empty(t, options.Command())
	assert.False(t, options.Interactive())
	assert.True(t, options.Trace())
}

func TestBadQuantum(t *testing.T) {
	options.ParseArgs([]string{"-q", "none", "-c", "1"})

	assert.Equal(t, 0, options.Quantum())
}
