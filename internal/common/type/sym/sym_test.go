// Released under an MIT license. See LICENSE.

package sym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/tick/internal/common/type/sym"
)

func TestInterning(t *testing.T) {
	assert.Same(t, sym.New("car"), sym.New("car"))

	long := "a-symbol-longer-than-eight"
	assert.NotSame(t, sym.New(long), sym.New(long))
	assert.True(t, sym.New(long).Equal(sym.New(long)))
}
