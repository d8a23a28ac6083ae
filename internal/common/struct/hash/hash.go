// Released under an MIT license. See LICENSE.

// Package hash provides tick's name to value mapping type.
package hash

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
)

// T (hash) maps names to values.
type T struct {
	sync.RWMutex
	m map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Get retrieves the value associated with the name k in the hash h.
func (h *hash) Get(k string) (cell.I, bool) {
	if h == nil {
		return nil, false
	}

	h.RLock()
	defer h.RUnlock()

	v, ok := h.m[k]

	return v, ok
}

// Names returns the sorted names in the hash h.
func (h *hash) Names() []string {
	h.RLock()
	defer h.RUnlock()

	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.Lock()
	defer h.Unlock()

	h.m[k] = v
}
