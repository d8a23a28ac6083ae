// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all tick values.
package cell

// I (cell) is the basic unit of storage in tick. Every expression the reader
// produces and every value the engine computes is a cell.
type I interface {
	Equal(c I) bool
	Name() string
}
