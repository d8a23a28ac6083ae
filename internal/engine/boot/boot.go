// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping tick.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.tick
var script string //nolint:gochecknoglobals

// Script returns the boot script for tick.
func Script() string {
	return script
}
