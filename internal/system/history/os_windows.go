// Released under an MIT license. See LICENSE.

//go:build windows

package history

import (
	"os"
	"path/filepath"
)

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(filepath.Join(os.Getenv("USERPROFILE"), ".tick_history"))
}
