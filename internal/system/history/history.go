// Released under an MIT license. See LICENSE.

// Package history loads and saves the REPL's line history.
package history

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return fmt.Errorf("reading history: %w", err)
	}

	return f.Close()
}

// Save passes a freshly truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return fmt.Errorf("creating history: %w", err)
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return fmt.Errorf("writing history: %w", err)
	}

	return f.Close()
}
