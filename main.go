// Released under an MIT license. See LICENSE.

/*
Tick is a small Lisp with an interruptible evaluator.

Expressions are evaluated by a machine that advances one step at a time,
with an explicit stack of frames instead of recursion. Proper tail calls run
in constant space:

	(define count (lambda (n) (if (= n 0) 'done (count (- n 1)))))
	(count 100000)

Tick is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/michaelmacinnis/tick/internal/engine"
	"github.com/michaelmacinnis/tick/internal/system/logs"
	"github.com/michaelmacinnis/tick/internal/system/options"
	"github.com/michaelmacinnis/tick/internal/ui"
)

func main() {
	options.Parse()

	os.Exit(run())
}

func run() int {
	log, closer, err := logs.New(logs.Config{
		File:    options.Log(),
		Journal: true,
		Level:   logs.Level(options.Trace()),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		return 1
	}
	defer closer() //nolint:errcheck

	slog.SetDefault(log)

	e, err := engine.New(
		engine.WithLogger(log),
		engine.WithQuantum(options.Quantum()),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		return 1
	}

	switch {
	case options.Command() != "":
		return status(ui.Source(e, "-c", options.Command(), os.Stdout, os.Stderr))

	case len(options.Scripts()) > 0:
		code := 0

		for _, path := range options.Scripts() {
			text, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())

				code = 1

				continue
			}

			if status(ui.Source(e, path, string(text), os.Stdout, os.Stderr)) != 0 {
				code = 1
			}
		}

		return code

	case options.Interactive():
		if err := ui.Run(e); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())

			return 1
		}

		return 0
	}

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		return 1
	}

	return status(ui.Source(e, "stdin", string(text), os.Stdout, os.Stderr))
}

func status(err error) int {
	if err != nil {
		return 1
	}

	return 0
}
