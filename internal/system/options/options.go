// Released under an MIT license. See LICENSE.

// Package options parses tick's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by tick -v.
const Version = "tick 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	logfile     string
	quantum     int
	scripts     []string
	trace       bool
	usage       = `tick

Usage:
  tick [-t] [-q N] [--log=FILE] SCRIPT...
  tick [-t] [-q N] [--log=FILE] -c EXPRESSION
  tick [-t] [-q N] [--log=FILE] [-i]
  tick -h
  tick -v

Arguments:
  SCRIPT     Path to a tick script. Scripts are evaluated in order.

Options:
  -c, --command=EXPRESSION  Evaluate the specified expression.
  -i, --interactive         Invert interactive mode.
  -q, --quantum=N           Ticks between checks for interrupts [default: 1024].
  -t, --trace               Log every tick at debug level.
      --log=FILE            Also write log output to FILE.
  -h, --help                Display this help.
  -v, --version             Print tick version.

If tick's stdin is a TTY, and tick was invoked with no scripts or expression,
interactive mode is enabled. Otherwise, interactive mode is disabled.
`
)

// Command returns the expression passed with -c.
func Command() string {
	return command
}

// Interactive returns true if tick should start a REPL.
func Interactive() bool {
	return interactive
}

// Log returns the path passed with --log.
func Log() string {
	return logfile
}

// Parse parses os.Args.
func Parse() {
	ParseArgs(os.Args[1:])
}

// ParseArgs parses argv, which must not include the program name.
func ParseArgs(argv []string) {
	parser := &docopt.Parser{
		HelpHandler: docopt.PrintHelpAndExit,
	}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	logfile, _ = opts.String("--log")
	trace, _ = opts.Bool("--trace")

	quantum, err = opts.Int("--quantum")
	if err != nil || quantum <= 0 {
		quantum = 0
	}

	scripts, _ = opts["SCRIPT"].([]string)

	interactive = len(scripts) == 0 && command == "" &&
		isatty.IsTerminal(os.Stdin.Fd())

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Quantum returns the number of ticks between checks for interrupts.
// Zero means the engine default.
func Quantum() int {
	return quantum
}

// Scripts returns the paths of the scripts to evaluate.
func Scripts() []string {
	return scripts
}

// Trace returns true if every tick should be logged.
func Trace() bool {
	return trace
}
