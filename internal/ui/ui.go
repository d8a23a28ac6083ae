// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the tick language.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/tick/internal/common/interface/cell"
	"github.com/michaelmacinnis/tick/internal/common/interface/literal"
	"github.com/michaelmacinnis/tick/internal/common/struct/bindings"
	"github.com/michaelmacinnis/tick/internal/common/type/void"
	"github.com/michaelmacinnis/tick/internal/reader"
	"github.com/michaelmacinnis/tick/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed
// expressions.
type Evaluator interface {
	Bindings() *bindings.T
	Evaluate(ctx context.Context, c cell.I) (cell.I, error)
}

// ErrEvaluation is returned by Source when an expression fails.
var ErrEvaluation = errors.New("evaluation failed")

// Print writes the outer representation of v to w. Void is not printed.
func Print(w io.Writer, v cell.I) {
	if v == nil || v == void.Void {
		return
	}

	fmt.Fprintln(w, literal.String(v))
}

// Report writes the message for err to w.
func Report(w io.Writer, err error) {
	var perr *reader.Error
	if errors.As(err, &perr) {
		fmt.Fprintln(w, "parse error: "+err.Error())

		return
	}

	fmt.Fprintln(w, "error: "+err.Error())
}

// Source evaluates the expressions in text in order, printing each result
// to w. It stops at the first error, which is reported to ew. Expressions
// before a parse error are evaluated before the parse error is reported.
func Source(e Evaluator, name, text string, w, ew io.Writer) error {
	exprs, perr := reader.Parse(name, text)

	for _, c := range exprs {
		v, err := evaluate(e, c)
		if err != nil {
			Report(ew, err)

			return fmt.Errorf("%w: %s", ErrEvaluation, name)
		}

		Print(w, v)
	}

	if perr != nil {
		Report(ew, perr)

		return perr
	}

	return nil
}

// Run launches the REPL which sends expressions to the Evaluator.
func Run(e Evaluator) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e.Bindings()))

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}

	s := newSession(e, os.Stdout)
	defer s.close()

	for {
		prompt := "> "
		if s.partial() {
			prompt = "... "
		}

		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			// Start over, discarding any partial expression.
			s.restart()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stdout)

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		s.line(line)
	}
}

// session holds the reader for a sequence of REPL lines.
type session struct {
	e Evaluator
	r *reader.T
	w io.Writer
}

func newSession(e Evaluator, w io.Writer) *session {
	return &session{e: e, r: reader.New("tick"), w: w}
}

func (s *session) close() {
	s.r.Close()
}

// line evaluates each expression that text completes. An evaluation error
// ends the line and discards anything after it, including a partial
// expression. A parse error is reported after the expressions that
// precede it are evaluated.
func (s *session) line(text string) {
	exprs, perr := s.r.Scan(text)

	for _, c := range exprs {
		v, err := evaluate(s.e, c)
		if err != nil {
			Report(s.w, err)

			if perr == nil {
				s.restart()
			}

			return
		}

		Print(s.w, v)
	}

	if perr != nil {
		Report(s.w, perr)
	}
}

func (s *session) partial() bool {
	return s.r.Partial()
}

func (s *session) restart() {
	s.r.Close()
	s.r = reader.New("tick")
}

func completer(b *bindings.T) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexAny(head, " \t()'") + 1

		word := head[start:]
		head = head[:start]

		for _, name := range b.Global().Names() {
			if ok, err := adapted.Match(word+"*", name); err == nil && ok {
				completions = append(completions, name)
			}
		}

		return head, completions, tail
	}
}

// evaluate evaluates c, abandoning the evaluation if interrupted.
func evaluate(e Evaluator, c cell.I) (cell.I, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return e.Evaluate(ctx, c)
}
