// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the tick language.
//
// The tick lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/tick/internal/common/struct/loc"
	"github.com/michaelmacinnis/tick/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes   string   // Buffer being scanned.
	first   int      // Index of the current token's first byte.
	index   int      // Index of the current byte.
	queue   []string // Buffers waiting to be scanned.
	runes   int      // Runes scanned on the current line.
	starved bool     // The current action needs more input.
	state   action   // Current action.

	source loc.T

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Location returns the lexer's current position.
func (l *T) Location() loc.T {
	s := l.source
	s.Char = l.runes

	return s
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()

		if len(l.tokens) > 0 {
			t := l.tokens[0]
			l.tokens[0] = nil
			l.tokens = l.tokens[1:]

			return t
		}

		if l.starved {
			return nil
		}

		state := l.state(l)
		if state != nil {
			l.state = state
		} else {
			l.starved = true
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else if w > 0 {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	bytes := strings.Join(l.queue, "")

	if l.first < len(l.bytes) {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.starved = false
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ', '"', '\'', '(', ')', ';':
			s := l.Text()
			if s == "." {
				l.emit(token.Dot, s)
			} else {
				l.emit(token.Symbol, s)
			}

			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ':
			l.accept(r, w)
			l.skip()
		case '(', ')', '\'':
			l.accept(r, w)
			l.emit(r, l.Text())
		case ';':
			l.accept(r, w)

			return skipComment
		default:
			return scanSymbol
		}
	}
}
