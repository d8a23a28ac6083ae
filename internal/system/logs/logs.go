// Released under an MIT license. See LICENSE.

// Package logs builds tick's structured logger.
//
// Records fan out to every configured handler: a text handler on the
// terminal (unless tick is running as a systemd service), an optional text
// handler on a log file, and the systemd journal when it is available.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Config controls which handlers New creates.
type Config struct {
	File    string       // Path of an additional log file. Empty for none.
	Journal bool         // Log to the systemd journal if it is available.
	Level   slog.Leveler // Minimum level for terminal and file output.
	Writer  io.Writer    // Terminal output. Defaults to os.Stderr.
}

// New creates a logger. The returned function closes any log file.
func New(cfg Config) (*slog.Logger, func() error, error) {
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handlers []slog.Handler

	if !service() {
		handlers = append(handlers, slog.NewTextHandler(cfg.Writer, opts))
	}

	closer := func() error { return nil }

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}

		handlers = append(handlers, slog.NewTextHandler(f, opts))
		closer = f.Close
	}

	if cfg.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: journalKey,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				a.Key = journalKey(a.Key)

				return a
			},
		})
		if err == nil {
			handlers = append(handlers, journal)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Level returns the level to log at given whether tracing is enabled.
func Level(trace bool) slog.Level {
	if trace {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}

func journalKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}

		return '_'
	}, strings.ToUpper(s))
}

// service returns true if tick is running as a systemd service.
func service() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}

	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}

	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
