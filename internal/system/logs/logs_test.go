// Released under an MIT license. See LICENSE.

package logs

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalAndFile(t *testing.T) {
	if service() {
		t.Skip("terminal output is disabled under systemd")
	}

	var buf bytes.Buffer

	file := filepath.Join(t.TempDir(), "tick.log")

	l, closer, err := New(Config{
		File:   file,
		Level:  slog.LevelDebug,
		Writer: &buf,
	})
	require.NoError(t, err)

	l.Debug("tick", "depth", 3)
	require.NoError(t, closer())

	assert.Contains(t, buf.String(), "msg=tick depth=3")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), "msg=tick depth=3")
}

func TestLevel(t *testing.T) {
	var buf bytes.Buffer

	l, _, err := New(Config{Level: Level(false), Writer: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	l.Debug("hidden")

	assert.Empty(t, buf.String())
	assert.Equal(t, slog.LevelDebug, Level(true))
}

func TestBadFile(t *testing.T) {
	_, _, err := New(Config{File: filepath.Join(t.TempDir(), "missing", "tick.log")})
	assert.Error(t, err)
}

func TestJournalKey(t *testing.T) {
	assert.Equal(t, "TAIL_CALLS", journalKey("tail-calls"))
	assert.Equal(t, "PEAK2", journalKey("peak2"))
}
