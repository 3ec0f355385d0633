package diag

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcs242611/vigenere-cipher/crack"
	"github.com/jcs242611/vigenere-cipher/freq"
	"github.com/jcs242611/vigenere-cipher/internal/config"
	"github.com/jcs242611/vigenere-cipher/kasiski"
	"github.com/jcs242611/vigenere-cipher/vigenere"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "info", "json")
	l.Debug("hidden")
	l.Info("shown", "comp", "cli", "count", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "cli", rec["comp"])
	assert.Equal(t, 3.0, rec["count"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "warn", "text").Warn("careful", "comp", "io")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "comp=io")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.Error("nowhere")
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "debug", "json")

	tm := Start(l, "cli", "reading input", "path", "-")
	tm.Finish("input read", 42)
	tm.Fail(fmt.Errorf("analyze: %w", freq.ErrInsufficientData))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var start, finish, fail map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &start))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &finish))
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &fail))

	assert.Equal(t, "start", start["stage"])
	assert.Equal(t, "-", start["path"])
	assert.Equal(t, "finish", finish["stage"])
	assert.Equal(t, 42.0, finish["count"])
	assert.Contains(t, finish, "dur_ms")
	assert.Equal(t, "error", fail["stage"])
	assert.Equal(t, "ERROR", fail["level"])
	assert.Equal(t, string(CodeInsufficientData), fail["code"])
}

func TestTimerNil(t *testing.T) {
	var tm *Timer
	tm.Finish("ignored", 0)
	tm.Fail(errors.New("ignored"))
}

func TestClassify(t *testing.T) {
	_, openErr := os.Open("/does/not/exist")
	require.Error(t, openErr)

	tests := []struct {
		err  error
		want Code
		exit int
	}{
		{nil, CodeUnknown, 1},
		{errors.New("boom"), CodeUnknown, 1},
		{freq.ErrInsufficientData, CodeInsufficientData, 3},
		{fmt.Errorf("crack: %w", freq.ErrInsufficientData), CodeInsufficientData, 3},
		{fmt.Errorf("estimate: %w", kasiski.ErrEmptyKeySpace), CodeEmptyKeySpace, 3},
		{vigenere.ErrInvalidKey, CodeInvalidInput, 2},
		{fmt.Errorf("%w: breadth", crack.ErrInvalidOptions), CodeInvalidInput, 2},
		{fmt.Errorf("%w: top", config.ErrInvalid), CodeInvalidInput, 2},
		{openErr, CodeIO, 4},
		{fmt.Errorf("read: %w", &fs.PathError{Op: "read", Path: "x", Err: fs.ErrPermission}), CodeIO, 4},
	}

	for _, tt := range tests {
		got := Classify(tt.err)
		if got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
		}
		if exit := ExitCode(got); exit != tt.exit {
			t.Errorf("ExitCode(%q) = %d, want %d", got, exit, tt.exit)
		}
	}
}
