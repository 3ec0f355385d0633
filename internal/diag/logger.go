// Package diag wires structured logging and error classification.
package diag

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// NewLogger returns a slog.Logger writing to w. format is "json" or "text";
// level is one of debug, info, warn, error (default info).
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Timer measures one stage from Start to Finish.
type Timer struct {
	l    *slog.Logger
	comp string
	t0   time.Time
}

// Start logs a debug "start" event for comp and returns a Timer for it.
func Start(l *slog.Logger, comp, msg string, args ...any) *Timer {
	l.Debug(msg, append([]any{"comp", comp, "stage", "start"}, args...)...)
	return &Timer{l: l, comp: comp, t0: time.Now()}
}

// Finish logs the matching "finish" event with elapsed time and a count.
func (t *Timer) Finish(msg string, count int, args ...any) {
	if t == nil || t.l == nil {
		return
	}
	attrs := []any{"comp", t.comp, "stage", "finish", "dur_ms", time.Since(t.t0).Milliseconds(), "count", count}
	t.l.Debug(msg, append(attrs, args...)...)
}

// Fail logs an "error" event with the error's classification code.
func (t *Timer) Fail(err error) {
	if t == nil || t.l == nil {
		return
	}
	t.l.Error(err.Error(), "comp", t.comp, "stage", "error", "code", string(Classify(err)),
		"dur_ms", time.Since(t.t0).Milliseconds())
}
