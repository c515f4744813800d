package lexer

import (
	"context"
	"log/slog"
)

// LevelTrace is a custom log level more verbose than Debug, used for
// per-token tracing. Enable with &slog.HandlerOptions{Level: lexer.LevelTrace}.
//
// Grounded on the teacher's internal/types.LevelTrace.
const LevelTrace = slog.Level(-8)

var noCtx = context.Background() //nolint:gochecknoglobals

// logger wraps slog.Logger with nil-safe convenience methods so the
// lexer can log unconditionally without a nil check at every call site.
type logger struct {
	l *slog.Logger
}

func (lg logger) enabled(level slog.Level) bool {
	return lg.l != nil && lg.l.Enabled(noCtx, level)
}

func (lg logger) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if lg.l != nil && lg.l.Enabled(noCtx, level) {
		lg.l.LogAttrs(noCtx, level, msg, attrs...)
	}
}

func (lg logger) traceEnabled() bool {
	return lg.enabled(LevelTrace)
}

func (lg logger) trace(msg string, attrs ...slog.Attr) {
	lg.log(LevelTrace, msg, attrs...)
}
