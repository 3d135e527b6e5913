package tablego

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tablego-specific helpers. Tables log
// debug-level events on growth, trim, resize and concatenation; everything
// else is silent.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithShape adds the current table shape to the logger.
func (l *Logger) WithShape(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// LogGrow logs a capacity-doubling step during an open-ended append.
func (l *Logger) LogGrow(axis string, from, to int) {
	l.Debug("capacity grown", "axis", axis, "from", from, "to", to)
}

// LogTrim logs the final trim of unused capacity after an open-ended
// append.
func (l *Logger) LogTrim(axis string, from, to int) {
	l.Debug("capacity trimmed", "axis", axis, "from", from, "to", to)
}

// LogResize logs an explicit resize-retaining call.
func (l *Logger) LogResize(fromRows, fromCols, toRows, toCols int) {
	l.Debug("resized", "from_rows", fromRows, "from_cols", fromCols, "to_rows", toRows, "to_cols", toCols)
}

// LogConcat logs a concatenation.
func (l *Logger) LogConcat(axis string, added int) {
	l.Debug("concatenated", "axis", axis, "added", added)
}
