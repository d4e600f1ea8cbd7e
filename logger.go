package dulp

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dulp-specific context.
// This provides structured logging with consistent field names.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithOperation adds an op field to the logger.
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithShape adds a shape field to the logger.
func (l *Logger) WithShape(shape []int) *Logger {
	return &Logger{
		Logger: l.Logger.With("shape", shape),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogArrayOp logs the outcome of an element-wise array operation: an error
// with the op on failure, the op, shape, count and chunks at debug level on
// success.
func (l *Logger) LogArrayOp(ctx context.Context, op string, shape []int, count, chunks int, err error) {
	if err != nil {
		l.WithOperation(op).ErrorContext(ctx, "array operation failed", "error", err)
		return
	}
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.WithOperation(op).WithShape(shape).WithCount(count).DebugContext(ctx, "array operation completed",
		"chunks", chunks,
	)
}
