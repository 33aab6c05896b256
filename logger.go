package vsago

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vsago-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithK adds a k (result count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAdd logs an item-memory add operation.
func (l *Logger) LogAdd(name string, dimension int, err error) {
	if err != nil {
		l.Error("add failed",
			"name", name,
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.Debug("add completed",
			"name", name,
			"dimension", dimension,
		)
	}
}

// LogQuery logs an item-memory query operation.
func (l *Logger) LogQuery(k, resultsFound int, err error) {
	if err != nil {
		l.Error("query failed",
			"k", k,
			"error", err,
		)
	} else {
		l.Debug("query completed",
			"k", k,
			"results", resultsFound,
		)
	}
}

// LogDelete logs an item-memory delete operation.
func (l *Logger) LogDelete(name string, found bool) {
	l.Debug("delete completed",
		"name", name,
		"found", found,
	)
}
