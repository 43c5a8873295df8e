package staticalloc

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with allocator-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithAllocator tags every record with the allocator's capacity and page size.
func (l *Logger) WithAllocator(capacity, pageSize int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity, "page_size", pageSize),
	}
}

// LogAllocPages logs a page allocation. Grants are logged at debug level,
// refusals at warn level.
func (l *Logger) LogAllocPages(pages Pages, cursor int, err error) {
	if err != nil {
		l.Warn("page allocation refused",
			"pages", uint64(pages),
			"cursor", cursor,
			"error", err,
		)
	} else {
		l.Debug("page allocation granted",
			"pages", uint64(pages),
			"cursor", cursor,
		)
	}
}

// LogClose logs the release of an allocator's backing memory.
func (l *Logger) LogClose(stats Stats, err error) {
	if err != nil {
		l.Error("allocator close failed",
			"bytes_granted", stats.BytesGranted,
			"error", err,
		)
	} else {
		l.Info("allocator closed",
			"grants", stats.Grants,
			"failures", stats.Failures,
			"bytes_granted", stats.BytesGranted,
		)
	}
}
