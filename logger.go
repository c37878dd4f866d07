package integral

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with integral-specific helpers.
// This keeps field names consistent between the library and the intconv
// command.
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

// LogAbsorbed records a parse failure that the absorbing contract turned
// into a usable zero or clamped value.
func (l *Logger) LogAbsorbed(input string, err error) {
	l.Debug("parse failure absorbed",
		"input", input,
		"error", err,
	)
}

// LogConvert records one value conversion against its target type.
func (l *Logger) LogConvert(input string, target string, err error) {
	if err != nil {
		l.Error("conversion failed",
			"input", input,
			"target", target,
			"error", err,
		)
	} else {
		l.Debug("conversion completed",
			"input", input,
			"target", target,
		)
	}
}
