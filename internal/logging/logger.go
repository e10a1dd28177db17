package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds logging configuration
type Config struct {
	Level  string
	Format string
	Output string
}

// DefaultConfig returns the default logging configuration
func DefaultConfig() *Config {
	return &Config{
		Level:  "warn",
		Format: "text",
		Output: "stderr",
	}
}

// WritesToTerminal reports whether the output is one of the standard streams.
func (c *Config) WritesToTerminal() bool {
	switch strings.ToLower(c.Output) {
	case "stdout", "stderr", "":
		return true
	}
	return false
}

// Logger wraps slog.Logger with inventory-specific helpers
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new structured logger from configuration.
// Output is stdout, stderr, discard or a file path (appended to).
// The returned func closes the log file, if one was opened.
func NewLogger(cfg *Config) (*Logger, func()) {
	var writer io.Writer
	closeFn := func() {}
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		writer = os.Stdout
	case "stderr", "":
		writer = os.Stderr
	case "discard", "none":
		writer = io.Discard
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			writer = os.Stderr
		} else {
			writer = f
			closeFn = func() { f.Close() }
		}
	}
	return NewLoggerWithWriter(cfg, writer), closeFn
}

// NewLoggerWithWriter builds a logger on an explicit writer, ignoring cfg.Output.
func NewLoggerWithWriter(cfg *Config, writer io.Writer) *Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("timestamp", a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(writer, handlerOpts)
	default:
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning", "":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// WithComponent adds component context to logger
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", component),
	}
}

// Storage logs a storage warning. Storage problems are never fatal,
// so they are reported at warn level with the storage subsystem tag.
func (l *Logger) Storage(msg string, args ...any) {
	finalArgs := []any{"subsystem", "storage"}
	finalArgs = append(finalArgs, args...)
	l.Logger.Warn(msg, finalArgs...)
}

// Mutation logs a state transition at debug level.
func (l *Logger) Mutation(op string, args ...any) {
	finalArgs := []any{"subsystem", "inventory", "op", op}
	finalArgs = append(finalArgs, args...)
	l.Logger.Debug("mutation", finalArgs...)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewLoggerWithWriter(DefaultConfig(), io.Discard)
}

var defaultLogger *Logger

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Default returns the default logger instance
func Default() *Logger {
	if defaultLogger == nil {
		defaultLogger = NewLoggerWithWriter(DefaultConfig(), os.Stderr)
	}
	return defaultLogger
}
