package sapling

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Logger is the structured logger the shell and render system report to.
// Key-values follow the log/slog convention.
type Logger interface {
	Debug(msg string, keyValues ...any)
	Info(msg string, keyValues ...any)
	Warn(msg string, keyValues ...any)
	Error(msg string, keyValues ...any)
}

type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger to Logger.
func NewSlogLogger(logger *slog.Logger) Logger {
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Debug(msg string, keyValues ...any) { l.logger.Debug(msg, keyValues...) }
func (l *slogLogger) Info(msg string, keyValues ...any)  { l.logger.Info(msg, keyValues...) }
func (l *slogLogger) Warn(msg string, keyValues ...any)  { l.logger.Warn(msg, keyValues...) }
func (l *slogLogger) Error(msg string, keyValues ...any) { l.logger.Error(msg, keyValues...) }

// DefaultLogger logs to stderr at level: human-readable text when stderr is
// a terminal, JSON lines otherwise.
func DefaultLogger(level slog.Level) Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	return NewSlogLogger(slog.New(h).With("component", "sapling"))
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
