package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Interface is the logger handed to every component. The *w variants take
// alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger wraps the process logger configured by Init.
func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

// NewLoggerWithSlog wraps an arbitrary *slog.Logger, mostly for tests that
// capture output.
func NewLoggerWithSlog(slogLog *slog.Logger) Interface {
	return &slogLogger{logger: slogLog}
}

// NewNopLogger returns a logger that discards every record.
func NewNopLogger() Interface {
	return &slogLogger{logger: slog.New(discardHandler{})}
}

// emit must be called directly from an exported logging method: it records
// that method's caller as the record's PC, so source locations point at
// application code rather than this package.
func emit(l *slog.Logger, level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}

func (l *slogLogger) Debug(msg string, args ...any) { emit(l.logger, slog.LevelDebug, msg, args) }
func (l *slogLogger) Info(msg string, args ...any)  { emit(l.logger, slog.LevelInfo, msg, args) }
func (l *slogLogger) Warn(msg string, args ...any)  { emit(l.logger, slog.LevelWarn, msg, args) }
func (l *slogLogger) Error(msg string, args ...any) { emit(l.logger, slog.LevelError, msg, args) }

func (l *slogLogger) Debugw(msg string, keysAndValues ...any) {
	emit(l.logger, slog.LevelDebug, msg, keysAndValues)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...any) {
	emit(l.logger, slog.LevelInfo, msg, keysAndValues)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...any) {
	emit(l.logger, slog.LevelWarn, msg, keysAndValues)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...any) {
	emit(l.logger, slog.LevelError, msg, keysAndValues)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
