package zap

import (
	"context"

	logpkg "github.com/LerianStudio/lib-typeguard/typeguard/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes assertion diagnostics through a *zap.Logger.
type Logger struct {
	base *zap.Logger
}

var _ logpkg.Logger = (*Logger)(nil)

// Wrap adapts an existing zap logger, e.g. one built on zaptest/observer.
// A nil logger discards every event.
func Wrap(logger *zap.Logger) *Logger {
	return &Logger{base: logger}
}

func (l *Logger) zap() *zap.Logger {
	if l == nil || l.base == nil {
		return zap.NewNop()
	}

	return l.base
}

var zapLevels = [...]zapcore.Level{
	logpkg.LevelError: zapcore.ErrorLevel,
	logpkg.LevelWarn:  zapcore.WarnLevel,
	logpkg.LevelInfo:  zapcore.InfoLevel,
	logpkg.LevelDebug: zapcore.DebugLevel,
}

func toZapLevel(level logpkg.Level) zapcore.Level {
	if int(level) < len(zapLevels) {
		return zapLevels[level]
	}

	return zapcore.InfoLevel
}

// Log writes msg at level. When ctx carries a valid span context, trace_id
// and span_id are added so the failure can be found from its trace.
func (l *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	ce := l.zap().Check(toZapLevel(level), sanitizeString(msg))
	if ce == nil {
		return
	}

	ce.Write(append(toZapFields(fields), traceFields(ctx)...)...)
}

// With returns a Logger that adds fields to every event.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	return &Logger{base: l.zap().With(toZapFields(fields)...)}
}

// Enabled reports whether the core would write an event at level.
func (l *Logger) Enabled(level logpkg.Level) bool {
	return l.zap().Core().Enabled(toZapLevel(level))
}

// Sync flushes the core. A done ctx abandons the wait and returns its error.
func (l *Logger) Sync(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- l.zap().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}

// toZapFields sanitizes string values; zap encodes everything else.
func toZapFields(fields []logpkg.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))

	for _, f := range fields {
		if s, ok := f.Value.(string); ok {
			out = append(out, zap.String(f.Key, sanitizeString(s)))
			continue
		}

		out = append(out, zap.Any(f.Key, f.Value))
	}

	return out
}
