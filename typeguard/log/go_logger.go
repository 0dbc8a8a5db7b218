package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitizeLogString escapes control characters in a single string value.
func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// GoLogger is the Go built-in (log) implementation of Logger.
//
// Messages and string field values are sanitized to prevent log injection (CWE-117).
type GoLogger struct {
	Level  Level
	out    *stdlog.Logger
	fields []Field
}

// Compile-time assertion: *GoLogger implements Logger.
var _ Logger = (*GoLogger)(nil)

// NewGoLogger builds a GoLogger writing to w. A nil writer means os.Stderr.
func NewGoLogger(w io.Writer, level Level) *GoLogger {
	if w == nil {
		w = os.Stderr
	}

	return &GoLogger{
		Level: level,
		out:   stdlog.New(w, "", stdlog.LstdFlags),
	}
}

// Log writes a single sanitized line when level is enabled.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	parts := make([]string, 0, 3)
	parts = append(parts, fmt.Sprintf("[%s]", level.String()))

	if rendered := l.hydrateFields(fields); rendered != "" {
		parts = append(parts, rendered)
	}

	parts = append(parts, sanitizeLogString(msg))

	l.writer().Print(strings.Join(parts, " "))
}

// With returns a child logger carrying additional fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return NewGoLogger(nil, LevelInfo).With(fields...)
	}

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)

	return &GoLogger{Level: l.Level, out: l.out, fields: merged}
}

// Enabled reports whether level is within the logger's verbosity ceiling.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Sync is a no-op; the standard logger writes synchronously.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) writer() *stdlog.Logger {
	if l.out == nil {
		return stdlog.Default()
	}

	return l.out
}

func (l *GoLogger) hydrateFields(extra []Field) string {
	all := make([]Field, 0, len(l.fields)+len(extra))
	all = append(all, l.fields...)
	all = append(all, extra...)

	if len(all) == 0 {
		return ""
	}

	parts := make([]string, 0, len(all))

	for _, f := range all {
		parts = append(parts, sanitizeLogString(f.Key)+"="+sanitizeLogString(fmt.Sprint(f.Value)))
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
