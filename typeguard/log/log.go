package log

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Logger receives assertion diagnostics. An Asserter shares one Logger across
// goroutines, so implementations must be safe for concurrent use.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	// With returns a Logger that adds fields to every event.
	With(fields ...Field) Logger
	// Enabled reports whether an event at level would be written.
	Enabled(level Level) bool
	// Sync flushes buffered events.
	Sync(ctx context.Context) error
}

// Level is the severity of an event. Lower values are more severe, and a
// logger configured at a level writes that level and everything below it.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

// ErrInvalidLevel is returned by ParseLevel for an unrecognized name.
var ErrInvalidLevel = errors.New("invalid log level")

func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return "unknown"
}

// ParseLevel maps a level name to a Level. Matching ignores case and
// surrounding spaces, and "warning" is accepted for warn.
func ParseLevel(name string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "warning" {
		normalized = levelNames[LevelWarn]
	}

	for level, candidate := range levelNames {
		if candidate == normalized {
			return Level(level), nil
		}
	}

	return LevelError, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// Field is one structured attribute of an event.
type Field struct {
	Key   string
	Value any
}

// String creates a string field. Assertion payloads reach logs only as
// already rendered and truncated strings.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Err creates the conventional error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Discard drops every event and reports every level as disabled.
var Discard Logger = discard{}

type discard struct{}

func (discard) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (d discard) With(...Field) Logger { return d }

func (discard) Enabled(Level) bool { return false }

func (discard) Sync(context.Context) error { return nil }
