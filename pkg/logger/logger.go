// Package logger builds the structured logger used across the tuition desk.
// It is a thin layer over log/slog: level parsing, handler selection and
// common attribute constructors.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures the logger.
type Options struct {
	Level  string
	Format Format
	Output io.Writer
}

// ParseLevel parses a string into a slog.Level. Unknown values map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a *slog.Logger with the given options.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	}

	var handler slog.Handler
	if opts.Format == FormatJSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Tuition-related attribute helpers.
func Student(name string) slog.Attr   { return slog.String("student", name) }
func StudentID(id string) slog.Attr   { return slog.String("student_id", id) }
func Tutor(name string) slog.Attr     { return slog.String("tutor", name) }
func Subject(name string) slog.Attr   { return slog.String("subject", name) }
func LessonID(id string) slog.Attr    { return slog.String("lesson_id", id) }
func Hour(h int) slog.Attr            { return slog.Int("hour", h) }
func Component(name string) slog.Attr { return slog.String("component", name) }
func Err(err error) slog.Attr         { return slog.Any("error", err) }
