// Package logging builds the application logger. The terminal belongs to
// the UI, so logs only go to a file and are disabled without one.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger is the application logger and the file backing it, if any.
type Logger struct {
	zerolog.Logger
	closer io.Closer
}

// Open creates a logger writing JSON lines to path at the named level.
// An empty path yields a disabled logger. Unknown levels fall back to info.
func Open(path, level string) (*Logger, error) {
	if path == "" {
		return &Logger{Logger: zerolog.Nop()}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{Logger: New(f, level), closer: f}, nil
}

// New creates a timestamped logger on w at the named level.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

// Component returns a sub-logger tagged with the component name.
func (l *Logger) Component(name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
