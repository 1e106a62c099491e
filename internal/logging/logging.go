// Package logging builds the structured loggers used across shopfront.
//
// The terminal belongs to the UI, so runtime logs go to a file. Every record
// carries a service attribute; debug level also records the source location.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps a config level name to a slog level. Unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New creates a logger for service writing JSON to stderr.
func New(service, level string) *slog.Logger {
	return NewWithWriter(service, level, os.Stderr)
}

// NewWithWriter creates a logger for service writing JSON to w.
func NewWithWriter(service, level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With(slog.String("service", service))
}

// Open appends to the log file at path, creating parent directories. When the
// file cannot be opened the logger discards everything and the error is
// returned alongside it so the caller can report it once.
func Open(path, service, level string) (*slog.Logger, io.Closer, error) {
	file, err := openFile(path)
	if err != nil {
		return NewWithWriter(service, level, io.Discard), io.NopCloser(nil), err
	}
	return NewWithWriter(service, level, file), file, nil
}

func openFile(path string) (*os.File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
