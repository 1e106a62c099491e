package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"chatty":  slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_WritesServiceAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("shopfront", "info", &buf)

	logger.Info("catalog loaded", slog.Int("products", 20))
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if record["service"] != "shopfront" {
		t.Fatalf("service = %v, want shopfront", record["service"])
	}
	if record["msg"] != "catalog loaded" {
		t.Fatalf("msg = %v, want %q", record["msg"], "catalog loaded")
	}
	if record["products"] != float64(20) {
		t.Fatalf("products = %v, want 20", record["products"])
	}
}

func TestOpen_CreatesDirectoriesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shopfront.log")

	logger, closer, err := Open(path, "shopfront", "debug")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Debug("first")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	logger, closer, err = Open(path, "shopfront", "debug")
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	logger.Debug("second")
	_ = closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Fatalf("log has %d lines, want 2", got)
	}
}

func TestOpen_FailureDiscards(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	logger, closer, err := Open(filepath.Join(blocker, "shopfront.log"), "shopfront", "info")
	if err == nil {
		t.Fatalf("Open returned nil error for a path under a regular file")
	}
	if logger == nil || closer == nil {
		t.Fatalf("Open returned nil logger or closer on failure")
	}
	logger.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
