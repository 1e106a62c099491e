package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Tail returns up to n of the newest records in the log file at path whose
// level is at least minLevel. Lines that are not JSON records are kept only
// at debug. A missing file yields no records.
func Tail(path string, n int, minLevel slog.Level) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, n)
	count, idx := 0, 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !atLeast(line, minLevel) {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % n
		if count < n {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == n {
		for i := range count {
			lines[i] = ring[(idx+i)%n]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

func atLeast(line string, minLevel slog.Level) bool {
	var record struct {
		Level string `json:"level"`
	}
	if err := json.Unmarshal([]byte(line), &record); err != nil || record.Level == "" {
		return minLevel <= slog.LevelDebug
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(record.Level)); err != nil {
		return minLevel <= slog.LevelDebug
	}
	return lvl >= minLevel
}
