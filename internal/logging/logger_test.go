package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// decodeLines parses every JSON line in data.
func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for i, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d is not valid JSON: %v\n%s", i, err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_WritesDebugLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state", "logs")

	logger, err := NewLogger(dir, "debug")
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	logger.WithSession("run-1").WithComponent("catalog").Debug("catalog reloaded", "categories", 2)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	entries := decodeLines(t, content)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["msg"] != "catalog reloaded" || e["level"] != LevelDebug {
		t.Errorf("entry = %v", e)
	}
	if e[SessionKey] != "run-1" || e[ComponentKey] != "catalog" {
		t.Errorf("entry tags = %v, %v", e[SessionKey], e[ComponentKey])
	}
	if e["categories"] != float64(2) {
		t.Errorf("categories = %v, want 2", e["categories"])
	}
}

func TestNewLogger_AppendsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	for _, session := range []string{"first", "second"} {
		logger, err := NewLogger(dir, LevelInfo)
		if err != nil {
			t.Fatalf("NewLogger() error: %v", err)
		}
		logger.WithSession(session).Info("starting")
		logger.Close()
	}

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatal(err)
	}
	entries := decodeLines(t, content)
	if len(entries) != 2 || entries[0][SessionKey] != "first" || entries[1][SessionKey] != "second" {
		t.Errorf("entries = %v, want one line per run in order", entries)
	}
}

func TestLogger_LevelThreshold(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"debug", []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{"info", []string{"INFO", "WARN", "ERROR"}},
		{"warn", []string{"WARN", "ERROR"}},
		{"error", []string{"ERROR"}},
		{"verbose", []string{"INFO", "WARN", "ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWriterLogger(&buf, tt.level)
			logger.Debug("drawer visibility changed")
			logger.Info("filter changed")
			logger.Warn("catalog reload failed")
			logger.Error("watcher error")

			var got []string
			for _, e := range decodeLines(t, buf.Bytes()) {
				got = append(got, e["level"].(string))
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("levels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogger_WithComponentReplaces(t *testing.T) {
	var buf bytes.Buffer
	root := NewWriterLogger(&buf, LevelInfo).WithSession("s1")
	tui := root.WithComponent("tui")
	panel := tui.WithComponent("panel")

	tui.Info("filter changed")
	panel.Info("change proposed")
	root.Info("starting")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for _, line := range lines {
		if n := strings.Count(line, `"`+ComponentKey+`"`); n > 1 {
			t.Errorf("line names %d components: %s", n, line)
		}
	}

	entries := decodeLines(t, buf.Bytes())
	want := []any{"tui", "panel", nil}
	for i, e := range entries {
		if e[ComponentKey] != want[i] {
			t.Errorf("entry %d component = %v, want %v", i, e[ComponentKey], want[i])
		}
		if e[SessionKey] != "s1" {
			t.Errorf("entry %d session = %v, want s1", i, e[SessionKey])
		}
	}
}

func TestLogger_CloseSharedWithDerived(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatal(err)
	}
	derived := logger.WithComponent("catalog")
	derived.Info("before close")

	if err := derived.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}

	// Dropped, not written to a closed file.
	logger.Info("after close")

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatal(err)
	}
	if entries := decodeLines(t, content); len(entries) != 1 {
		t.Errorf("got %d entries, want 1", len(entries))
	}
}

func TestLogger_ConcurrentComponents(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatal(err)
	}

	// The catalog watcher and the event loop log from separate goroutines.
	var wg sync.WaitGroup
	for _, component := range []string{"catalog", "tui"} {
		wg.Add(1)
		go func(l *Logger) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				l.Info("tick", "i", i)
			}
		}(logger.WithComponent(component))
	}
	wg.Wait()
	logger.Close()

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatal(err)
	}
	if entries := decodeLines(t, content); len(entries) != 400 {
		t.Errorf("got %d entries, want 400", len(entries))
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger().WithSession("s").WithComponent("panel")
	logger.Error("discarded")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", LevelDebug},
		{" Warn ", LevelWarn},
		{"ERROR", LevelError},
		{"info", LevelInfo},
		{"trace", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == b {
		t.Error("expected distinct session IDs")
	}
	if len(a) != 36 {
		t.Errorf("expected canonical UUID length 36, got %d (%q)", len(a), a)
	}
}
