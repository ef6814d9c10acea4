package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// LogFileName is the name of the log file created inside the log directory.
const LogFileName = "debug.log"

// Attribute keys every line may carry. The logs command reads them back.
const (
	SessionKey   = "session_id"
	ComponentKey = "component"
)

var slogLevels = map[string]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// logFile is the file shared by a logger and everything derived from it.
type logFile struct {
	mu sync.Mutex
	f  *os.File
}

// Logger writes JSON lines tagged with a session and a component. Derived
// loggers share the parent's output. It is safe for concurrent use.
type Logger struct {
	slog      *slog.Logger
	file      *logFile
	session   string
	component string
}

// NewLogger creates a Logger that appends to {logDir}/debug.log, keeping
// lines at level and above. An unknown level means INFO.
//
// If logDir is empty, logs go to stderr. The interactive drawer owns the
// terminal, so callers running the TUI should always pass a directory.
func NewLogger(logDir string, level string) (*Logger, error) {
	if logDir == "" {
		return NewWriterLogger(os.Stderr, level), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(logDir, LogFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := NewWriterLogger(f, level)
	l.file = &logFile{f: f}
	return l, nil
}

// NewWriterLogger creates a Logger writing JSON lines to w. Close is a no-op
// for it; the caller owns w.
func NewWriterLogger(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slogLevels[ParseLevel(level)],
	})
	return &Logger{slog: slog.New(handler)}
}

// NopLogger returns a Logger that discards all log output.
// Useful for testing or when logging is disabled.
func NopLogger() *Logger {
	return NewWriterLogger(io.Discard, LevelError)
}

// NewSessionID returns a fresh identifier for correlating one run's log lines.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSession returns a Logger that tags every line with sessionID.
func (l *Logger) WithSession(sessionID string) *Logger {
	c := *l
	c.session = sessionID
	return &c
}

// WithComponent returns a Logger tagged with the emitting component
// ("tui", "panel", "catalog"). It replaces any component already set, so a
// line names exactly one.
func (l *Logger) WithComponent(component string) *Logger {
	c := *l
	c.component = component
	return &c
}

// Debug logs a message at DEBUG level with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs a message at INFO level with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs a message at WARN level with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs a message at ERROR level with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}

	tagged := make([]any, 0, 4+len(args))
	if l.session != "" {
		tagged = append(tagged, SessionKey, l.session)
	}
	if l.component != "" {
		tagged = append(tagged, ComponentKey, l.component)
	}
	tagged = append(tagged, args...)

	if l.file != nil {
		l.file.mu.Lock()
		defer l.file.mu.Unlock()
		if l.file.f == nil {
			return
		}
	}
	l.slog.Log(ctx, level, msg, tagged...)
}

// Close flushes and closes the log file shared by l and every logger derived
// from it. Lines logged afterwards are dropped.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	l.file.mu.Lock()
	defer l.file.mu.Unlock()

	if l.file.f == nil {
		return nil
	}
	f := l.file.f
	l.file.f = nil
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// ParseLevel converts a string level to the corresponding constant.
// Returns LevelInfo if the level string is not recognized.
func ParseLevel(level string) string {
	level = strings.ToUpper(strings.TrimSpace(level))
	if _, ok := slogLevels[level]; ok {
		return level
	}
	return LevelInfo
}
