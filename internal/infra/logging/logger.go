// Package logging provides file-based logging for tso-command.
// Entries go to <log dir>/tso-command.log and, optionally, to a mirror
// writer such as stderr. Stdout is never used: it carries the result.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/zos-automation/tso-command/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog levels with file-based output support.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file   *os.File
	mirror io.Writer
	logDir string
	mu     sync.Mutex
	level  slog.Level
}

// New creates a new Logger that writes to logDir.
// If logDir is empty, file logging is disabled.
func New(logDir string, level slog.Level) *Logger {
	return &Logger{
		logDir: logDir,
		level:  level,
	}
}

// WithMirror also writes every entry to w.
func (l *Logger) WithMirror(w io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mirror = w
	return l
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file. Caller holds l.mu.
func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	if err := os.MkdirAll(l.logDir, 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.LogFilePath(l.logDir)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry in the specified format.
// Format: [2025-12-30 09:32:51] [INFO] [req-1a2b3c4d] [category] message
func formatLog(t time.Time, level slog.Level, requestID, category, msg string) string {
	reqStr := "global"
	if requestID != "" {
		reqStr = "req-" + requestID
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		reqStr,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, requestID, category, msg string) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logDir == "" && l.mirror == nil {
		return // Logging disabled
	}

	entry := formatLog(time.Now(), level, requestID, category, msg)

	if l.logDir != "" {
		if f, err := l.ensureFile(); err == nil {
			_, _ = io.WriteString(f, entry)
		}
	}
	if l.mirror != nil {
		_, _ = io.WriteString(l.mirror, entry)
	}
}

// Info logs an info message.
func (l *Logger) Info(requestID, category, msg string) {
	l.log(slog.LevelInfo, requestID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(requestID, category, msg string) {
	l.log(slog.LevelDebug, requestID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(requestID, category, msg string) {
	l.log(slog.LevelWarn, requestID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(requestID, category, msg string) {
	l.log(slog.LevelError, requestID, category, msg)
}
