// Package logging provides debug logging for the table helpers. Each run
// writes to a single file under ~/.smarttable/logs so browser interactions
// can be traced after a test failure without polluting test output.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	runID     string
	runIDOnce sync.Once

	logDir  string
	dirOnce sync.Once
	dirErr  error
)

// RunID returns the identifier shared by every logger in this process.
func RunID() string {
	runIDOnce.Do(func() {
		runID = uuid.New().String()
	})
	return runID
}

func initLogDir() error {
	dirOnce.Do(func() {
		if logDir != "" {
			return
		}
		home, err := os.UserHomeDir()
		if err != nil {
			dirErr = fmt.Errorf("resolving home directory: %w", err)
			return
		}
		logDir = filepath.Join(home, ".smarttable", "logs")
		if err := os.MkdirAll(logDir, 0750); err != nil {
			dirErr = fmt.Errorf("creating log directory: %w", err)
		}
	})
	return dirErr
}

// Logger writes level-tagged lines for one component. Multiple loggers in
// the same run append to the same file.
type Logger struct {
	component string
	out       *log.Logger
	file      *os.File
	path      string
	mu        sync.Mutex
	closeOnce sync.Once
}

// New creates a logger for the named component, writing to
// ~/.smarttable/logs/<run-id>.log. When the file cannot be opened a
// stderr-backed logger is returned together with the error, so callers can
// always log.
func New(component string) (*Logger, error) {
	if err := initLogDir(); err != nil {
		return fallback(component, err), err
	}
	path := filepath.Join(logDir, RunID()+".log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		err = fmt.Errorf("opening log file: %w", err)
		return fallback(component, err), err
	}
	return &Logger{
		component: component,
		out:       log.New(file, "", 0),
		file:      file,
		path:      path,
	}, nil
}

func fallback(component string, err error) *Logger {
	out := log.New(os.Stderr, fmt.Sprintf("[%s] ", component), log.LstdFlags)
	out.Printf("file logging unavailable, using stderr: %v", err)
	return &Logger{component: component, out: out}
}

func (l *Logger) write(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.out.Printf("[%s] [%s] [%s] %s", timestamp, l.component, level, fmt.Sprintf(format, args...))
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, args ...any) {
	l.write("DEBUG", format, args...)
}

// Infof logs an info-level message.
func (l *Logger) Infof(format string, args ...any) {
	l.write("INFO", format, args...)
}

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, args ...any) {
	l.write("WARN", format, args...)
}

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, args ...any) {
	l.write("ERROR", format, args...)
}

// Path returns the log file path, empty when logging fell back to stderr.
func (l *Logger) Path() string {
	return l.path
}

// Close closes the log file. Safe to call multiple times.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}
