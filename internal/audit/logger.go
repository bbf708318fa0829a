package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName      = "application-logs.log"
	rotatingFileName = "rotating-logs.log"
	rotateMaxSizeMB  = 20
	rotateMaxAgeDays = 14
)

// Logger fans audit entries out to its sinks. Each entry gets a unique log
// id and a timestamp at emission time.
type Logger struct {
	app      AppInfo
	sinks    []Sink
	filePath string
}

// New builds a Logger writing to the given sinks. Intended for tests and
// custom wiring; services use NewFileLogger.
func New(app AppInfo, sinks ...Sink) *Logger {
	return &Logger{app: app, sinks: sinks}
}

// NewFileLogger builds the production Logger: a console sink, a plain
// append file read back by the logs endpoint, and a rotating file capped at
// 20 MB / 14 days.
func NewFileLogger(app AppInfo, dir string, console zerolog.Logger) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("audit: create log dir: %w", err)
	}

	filePath := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("audit: open log file: %w", err)
	}

	rotating := &lumberjack.Logger{
		Filename: filepath.Join(dir, rotatingFileName),
		MaxSize:  rotateMaxSizeMB,
		MaxAge:   rotateMaxAgeDays,
	}

	return &Logger{
		app: app,
		sinks: []Sink{
			NewConsoleSink(console),
			NewWriterSink(f),
			NewWriterSink(rotating),
		},
		filePath: filePath,
	}, nil
}

// Info emits a success-level entry.
func (l *Logger) Info(message string, data ExchangeData) {
	l.emit(LevelInfo, message, data)
}

// Error emits an error-level entry.
func (l *Logger) Error(message string, data ExchangeData) {
	l.emit(LevelError, message, data)
}

func (l *Logger) emit(level, message string, data ExchangeData) {
	e := Entry{
		Level:     level,
		LogID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		App:       l.app,
		Message:   message,
		Data:      data,
	}
	for _, s := range l.sinks {
		s.Emit(e)
	}
}

// ReadLogFile returns the raw content of the current log file.
func (l *Logger) ReadLogFile() (string, error) {
	if l.filePath == "" {
		return "", fmt.Errorf("audit: no log file configured")
	}
	b, err := os.ReadFile(l.filePath)
	if err != nil {
		return "", fmt.Errorf("audit: read log file: %w", err)
	}
	return string(b), nil
}

// Close flushes and closes all sinks. Called once on shutdown.
func (l *Logger) Close() error {
	var firstErr error
	for _, s := range l.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
