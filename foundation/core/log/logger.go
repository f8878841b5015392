// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled structured logging with
//              persistent context fields, request IDs and severity-aware
//              logging of coded errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-03-02 v0.2.0: Removed async mode, LogError uses errors.As

package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
)

// Logger is a structured logger. The With* methods return modified copies,
// the receiver is never changed.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields
	requestID     string

	enableCaller     bool
	callerSkipFrames int

	// guards writes to output; shared between copies of one logger
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a new logger writing JSON at info level to stderr
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
		writeMu:       &sync.Mutex{},
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := New()
	logger.level = config.Level
	logger.formatter = GetFormatter(config.Format)
	logger.name = config.Name
	logger.enableCaller = config.EnableCaller
	if config.Output != nil {
		logger.output = config.Output
	}
	return logger
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return New().WithOutput(io.Discard).WithLevel(LevelFatal)
}

// WithLevel sets the minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat sets the log format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput sets the output destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.writeMu = &sync.Mutex{}
	return clone
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithRequestID sets the request ID context
func (l *Logger) WithRequestID(requestID string) *Logger {
	clone := l.clone()
	clone.requestID = requestID
	return clone
}

// WithCaller enables caller information in log entries
func (l *Logger) WithCaller(skip int) *Logger {
	clone := l.clone()
	clone.enableCaller = true
	clone.callerSkipFrames = skip
	return clone
}

func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, fields...) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields...) }
func (l *Logger) Info(message string, fields ...Fields)  { l.log(LevelInfo, message, nil, fields...) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.log(LevelWarn, message, nil, fields...) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields...) }

// Audit logs an audit message, written regardless of the level
func (l *Logger) Audit(message string, fields ...Fields) { l.log(LevelAudit, message, nil, fields...) }

// ErrorWithErr logs an error message with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs err at a level derived from its severity. Coded errors
// contribute their code, operation and details as fields; other errors
// are logged at error level.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	var coded *spaerror.Error
	if !errors.As(err, &coded) {
		l.log(LevelError, err.Error(), err, fields...)
		return
	}

	errFields := Fields{
		"error_code":     coded.Code().String(),
		"error_severity": coded.Severity().String(),
	}
	if op := coded.Operation(); op != "" {
		errFields["error_operation"] = op
	}
	for k, v := range coded.Details() {
		errFields["error_"+k] = v
	}
	fields = append(fields, errFields)

	switch coded.Severity() {
	case spaerror.SeverityLow:
		l.log(LevelInfo, coded.Message(), nil, fields...)
	case spaerror.SeverityMedium:
		l.log(LevelWarn, coded.Message(), nil, fields...)
	default:
		l.log(LevelError, coded.Message(), nil, fields...)
	}
}

// StartTimer creates and starts a new timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.logEntry(level, message, err, 0, fields...)
}

func (l *Logger) logEntry(level Level, message string, err error, duration time.Duration, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Error = err
	entry.Duration = duration
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}
	if l.enableCaller {
		if function, file, line, ok := l.getCaller(); ok {
			entry.WithCaller(function, file, line)
		}
	}
	l.write(entry)
}

func (l *Logger) write(entry *Entry) {
	formatted, err := l.formatter.Format(entry)
	if err != nil {
		return
	}
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(formatted)
}

func (l *Logger) getCaller() (function, file string, line int, ok bool) {
	// getCaller, logEntry, log or Timer.finish, public method
	pc, file, line, ok := runtime.Caller(4 + l.callerSkipFrames)
	if !ok {
		return "", "", 0, false
	}
	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}
	return function, filepath.Base(file), line, true
}

func (l *Logger) clone() *Logger {
	clone := *l
	clone.contextFields = make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return &clone
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}
