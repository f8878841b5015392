// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on
//              completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-03-02 v0.2.0: Duration carried on the entry

package log

import "time"

// Timer measures the duration of a single operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates and starts a timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" with the elapsed time. Only the first
// call logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil)
}

// StopWithError logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, t.operation+" failed", err)
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	if t.logger == nil {
		return elapsed
	}

	t.fields["operation"] = t.operation
	t.logger.logEntry(level, message, err, elapsed, t.fields)
	return elapsed
}
