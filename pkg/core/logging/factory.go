// ============================================================================
// SportsPA - Member and facility manager
// ============================================================================
//
// Package:     logging
// Description: Factory functions that build the foundation logger from
//              application configuration
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	spalog "github.com/msto63/sportspa/foundation/core/log"
	"github.com/msto63/sportspa/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Output is stderr, stdout or a file path that is appended to
	Output string

	// EnableCaller adds the calling function to every entry
	EnableCaller bool

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
		Output: "stderr",
	}
}

// FromConfig maps the logging section of the application config
func FromConfig(name string, cfg config.LoggingConfig) LoggerConfig {
	return LoggerConfig{
		Name:         name,
		Level:        cfg.Level,
		Format:       cfg.Format,
		Output:       cfg.Output,
		EnableCaller: cfg.Caller,
	}
}

// NewLogger creates a foundation logger. The returned close function
// releases a log file opened for Output and is never nil.
func NewLogger(cfg LoggerConfig) (*spalog.Logger, func() error, error) {
	output, closeFn, err := openOutput(cfg.Output)
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := spalog.NewWithConfig(spalog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
	return logger, closeFn, nil
}

// NewSimpleLogger creates a stderr logger with the default configuration
func NewSimpleLogger(name string) *spalog.Logger {
	logger, _, _ := NewLogger(DefaultLoggerConfig(name))
	return logger
}

func openOutput(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stderr":
		return os.Stderr, noop, nil
	case "stdout":
		return os.Stdout, noop, nil
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}

// parseLevel converts a string level, falling back to info
func parseLevel(level string) spalog.Level {
	parsed, err := spalog.ParseLevel(level)
	if err != nil {
		return spalog.LevelInfo
	}
	return parsed
}

// parseFormat converts a string format, falling back to text
func parseFormat(format string) spalog.Format {
	parsed, err := spalog.ParseFormat(format)
	if err != nil {
		return spalog.FormatText
	}
	return parsed
}

// KV converts key-value pairs to log fields. Keys that are not strings
// and a trailing key without value are dropped.
func KV(keysAndValues ...interface{}) spalog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(spalog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
