// Package log provides structured logging for sportspa.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with contextual fields, request IDs, several
//              output formats and severity-aware logging of coded errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Synchronous only, deterministic field order in text formats
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelInfo).
//		WithFormat(log.FormatText).
//		WithRequestID(uuid.NewString())
//
//	logger.Info("command received", log.Field("command", "addm"))
//	logger.LogError(err)
//
//	timer := logger.StartTimer("execute")
//	// ...
//	timer.Stop()
package log
