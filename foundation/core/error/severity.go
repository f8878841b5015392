// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              to log levels, so user input mistakes stay out of error logs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a user input mistake
	SeverityLow Severity = iota

	// SeverityMedium indicates a rejected operation the user can recover from
	SeverityMedium

	// SeverityHigh indicates a failure of the application itself
	SeverityHigh

	// SeverityCritical indicates the application cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidFormat, CodeValidationFailed, CodeSemantic, CodeNotFound, CodeIndexOutOfRange:
		return SeverityLow
	case CodeDuplicateEntry, CodeInvalidOperation:
		return SeverityMedium
	case CodeInternal, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
