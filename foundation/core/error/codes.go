// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of command
//              parsing and command execution.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Reduced to the codes used by the command layer

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Command parsing
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeSemantic         Code = "SEMANTIC"

	// Command execution
	CodeDuplicateEntry   Code = "DUPLICATE_ENTRY"
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeIndexOutOfRange  Code = "INDEX_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidFormat, CodeValidationFailed, CodeSemantic,
		CodeDuplicateEntry, CodeInvalidOperation, CodeIndexOutOfRange,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidFormat, CodeValidationFailed, CodeSemantic:
		return "parse"
	case CodeDuplicateEntry, CodeInvalidOperation, CodeIndexOutOfRange, CodeNotFound:
		return "execution"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
