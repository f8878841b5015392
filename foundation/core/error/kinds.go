// File: kinds.go
// Title: Command Failure Kinds
// Description: Constructors and predicates for the three kinds of parse
//              failure. A format error reports a structural problem with the
//              command line, a validation error reports a field value that
//              breaks its type's rule, and a semantic error reports input
//              that is well formed but meaningless for the command.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package error

// NewFormat creates a format error. The message normally embeds the usage
// text of the command that was invoked.
func NewFormat(message string) *Error {
	return New(message).WithCode(CodeInvalidFormat)
}

// NewValidation creates a validation error carrying a constraint message
func NewValidation(message string) *Error {
	return New(message).WithCode(CodeValidationFailed)
}

// NewSemantic creates a semantic error
func NewSemantic(message string) *Error {
	return New(message).WithCode(CodeSemantic)
}

// IsFormat reports whether err is a format error
func IsFormat(err error) bool {
	return HasCode(err, CodeInvalidFormat)
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return HasCode(err, CodeValidationFailed)
}

// IsSemantic reports whether err is a semantic error
func IsSemantic(err error) bool {
	return HasCode(err, CodeSemantic)
}
