// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the validator interface, rule codes and the
//              structured result type returned by every validator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2025-03-02 v0.2.0: Dropped context-aware validation

package validation

import (
	"fmt"
	"strings"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
)

// Rule codes reported in ValidationError.Code
const (
	CodeRequired = "VALIDATION_REQUIRED" // Field is required but missing or blank
	CodeFormat   = "VALIDATION_FORMAT"   // Invalid format
	CodeLength   = "VALIDATION_LENGTH"   // String length validation
	CodeRange    = "VALIDATION_RANGE"    // Numeric range validation
	CodeType     = "VALIDATION_TYPE"     // Value has the wrong Go type
	CodePattern  = "VALIDATION_PATTERN"  // Regex pattern validation
	CodeNumeric  = "VALIDATION_NUMERIC"  // Numeric value validation
	CodeCustom   = "VALIDATION_CUSTOM"   // Custom validation rules
)

// Validator defines the interface for all validators
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid   bool                   `json:"valid"`
	Errors  []ValidationError      `json:"errors,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// ValidationError represents a single failed rule
type ValidationError struct {
	Code    string      `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Message: message,
			},
		},
	}
}

// NewValidationErrorWithField creates a validation error for a specific field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Field:   field,
				Message: message,
				Value:   value,
			},
		},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Message: message,
	})
	return r
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages as a slice of strings
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// ToError converts the result to a validation error carrying the first
// failure's message. Returns nil if validation passed.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	first := r.FirstError()
	if first == nil {
		return spaerror.NewValidation("validation failed")
	}
	return r.ToErrorWithMessage(first.Message)
}

// ToErrorWithMessage converts the result to a validation error whose message
// is the given text. The failed rules are kept as details.
// Returns nil if validation passed.
func (r ValidationResult) ToErrorWithMessage(message string) error {
	if r.Valid {
		return nil
	}

	err := spaerror.NewValidation(message)
	if first := r.FirstError(); first != nil {
		err = err.WithDetail("rule", first.Code)
		if first.Field != "" {
			err = err.WithDetail("field", first.Field)
		}
		if first.Value != nil {
			err = err.WithDetail("value", first.Value)
		}
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("allMessages", r.ErrorMessages())
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	parts := []string{"ValidationResult{valid: false"}
	if first := r.FirstError(); first != nil {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		parts = append(parts, fmt.Sprintf("first: %s", first.Message))
		if first.Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", first.Field))
		}
	}
	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()

	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}

	return combined
}
