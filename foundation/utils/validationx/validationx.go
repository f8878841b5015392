// File: validationx.go
// Title: Core Validation Rules
// Description: Implements the concrete string rules used by the sportspa
//              value objects: blank checks, regex patterns, numeric strings,
//              length bounds and membership in a fixed set.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2025-03-02 v0.2.0: Reduced to string rules, precompiled patterns

package validationx

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/msto63/sportspa/foundation/core/validation"
	"github.com/msto63/sportspa/foundation/utils/stringx"
)

// NotBlank validates that a string contains at least one non-whitespace character
var NotBlank validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	str, ok := value.(string)
	if !ok {
		return validation.NewValidationError(validation.CodeType, "value must be a string")
	}
	if stringx.IsBlank(str) {
		return validation.NewValidationError(validation.CodeRequired, "value is required")
	}
	return validation.NewValidationResult()
}

// Numeric validates that a string is non-empty and contains only ASCII digits
var Numeric validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	str, ok := value.(string)
	if !ok {
		return validation.NewValidationError(validation.CodeType, "value must be a string")
	}
	if !stringx.IsDigits(str) {
		return validation.NewValidationError(validation.CodeNumeric, "must contain only numeric characters")
	}
	return validation.NewValidationResult()
}

// LengthBetween validates that a string has between min and max characters
func LengthBetween(min, max int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		n := utf8.RuneCountInString(str)
		if n < min || n > max {
			return validation.NewValidationError(validation.CodeLength,
				fmt.Sprintf("length must be between %d and %d, got %d", min, max, n))
		}
		return validation.NewValidationResult()
	}
}

// Pattern validates that a string matches the whole of a compiled expression.
// The expression should be anchored.
func Pattern(re *regexp.Regexp) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		if !re.MatchString(str) {
			return validation.NewValidationError(validation.CodePattern,
				fmt.Sprintf("does not match required pattern %s", re.String()))
		}
		return validation.NewValidationResult()
	}
}

// In validates that a string is one of the allowed values
func In(allowed ...string) validation.ValidatorFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		if _, found := set[str]; !found {
			return validation.NewValidationError(validation.CodeCustom,
				fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
		}
		return validation.NewValidationResult()
	}
}

// NotIn validates that a string is none of the forbidden values
func NotIn(forbidden ...string) validation.ValidatorFunc {
	set := make(map[string]struct{}, len(forbidden))
	for _, f := range forbidden {
		set[f] = struct{}{}
	}
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		if _, found := set[str]; found {
			return validation.NewValidationError(validation.CodeCustom,
				fmt.Sprintf("must not be one of: %s", strings.Join(forbidden, ", ")))
		}
		return validation.NewValidationResult()
	}
}

// Custom creates a validator from a predicate and a failure message
func Custom(fn func(string) bool, message string) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		if !fn(str) {
			return validation.NewValidationError(validation.CodeCustom, message)
		}
		return validation.NewValidationResult()
	}
}
