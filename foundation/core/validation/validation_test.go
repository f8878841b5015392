// File: validation_test.go
// Title: Core Validation Framework Tests
// Description: Tests for validation results, chains and the conversion of
//              failed results to coded errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02

package validation

import (
	"strings"
	"testing"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
)

func TestValidationResult(t *testing.T) {
	t.Run("NewValidationResult creates valid result", func(t *testing.T) {
		result := NewValidationResult()
		if !result.Valid {
			t.Error("Expected valid result")
		}
		if len(result.Errors) != 0 {
			t.Error("Expected no errors")
		}
		if result.ToError() != nil {
			t.Error("Valid result should convert to nil error")
		}
	})

	t.Run("NewValidationError creates invalid result", func(t *testing.T) {
		result := NewValidationError(CodeRequired, "value required")
		if result.Valid {
			t.Error("Expected invalid result")
		}
		if len(result.Errors) != 1 {
			t.Errorf("Expected 1 error, got %d", len(result.Errors))
		}
		if result.Errors[0].Code != CodeRequired {
			t.Errorf("Expected code %s, got %s", CodeRequired, result.Errors[0].Code)
		}
	})

	t.Run("FirstError returns first error", func(t *testing.T) {
		result := NewValidationResult()
		result.AddError(CodeRequired, "first error")
		result.AddError(CodeFormat, "second error")

		firstError := result.FirstError()
		if firstError == nil {
			t.Fatal("Expected first error")
		}
		if firstError.Message != "first error" {
			t.Errorf("Expected 'first error', got %s", firstError.Message)
		}
	})

	t.Run("ToError converts to validation error", func(t *testing.T) {
		result := NewValidationErrorWithField(CodePattern, "email", "invalid email", "invalid@")
		err := result.ToError()

		if err == nil {
			t.Fatal("Expected error")
		}
		if err.Error() != "invalid email" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !spaerror.IsValidation(err) {
			t.Error("Expected a validation error")
		}
	})

	t.Run("ToErrorWithMessage replaces message", func(t *testing.T) {
		result := NewValidationError(CodePattern, "does not match required pattern")
		err := result.ToErrorWithMessage("Tags names should be alphanumeric")

		if err.Error() != "Tags names should be alphanumeric" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("String mentions first message", func(t *testing.T) {
		result := NewValidationErrorWithField(CodeLength, "name", "too long", "x")
		if !strings.Contains(result.String(), "too long") {
			t.Errorf("String() = %s", result.String())
		}
	})
}

func TestValidatorChain(t *testing.T) {
	alwaysValid := ValidatorFunc(func(value interface{}) ValidationResult {
		return NewValidationResult()
	})

	alwaysInvalid := ValidatorFunc(func(value interface{}) ValidationResult {
		return NewValidationError(CodeCustom, "always fails")
	})

	requiredValidator := ValidatorFunc(func(value interface{}) ValidationResult {
		if value == nil || value == "" {
			return NewValidationError(CodeRequired, "value is required")
		}
		return NewValidationResult()
	})

	t.Run("Basic validator chain", func(t *testing.T) {
		chain := NewValidatorChain("test-chain").
			Add(alwaysValid).
			Add(alwaysValid)

		if result := chain.Validate("test-value"); !result.Valid {
			t.Errorf("Expected valid result, got: %s", result.String())
		}

		failing := NewValidatorChain("failing-chain").
			Add(alwaysValid).
			Add(alwaysInvalid)

		if result := failing.Validate("test-value"); result.Valid {
			t.Error("Expected invalid result")
		}
	})

	t.Run("Collects all errors by default", func(t *testing.T) {
		chain := NewValidatorChain().
			AddFunc(requiredValidator).
			AddFunc(alwaysInvalid)

		result := chain.Validate("")
		if len(result.Errors) != 2 {
			t.Errorf("Expected 2 errors, got %d", len(result.Errors))
		}
	})

	t.Run("Stop on first error", func(t *testing.T) {
		chain := NewValidatorChain("stop").
			StopOnFirstError(true).
			AddFunc(requiredValidator).
			AddFunc(alwaysInvalid)

		result := chain.Validate("")
		if len(result.Errors) != 1 {
			t.Fatalf("Expected 1 error, got %d", len(result.Errors))
		}
		if result.Errors[0].Code != CodeRequired {
			t.Errorf("Expected %s, got %s", CodeRequired, result.Errors[0].Code)
		}
		if result.Context["executedValidators"] != 1 {
			t.Errorf("executedValidators = %v", result.Context["executedValidators"])
		}
	})

	t.Run("Chain metadata", func(t *testing.T) {
		chain := NewValidatorChain("meta").AddFunc(alwaysValid)
		if chain.Name() != "meta" || chain.Length() != 1 {
			t.Errorf("unexpected chain metadata: %s", chain.String())
		}
	})
}

func TestCombine(t *testing.T) {
	combined := Combine(
		NewValidationResult(),
		NewValidationError(CodeFormat, "a"),
		NewValidationError(CodeRange, "b"),
	)

	if combined.Valid {
		t.Error("Expected invalid combined result")
	}
	if got := combined.ErrorMessages(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("ErrorMessages() = %v", got)
	}
}
