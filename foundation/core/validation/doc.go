// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Provides the validator interface, structured validation
//              results and validator chains used to express the rules of the
//              sportspa value objects.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2025-03-02 v0.2.0: Trimmed to sequential chains, results map to coded errors

/*
Package validation provides the validation framework infrastructure.

It contains no concrete rules. Rules live in utils/validationx and are
composed with ValidatorChain by the value object packages:

	var phoneRule = validation.NewValidatorChain("phone").
		StopOnFirstError(true).
		AddFunc(validationx.Numeric).
		AddFunc(validationx.LengthBetween(3, 15))

	ok := phoneRule.Validate("91234567").Valid

A failed ValidationResult converts to a validation error of
foundation/core/error with ToError, or with ToErrorWithMessage when the
caller owns a fixed constraint message.
*/
package validation
