// Package error provides structured error handling for the sportspa command layer.
//
// Package: error
// Title: sportspa Error Handling Framework
// Description: Implements a coded error type carrying a severity, an operation
//              name and free-form details. Parsers and commands report every
//              user-visible failure through it so that callers can branch on
//              the kind of failure (format, validation, semantic, execution)
//              while the message stays exactly the text shown to the user.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Command parsing kinds (format, validation, semantic)
//
// Usage:
//   import spaerror "github.com/msto63/sportspa/foundation/core/error"
//
//   err := spaerror.NewValidation(member.PhoneConstraints).
//     WithOperation("parser.ParsePhone").
//     WithDetail("value", raw)
//
//   if spaerror.IsValidation(err) {
//     // the message is the value type's constraint text
//   }
package error
