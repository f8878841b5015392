// File: doc.go
// Title: Package Documentation for stringx
// Description: String helpers shared by the validation rules, the field
//              parsers and the find commands.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-03-02 v0.3.0: Numeric string checks and word matching for command parsing

// Package stringx provides small, Unicode-safe string operations that the
// standard library does not offer directly.
package stringx
