// Package parser turns raw command lines into commands.
//
// Package: parser
// Title: Command Line Parsing
// Description: A command line is a command word followed by arguments. The
//              arguments are split by the tokenizer into a preamble and
//              prefixed values ("n/Court 1"), each value is turned into a
//              value object by a field parser, and a per-command parser
//              assembles the command.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Failures come in three kinds, all *error.Error values from
// foundation/core/error:
//
//   - format errors for a structural problem with the command line,
//     carrying the usage text of the command
//   - validation errors for a value that breaks its type's rule, carrying
//     the type's constraint message
//   - semantic errors for well formed input that means nothing, such as an
//     edit that changes no field
//
// A validation error from a field parser reaches the caller unchanged.
package parser
