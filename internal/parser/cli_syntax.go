// File: cli_syntax.go
// Title: Argument Prefixes
// Description: Prefix markers recognized in command arguments.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package parser

// Prefix marks the start of an argument value, such as "n/"
type Prefix string

func (p Prefix) String() string { return string(p) }

const (
	PrefixName         Prefix = "n/"
	PrefixPhone        Prefix = "p/"
	PrefixEmail        Prefix = "e/"
	PrefixAddress      Prefix = "a/"
	PrefixTag          Prefix = "t/"
	PrefixAvailability Prefix = "d/"
	PrefixLocation     Prefix = "l/"
	PrefixTime         Prefix = "t/"
	PrefixCapacity     Prefix = "c/"
	PrefixShortcut     Prefix = "s/"
	PrefixCommandWord  Prefix = "cw/"

	// preamblePrefix keys the preamble; it never occurs in input
	preamblePrefix Prefix = ""
)
