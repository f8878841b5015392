// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements blank checks, numeric string checks, whitespace
//              splitting and case-insensitive whole-word matching.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-03-02 v0.3.0: IsDigits, IsNonZeroUnsignedInteger, ContainsWordIgnoreCase

package stringx

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsDigits returns true if s is non-empty and consists of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsNonZeroUnsignedInteger returns true if s is the decimal form of an
// integer in [1, MaxInt32]. Signs and whitespace are rejected. Used for
// one-based list indexes.
func IsNonZeroUnsignedInteger(s string) bool {
	if !IsDigits(s) {
		return false
	}
	value, err := strconv.ParseInt(s, 10, 32)
	return err == nil && value > 0
}

// ContainsWordIgnoreCase returns true if sentence contains word as a whole
// whitespace-separated token, ignoring case. word must be a single non-empty
// word.
func ContainsWordIgnoreCase(sentence, word string) bool {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" || len(strings.Fields(trimmed)) != 1 {
		return false
	}
	for _, candidate := range strings.Fields(sentence) {
		if strings.EqualFold(candidate, trimmed) {
			return true
		}
	}
	return false
}

// SplitFirstWord splits s into its first whitespace-delimited word and the
// remainder. The remainder keeps its leading whitespace.
func SplitFirstWord(s string) (word, rest string) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(trimmed, unicode.IsSpace)
	if end < 0 {
		return trimmed, ""
	}
	return trimmed[:end], trimmed[end:]
}

// Truncate shortens s to at most maxLen runes, appending ellipsis when it
// cut anything. The ellipsis counts towards maxLen.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	keep := maxLen - utf8.RuneCountInString(ellipsis)
	if keep <= 0 {
		return string([]rune(ellipsis)[:maxLen])
	}
	return string([]rune(s)[:keep]) + ellipsis
}
