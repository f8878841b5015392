// File: index.go
// Title: List Index
// Description: Position in a displayed list. Stored zero-based, entered and
//              shown one-based.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package index

import "fmt"

// Index is a non-negative list position
type Index struct {
	zeroBased int
}

// FromZeroBased creates an Index from a zero-based position. It panics on a
// negative value, which is always a programming error.
func FromZeroBased(zeroBased int) Index {
	if zeroBased < 0 {
		panic(fmt.Sprintf("index: negative zero-based index %d", zeroBased))
	}
	return Index{zeroBased: zeroBased}
}

// FromOneBased creates an Index from a one-based position. It panics on a
// value below 1.
func FromOneBased(oneBased int) Index {
	if oneBased < 1 {
		panic(fmt.Sprintf("index: one-based index %d is below 1", oneBased))
	}
	return Index{zeroBased: oneBased - 1}
}

// ZeroBased returns the zero-based position
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the one-based position
func (i Index) OneBased() int { return i.zeroBased + 1 }

// String returns the one-based form users see
func (i Index) String() string {
	return fmt.Sprintf("%d", i.OneBased())
}
