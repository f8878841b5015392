// File: availability.go
// Title: Member Availability
// Description: Set of weekdays a member is available on. Input is
//              normalized before validation: upper-cased, split on
//              whitespace, duplicates collapsed in first-seen order.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package member

import (
	"strings"

	"github.com/samber/lo"

	"github.com/msto63/sportspa/foundation/core/validation"
	"github.com/msto63/sportspa/foundation/utils/validationx"
)

// AvailabilityConstraints is reported when availability is invalid
const AvailabilityConstraints = "Availability should be a list of days of the week separated by spaces, e.g. MON TUE FRI"

// Weekdays lists the accepted day tokens in calendar order
var Weekdays = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

var dayRule = validation.NewValidatorChain("availability").
	StopOnFirstError(true).
	AddFunc(validationx.In(Weekdays...))

// Availability is a non-empty, duplicate-free list of weekdays. The zero
// value means "not set".
type Availability struct {
	days []string
}

// NormalizeDays upper-cases raw, splits it on whitespace and drops duplicate
// tokens, keeping the first occurrence of each
func NormalizeDays(raw string) []string {
	return lo.Uniq(strings.Fields(strings.ToUpper(raw)))
}

// IsValidAvailability reports whether days is a non-empty list of weekday
// tokens
func IsValidAvailability(days []string) bool {
	if len(days) == 0 {
		return false
	}
	return lo.EveryBy(days, func(day string) bool {
		return dayRule.Validate(day).Valid
	})
}

// NewAvailability normalizes raw and creates an Availability or returns a
// validation error
func NewAvailability(raw string) (Availability, error) {
	days := NormalizeDays(raw)
	if len(days) == 0 {
		return Availability{}, validation.NewValidationError(validation.CodeRequired, "no days given").
			ToErrorWithMessage(AvailabilityConstraints)
	}
	for _, day := range days {
		if result := dayRule.Validate(day); !result.Valid {
			return Availability{}, result.ToErrorWithMessage(AvailabilityConstraints)
		}
	}
	return Availability{days: days}, nil
}

// Days returns the days in canonical order of entry
func (a Availability) Days() []string { return append([]string(nil), a.days...) }

// IsSet reports whether any day is present
func (a Availability) IsSet() bool { return len(a.days) > 0 }

// Includes reports whether day is in the availability, ignoring case
func (a Availability) Includes(day string) bool {
	return lo.Contains(a.days, strings.ToUpper(strings.TrimSpace(day)))
}

// String returns the canonical form: days joined by single spaces
func (a Availability) String() string { return strings.Join(a.days, " ") }

// Equals compares the canonical forms
func (a Availability) Equals(other Availability) bool { return a.String() == other.String() }
