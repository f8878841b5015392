// File: fields.go
// Title: Facility Field Value Objects
// Description: FacilityName, Location, Time and Capacity with their
//              validation rules and constraint messages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package facility

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/sportspa/foundation/core/validation"
	"github.com/msto63/sportspa/foundation/utils/validationx"
)

const (
	NameConstraints     = "Facility names should only contain alphanumeric characters and spaces, and it should not be blank"
	LocationConstraints = "Locations can take any values, and it should not be blank"
	TimeConstraints     = "Time should be in HH:MM format using the 24-hour clock, e.g. 09:30"
	CapacityConstraints = "Capacity should be a positive integer"
)

var (
	nameRule = validation.NewValidatorChain("facilityName").
			StopOnFirstError(true).
			AddFunc(validationx.NotBlank).
			AddFunc(validationx.Pattern(regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)))

	locationRule = validation.NewValidatorChain("location").
			StopOnFirstError(true).
			AddFunc(validationx.NotBlank).
			AddFunc(validationx.Pattern(regexp.MustCompile(`^\S`)))

	timeRule = validation.NewValidatorChain("time").
			StopOnFirstError(true).
			AddFunc(validationx.Pattern(regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)))

	capacityRule = validation.NewValidatorChain("capacity").
			StopOnFirstError(true).
			AddFunc(validationx.Numeric).
			AddFunc(validationx.Custom(isPositiveInt, "must be a positive integer"))
)

func isPositiveInt(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

// Name is the name of a facility
type Name struct{ value string }

// IsValidName reports whether raw is a valid facility name
func IsValidName(raw string) bool { return nameRule.Validate(raw).Valid }

// NewName creates a Name or returns a validation error
func NewName(raw string) (Name, error) {
	if result := nameRule.Validate(raw); !result.Valid {
		return Name{}, result.ToErrorWithMessage(NameConstraints)
	}
	return Name{value: raw}, nil
}

func (n Name) String() string          { return n.value }
func (n Name) Equals(other Name) bool { return n.value == other.value }

// Location is where a facility is
type Location struct{ value string }

// IsValidLocation reports whether raw is a valid location
func IsValidLocation(raw string) bool { return locationRule.Validate(raw).Valid }

// NewLocation creates a Location or returns a validation error
func NewLocation(raw string) (Location, error) {
	if result := locationRule.Validate(raw); !result.Valid {
		return Location{}, result.ToErrorWithMessage(LocationConstraints)
	}
	return Location{value: raw}, nil
}

func (l Location) String() string              { return l.value }
func (l Location) Equals(other Location) bool { return l.value == other.value }

// Time is the start of a booked slot, HH:MM on a 24-hour clock
type Time struct{ value string }

// IsValidTime reports whether raw is a valid HH:MM time
func IsValidTime(raw string) bool { return timeRule.Validate(raw).Valid }

// NewTime creates a Time or returns a validation error
func NewTime(raw string) (Time, error) {
	if result := timeRule.Validate(raw); !result.Valid {
		return Time{}, result.ToErrorWithMessage(TimeConstraints)
	}
	return Time{value: raw}, nil
}

// Clock returns the hour and minute
func (t Time) Clock() (hour, minute int) {
	parts := strings.SplitN(t.value, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute
}

func (t Time) String() string          { return t.value }
func (t Time) Equals(other Time) bool { return t.value == other.value }

// Capacity is the number of members a facility slot holds
type Capacity struct {
	value string
	n     int
}

// IsValidCapacity reports whether raw is a positive integer that fits an int
func IsValidCapacity(raw string) bool { return capacityRule.Validate(raw).Valid }

// NewCapacity creates a Capacity or returns a validation error
func NewCapacity(raw string) (Capacity, error) {
	if result := capacityRule.Validate(raw); !result.Valid {
		return Capacity{}, result.ToErrorWithMessage(CapacityConstraints)
	}
	n, _ := strconv.Atoi(raw)
	return Capacity{value: raw, n: n}, nil
}

// Int returns the numeric capacity
func (c Capacity) Int() int { return c.n }

func (c Capacity) String() string              { return c.value }
func (c Capacity) Equals(other Capacity) bool { return c.value == other.value }
