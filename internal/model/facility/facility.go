// File: facility.go
// Title: Facility Entity
// Description: A bookable sports facility slot.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

// Package facility holds the facility entity and its value objects.
package facility

import (
	"fmt"
	"strings"
)

// Facility always carries all four fields
type Facility struct {
	name     Name
	location Location
	time     Time
	capacity Capacity
}

// New creates a facility
func New(name Name, location Location, time Time, capacity Capacity) Facility {
	return Facility{name: name, location: location, time: time, capacity: capacity}
}

func (f Facility) Name() Name         { return f.name }
func (f Facility) Location() Location { return f.location }
func (f Facility) Time() Time         { return f.time }
func (f Facility) Capacity() Capacity { return f.capacity }

// IsSameFacility reports whether both facilities share name and location,
// ignoring case
func (f Facility) IsSameFacility(other Facility) bool {
	return strings.EqualFold(f.name.value, other.name.value) &&
		strings.EqualFold(f.location.value, other.location.value)
}

// Equals compares all four fields
func (f Facility) Equals(other Facility) bool {
	return f.name.Equals(other.name) &&
		f.location.Equals(other.location) &&
		f.time.Equals(other.time) &&
		f.capacity.Equals(other.capacity)
}

func (f Facility) String() string {
	return fmt.Sprintf("%s; Location: %s; Time: %s; Capacity: %s", f.name, f.location, f.time, f.capacity)
}
