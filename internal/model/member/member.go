// File: member.go
// Title: Member Entity
// Description: A club member with contact details, tags and an optional
//              weekly availability.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package member

import (
	"strings"

	"github.com/msto63/sportspa/internal/model/tag"
)

// Member is immutable; the With* methods return modified copies
type Member struct {
	name         Name
	phone        Phone
	email        Email
	address      Address
	tags         tag.Set
	availability Availability
}

// New creates a member without availability
func New(name Name, phone Phone, email Email, address Address, tags tag.Set) Member {
	return Member{name: name, phone: phone, email: email, address: address, tags: tags}
}

func (m Member) Name() Name                 { return m.name }
func (m Member) Phone() Phone               { return m.phone }
func (m Member) Email() Email               { return m.email }
func (m Member) Address() Address           { return m.address }
func (m Member) Tags() tag.Set              { return m.tags }
func (m Member) Availability() Availability { return m.availability }

// WithAvailability returns a copy with the availability replaced
func (m Member) WithAvailability(availability Availability) Member {
	m.availability = availability
	return m
}

// IsSameMember reports whether both members have the same name, ignoring
// case. Used to reject duplicates.
func (m Member) IsSameMember(other Member) bool {
	return m.name.EqualsIgnoreCase(other.name)
}

// Equals compares all fields
func (m Member) Equals(other Member) bool {
	return m.name.Equals(other.name) &&
		m.phone.Equals(other.phone) &&
		m.email.Equals(other.email) &&
		m.address.Equals(other.address) &&
		m.tags.Equals(other.tags) &&
		m.availability.Equals(other.availability)
}

func (m Member) String() string {
	var b strings.Builder
	b.WriteString(m.name.String())
	b.WriteString("; Phone: ")
	b.WriteString(m.phone.String())
	b.WriteString("; Email: ")
	b.WriteString(m.email.String())
	b.WriteString("; Address: ")
	b.WriteString(m.address.String())
	if !m.tags.IsEmpty() {
		b.WriteString("; Tags: ")
		b.WriteString(m.tags.String())
	}
	if m.availability.IsSet() {
		b.WriteString("; Availability: ")
		b.WriteString(m.availability.String())
	}
	return b.String()
}
