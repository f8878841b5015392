// Package testutil builds valid members and facilities for tests.
package testutil

import (
	"github.com/msto63/sportspa/internal/model/facility"
	"github.com/msto63/sportspa/internal/model/member"
	"github.com/msto63/sportspa/internal/model/tag"
)

// Values used by the typical fixtures and the parser tests
const (
	ValidNameAmy    = "Amy Bee"
	ValidNameBob    = "Bob Choo"
	ValidPhoneAmy   = "11111111"
	ValidPhoneBob   = "22222222"
	ValidEmailAmy   = "amy@example.com"
	ValidEmailBob   = "bob@example.com"
	ValidAddressAmy = "Block 312, Amy Street 1"
	ValidAddressBob = "Block 123, Bobby Street 3"
	ValidTagFriend  = "friend"
	ValidTagHusband = "husband"

	ValidFacilityNameCourt = "Court 1"
	ValidFacilityNameField = "Field"
	ValidLocationCourt     = "University Sports Hall"
	ValidLocationField     = "Opposite University Hall"
	ValidTimeCourt         = "11:30"
	ValidTimeField         = "13:00"
	ValidCapacityCourt     = "5"
	ValidCapacityField     = "10"
)

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// MemberBuilder builds members starting from Amy's details
type MemberBuilder struct {
	name, phone, email, address string
	tags                        []string
	availability                string
}

// NewMemberBuilder returns a builder preset with Amy's details
func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		name:    ValidNameAmy,
		phone:   ValidPhoneAmy,
		email:   ValidEmailAmy,
		address: ValidAddressAmy,
	}
}

func (b *MemberBuilder) WithName(name string) *MemberBuilder       { b.name = name; return b }
func (b *MemberBuilder) WithPhone(phone string) *MemberBuilder     { b.phone = phone; return b }
func (b *MemberBuilder) WithEmail(email string) *MemberBuilder     { b.email = email; return b }
func (b *MemberBuilder) WithAddress(address string) *MemberBuilder { b.address = address; return b }
func (b *MemberBuilder) WithTags(tags ...string) *MemberBuilder    { b.tags = tags; return b }

func (b *MemberBuilder) WithAvailability(days string) *MemberBuilder {
	b.availability = days
	return b
}

// Build panics on invalid input
func (b *MemberBuilder) Build() member.Member {
	tags := make([]tag.Tag, 0, len(b.tags))
	for _, t := range b.tags {
		tags = append(tags, must(tag.NewTag(t)))
	}
	m := member.New(
		must(member.NewName(b.name)),
		must(member.NewPhone(b.phone)),
		must(member.NewEmail(b.email)),
		must(member.NewAddress(b.address)),
		tag.NewSet(tags...),
	)
	if b.availability != "" {
		m = m.WithAvailability(must(member.NewAvailability(b.availability)))
	}
	return m
}

// Amy returns the typical member Amy
func Amy() member.Member {
	return NewMemberBuilder().WithTags(ValidTagFriend).Build()
}

// Bob returns the typical member Bob
func Bob() member.Member {
	return NewMemberBuilder().
		WithName(ValidNameBob).
		WithPhone(ValidPhoneBob).
		WithEmail(ValidEmailBob).
		WithAddress(ValidAddressBob).
		WithTags(ValidTagHusband, ValidTagFriend).
		Build()
}

// NewFacility builds a facility and panics on invalid input
func NewFacility(name, location, at, capacity string) facility.Facility {
	return facility.New(
		must(facility.NewName(name)),
		must(facility.NewLocation(location)),
		must(facility.NewTime(at)),
		must(facility.NewCapacity(capacity)),
	)
}

// Court returns the typical facility Court 1
func Court() facility.Facility {
	return NewFacility(ValidFacilityNameCourt, ValidLocationCourt, ValidTimeCourt, ValidCapacityCourt)
}

// Field returns the typical facility Field
func Field() facility.Facility {
	return NewFacility(ValidFacilityNameField, ValidLocationField, ValidTimeField, ValidCapacityField)
}
