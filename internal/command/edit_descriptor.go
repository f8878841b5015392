// File: edit_descriptor.go
// Title: Member Edit Descriptor
// Description: Optional replacement values for the fields of a member. An
//              absent slot leaves the field unchanged.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package command

import (
	"github.com/msto63/sportspa/internal/model/member"
	"github.com/msto63/sportspa/internal/model/tag"
)

// EditMemberDescriptor is built by the editm parser. The zero value edits
// nothing.
type EditMemberDescriptor struct {
	name    *member.Name
	phone   *member.Phone
	email   *member.Email
	address *member.Address
	tags    *tag.Set
}

func (d *EditMemberDescriptor) SetName(name member.Name)          { d.name = &name }
func (d *EditMemberDescriptor) SetPhone(phone member.Phone)       { d.phone = &phone }
func (d *EditMemberDescriptor) SetEmail(email member.Email)       { d.email = &email }
func (d *EditMemberDescriptor) SetAddress(address member.Address) { d.address = &address }

// SetTags replaces the tags. An empty set clears them.
func (d *EditMemberDescriptor) SetTags(tags tag.Set) { d.tags = &tags }

func (d EditMemberDescriptor) Name() (member.Name, bool)       { return deref(d.name) }
func (d EditMemberDescriptor) Phone() (member.Phone, bool)     { return deref(d.phone) }
func (d EditMemberDescriptor) Email() (member.Email, bool)     { return deref(d.email) }
func (d EditMemberDescriptor) Address() (member.Address, bool) { return deref(d.address) }
func (d EditMemberDescriptor) Tags() (tag.Set, bool)           { return deref(d.tags) }

// IsAnyFieldEdited reports whether at least one slot is present
func (d EditMemberDescriptor) IsAnyFieldEdited() bool {
	return d.name != nil || d.phone != nil || d.email != nil || d.address != nil || d.tags != nil
}

// Apply returns target with every present slot replaced
func (d EditMemberDescriptor) Apply(target member.Member) member.Member {
	name, phone, email, address, tags := target.Name(), target.Phone(), target.Email(), target.Address(), target.Tags()
	if d.name != nil {
		name = *d.name
	}
	if d.phone != nil {
		phone = *d.phone
	}
	if d.email != nil {
		email = *d.email
	}
	if d.address != nil {
		address = *d.address
	}
	if d.tags != nil {
		tags = *d.tags
	}
	return member.New(name, phone, email, address, tags).WithAvailability(target.Availability())
}

// Equals compares slot presence and values
func (d EditMemberDescriptor) Equals(other EditMemberDescriptor) bool {
	return slotEquals(d.name, other.name, member.Name.Equals) &&
		slotEquals(d.phone, other.phone, member.Phone.Equals) &&
		slotEquals(d.email, other.email, member.Email.Equals) &&
		slotEquals(d.address, other.address, member.Address.Equals) &&
		slotEquals(d.tags, other.tags, tag.Set.Equals)
}

func deref[T any](slot *T) (T, bool) {
	if slot == nil {
		var zero T
		return zero, false
	}
	return *slot, true
}

func slotEquals[T any](a, b *T, equals func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equals(*a, *b)
}
