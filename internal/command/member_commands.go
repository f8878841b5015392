// File: member_commands.go
// Title: Member Commands
// Description: addm, editm, deletem, findm, listm and setm.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package command

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/msto63/sportspa/foundation/utils/stringx"
	"github.com/msto63/sportspa/internal/index"
	"github.com/msto63/sportspa/internal/model"
	"github.com/msto63/sportspa/internal/model/alias"
	"github.com/msto63/sportspa/internal/model/member"
)

const (
	AddMemberUsage = alias.WordAddMember + ": Adds a member to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: " + alias.WordAddMember + " n/John Doe p/98765432 e/johnd@example.com " +
		"a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney"

	EditMemberUsage = alias.WordEditMember + ": Edits the details of the member identified " +
		"by the index number used in the displayed member list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) " +
		"[n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: " + alias.WordEditMember + " 1 p/91234567 e/johndoe@example.com"

	DeleteMemberUsage = alias.WordDeleteMember + ": Deletes the member identified by the index number used in the displayed member list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + alias.WordDeleteMember + " 1"

	FindMemberUsage = alias.WordFindMember + ": Finds all members whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + alias.WordFindMember + " alice bob charlie"

	ListMembersUsage = alias.WordListMembers + ": Lists all members in the address book.\n" +
		"Example: " + alias.WordListMembers

	SetMemberAvailabilityUsage = alias.WordSetMember + ": Sets the availability of the member identified " +
		"by the index number used in the displayed member list.\n" +
		"Parameters: INDEX (must be a positive integer) d/DAY [MORE_DAYS]...\n" +
		"Example: " + alias.WordSetMember + " 1 d/MON WED FRI"
)

const (
	MessageAddMemberSuccess       = "New member added: %s"
	MessageEditMemberSuccess      = "Edited member: %s"
	MessageDeleteMemberSuccess    = "Deleted member: %s"
	MessageSetAvailabilitySuccess = "Set availability of %s to %s"
	MessageListMembersSuccess     = "Listed all members"
	MessageNotEdited              = "At least one field to edit must be provided."
)

// AddMember adds a new member
type AddMember struct {
	toAdd member.Member
}

// NewAddMember creates an addm command
func NewAddMember(toAdd member.Member) *AddMember {
	return &AddMember{toAdd: toAdd}
}

func (c *AddMember) Word() string { return alias.WordAddMember }

func (c *AddMember) Execute(m *model.Model) (Result, error) {
	if err := m.AddMember(c.toAdd); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MessageAddMemberSuccess, c.toAdd)), nil
}

func (c *AddMember) Equals(other Command) bool {
	o, ok := other.(*AddMember)
	return ok && c.toAdd.Equals(o.toAdd)
}

// EditMember edits the member at a position of the displayed list
type EditMember struct {
	target     index.Index
	descriptor EditMemberDescriptor
}

// NewEditMember creates an editm command
func NewEditMember(target index.Index, descriptor EditMemberDescriptor) *EditMember {
	return &EditMember{target: target, descriptor: descriptor}
}

func (c *EditMember) Word() string { return alias.WordEditMember }

// Target returns the index of the member to edit
func (c *EditMember) Target() index.Index { return c.target }

// Descriptor returns the fields to replace
func (c *EditMember) Descriptor() EditMemberDescriptor { return c.descriptor }

func (c *EditMember) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredMembers()
	if c.target.ZeroBased() >= len(shown) {
		return Result{}, invalidIndex(MessageInvalidMemberIndex, c.target, len(shown))
	}

	original := shown[c.target.ZeroBased()]
	edited := c.descriptor.Apply(original)
	if err := m.SetMember(original, edited); err != nil {
		return Result{}, err
	}
	m.UpdateMemberFilter(model.ShowAllMembers)
	return NewResult(fmt.Sprintf(MessageEditMemberSuccess, edited)), nil
}

func (c *EditMember) Equals(other Command) bool {
	o, ok := other.(*EditMember)
	return ok && c.target == o.target && c.descriptor.Equals(o.descriptor)
}

// DeleteMember removes the member at a position of the displayed list
type DeleteMember struct {
	target index.Index
}

// NewDeleteMember creates a deletem command
func NewDeleteMember(target index.Index) *DeleteMember {
	return &DeleteMember{target: target}
}

func (c *DeleteMember) Word() string { return alias.WordDeleteMember }

func (c *DeleteMember) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredMembers()
	if c.target.ZeroBased() >= len(shown) {
		return Result{}, invalidIndex(MessageInvalidMemberIndex, c.target, len(shown))
	}

	toDelete := shown[c.target.ZeroBased()]
	if err := m.DeleteMember(toDelete); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MessageDeleteMemberSuccess, toDelete)), nil
}

func (c *DeleteMember) Equals(other Command) bool {
	o, ok := other.(*DeleteMember)
	return ok && c.target == o.target
}

// FindMember narrows the member list to names containing any keyword as a
// whole word
type FindMember struct {
	keywords []string
}

// NewFindMember creates a findm command
func NewFindMember(keywords []string) *FindMember {
	return &FindMember{keywords: append([]string(nil), keywords...)}
}

func (c *FindMember) Word() string { return alias.WordFindMember }

// Matches reports whether the member's name contains any of the keywords
func (c *FindMember) Matches(candidate member.Member) bool {
	return lo.SomeBy(c.keywords, func(keyword string) bool {
		return stringx.ContainsWordIgnoreCase(candidate.Name().String(), keyword)
	})
}

func (c *FindMember) Execute(m *model.Model) (Result, error) {
	m.UpdateMemberFilter(c.Matches)
	shown := m.FilteredMembers()
	return NewResult(listedOverview(MessageMembersListedOverview, len(shown), RenderMembers(shown))), nil
}

func (c *FindMember) Equals(other Command) bool {
	o, ok := other.(*FindMember)
	return ok && slices.Equal(c.keywords, o.keywords)
}

// ListMembers shows every member
type ListMembers struct{}

func (c *ListMembers) Word() string { return alias.WordListMembers }

func (c *ListMembers) Execute(m *model.Model) (Result, error) {
	m.UpdateMemberFilter(model.ShowAllMembers)
	shown := m.FilteredMembers()
	if len(shown) == 0 {
		return NewResult(MessageListMembersSuccess), nil
	}
	return NewResult(MessageListMembersSuccess + "\n" + RenderMembers(shown)), nil
}

func (c *ListMembers) Equals(other Command) bool {
	_, ok := other.(*ListMembers)
	return ok
}

// SetMemberAvailability replaces the availability of the member at a
// position of the displayed list
type SetMemberAvailability struct {
	target       index.Index
	availability member.Availability
}

// NewSetMemberAvailability creates a setm command
func NewSetMemberAvailability(target index.Index, availability member.Availability) *SetMemberAvailability {
	return &SetMemberAvailability{target: target, availability: availability}
}

func (c *SetMemberAvailability) Word() string { return alias.WordSetMember }

func (c *SetMemberAvailability) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredMembers()
	if c.target.ZeroBased() >= len(shown) {
		return Result{}, invalidIndex(MessageInvalidMemberIndex, c.target, len(shown))
	}

	original := shown[c.target.ZeroBased()]
	if err := m.SetMember(original, original.WithAvailability(c.availability)); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MessageSetAvailabilitySuccess, original.Name(), c.availability)), nil
}

func (c *SetMemberAvailability) Equals(other Command) bool {
	o, ok := other.(*SetMemberAvailability)
	return ok && c.target == o.target && c.availability.Equals(o.availability)
}
