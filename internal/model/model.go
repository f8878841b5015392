// File: model.go
// Title: In-Memory Address Book Model
// Description: Holds members, facilities and aliases for one process, with
//              filtered views used by the list and find commands. Safe for
//              concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

// Package model is the in-memory address book of members, facilities and
// command aliases.
package model

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	"github.com/msto63/sportspa/internal/model/alias"
	"github.com/msto63/sportspa/internal/model/facility"
	"github.com/msto63/sportspa/internal/model/member"
)

// Messages for rejected model changes
const (
	MessageDuplicateMember   = "This member already exists in the address book"
	MessageDuplicateFacility = "This facility already exists in the address book"
	MessageMemberNotFound    = "The member does not exist in the address book"
	MessageFacilityNotFound  = "The facility does not exist in the address book"
)

// MemberPredicate selects members for the filtered view
type MemberPredicate func(member.Member) bool

// FacilityPredicate selects facilities for the filtered view
type FacilityPredicate func(facility.Facility) bool

// ShowAllMembers selects every member
func ShowAllMembers(member.Member) bool { return true }

// ShowAllFacilities selects every facility
func ShowAllFacilities(facility.Facility) bool { return true }

// Model is the address book together with the currently displayed views
type Model struct {
	mu sync.RWMutex

	members    []member.Member
	facilities []facility.Facility
	aliases    map[string]alias.Alias

	memberFilter   MemberPredicate
	facilityFilter FacilityPredicate
}

// New creates an empty model showing everything
func New() *Model {
	return &Model{
		aliases:        make(map[string]alias.Alias),
		memberFilter:   ShowAllMembers,
		facilityFilter: ShowAllFacilities,
	}
}

// HasMember reports whether a member with the same identity exists
func (m *Model) HasMember(candidate member.Member) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hasMemberLocked(candidate)
}

func (m *Model) hasMemberLocked(candidate member.Member) bool {
	return lo.ContainsBy(m.members, candidate.IsSameMember)
}

// AddMember appends a member. Duplicates are rejected.
func (m *Model) AddMember(newMember member.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasMemberLocked(newMember) {
		return spaerror.New(MessageDuplicateMember).
			WithCode(spaerror.CodeDuplicateEntry).
			WithOperation("model.AddMember").
			WithDetail("member", newMember.Name().String())
	}
	m.members = append(m.members, newMember)
	return nil
}

// SetMember replaces target with edited. edited may not take the identity
// of another existing member.
func (m *Model) SetMember(target, edited member.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, pos, found := lo.FindIndexOf(m.members, target.Equals)
	if !found {
		return spaerror.New(MessageMemberNotFound).
			WithCode(spaerror.CodeNotFound).
			WithOperation("model.SetMember")
	}
	if !target.IsSameMember(edited) && m.hasMemberLocked(edited) {
		return spaerror.New(MessageDuplicateMember).
			WithCode(spaerror.CodeDuplicateEntry).
			WithOperation("model.SetMember").
			WithDetail("member", edited.Name().String())
	}
	m.members[pos] = edited
	return nil
}

// DeleteMember removes target
func (m *Model) DeleteMember(target member.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, pos, found := lo.FindIndexOf(m.members, target.Equals)
	if !found {
		return spaerror.New(MessageMemberNotFound).
			WithCode(spaerror.CodeNotFound).
			WithOperation("model.DeleteMember")
	}
	m.members = append(m.members[:pos:pos], m.members[pos+1:]...)
	return nil
}

// Members returns every member in insertion order
func (m *Model) Members() []member.Member {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]member.Member(nil), m.members...)
}

// FilteredMembers returns the members selected by the current filter
func (m *Model) FilteredMembers() []member.Member {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Filter(m.members, func(mem member.Member, _ int) bool { return m.memberFilter(mem) })
}

// UpdateMemberFilter changes the member view. A nil predicate shows all.
func (m *Model) UpdateMemberFilter(predicate MemberPredicate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if predicate == nil {
		predicate = ShowAllMembers
	}
	m.memberFilter = predicate
}

// HasFacility reports whether a facility with the same identity exists
func (m *Model) HasFacility(candidate facility.Facility) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.ContainsBy(m.facilities, candidate.IsSameFacility)
}

// AddFacility appends a facility. Duplicates are rejected.
func (m *Model) AddFacility(newFacility facility.Facility) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lo.ContainsBy(m.facilities, newFacility.IsSameFacility) {
		return spaerror.New(MessageDuplicateFacility).
			WithCode(spaerror.CodeDuplicateEntry).
			WithOperation("model.AddFacility").
			WithDetail("facility", newFacility.Name().String())
	}
	m.facilities = append(m.facilities, newFacility)
	return nil
}

// DeleteFacility removes target
func (m *Model) DeleteFacility(target facility.Facility) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, pos, found := lo.FindIndexOf(m.facilities, target.Equals)
	if !found {
		return spaerror.New(MessageFacilityNotFound).
			WithCode(spaerror.CodeNotFound).
			WithOperation("model.DeleteFacility")
	}
	m.facilities = append(m.facilities[:pos:pos], m.facilities[pos+1:]...)
	return nil
}

// Facilities returns every facility in insertion order
func (m *Model) Facilities() []facility.Facility {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]facility.Facility(nil), m.facilities...)
}

// FilteredFacilities returns the facilities selected by the current filter
func (m *Model) FilteredFacilities() []facility.Facility {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Filter(m.facilities, func(f facility.Facility, _ int) bool { return m.facilityFilter(f) })
}

// UpdateFacilityFilter changes the facility view. A nil predicate shows all.
func (m *Model) UpdateFacilityFilter(predicate FacilityPredicate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if predicate == nil {
		predicate = ShowAllFacilities
	}
	m.facilityFilter = predicate
}

// AddAlias registers a, replacing any alias with the same shortcut
func (m *Model) AddAlias(a alias.Alias) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aliases[a.Shortcut().String()] = a
}

// RemoveAlias deletes the alias for shortcut and reports whether it existed
func (m *Model) RemoveAlias(shortcut alias.Shortcut) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.aliases[shortcut.String()]; !ok {
		return false
	}
	delete(m.aliases, shortcut.String())
	return true
}

// ResolveAlias returns the command word registered for word
func (m *Model) ResolveAlias(word string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.aliases[word]
	if !ok {
		return "", false
	}
	return a.CommandWord().String(), true
}

// Aliases returns every alias sorted by shortcut
func (m *Model) Aliases() []alias.Alias {
	m.mu.RLock()
	defer m.mu.RUnlock()
	aliases := lo.Values(m.aliases)
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Shortcut().String() < aliases[j].Shortcut().String()
	})
	return aliases
}

// Clear removes all members and facilities and resets the views. Aliases
// are user preferences and survive.
func (m *Model) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members = nil
	m.facilities = nil
	m.memberFilter = ShowAllMembers
	m.facilityFilter = ShowAllFacilities
}
