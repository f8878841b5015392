// File: facility_commands.go
// Title: Facility Commands
// Description: addf, deletef and listf.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package command

import (
	"fmt"

	"github.com/msto63/sportspa/internal/index"
	"github.com/msto63/sportspa/internal/model"
	"github.com/msto63/sportspa/internal/model/alias"
	"github.com/msto63/sportspa/internal/model/facility"
)

const (
	AddFacilityUsage = alias.WordAddFacility + ": Adds a facility to the address book. " +
		"Parameters: n/FACILITY_NAME l/LOCATION t/TIME c/CAPACITY\n" +
		"Example: " + alias.WordAddFacility + " n/Court 1 l/University Sports Hall t/11:30 c/5"

	DeleteFacilityUsage = alias.WordDeleteFacility + ": Deletes the facility identified by the index number used in the displayed facility list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + alias.WordDeleteFacility + " 1"

	ListFacilitiesUsage = alias.WordListFacilities + ": Lists all facilities in the address book.\n" +
		"Example: " + alias.WordListFacilities
)

const (
	MessageAddFacilitySuccess    = "New facility added: %s"
	MessageDeleteFacilitySuccess = "Deleted facility: %s"
	MessageListFacilitiesSuccess = "Listed all facilities"
)

// AddFacility adds a new facility
type AddFacility struct {
	toAdd facility.Facility
}

// NewAddFacility creates an addf command
func NewAddFacility(toAdd facility.Facility) *AddFacility {
	return &AddFacility{toAdd: toAdd}
}

func (c *AddFacility) Word() string { return alias.WordAddFacility }

func (c *AddFacility) Execute(m *model.Model) (Result, error) {
	if err := m.AddFacility(c.toAdd); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MessageAddFacilitySuccess, c.toAdd)), nil
}

func (c *AddFacility) Equals(other Command) bool {
	o, ok := other.(*AddFacility)
	return ok && c.toAdd.Equals(o.toAdd)
}

// DeleteFacility removes the facility at a position of the displayed list
type DeleteFacility struct {
	target index.Index
}

// NewDeleteFacility creates a deletef command
func NewDeleteFacility(target index.Index) *DeleteFacility {
	return &DeleteFacility{target: target}
}

func (c *DeleteFacility) Word() string { return alias.WordDeleteFacility }

func (c *DeleteFacility) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredFacilities()
	if c.target.ZeroBased() >= len(shown) {
		return Result{}, invalidIndex(MessageInvalidFacilityIndex, c.target, len(shown))
	}

	toDelete := shown[c.target.ZeroBased()]
	if err := m.DeleteFacility(toDelete); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MessageDeleteFacilitySuccess, toDelete)), nil
}

func (c *DeleteFacility) Equals(other Command) bool {
	o, ok := other.(*DeleteFacility)
	return ok && c.target == o.target
}

// ListFacilities shows every facility
type ListFacilities struct{}

func (c *ListFacilities) Word() string { return alias.WordListFacilities }

func (c *ListFacilities) Execute(m *model.Model) (Result, error) {
	m.UpdateFacilityFilter(model.ShowAllFacilities)
	shown := m.FilteredFacilities()
	if len(shown) == 0 {
		return NewResult(MessageListFacilitiesSuccess), nil
	}
	return NewResult(MessageListFacilitiesSuccess + "\n" + RenderFacilities(shown)), nil
}

func (c *ListFacilities) Equals(other Command) bool {
	_, ok := other.(*ListFacilities)
	return ok
}
