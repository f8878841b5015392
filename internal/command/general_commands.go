// File: general_commands.go
// Title: General Commands
// Description: alias, unalias, clear, help and exit.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package command

import (
	"fmt"
	"strings"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	"github.com/msto63/sportspa/internal/model"
	"github.com/msto63/sportspa/internal/model/alias"
)

const (
	AliasUsage = alias.WordAlias + ": Creates a shortcut for a built-in command word. " +
		"An existing shortcut is replaced.\n" +
		"Parameters: s/SHORTCUT cw/COMMAND_WORD\n" +
		"Example: " + alias.WordAlias + " s/lf cw/listf"

	UnaliasUsage = alias.WordUnalias + ": Removes a shortcut.\n" +
		"Parameters: SHORTCUT\n" +
		"Example: " + alias.WordUnalias + " lf"

	ClearUsage = alias.WordClear + ": Removes all members and facilities.\n" +
		"Example: " + alias.WordClear

	HelpUsage = alias.WordHelp + ": Shows how to use every command.\n" +
		"Example: " + alias.WordHelp

	ExitUsage = alias.WordExit + ": Exits the program.\n" +
		"Example: " + alias.WordExit
)

const (
	MessageAliasSuccess     = "Created alias %s for %s"
	MessageUnaliasSuccess   = "Removed alias %s"
	MessageUnknownShortcut  = "Shortcut %s does not exist"
	MessageClearSuccess     = "Address book has been cleared!"
	MessageExitAcknowledged = "Exiting SportsPA as requested ..."
)

// Usages lists the usage text of every built-in command in help order
var Usages = []string{
	AddMemberUsage, EditMemberUsage, DeleteMemberUsage, FindMemberUsage, ListMembersUsage, SetMemberAvailabilityUsage,
	AddFacilityUsage, DeleteFacilityUsage, ListFacilitiesUsage,
	AliasUsage, UnaliasUsage, ClearUsage, HelpUsage, ExitUsage,
}

// CreateAlias registers a shortcut for a command word
type CreateAlias struct {
	alias alias.Alias
}

// NewCreateAlias creates an alias command
func NewCreateAlias(a alias.Alias) *CreateAlias {
	return &CreateAlias{alias: a}
}

func (c *CreateAlias) Word() string { return alias.WordAlias }

func (c *CreateAlias) Execute(m *model.Model) (Result, error) {
	m.AddAlias(c.alias)
	return NewResult(fmt.Sprintf(MessageAliasSuccess, c.alias.Shortcut(), c.alias.CommandWord())), nil
}

func (c *CreateAlias) Equals(other Command) bool {
	o, ok := other.(*CreateAlias)
	return ok && c.alias.Equals(o.alias)
}

// RemoveAlias deletes a shortcut
type RemoveAlias struct {
	shortcut alias.Shortcut
}

// NewRemoveAlias creates an unalias command
func NewRemoveAlias(shortcut alias.Shortcut) *RemoveAlias {
	return &RemoveAlias{shortcut: shortcut}
}

func (c *RemoveAlias) Word() string { return alias.WordUnalias }

func (c *RemoveAlias) Execute(m *model.Model) (Result, error) {
	if !m.RemoveAlias(c.shortcut) {
		return Result{}, spaerror.Newf(MessageUnknownShortcut, c.shortcut).
			WithCode(spaerror.CodeNotFound).
			WithDetail("shortcut", c.shortcut.String())
	}
	return NewResult(fmt.Sprintf(MessageUnaliasSuccess, c.shortcut)), nil
}

func (c *RemoveAlias) Equals(other Command) bool {
	o, ok := other.(*RemoveAlias)
	return ok && c.shortcut.Equals(o.shortcut)
}

// Clear empties the address book
type Clear struct{}

func (c *Clear) Word() string { return alias.WordClear }

func (c *Clear) Execute(m *model.Model) (Result, error) {
	m.Clear()
	return NewResult(MessageClearSuccess), nil
}

func (c *Clear) Equals(other Command) bool {
	_, ok := other.(*Clear)
	return ok
}

// Help shows the usage of every command and the user's shortcuts
type Help struct{}

func (c *Help) Word() string { return alias.WordHelp }

func (c *Help) Execute(m *model.Model) (Result, error) {
	feedback := strings.Join(Usages, "\n\n")
	if aliases := m.Aliases(); len(aliases) > 0 {
		feedback += "\n\nShortcuts:\n" + RenderAliases(aliases)
	}
	return NewResult(feedback), nil
}

func (c *Help) Equals(other Command) bool {
	_, ok := other.(*Help)
	return ok
}

// Exit ends the session
type Exit struct{}

func (c *Exit) Word() string { return alias.WordExit }

func (c *Exit) Execute(*model.Model) (Result, error) {
	return Result{Feedback: MessageExitAcknowledged, Exit: true}, nil
}

func (c *Exit) Equals(other Command) bool {
	_, ok := other.(*Exit)
	return ok
}
