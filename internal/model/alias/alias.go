// File: alias.go
// Title: Command Aliases
// Description: Built-in command words, user defined shortcuts and the
//              alias that maps one to the other.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

// Package alias lets users define their own shortcuts for built-in commands.
package alias

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/msto63/sportspa/foundation/core/validation"
	"github.com/msto63/sportspa/foundation/utils/validationx"
)

// Built-in command words
const (
	WordAddMember      = "addm"
	WordEditMember     = "editm"
	WordDeleteMember   = "deletem"
	WordFindMember     = "findm"
	WordListMembers    = "listm"
	WordSetMember      = "setm"
	WordAddFacility    = "addf"
	WordDeleteFacility = "deletef"
	WordListFacilities = "listf"
	WordAlias          = "alias"
	WordUnalias        = "unalias"
	WordClear          = "clear"
	WordHelp           = "help"
	WordExit           = "exit"
)

// BuiltinWords lists every built-in command word
var BuiltinWords = []string{
	WordAddMember, WordEditMember, WordDeleteMember, WordFindMember, WordListMembers, WordSetMember,
	WordAddFacility, WordDeleteFacility, WordListFacilities,
	WordAlias, WordUnalias, WordClear, WordHelp, WordExit,
}

const ShortcutConstraints = "Shortcuts should be a single word without spaces and must not be a built-in command word"

// CommandWordConstraints is reported for an unknown command word
var CommandWordConstraints = "Command word should be one of: " + strings.Join(BuiltinWords, ", ")

var (
	shortcutRule = validation.NewValidatorChain("shortcut").
			StopOnFirstError(true).
			AddFunc(validationx.Pattern(regexp.MustCompile(`^\S+$`))).
			AddFunc(validationx.NotIn(BuiltinWords...))

	commandWordRule = validation.NewValidatorChain("commandWord").
			StopOnFirstError(true).
			AddFunc(validationx.In(BuiltinWords...))
)

// Shortcut is a user defined name for a command word
type Shortcut struct{ value string }

// IsValidShortcut reports whether raw is a single word that does not shadow
// a built-in command
func IsValidShortcut(raw string) bool { return shortcutRule.Validate(raw).Valid }

// NewShortcut creates a Shortcut or returns a validation error
func NewShortcut(raw string) (Shortcut, error) {
	if result := shortcutRule.Validate(raw); !result.Valid {
		return Shortcut{}, result.ToErrorWithMessage(ShortcutConstraints)
	}
	return Shortcut{value: raw}, nil
}

func (s Shortcut) String() string              { return s.value }
func (s Shortcut) Equals(other Shortcut) bool { return s.value == other.value }

// CommandWord is a built-in command word
type CommandWord struct{ value string }

// IsValidCommandWord reports whether raw is a built-in command word
func IsValidCommandWord(raw string) bool { return commandWordRule.Validate(raw).Valid }

// NewCommandWord creates a CommandWord or returns a validation error
func NewCommandWord(raw string) (CommandWord, error) {
	if result := commandWordRule.Validate(raw); !result.Valid {
		return CommandWord{}, result.ToErrorWithMessage(CommandWordConstraints)
	}
	return CommandWord{value: raw}, nil
}

func (c CommandWord) String() string                 { return c.value }
func (c CommandWord) Equals(other CommandWord) bool { return c.value == other.value }

// Alias maps a shortcut to a command word
type Alias struct {
	shortcut    Shortcut
	commandWord CommandWord
}

// New creates an alias
func New(shortcut Shortcut, commandWord CommandWord) Alias {
	return Alias{shortcut: shortcut, commandWord: commandWord}
}

func (a Alias) Shortcut() Shortcut       { return a.shortcut }
func (a Alias) CommandWord() CommandWord { return a.commandWord }

// Equals compares shortcut and command word
func (a Alias) Equals(other Alias) bool {
	return a.shortcut.Equals(other.shortcut) && a.commandWord.Equals(other.commandWord)
}

func (a Alias) String() string {
	return fmt.Sprintf("%s -> %s", a.shortcut, a.commandWord)
}
