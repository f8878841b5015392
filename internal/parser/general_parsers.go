// File: general_parsers.go
// Title: General Command Parsers
// Description: Parsers for alias and unalias.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package parser

import (
	"strings"

	"github.com/msto63/sportspa/internal/command"
	"github.com/msto63/sportspa/internal/model/alias"
)

// ParseCreateAlias parses s/SHORTCUT cw/COMMAND_WORD
func ParseCreateAlias(args string) (command.Command, error) {
	argMap := Tokenize(args, PrefixShortcut, PrefixCommandWord)
	if !argMap.HasAll(PrefixShortcut, PrefixCommandWord) || argMap.Preamble() != "" {
		return nil, invalidFormat(command.AliasUsage)
	}

	rawShortcut, _ := argMap.Value(PrefixShortcut)
	shortcut, err := ParseShortcut(rawShortcut)
	if err != nil {
		return nil, err
	}
	rawWord, _ := argMap.Value(PrefixCommandWord)
	word, err := ParseCommandWord(rawWord)
	if err != nil {
		return nil, err
	}
	return command.NewCreateAlias(alias.New(shortcut, word)), nil
}

// ParseRemoveAlias parses the single shortcut argument of unalias
func ParseRemoveAlias(args string) (command.Command, error) {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return nil, invalidFormat(command.UnaliasUsage)
	}
	shortcut, err := ParseShortcut(trimmed)
	if err != nil {
		return nil, err
	}
	return command.NewRemoveAlias(shortcut), nil
}
