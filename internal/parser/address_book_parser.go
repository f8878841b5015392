// File: address_book_parser.go
// Title: Command Dispatch
// Description: Splits the command word from its arguments, resolves user
//              shortcuts and hands the arguments to the parser registered
//              for the command word.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package parser

//go:generate go run go.uber.org/mock/mockgen -source=address_book_parser.go -destination=mocks/mock_address_book_parser.go -package=mocks

import (
	"sort"
	"strings"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	"github.com/msto63/sportspa/foundation/utils/stringx"
	"github.com/msto63/sportspa/internal/command"
	"github.com/msto63/sportspa/internal/model/alias"
)

// CommandParser turns the arguments of one command word into a command.
// The arguments keep the whitespace that separated them from the word.
type CommandParser interface {
	Parse(args string) (command.Command, error)
}

// CommandParserFunc adapts a function to CommandParser
type CommandParserFunc func(args string) (command.Command, error)

// Parse implements CommandParser
func (f CommandParserFunc) Parse(args string) (command.Command, error) {
	return f(args)
}

// AliasResolver maps a user shortcut to a built-in command word
type AliasResolver interface {
	ResolveAlias(word string) (string, bool)
}

// noArgs builds a parser for commands that ignore their arguments
func noArgs(build func() command.Command) CommandParserFunc {
	return func(string) (command.Command, error) { return build(), nil }
}

// AddressBookParser dispatches a command line to the parser of its
// command word
type AddressBookParser struct {
	parsers map[string]CommandParser
}

// NewAddressBookParser creates a parser that knows every built-in command
func NewAddressBookParser() *AddressBookParser {
	return &AddressBookParser{
		parsers: map[string]CommandParser{
			alias.WordAddMember:      CommandParserFunc(ParseAddMember),
			alias.WordEditMember:     CommandParserFunc(ParseEditMember),
			alias.WordDeleteMember:   CommandParserFunc(ParseDeleteMember),
			alias.WordFindMember:     CommandParserFunc(ParseFindMember),
			alias.WordListMembers:    noArgs(func() command.Command { return &command.ListMembers{} }),
			alias.WordSetMember:      CommandParserFunc(ParseSetMemberAvailability),
			alias.WordAddFacility:    CommandParserFunc(ParseAddFacility),
			alias.WordDeleteFacility: CommandParserFunc(ParseDeleteFacility),
			alias.WordListFacilities: noArgs(func() command.Command { return &command.ListFacilities{} }),
			alias.WordAlias:          CommandParserFunc(ParseCreateAlias),
			alias.WordUnalias:        CommandParserFunc(ParseRemoveAlias),
			alias.WordClear:          noArgs(func() command.Command { return &command.Clear{} }),
			alias.WordHelp:           noArgs(func() command.Command { return &command.Help{} }),
			alias.WordExit:           noArgs(func() command.Command { return &command.Exit{} }),
		},
	}
}

// Register adds or replaces the parser of a command word
func (p *AddressBookParser) Register(word string, parser CommandParser) {
	p.parsers[word] = parser
}

// ParseCommand parses one line of user input. aliases may be nil.
func (p *AddressBookParser) ParseCommand(input string, aliases AliasResolver) (command.Command, error) {
	word, args := stringx.SplitFirstWord(strings.TrimSpace(input))
	if word == "" {
		return nil, invalidFormat(command.HelpUsage)
	}

	parser, ok := p.parsers[word]
	if !ok && aliases != nil {
		if resolved, found := aliases.ResolveAlias(word); found {
			parser, ok = p.parsers[resolved]
		}
	}
	if !ok {
		return nil, spaerror.NewFormat(command.MessageUnknownCommand).WithDetail("word", word)
	}
	return parser.Parse(args)
}

// CommandWords returns the registered command words in sorted order
func (p *AddressBookParser) CommandWords() []string {
	words := make([]string, 0, len(p.parsers))
	for word := range p.parsers {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
