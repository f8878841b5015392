// File: member_parsers.go
// Title: Member Command Parsers
// Description: Parsers for addm, editm, deletem, findm and setm.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package parser

import (
	"strings"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	"github.com/msto63/sportspa/internal/command"
	"github.com/msto63/sportspa/internal/model/member"
	"github.com/msto63/sportspa/internal/model/tag"
)

// ParseAddMember parses the arguments of addm. Name, phone, email and
// address are required; tags are optional and repeatable.
func ParseAddMember(args string) (command.Command, error) {
	argMap := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if !argMap.HasAll(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress) || argMap.Preamble() != "" {
		return nil, invalidFormat(command.AddMemberUsage)
	}

	name, err := ParseName(argMap.ValueOrEmpty(PrefixName))
	if err != nil {
		return nil, err
	}
	phone, err := ParsePhone(argMap.ValueOrEmpty(PrefixPhone))
	if err != nil {
		return nil, err
	}
	email, err := ParseEmail(argMap.ValueOrEmpty(PrefixEmail))
	if err != nil {
		return nil, err
	}
	address, err := ParseAddress(argMap.ValueOrEmpty(PrefixAddress))
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(argMap.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	return command.NewAddMember(member.New(name, phone, email, address, tags)), nil
}

// ParseEditMember parses the arguments of editm: an index followed by at
// least one field to change. A single empty t/ clears the tags.
func ParseEditMember(args string) (command.Command, error) {
	argMap := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)

	target, err := ParseIndex(argMap.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditMemberUsage)
	}

	var descriptor command.EditMemberDescriptor
	if raw, ok := argMap.Value(PrefixName); ok {
		name, err := ParseName(raw)
		if err != nil {
			return nil, err
		}
		descriptor.SetName(name)
	}
	if raw, ok := argMap.Value(PrefixPhone); ok {
		phone, err := ParsePhone(raw)
		if err != nil {
			return nil, err
		}
		descriptor.SetPhone(phone)
	}
	if raw, ok := argMap.Value(PrefixEmail); ok {
		email, err := ParseEmail(raw)
		if err != nil {
			return nil, err
		}
		descriptor.SetEmail(email)
	}
	if raw, ok := argMap.Value(PrefixAddress); ok {
		address, err := ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		descriptor.SetAddress(address)
	}
	if tags, ok, err := parseTagsForEdit(argMap.AllValues(PrefixTag)); err != nil {
		return nil, err
	} else if ok {
		descriptor.SetTags(tags)
	}

	if !descriptor.IsAnyFieldEdited() {
		return nil, spaerror.NewSemantic(command.MessageNotEdited)
	}
	return command.NewEditMember(target, descriptor), nil
}

// parseTagsForEdit reports ok=false when no t/ was given. A lone empty t/
// yields the empty set.
func parseTagsForEdit(raws []string) (tag.Set, bool, error) {
	if len(raws) == 0 {
		return tag.Set{}, false, nil
	}
	if len(raws) == 1 && raws[0] == "" {
		return tag.NewSet(), true, nil
	}
	tags, err := ParseTags(raws)
	return tags, err == nil, err
}

// ParseDeleteMember parses the index argument of deletem
func ParseDeleteMember(args string) (command.Command, error) {
	target, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.DeleteMemberUsage)
	}
	return command.NewDeleteMember(target), nil
}

// ParseFindMember parses the keywords of findm
func ParseFindMember(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindMemberUsage)
	}
	return command.NewFindMember(keywords), nil
}

// ParseSetMemberAvailability parses an index followed by d/DAYS
func ParseSetMemberAvailability(args string) (command.Command, error) {
	argMap := Tokenize(args, PrefixAvailability)

	target, err := ParseIndex(argMap.Preamble())
	if err != nil || !argMap.Has(PrefixAvailability) {
		return nil, invalidFormat(command.SetMemberAvailabilityUsage)
	}

	raw, _ := argMap.Value(PrefixAvailability)
	availability, err := ParseAvailability(raw)
	if err != nil {
		return nil, err
	}
	return command.NewSetMemberAvailability(target, availability), nil
}
