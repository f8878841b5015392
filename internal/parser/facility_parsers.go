// File: facility_parsers.go
// Title: Facility Command Parsers
// Description: Parsers for addf and deletef.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package parser

import (
	"github.com/msto63/sportspa/internal/command"
	"github.com/msto63/sportspa/internal/model/facility"
)

// ParseAddFacility parses the arguments of addf. All four prefixes are
// required and no preamble is allowed. The last value of a repeated prefix
// wins.
func ParseAddFacility(args string) (command.Command, error) {
	argMap := Tokenize(args, PrefixName, PrefixLocation, PrefixTime, PrefixCapacity)
	if !argMap.HasAll(PrefixName, PrefixLocation, PrefixTime, PrefixCapacity) || argMap.Preamble() != "" {
		return nil, invalidFormat(command.AddFacilityUsage)
	}

	name, err := ParseFacilityName(argMap.ValueOrEmpty(PrefixName))
	if err != nil {
		return nil, err
	}
	location, err := ParseLocation(argMap.ValueOrEmpty(PrefixLocation))
	if err != nil {
		return nil, err
	}
	time, err := ParseTime(argMap.ValueOrEmpty(PrefixTime))
	if err != nil {
		return nil, err
	}
	capacity, err := ParseCapacity(argMap.ValueOrEmpty(PrefixCapacity))
	if err != nil {
		return nil, err
	}

	return command.NewAddFacility(facility.New(name, location, time, capacity)), nil
}

// ParseDeleteFacility parses the index argument of deletef
func ParseDeleteFacility(args string) (command.Command, error) {
	target, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.DeleteFacilityUsage)
	}
	return command.NewDeleteFacility(target), nil
}
