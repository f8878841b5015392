// File: parser_util.go
// Title: Field Parsers
// Description: Turn raw argument values into value objects. Every parser
//              trims its input first and fails with the value type's own
//              validation error.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package parser

import (
	"fmt"
	"strconv"
	"strings"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	"github.com/msto63/sportspa/foundation/utils/stringx"
	"github.com/msto63/sportspa/internal/command"
	"github.com/msto63/sportspa/internal/index"
	"github.com/msto63/sportspa/internal/model/alias"
	"github.com/msto63/sportspa/internal/model/facility"
	"github.com/msto63/sportspa/internal/model/member"
	"github.com/msto63/sportspa/internal/model/tag"
)

// MessageInvalidIndex is reported for an index that is not a positive integer
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// invalidFormat builds the format error for a command with the given usage
func invalidFormat(usage string) *spaerror.Error {
	return spaerror.NewFormat(fmt.Sprintf(command.MessageInvalidCommandFormat, usage)).
		WithDetail("usage", usage)
}

// ParseIndex parses a one-based index
func ParseIndex(oneBased string) (index.Index, error) {
	trimmed := strings.TrimSpace(oneBased)
	if !stringx.IsNonZeroUnsignedInteger(trimmed) {
		return index.Index{}, spaerror.NewFormat(MessageInvalidIndex).WithDetail("value", trimmed)
	}
	n, _ := strconv.Atoi(trimmed)
	return index.FromOneBased(n), nil
}

func ParseName(raw string) (member.Name, error)       { return member.NewName(strings.TrimSpace(raw)) }
func ParsePhone(raw string) (member.Phone, error)     { return member.NewPhone(strings.TrimSpace(raw)) }
func ParseEmail(raw string) (member.Email, error)     { return member.NewEmail(strings.TrimSpace(raw)) }
func ParseAddress(raw string) (member.Address, error) { return member.NewAddress(strings.TrimSpace(raw)) }

func ParseFacilityName(raw string) (facility.Name, error) {
	return facility.NewName(strings.TrimSpace(raw))
}

func ParseLocation(raw string) (facility.Location, error) {
	return facility.NewLocation(strings.TrimSpace(raw))
}

func ParseTime(raw string) (facility.Time, error) { return facility.NewTime(strings.TrimSpace(raw)) }

func ParseCapacity(raw string) (facility.Capacity, error) {
	return facility.NewCapacity(strings.TrimSpace(raw))
}

func ParseTag(raw string) (tag.Tag, error) { return tag.NewTag(strings.TrimSpace(raw)) }

// ParseTags parses every raw tag and stops at the first invalid one.
// Duplicates collapse into one tag.
func ParseTags(raws []string) (tag.Set, error) {
	tags := make([]tag.Tag, 0, len(raws))
	for _, raw := range raws {
		t, err := ParseTag(raw)
		if err != nil {
			return tag.Set{}, err
		}
		tags = append(tags, t)
	}
	return tag.NewSet(tags...), nil
}

// ParseAvailability normalizes raw into a canonical list of weekdays
func ParseAvailability(raw string) (member.Availability, error) {
	return member.NewAvailability(strings.TrimSpace(raw))
}

func ParseShortcut(raw string) (alias.Shortcut, error) {
	return alias.NewShortcut(strings.TrimSpace(raw))
}

func ParseCommandWord(raw string) (alias.CommandWord, error) {
	return alias.NewCommandWord(strings.TrimSpace(raw))
}
