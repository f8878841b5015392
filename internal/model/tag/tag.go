// File: tag.go
// Title: Member Tag
// Description: Alphanumeric label attached to members, plus an ordered set
//              type used by members and edit descriptors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package tag

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/msto63/sportspa/foundation/core/validation"
	"github.com/msto63/sportspa/foundation/utils/validationx"
)

// TagConstraints is reported when a tag name is invalid
const TagConstraints = "Tags names should be alphanumeric"

var tagRule = validation.NewValidatorChain("tag").
	StopOnFirstError(true).
	AddFunc(validationx.Pattern(regexp.MustCompile(`^[A-Za-z0-9]+$`)))

// Tag is a validated tag name
type Tag struct {
	name string
}

// IsValidTagName reports whether name is a valid tag name
func IsValidTagName(name string) bool {
	return tagRule.Validate(name).Valid
}

// NewTag creates a Tag or returns a validation error
func NewTag(name string) (Tag, error) {
	if result := tagRule.Validate(name); !result.Valid {
		return Tag{}, result.ToErrorWithMessage(TagConstraints)
	}
	return Tag{name: name}, nil
}

// Name returns the tag name
func (t Tag) Name() string { return t.name }

// String renders the tag as [name]
func (t Tag) String() string { return "[" + t.name + "]" }

// Equals reports whether both tags have the same name
func (t Tag) Equals(other Tag) bool { return t.name == other.name }

// Set is an immutable set of tags. The zero value is the empty set.
type Set struct {
	tags []Tag
}

// NewSet creates a set from tags, dropping duplicates
func NewSet(tags ...Tag) Set {
	unique := lo.UniqBy(tags, Tag.Name)
	sort.Slice(unique, func(i, j int) bool { return unique[i].name < unique[j].name })
	return Set{tags: unique}
}

// Tags returns the tags sorted by name
func (s Set) Tags() []Tag {
	return append([]Tag(nil), s.tags...)
}

// Len returns the number of tags
func (s Set) Len() int { return len(s.tags) }

// IsEmpty reports whether the set has no tags
func (s Set) IsEmpty() bool { return len(s.tags) == 0 }

// Contains reports whether the set holds a tag with the given name
func (s Set) Contains(name string) bool {
	return lo.ContainsBy(s.tags, func(t Tag) bool { return t.name == name })
}

// Equals reports whether both sets hold the same tags
func (s Set) Equals(other Set) bool {
	if len(s.tags) != len(other.tags) {
		return false
	}
	for i := range s.tags {
		if !s.tags[i].Equals(other.tags[i]) {
			return false
		}
	}
	return true
}

// String renders the tags as [a][b]
func (s Set) String() string {
	var b strings.Builder
	for _, t := range s.tags {
		b.WriteString(t.String())
	}
	return b.String()
}
