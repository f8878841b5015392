// File: tokenizer.go
// Title: Argument Tokenizer
// Description: Splits an argument string into a preamble and the values of
//              each recognized prefix, in input order.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ArgumentMultimap maps each prefix to the values that followed it. It is
// immutable once returned by Tokenize.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for p. ok is false when p is absent.
func (a ArgumentMultimap) Value(p Prefix) (value string, ok bool) {
	values := a.values[p]
	if len(values) == 0 {
		return "", false
	}
	return lo.LastOrEmpty(values), true
}

// ValueOrEmpty returns the last value given for p, or "" when p is absent
func (a ArgumentMultimap) ValueOrEmpty(p Prefix) string {
	return lo.LastOrEmpty(a.values[p])
}

// AllValues returns every value given for p in input order, or an empty
// slice when p is absent
func (a ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string{}, a.values[p]...)
}

// Has reports whether p occurred at least once, even with an empty value
func (a ArgumentMultimap) Has(p Prefix) bool {
	return len(a.values[p]) > 0
}

// HasAll reports whether every prefix occurred
func (a ArgumentMultimap) HasAll(prefixes ...Prefix) bool {
	return lo.EveryBy(prefixes, a.Has)
}

// Preamble returns the trimmed text before the first prefix
func (a ArgumentMultimap) Preamble() string {
	return a.preamble
}

// prefixPosition is where a prefix starts in the argument string
type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix is only recognized
// where it directly follows a whitespace character. Values and the preamble
// are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	positions := findAllPrefixPositions(args, lo.Uniq(prefixes))
	sort.SliceStable(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	result := ArgumentMultimap{values: make(map[Prefix][]string, len(prefixes))}

	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	result.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		next := len(args)
		if i+1 < len(positions) {
			next = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : next])
		result.values[pos.prefix] = append(result.values[pos.prefix], value)
	}
	return result
}

func findAllPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var positions []prefixPosition
	for _, prefix := range prefixes {
		if prefix == preamblePrefix {
			continue
		}
		positions = append(positions, findPrefixPositions(args, prefix)...)
	}
	return positions
}

func findPrefixPositions(args string, prefix Prefix) []prefixPosition {
	var positions []prefixPosition
	marker := string(prefix)
	from := 0
	for from < len(args) {
		offset := strings.Index(args[from:], marker)
		if offset < 0 {
			break
		}
		start := from + offset
		if start > 0 {
			if r, _ := utf8.DecodeLastRuneInString(args[:start]); unicode.IsSpace(r) {
				positions = append(positions, prefixPosition{prefix: prefix, start: start})
			}
		}
		from = start + 1
	}
	return positions
}
