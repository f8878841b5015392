package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	pSlash Prefix = "p/"
	dashT  Prefix = "-t"
	hatQ   Prefix = "^Q"
)

func assertPreamblePresent(t *testing.T, argMap ArgumentMultimap, expected string) {
	t.Helper()
	assert.Equal(t, expected, argMap.Preamble())
}

func assertArgumentAbsent(t *testing.T, argMap ArgumentMultimap, p Prefix) {
	t.Helper()
	_, ok := argMap.Value(p)
	assert.False(t, ok)
	assert.False(t, argMap.Has(p))
	assert.Empty(t, argMap.AllValues(p))
}

func assertArgumentPresent(t *testing.T, argMap ArgumentMultimap, p Prefix, expected ...string) {
	t.Helper()
	value, ok := argMap.Value(p)
	assert.True(t, ok)
	assert.Equal(t, expected[len(expected)-1], value)
	assert.Equal(t, expected, argMap.AllValues(p))
}

func TestTokenizeEmptyArgsString(t *testing.T) {
	argMap := Tokenize("  ", pSlash)
	assertPreamblePresent(t, argMap, "")
	assertArgumentAbsent(t, argMap, pSlash)
}

func TestTokenizeNoPrefixes(t *testing.T) {
	args := "  some random string /t tag with leading and trailing spaces "
	argMap := Tokenize(args)
	assertPreamblePresent(t, argMap, "some random string /t tag with leading and trailing spaces")
}

func TestTokenizeOneArgument(t *testing.T) {
	argMap := Tokenize(" Some preamble string p/ Argument value ", pSlash)
	assertPreamblePresent(t, argMap, "Some preamble string")
	assertArgumentPresent(t, argMap, pSlash, "Argument value")

	// no preamble
	argMap = Tokenize(" p/   Argument value ", pSlash)
	assertPreamblePresent(t, argMap, "")
	assertArgumentPresent(t, argMap, pSlash, "Argument value")
}

func TestTokenizeMultipleArguments(t *testing.T) {
	args := "SomePreambleString -t dashT-Value p/pSlash value"
	argMap := Tokenize(args, pSlash, dashT, hatQ)
	assertPreamblePresent(t, argMap, "SomePreambleString")
	assertArgumentPresent(t, argMap, pSlash, "pSlash value")
	assertArgumentPresent(t, argMap, dashT, "dashT-Value")
	assertArgumentAbsent(t, argMap, hatQ)

	// all three, with an empty value
	args = "SomePreambleString -t dashT-Value ^Q ^Q -t another dashT value p/ pSlash value -t"
	argMap = Tokenize(args, pSlash, dashT, hatQ)
	assertPreamblePresent(t, argMap, "SomePreambleString")
	assertArgumentPresent(t, argMap, pSlash, "pSlash value")
	assertArgumentPresent(t, argMap, dashT, "dashT-Value", "another dashT value", "")
	assertArgumentPresent(t, argMap, hatQ, "", "")

	// only the preamble
	argMap = Tokenize(" SomePreambleString ", pSlash, dashT, hatQ)
	assertPreamblePresent(t, argMap, "SomePreambleString")
	assertArgumentAbsent(t, argMap, pSlash)
}

func TestTokenizeRepeatedArgumentsKeepsOrder(t *testing.T) {
	args := "SomePreambleString p/pSlash value -t dashT-Value -t second dashT value"
	argMap := Tokenize(args, pSlash, dashT)
	assertArgumentPresent(t, argMap, dashT, "dashT-Value", "second dashT value")
}

func TestTokenizePrefixNeedsPrecedingWhitespace(t *testing.T) {
	argMap := Tokenize("SomePreambleStringp/ pSlash joined-tjoined -t not joined^Qjoined", pSlash, dashT, hatQ)
	assertPreamblePresent(t, argMap, "SomePreambleStringp/ pSlash joined-tjoined")
	assertArgumentAbsent(t, argMap, pSlash)
	assertArgumentPresent(t, argMap, dashT, "not joined^Qjoined")
	assertArgumentAbsent(t, argMap, hatQ)

	// a tab counts as whitespace
	argMap = Tokenize("\tp/value", pSlash)
	assertArgumentPresent(t, argMap, pSlash, "value")

	// a prefix at the very start is part of the preamble
	argMap = Tokenize("p/value", pSlash)
	assertPreamblePresent(t, argMap, "p/value")
	assertArgumentAbsent(t, argMap, pSlash)
}

func TestTokenizeResultIsImmutable(t *testing.T) {
	argMap := Tokenize(" p/first p/second", pSlash)
	values := argMap.AllValues(pSlash)
	values[0] = "changed"
	assertArgumentPresent(t, argMap, pSlash, "first", "second")
}

func TestHasAll(t *testing.T) {
	argMap := Tokenize(" p/ -t x", pSlash, dashT, hatQ)
	assert.True(t, argMap.HasAll(pSlash, dashT))
	assert.False(t, argMap.HasAll(pSlash, hatQ))
	assert.Equal(t, "", argMap.ValueOrEmpty(pSlash))
	assert.Equal(t, "", argMap.ValueOrEmpty(hatQ))
}
