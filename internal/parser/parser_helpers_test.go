package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sportspa/internal/command"
)

// Argument fragments as they appear after the command word
const (
	nameDescAmy    = " n/Amy Bee"
	nameDescBob    = " n/Bob Choo"
	phoneDescAmy   = " p/11111111"
	phoneDescBob   = " p/22222222"
	emailDescAmy   = " e/amy@example.com"
	emailDescBob   = " e/bob@example.com"
	addressDescAmy = " a/Block 312, Amy Street 1"
	addressDescBob = " a/Block 123, Bobby Street 3"
	tagDescFriend  = " t/friend"
	tagDescHusband = " t/husband"

	invalidNameDesc    = " n/James&"
	invalidPhoneDesc   = " p/911a"
	invalidEmailDesc   = " e/bob!yahoo"
	invalidAddressDesc = " a/"
	invalidTagDesc     = " t/hubby*"

	nameDescCourt     = " n/Court 1"
	nameDescField     = " n/Field"
	locationDescCourt = " l/University Sports Hall"
	locationDescField = " l/Opposite University Hall"
	timeDescCourt     = " t/11:30"
	timeDescField     = " t/13:00"
	capacityDescCourt = " c/5"
	capacityDescField = " c/10"

	invalidFacilityNameDesc = " n/Court#1"
	invalidLocationDesc     = " l/ "
	invalidTimeDesc         = " t/25:00"
	invalidCapacityDesc     = " c/zero"

	preambleWhitespace = "\t  \r  \n"
	preambleNonEmpty   = "NonEmptyPreamble"
)

type parseFunc func(args string) (command.Command, error)

func assertParseSuccess(t *testing.T, parse parseFunc, input string, expected command.Command) {
	t.Helper()
	cmd, err := parse(input)
	require.NoError(t, err, "input %q", input)
	assert.True(t, expected.Equals(cmd), "input %q: got %#v, want %#v", input, cmd, expected)
}

func assertParseFailure(t *testing.T, parse parseFunc, input string, message string) {
	t.Helper()
	cmd, err := parse(input)
	require.Error(t, err, "input %q parsed to %#v", input, cmd)
	assert.Equal(t, message, err.Error(), "input %q", input)
}
