package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	"github.com/msto63/sportspa/internal/index"
	"github.com/msto63/sportspa/internal/model/alias"
	"github.com/msto63/sportspa/internal/model/facility"
	"github.com/msto63/sportspa/internal/model/member"
	"github.com/msto63/sportspa/internal/model/tag"
)

const whitespace = " \t\r\n"

func TestParseIndex(t *testing.T) {
	for _, invalid := range []string{"10 a", "", "0", "-1", "+1", "2147483648", "1.0"} {
		_, err := ParseIndex(invalid)
		require.Error(t, err, invalid)
		assert.True(t, spaerror.IsFormat(err))
		assert.Equal(t, MessageInvalidIndex, err.Error())
	}

	idx, err := ParseIndex("1")
	require.NoError(t, err)
	assert.Equal(t, index.FromOneBased(1), idx)

	idx, err = ParseIndex("  1  ")
	require.NoError(t, err)
	assert.Equal(t, 0, idx.ZeroBased())
}

func TestFieldParsersTrimAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		parse      func(string) (string, error)
		valid      string
		invalid    string
		constraint string
	}{
		{"name", stringOf(ParseName), "Rachel Walker", "R@chel", member.NameConstraints},
		{"phone", stringOf(ParsePhone), "123456", "+651234", member.PhoneConstraints},
		{"email", stringOf(ParseEmail), "rachel@example.com", "example.com", member.EmailConstraints},
		{"address", stringOf(ParseAddress), "123 Main Street #0505", " ", member.AddressConstraints},
		{"facility name", stringOf(ParseFacilityName), "Court 1", "Court_1", facility.NameConstraints},
		{"location", stringOf(ParseLocation), "University Sports Hall", "", facility.LocationConstraints},
		{"time", stringOf(ParseTime), "11:30", "11.30", facility.TimeConstraints},
		{"capacity", stringOf(ParseCapacity), "5", "-5", facility.CapacityConstraints},
		{"shortcut", stringOf(ParseShortcut), "lf", "listf", alias.ShortcutConstraints},
		{"command word", stringOf(ParseCommandWord), "listf", "lf", alias.CommandWordConstraints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.valid)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, got)

			got, err = tt.parse(whitespace + tt.valid + whitespace)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, got)

			// round trip through the canonical form
			again, err := tt.parse(got)
			require.NoError(t, err)
			assert.Equal(t, got, again)

			_, err = tt.parse(tt.invalid)
			require.Error(t, err)
			assert.True(t, spaerror.IsValidation(err))
			assert.Equal(t, tt.constraint, err.Error())
		})
	}
}

func stringOf[T interface{ String() string }](parse func(string) (T, error)) func(string) (string, error) {
	return func(raw string) (string, error) {
		value, err := parse(raw)
		if err != nil {
			return "", err
		}
		return value.String(), nil
	}
}

func TestParseTags(t *testing.T) {
	single, err := ParseTag(whitespace + "friend" + whitespace)
	require.NoError(t, err)
	assert.Equal(t, "friend", single.Name())

	tags, err := ParseTags(nil)
	require.NoError(t, err)
	assert.True(t, tags.IsEmpty())

	tags, err = ParseTags([]string{"friend", "neighbour", "friend"})
	require.NoError(t, err)
	assert.Equal(t, "[friend][neighbour]", tags.String())

	// fails on the first invalid tag
	_, err = ParseTags([]string{"friend", "#friend", ""})
	require.Error(t, err)
	assert.Equal(t, tag.TagConstraints, err.Error())
}

func TestParseAvailability(t *testing.T) {
	availability, err := ParseAvailability("  mon Tue mon  ")
	require.NoError(t, err)
	assert.Equal(t, "MON TUE", availability.String())

	again, err := ParseAvailability(availability.String())
	require.NoError(t, err)
	assert.True(t, availability.Equals(again))

	_, err = ParseAvailability("mon someday")
	assert.Equal(t, member.AvailabilityConstraints, err.Error())

	_, err = ParseAvailability(whitespace)
	assert.Equal(t, member.AvailabilityConstraints, err.Error())
}
