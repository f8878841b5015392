package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	"github.com/msto63/sportspa/internal/model/tag"
)

func TestIsValidName(t *testing.T) {
	for _, valid := range []string{"peter jack", "12345", "peter the 2nd", "Capital Tan", "David Roger Jackson Ray Jr 2nd"} {
		assert.True(t, IsValidName(valid), valid)
	}
	for _, invalid := range []string{"", " ", "^", "peter*", " leading"} {
		assert.False(t, IsValidName(invalid), invalid)
	}
}

func TestIsValidPhone(t *testing.T) {
	for _, valid := range []string{"911", "93121534", "124293842033123"} {
		assert.True(t, IsValidPhone(valid), valid)
	}
	for _, invalid := range []string{"", " ", "91", "phone", "9011p041", "9312 1534", "1242938420331234"} {
		assert.False(t, IsValidPhone(invalid), invalid)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"PeterJack_1190@example.com",
		"a@bc",
		"test@localhost",
		"123@145",
		"a1+be.d@example1.com",
		"peter_jack@very-very-very-long-example.com",
		"if.you.dream.it_you.can.do.it@example.com",
		"e1234567@u.nus.edu",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"", " ", "@example.com", "peterjackexample.com", "peterjack@",
		"peterjack@example.c", "peter jack@example.com", "peterjack@exam_ple.com",
		"-peterjack@example.com", "peterjack-@example.com", "peter..jack@example.com",
		"peterjack@-example.com", "peterjack@example.com-", "peterjack@example.com.",
		"peterjack@@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("Blk 456, Den Road, #01-355"))
	assert.True(t, IsValidAddress("-"))
	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress(" "))
	assert.False(t, IsValidAddress(" 12 Road"))
}

func TestConstructorsReturnConstraintMessage(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		message string
	}{
		{"name", func() error { _, err := NewName("James&"); return err }, NameConstraints},
		{"phone", func() error { _, err := NewPhone("911a"); return err }, PhoneConstraints},
		{"email", func() error { _, err := NewEmail("bob!yahoo"); return err }, EmailConstraints},
		{"address", func() error { _, err := NewAddress(""); return err }, AddressConstraints},
		{"availability", func() error { _, err := NewAvailability("MON FUNDAY"); return err }, AvailabilityConstraints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, spaerror.IsValidation(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestNewAvailability(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"mon tue", "MON TUE"},
		{"  Fri   fri SAT  ", "FRI SAT"},
		{"sun mon sun", "SUN MON"},
	}
	for _, tt := range tests {
		availability, err := NewAvailability(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, availability.String())

		again, err := NewAvailability(availability.String())
		require.NoError(t, err)
		assert.True(t, again.Equals(availability))
	}

	for _, invalid := range []string{"", "   ", "MONDAY", "MON 1"} {
		_, err := NewAvailability(invalid)
		assert.Error(t, err, invalid)
	}

	availability, _ := NewAvailability("wed")
	assert.True(t, availability.Includes("Wed"))
	assert.False(t, availability.Includes("THU"))
	assert.False(t, Availability{}.IsSet())
}

func TestIsValidAvailability(t *testing.T) {
	assert.True(t, IsValidAvailability([]string{"MON", "SUN"}))
	assert.False(t, IsValidAvailability(nil))
	assert.False(t, IsValidAvailability([]string{"mon"}))
	assert.False(t, IsValidAvailability([]string{"MON", ""}))
}

func mustMember(t *testing.T, name, phone string) Member {
	t.Helper()
	n, err := NewName(name)
	require.NoError(t, err)
	p, err := NewPhone(phone)
	require.NoError(t, err)
	e, err := NewEmail("amy@example.com")
	require.NoError(t, err)
	a, err := NewAddress("Block 312, Amy Street 1")
	require.NoError(t, err)
	friend, err := tag.NewTag("friend")
	require.NoError(t, err)
	return New(n, p, e, a, tag.NewSet(friend))
}

func TestMemberIdentityAndEquality(t *testing.T) {
	amy := mustMember(t, "Amy Bee", "11111111")
	amyLower := mustMember(t, "amy bee", "22222222")
	bob := mustMember(t, "Bob Choo", "11111111")

	assert.True(t, amy.IsSameMember(amyLower))
	assert.False(t, amy.Equals(amyLower))
	assert.False(t, amy.IsSameMember(bob))
	assert.True(t, amy.Equals(mustMember(t, "Amy Bee", "11111111")))

	days, _ := NewAvailability("mon")
	available := amy.WithAvailability(days)
	assert.False(t, amy.Equals(available))
	assert.False(t, amy.Availability().IsSet())
	assert.Equal(t,
		"Amy Bee; Phone: 11111111; Email: amy@example.com; Address: Block 312, Amy Street 1; Tags: [friend]; Availability: MON",
		available.String())
}
