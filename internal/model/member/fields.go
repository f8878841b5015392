// File: fields.go
// Title: Member Field Value Objects
// Description: Name, Phone, Email and Address with their validation rules
//              and constraint messages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package member

import (
	"regexp"
	"strings"

	"github.com/msto63/sportspa/foundation/core/validation"
	"github.com/msto63/sportspa/foundation/utils/validationx"
)

const (
	NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

	PhoneConstraints = "Phone numbers should only contain numbers, and it should be between 3 and 15 digits long"

	EmailConstraints = "Emails should be of the format local-part@domain " +
		"and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, " +
		"excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

	AddressConstraints = "Addresses can take any values, and it should not be blank"
)

const (
	emailLocalPart  = `[A-Za-z0-9]+([+_.-][A-Za-z0-9]+)*`
	emailDomainPart = `[A-Za-z0-9]+(-[A-Za-z0-9]+)*`
)

var (
	nameRule = validation.NewValidatorChain("name").
			StopOnFirstError(true).
			AddFunc(validationx.NotBlank).
			AddFunc(validationx.Pattern(regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)))

	phoneRule = validation.NewValidatorChain("phone").
			StopOnFirstError(true).
			AddFunc(validationx.Numeric).
			AddFunc(validationx.LengthBetween(3, 15))

	// last domain label needs at least two characters
	emailRule = validation.NewValidatorChain("email").
			StopOnFirstError(true).
			AddFunc(validationx.NotBlank).
			AddFunc(validationx.Pattern(regexp.MustCompile(
			`^` + emailLocalPart + `@(` + emailDomainPart + `\.)*(` + emailDomainPart + `){2,}$`)))

	addressRule = validation.NewValidatorChain("address").
			StopOnFirstError(true).
			AddFunc(validationx.NotBlank).
			AddFunc(validationx.Pattern(regexp.MustCompile(`^\S`)))
)

// Name is a member's full name
type Name struct{ value string }

// IsValidName reports whether raw is a valid member name
func IsValidName(raw string) bool { return nameRule.Validate(raw).Valid }

// NewName creates a Name or returns a validation error
func NewName(raw string) (Name, error) {
	if result := nameRule.Validate(raw); !result.Valid {
		return Name{}, result.ToErrorWithMessage(NameConstraints)
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// Equals compares names exactly
func (n Name) Equals(other Name) bool { return n.value == other.value }

// EqualsIgnoreCase compares names ignoring case
func (n Name) EqualsIgnoreCase(other Name) bool { return strings.EqualFold(n.value, other.value) }

// Phone is a member's phone number
type Phone struct{ value string }

// IsValidPhone reports whether raw is a valid phone number
func IsValidPhone(raw string) bool { return phoneRule.Validate(raw).Valid }

// NewPhone creates a Phone or returns a validation error
func NewPhone(raw string) (Phone, error) {
	if result := phoneRule.Validate(raw); !result.Valid {
		return Phone{}, result.ToErrorWithMessage(PhoneConstraints)
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string           { return p.value }
func (p Phone) Equals(other Phone) bool { return p.value == other.value }

// Email is a member's email address
type Email struct{ value string }

// IsValidEmail reports whether raw is a valid email address
func IsValidEmail(raw string) bool { return emailRule.Validate(raw).Valid }

// NewEmail creates an Email or returns a validation error
func NewEmail(raw string) (Email, error) {
	if result := emailRule.Validate(raw); !result.Valid {
		return Email{}, result.ToErrorWithMessage(EmailConstraints)
	}
	return Email{value: raw}, nil
}

func (e Email) String() string           { return e.value }
func (e Email) Equals(other Email) bool { return e.value == other.value }

// Address is a member's postal address
type Address struct{ value string }

// IsValidAddress reports whether raw is a valid address
func IsValidAddress(raw string) bool { return addressRule.Validate(raw).Valid }

// NewAddress creates an Address or returns a validation error
func NewAddress(raw string) (Address, error) {
	if result := addressRule.Validate(raw); !result.Valid {
		return Address{}, result.ToErrorWithMessage(AddressConstraints)
	}
	return Address{value: raw}, nil
}

func (a Address) String() string             { return a.value }
func (a Address) Equals(other Address) bool { return a.value == other.value }
