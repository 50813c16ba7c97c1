package models

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/findvisor/internal/apperr"
)

// SafeCharacters describes the character set accepted by IsSafeString.
const SafeCharacters = "alphanumeric characters, spaces and the symbols " +
	"!@#$%^&*()+-_{}[]:;'\"\\<>?.,|~`"

// Constraint messages shown when a field fails validation.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints   = "Emails should be of the format local-part@domain"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	RemarkConstraints  = "Remark should only contain " + SafeCharacters + "."
	TagConstraints     = "Tags names should be alphanumeric"
)

var (
	safeStringRe = regexp.MustCompile("^[\\w\\s!@#$%^&*()+\\-{}\\[\\]:;'\"\\\\<>?.,|~`]*$")
	nameRe       = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	phoneRe      = regexp.MustCompile(`^[0-9]{3,}$`)
	emailRe      = regexp.MustCompile(`^[A-Za-z0-9]+([+_.\-][A-Za-z0-9]+)*@([A-Za-z0-9]+(-[A-Za-z0-9]+)*\.)*([A-Za-z0-9]+(-[A-Za-z0-9]+)*){2,}$`)
	addressRe    = regexp.MustCompile(`^\S`)
	tagRe        = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// IsSafeString reports whether s only uses letters, digits, whitespace and the
// allow-listed punctuation. The empty string is safe.
func IsSafeString(s string) bool {
	return validation.Validate(s, validation.Match(safeStringRe)) == nil
}

func check(value string, msg string, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return apperr.Wrap(apperr.ErrConstraint, err, "%s", msg)
	}
	return nil
}

// Name is a contact's full name.
type Name string

// NewName validates s as a Name.
func NewName(s string) (Name, error) {
	if err := check(s, NameConstraints, validation.Required, validation.Match(nameRe)); err != nil {
		return "", err
	}
	return Name(s), nil
}

// Phone is a contact's phone number.
type Phone string

// NewPhone validates s as a Phone.
func NewPhone(s string) (Phone, error) {
	if err := check(s, PhoneConstraints, validation.Required, validation.Match(phoneRe)); err != nil {
		return "", err
	}
	return Phone(s), nil
}

// Email is a contact's email address.
type Email string

// NewEmail validates s as an Email.
func NewEmail(s string) (Email, error) {
	if err := check(s, EmailConstraints, validation.Required, validation.Match(emailRe)); err != nil {
		return "", err
	}
	return Email(s), nil
}

// Address is a contact's postal address.
type Address string

// NewAddress validates s as an Address.
func NewAddress(s string) (Address, error) {
	if err := check(s, AddressConstraints, validation.Required, validation.Match(addressRe)); err != nil {
		return "", err
	}
	return Address(s), nil
}

// Remark is free text attached to a contact.
type Remark string

// NewRemark validates s as a Remark.
func NewRemark(s string) (Remark, error) {
	if err := check(s, RemarkConstraints, validation.Match(safeStringRe)); err != nil {
		return "", err
	}
	return Remark(s), nil
}

// Tag is a short alphanumeric label.
type Tag string

// NewTag validates s as a Tag.
func NewTag(s string) (Tag, error) {
	if err := check(s, TagConstraints, validation.Required, validation.Match(tagRe)); err != nil {
		return "", err
	}
	return Tag(s), nil
}

// ContainsIgnoreCase reports whether sentence contains the trimmed keyword,
// ignoring case. A blank keyword never matches.
func ContainsIgnoreCase(sentence, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	return strings.Contains(strings.ToLower(sentence), kw)
}
