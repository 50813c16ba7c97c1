// Package datetime parses and formats the dates used in commands and messages.
package datetime

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Layouts accepted on input and produced for display.
const (
	DatePattern = "dd-MM-yyyy"

	DateLayout          = "02-01-2006"
	DateTimeInputLayout = "02-01-2006T15:04"
	DateTimeLayout      = "02-01-2006 15:04"
)

// IsValidDate reports whether s is an existing calendar date in dd-mm-yyyy form.
func IsValidDate(s string) bool {
	return validation.Validate(s, validation.Required, validation.Date(DateLayout)) == nil
}

// IsValidDateTime reports whether s is a valid dd-mm-yyyyThh:mm value.
func IsValidDateTime(s string) bool {
	return validation.Validate(s, validation.Required, validation.Date(DateTimeInputLayout)) == nil
}

// ParseDate parses a dd-mm-yyyy date in the local zone. Day-of-month overflow
// such as 31-04 or 29-02 on a non-leap year is rejected, not rolled over.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// ParseDateTime parses a dd-mm-yyyyThh:mm value in the local zone.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(DateTimeInputLayout, s, time.Local)
}

// FormatDate renders t as dd-mm-yyyy.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// FormatDateTime renders t for display, with a space between date and time.
func FormatDateTime(t time.Time) string { return t.Format(DateTimeLayout) }

// FormatDateTimeInput renders t in the form accepted by ParseDateTime.
func FormatDateTimeInput(t time.Time) string { return t.Format(DateTimeInputLayout) }

// SameDate reports whether a and b fall on the same calendar day in a's zone.
func SameDate(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
