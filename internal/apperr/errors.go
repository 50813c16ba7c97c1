// Package apperr defines the error kinds surfaced to users at the command boundary.
package apperr

import (
	"errors"
	"fmt"
)

// Format errors: malformed input, discarded without touching the book.
var (
	ErrInvalidFormat   = errors.New("invalid command format")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrDuplicatePrefix = errors.New("duplicate prefix")
	ErrEmptyField      = errors.New("empty field")
	ErrInvalidValue    = errors.New("invalid value")
	ErrNoFieldEdited   = errors.New("no field edited")
)

// Semantic errors: well-formed input that cannot apply to the current book.
var (
	ErrInvalidIndex = errors.New("invalid index")
	ErrNoMeeting    = errors.New("no meeting")
	ErrPastMeeting  = errors.New("meeting in the past")
	ErrTagNotFound  = errors.New("tag not found")
	ErrTagExists    = errors.New("tag exists")
	ErrNotFound     = errors.New("not found")
)

// ErrConstraint marks a value that failed its construction invariant.
var ErrConstraint = errors.New("constraint violated")

// Error carries a user-facing message and the kind it belongs to.
type Error struct {
	Kind error
	Msg  string
	// Cause is the lower-level error, if any.
	Cause error
}

func (e *Error) Error() string { return e.Msg }

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// New returns an *Error of the given kind with a formatted message.
func New(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap is like New but records cause.
func Wrap(kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}
