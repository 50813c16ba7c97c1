// Package command defines the executable commands of the FindVisor language.
package command

import (
	"time"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/predicate"
)

// Shared result and error messages.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidIndex         = "The person index provided is invalid"
	MessagePastMeeting          = "Meeting start date time must be after the current date time!"
	MessagePersonsListed        = "%d persons listed with %s!"
)

// Model is the contact collection a command runs against.
type Model interface {
	// FilteredContacts returns the contacts currently displayed, in display order.
	FilteredContacts() []models.Contact
	// SetContact replaces target with edited.
	SetContact(target, edited models.Contact) error
	// UpdateFilter changes the displayed contacts to those matching p.
	UpdateFilter(p predicate.Predicate)
	// RecentCommands returns up to limit history entries, newest first,
	// whose line contains keyword (all entries when keyword is empty).
	RecentCommands(keyword string, limit int) ([]models.CommandRecord, error)
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
	// Mutated is set when the contact collection changed.
	Mutated bool
	Exit    bool
}

// Command is an immutable, parsed command.
type Command interface {
	// Word is the command word that produced this command.
	Word() string
	// Execute runs the command. now is the instant past-date checks compare against.
	Execute(m Model, now time.Time) (Result, error)
}

// InvalidFormat wraps cause as a format error that shows usage followed by
// the cause on its own line.
func InvalidFormat(usage string, cause error) error {
	if cause == nil {
		return apperr.New(apperr.ErrInvalidFormat, MessageInvalidCommandFormat, usage)
	}
	return apperr.Wrap(apperr.ErrInvalidFormat, cause, MessageInvalidCommandFormat+"\n%s", usage, cause.Error())
}

// contactAt returns the displayed contact at idx.
func contactAt(m Model, idx models.Index) (models.Contact, error) {
	list := m.FilteredContacts()
	if idx.ZeroBased() < 0 || idx.ZeroBased() >= len(list) {
		return models.Contact{}, apperr.New(apperr.ErrInvalidIndex, MessageInvalidIndex)
	}
	return list[idx.ZeroBased()], nil
}
