// Package book holds the in-memory contact collection and its active filter.
package book

import (
	"slices"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/predicate"
)

// MessageDuplicatePerson is reported when two contacts would share a name.
const MessageDuplicatePerson = "This person already exists in the address book"

// Book is a sequence of contacts plus the predicate selecting the displayed ones.
// It is not safe for concurrent use; callers serialise access.
type Book struct {
	contacts []models.Contact
	filter   predicate.Predicate
}

// New returns a Book holding contacts, showing all of them.
func New(contacts ...models.Contact) *Book {
	return &Book{contacts: slices.Clone(contacts), filter: predicate.All()}
}

// Contacts returns every contact.
func (b *Book) Contacts() []models.Contact { return slices.Clone(b.contacts) }

// Len returns the number of contacts.
func (b *Book) Len() int { return len(b.contacts) }

// Filter returns the active predicate.
func (b *Book) Filter() predicate.Predicate { return b.filter }

// FilteredContacts returns the contacts matching the active predicate.
func (b *Book) FilteredContacts() []models.Contact {
	out := make([]models.Contact, 0, len(b.contacts))
	for _, c := range b.contacts {
		if b.filter.Test(c) {
			out = append(out, c)
		}
	}
	return out
}

// UpdateFilter sets the active predicate.
func (b *Book) UpdateFilter(p predicate.Predicate) { b.filter = p }

// Add appends c, rejecting a contact whose name is already taken.
func (b *Book) Add(c models.Contact) error {
	if b.hasName(c.Name(), -1) {
		return apperr.New(apperr.ErrConstraint, MessageDuplicatePerson)
	}
	b.contacts = append(b.contacts, c)
	return nil
}

// SetContact replaces the contact equal to target with edited.
func (b *Book) SetContact(target, edited models.Contact) error {
	i := slices.IndexFunc(b.contacts, target.Equal)
	if i < 0 {
		return apperr.New(apperr.ErrNotFound, "The person to edit is no longer in the address book")
	}
	if b.hasName(edited.Name(), i) {
		return apperr.New(apperr.ErrConstraint, MessageDuplicatePerson)
	}
	b.contacts[i] = edited
	return nil
}

// Replace swaps in a new set of contacts, keeping the active filter.
func (b *Book) Replace(contacts []models.Contact) {
	b.contacts = slices.Clone(contacts)
}

func (b *Book) hasName(name models.Name, skip int) bool {
	for i, c := range b.contacts {
		if i != skip && c.Name() == name {
			return true
		}
	}
	return false
}
