package command

import (
	"fmt"
	"time"

	"github.com/starford/findvisor/internal/predicate"
	"github.com/starford/findvisor/internal/syntax"
)

// FindUsage documents the find command.
var FindUsage = syntax.WordFind + ": Finds all persons whose information matches " +
	"the specified keywords (case-insensitive) of the specified category " +
	"and displays them as a list with index numbers.\n" +
	"Parameters: " +
	string(syntax.PrefixName) + "NAME|" +
	string(syntax.PrefixEmail) + "EMAIL|" +
	string(syntax.PrefixPhone) + "PHONE_NUMBER|" +
	string(syntax.PrefixAddress) + "ADDRESS|" +
	string(syntax.PrefixRemark) + "REMARK|" +
	string(syntax.PrefixMeetingDate) + "MEETING_DATE|" +
	string(syntax.PrefixMeetingRemark) + "MEETING_REMARK|" +
	string(syntax.PrefixTag) + "TAG...\n" +
	"Example: " + syntax.WordFind + " t/PRUActiveCash t/friends"

// Find narrows the displayed contacts to those matching one predicate.
type Find struct {
	Predicate predicate.Predicate
}

// Word implements Command.
func (Find) Word() string { return syntax.WordFind }

// Execute implements Command.
func (c Find) Execute(m Model, _ time.Time) (Result, error) {
	m.UpdateFilter(c.Predicate)
	return Result{
		Feedback: fmt.Sprintf(MessagePersonsListed, len(m.FilteredContacts()), c.Predicate.Description()),
	}, nil
}

// Equal reports whether both commands filter by the same predicate.
func (c Find) Equal(o Find) bool { return c.Predicate.Equal(o.Predicate) }
