package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/datetime"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/predicate"
	"github.com/starford/findvisor/internal/syntax"
)

// Reschedule messages.
const (
	MessageRescheduleSuccess = "Rescheduled meeting with %s.\n%s"
	MessageNoMeeting         = "To reschedule a meeting you must first schedule a meeting with the contact!"
	MessageNoFieldEdited     = "At least one field to edit must be provided."
)

// RescheduleUsage documents the reschedule command.
var RescheduleUsage = syntax.WordReschedule + ": Reschedules a meeting with the person identified " +
	"by the index number used in the displayed person list.\n" +
	"Parameters: INDEX (must be a positive integer) " +
	"[" + string(syntax.PrefixStart) + "START DATETIME] " +
	"[" + string(syntax.PrefixEnd) + "END DATETIME] " +
	"[" + string(syntax.PrefixMeetingRemark) + "REMARK]\n" +
	"Example: " + syntax.WordReschedule + " 1 " +
	string(syntax.PrefixEnd) + "22-02-2024T16:00 " +
	string(syntax.PrefixMeetingRemark) + "Extended by one hour"

// EditMeetingDescriptor holds the meeting fields a reschedule changes.
// Absent fields keep their current value.
type EditMeetingDescriptor struct {
	start  models.Option[time.Time]
	end    models.Option[time.Time]
	remark models.Option[string]
}

// NewEditMeetingDescriptor returns a descriptor, failing when no field is set.
func NewEditMeetingDescriptor(start, end models.Option[time.Time], remark models.Option[string]) (EditMeetingDescriptor, error) {
	if !start.IsPresent() && !end.IsPresent() && !remark.IsPresent() {
		return EditMeetingDescriptor{}, apperr.New(apperr.ErrNoFieldEdited, MessageNoFieldEdited)
	}
	return EditMeetingDescriptor{start: start, end: end, remark: remark}, nil
}

func (d EditMeetingDescriptor) Start() models.Option[time.Time] { return d.start }
func (d EditMeetingDescriptor) End() models.Option[time.Time] { return d.end }
func (d EditMeetingDescriptor) Remark() models.Option[string] { return d.remark }

// Apply resolves d against current. The result is validated by models.NewMeeting.
func (d EditMeetingDescriptor) Apply(current models.Meeting) (models.Meeting, error) {
	return models.NewMeeting(
		d.start.OrElse(current.Start()),
		d.end.OrElse(current.End()),
		d.remark.OrElse(current.Remark()),
	)
}

// Args renders d as reschedule arguments that parse back to an equal descriptor.
func (d EditMeetingDescriptor) Args() string {
	var parts []string
	if s, ok := d.start.Get(); ok {
		parts = append(parts, string(syntax.PrefixStart)+datetime.FormatDateTimeInput(s))
	}
	if e, ok := d.end.Get(); ok {
		parts = append(parts, string(syntax.PrefixEnd)+datetime.FormatDateTimeInput(e))
	}
	if r, ok := d.remark.Get(); ok {
		parts = append(parts, string(syntax.PrefixMeetingRemark)+r)
	}
	return strings.Join(parts, " ")
}

// Equal compares descriptors field by field.
func (d EditMeetingDescriptor) Equal(o EditMeetingDescriptor) bool {
	return optTimeEqual(d.start, o.start) && optTimeEqual(d.end, o.end) && d.remark == o.remark
}

func optTimeEqual(a, b models.Option[time.Time]) bool {
	at, aok := a.Get()
	bt, bok := b.Get()
	return aok == bok && at.Equal(bt)
}

func (d EditMeetingDescriptor) String() string {
	return fmt.Sprintf("EditMeetingDescriptor{%s}", d.Args())
}

// Reschedule edits the existing meeting of a displayed contact.
type Reschedule struct {
	Index      models.Index
	Descriptor EditMeetingDescriptor
}

// Word implements Command.
func (Reschedule) Word() string { return syntax.WordReschedule }

// Execute implements Command. A new start must be strictly after now; an
// unchanged start is not checked, so moving only the end of a meeting that
// already began is allowed.
func (c Reschedule) Execute(m Model, now time.Time) (Result, error) {
	target, err := contactAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	current, ok := target.Meeting().Get()
	if !ok {
		return Result{}, apperr.New(apperr.ErrNoMeeting, MessageNoMeeting)
	}
	meeting, err := c.Descriptor.Apply(current)
	if err != nil {
		return Result{}, err
	}
	if start, ok := c.Descriptor.Start().Get(); ok && !start.After(now) {
		return Result{}, apperr.New(apperr.ErrPastMeeting, MessagePastMeeting)
	}

	edited := target.WithMeeting(meeting)
	if err := m.SetContact(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilter(predicate.All())
	return Result{
		Feedback: fmt.Sprintf(MessageRescheduleSuccess, edited.Name(), meeting),
		Mutated:  true,
	}, nil
}

// Equal reports whether both commands target the same index with the same edits.
func (c Reschedule) Equal(o Reschedule) bool {
	return c.Index == o.Index && c.Descriptor.Equal(o.Descriptor)
}
