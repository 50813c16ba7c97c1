package models

import (
	"fmt"
	"time"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/datetime"
)

// MeetingConstraints is reported when a meeting ends before it starts.
const MeetingConstraints = "Meeting end date time must not be before its start date time"

// Meeting is a scheduled meeting with a contact.
type Meeting struct {
	start  time.Time
	end    time.Time
	remark string
}

// NewMeeting returns a Meeting, rejecting an end before start or an unsafe remark.
// An empty remark means no remark.
func NewMeeting(start, end time.Time, remark string) (Meeting, error) {
	if end.Before(start) {
		return Meeting{}, apperr.New(apperr.ErrConstraint, MeetingConstraints)
	}
	if !IsSafeString(remark) {
		return Meeting{}, apperr.New(apperr.ErrConstraint, "Meeting remark should only contain %s.", SafeCharacters)
	}
	return Meeting{start: start, end: end, remark: remark}, nil
}

func (m Meeting) Start() time.Time { return m.start }
func (m Meeting) End() time.Time { return m.end }
func (m Meeting) Remark() string { return m.remark }

// Equal compares meetings to the minute, the resolution of command input.
func (m Meeting) Equal(o Meeting) bool {
	return m.start.Truncate(time.Minute).Equal(o.start.Truncate(time.Minute)) &&
		m.end.Truncate(time.Minute).Equal(o.end.Truncate(time.Minute)) &&
		m.remark == o.remark
}

func (m Meeting) String() string {
	return fmt.Sprintf("Start: %s; End: %s; Remark: %s",
		datetime.FormatDateTime(m.start), datetime.FormatDateTime(m.end), m.remark)
}
