// Package predicate implements the single-field filters used by find.
package predicate

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/starford/findvisor/internal/datetime"
	"github.com/starford/findvisor/internal/models"
)

// Kind discriminates the field a Predicate matches on.
type Kind int

const (
	KindAll Kind = iota
	KindName
	KindPhone
	KindEmail
	KindAddress
	KindRemark
	KindMeetingDate
	KindMeetingRemark
	KindTags
	KindMeetingToday
)

var kindNames = map[Kind]string{
	KindAll:           "all",
	KindName:          "name",
	KindPhone:         "phone",
	KindEmail:         "email",
	KindAddress:       "address",
	KindRemark:        "remark",
	KindMeetingDate:   "meeting date",
	KindMeetingRemark: "meeting remark",
	KindTags:          "tags",
	KindMeetingToday:  "today's meetings",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Predicate is a value object wrapping exactly one keyword, date or tag list.
// The zero value matches every contact.
type Predicate struct {
	kind    Kind
	keyword string
	date    time.Time
	tags    []string
}

// All matches every contact.
func All() Predicate { return Predicate{kind: KindAll} }

// Name matches contacts whose name contains keyword, ignoring case.
func Name(keyword string) Predicate { return Predicate{kind: KindName, keyword: keyword} }

// Phone matches contacts whose phone contains keyword.
func Phone(keyword string) Predicate { return Predicate{kind: KindPhone, keyword: keyword} }

// Email matches contacts whose email contains keyword, ignoring case.
func Email(keyword string) Predicate { return Predicate{kind: KindEmail, keyword: keyword} }

// Address matches contacts whose address contains keyword, ignoring case.
func Address(keyword string) Predicate { return Predicate{kind: KindAddress, keyword: keyword} }

// Remark matches contacts with a remark containing keyword, ignoring case.
func Remark(keyword string) Predicate { return Predicate{kind: KindRemark, keyword: keyword} }

// MeetingDate matches contacts whose meeting starts or ends on date.
func MeetingDate(date time.Time) Predicate { return Predicate{kind: KindMeetingDate, date: date} }

// MeetingRemark matches contacts whose meeting remark contains keyword, ignoring case.
func MeetingRemark(keyword string) Predicate {
	return Predicate{kind: KindMeetingRemark, keyword: keyword}
}

// Tags matches contacts carrying every one of keywords.
func Tags(keywords []string) Predicate {
	return Predicate{kind: KindTags, tags: slices.Clone(keywords)}
}

// Today matches contacts whose meeting starts on the calendar day of now.
func Today(now time.Time) Predicate { return Predicate{kind: KindMeetingToday, date: now} }

// Kind returns the field p matches on.
func (p Predicate) Kind() Kind { return p.kind }

// Test reports whether c satisfies p.
func (p Predicate) Test(c models.Contact) bool {
	switch p.kind {
	case KindAll:
		return true
	case KindName:
		return models.ContainsIgnoreCase(string(c.Name()), p.keyword)
	case KindPhone:
		return models.ContainsIgnoreCase(string(c.Phone()), p.keyword)
	case KindEmail:
		return models.ContainsIgnoreCase(string(c.Email()), p.keyword)
	case KindAddress:
		return models.ContainsIgnoreCase(string(c.Address()), p.keyword)
	case KindRemark:
		r, ok := c.Remark().Get()
		return ok && models.ContainsIgnoreCase(string(r), p.keyword)
	case KindMeetingDate:
		m, ok := c.Meeting().Get()
		return ok && (datetime.SameDate(p.date, m.Start()) || datetime.SameDate(p.date, m.End()))
	case KindMeetingRemark:
		m, ok := c.Meeting().Get()
		return ok && models.ContainsIgnoreCase(m.Remark(), p.keyword)
	case KindTags:
		tags := c.Tags()
		for _, kw := range p.tags {
			if !tags.Contains(models.Tag(kw)) {
				return false
			}
		}
		return true
	case KindMeetingToday:
		m, ok := c.Meeting().Get()
		return ok && datetime.SameDate(p.date, m.Start())
	default:
		return false
	}
}

// Description renders p for result messages.
func (p Predicate) Description() string {
	switch p.kind {
	case KindName:
		return fmt.Sprintf("Name containing %q", p.keyword)
	case KindPhone:
		return fmt.Sprintf("Phone containing %q", p.keyword)
	case KindEmail:
		return fmt.Sprintf("Email containing %q", p.keyword)
	case KindAddress:
		return fmt.Sprintf("Address containing %q", p.keyword)
	case KindRemark:
		return fmt.Sprintf("Person remark containing %q", p.keyword)
	case KindMeetingDate:
		return fmt.Sprintf("Meeting on %q", datetime.FormatDate(p.date))
	case KindMeetingRemark:
		return fmt.Sprintf("Meeting remark containing %q", p.keyword)
	case KindTags:
		return fmt.Sprintf("Tags containing %q", strings.Join(p.tags, ", "))
	case KindMeetingToday:
		return fmt.Sprintf("Today's meeting on %q", datetime.FormatDate(p.date))
	default:
		return "all persons"
	}
}

// Equal reports whether p and o are the same kind over the same argument.
func (p Predicate) Equal(o Predicate) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case KindMeetingDate, KindMeetingToday:
		return datetime.SameDate(p.date, o.date)
	case KindTags:
		return slices.Equal(p.tags, o.tags)
	default:
		return p.keyword == o.keyword
	}
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s{%s}", p.kind, p.Description())
}
