package parser

import (
	"time"

	"github.com/starford/findvisor/internal/command"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/syntax"
)

// ParseReschedule parses "INDEX [s/START] [e/END] [mr/REMARK]".
func ParseReschedule(args string) (command.Reschedule, error) {
	am := Tokenize(args, syntax.PrefixStart, syntax.PrefixEnd, syntax.PrefixMeetingRemark)

	idx, err := ParseIndex(am.Preamble())
	if err != nil {
		return command.Reschedule{}, command.InvalidFormat(command.RescheduleUsage, err)
	}
	if err := am.VerifyNoDuplicates(syntax.PrefixStart, syntax.PrefixEnd, syntax.PrefixMeetingRemark); err != nil {
		return command.Reschedule{}, err
	}

	start := models.None[time.Time]()
	if v, ok := am.Value(syntax.PrefixStart); ok {
		t, err := ParseDateTime(v)
		if err != nil {
			return command.Reschedule{}, err
		}
		start = models.Some(t)
	}
	end := models.None[time.Time]()
	if v, ok := am.Value(syntax.PrefixEnd); ok {
		t, err := ParseDateTime(v)
		if err != nil {
			return command.Reschedule{}, err
		}
		end = models.Some(t)
	}
	remark := models.None[string]()
	if v, ok := am.Value(syntax.PrefixMeetingRemark); ok {
		r, err := ParseMeetingRemark(v)
		if err != nil {
			return command.Reschedule{}, err
		}
		remark = models.Some(r)
	}

	d, err := command.NewEditMeetingDescriptor(start, end, remark)
	if err != nil {
		return command.Reschedule{}, err
	}
	return command.Reschedule{Index: idx, Descriptor: d}, nil
}
