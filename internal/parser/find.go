package parser

import (
	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/command"
	"github.com/starford/findvisor/internal/predicate"
	"github.com/starford/findvisor/internal/syntax"
)

var (
	searchPrefixes = []syntax.Prefix{
		syntax.PrefixName, syntax.PrefixPhone, syntax.PrefixEmail, syntax.PrefixAddress,
		syntax.PrefixRemark, syntax.PrefixMeetingDate, syntax.PrefixMeetingRemark, syntax.PrefixTag,
	}
	singleValuedSearchPrefixes = []syntax.Prefix{
		syntax.PrefixName, syntax.PrefixPhone, syntax.PrefixEmail, syntax.PrefixAddress,
		syntax.PrefixRemark, syntax.PrefixMeetingDate, syntax.PrefixMeetingRemark,
	}
)

// ParseFind parses the arguments of a find command. Exactly one field prefix
// must be given, with no text before it.
func ParseFind(args string) (command.Find, error) {
	am := Tokenize(args, searchPrefixes...)
	if am.Preamble() != "" {
		return command.Find{}, command.InvalidFormat(command.FindUsage, nil)
	}
	if err := am.VerifyNoDuplicates(singleValuedSearchPrefixes...); err != nil {
		return command.Find{}, err
	}

	var present []syntax.Prefix
	for _, p := range searchPrefixes {
		if am.Has(p) {
			present = append(present, p)
		}
	}
	if len(present) != 1 {
		return command.Find{}, command.InvalidFormat(command.FindUsage, nil)
	}

	p := present[0]
	if p == syntax.PrefixTag {
		keywords, err := tagKeywords(am)
		if err != nil {
			return command.Find{}, err
		}
		return command.Find{Predicate: predicate.Tags(keywords)}, nil
	}

	if err := am.VerifyNoBlankValue(p); err != nil {
		return command.Find{}, err
	}
	value, _ := am.Value(p)

	switch p {
	case syntax.PrefixName:
		return command.Find{Predicate: predicate.Name(value)}, nil
	case syntax.PrefixPhone:
		return command.Find{Predicate: predicate.Phone(value)}, nil
	case syntax.PrefixEmail:
		return command.Find{Predicate: predicate.Email(value)}, nil
	case syntax.PrefixAddress:
		return command.Find{Predicate: predicate.Address(value)}, nil
	case syntax.PrefixRemark:
		return command.Find{Predicate: predicate.Remark(value)}, nil
	case syntax.PrefixMeetingRemark:
		return command.Find{Predicate: predicate.MeetingRemark(value)}, nil
	case syntax.PrefixMeetingDate:
		date, err := ParseDate(value)
		if err != nil {
			return command.Find{}, err
		}
		return command.Find{Predicate: predicate.MeetingDate(date)}, nil
	}
	return command.Find{}, command.InvalidFormat(command.FindUsage, nil)
}

// tagKeywords returns the tag values of am. At least one value is required
// and none may be blank.
func tagKeywords(am *ArgumentMap) ([]string, error) {
	values := am.AllValues(syntax.PrefixTag)
	if len(values) == 0 {
		return nil, command.InvalidFormat(command.FindUsage, nil)
	}
	for _, v := range values {
		if v == "" {
			return nil, apperr.New(apperr.ErrEmptyField, MessageEmptyField, syntax.PrefixTag)
		}
	}
	return values, nil
}
