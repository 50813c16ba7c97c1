package parser

import (
	"github.com/starford/findvisor/internal/command"
	"github.com/starford/findvisor/internal/syntax"
)

// ParseAddTag parses "INDEX t/TAG...".
func ParseAddTag(args string) (command.AddTag, error) {
	am := Tokenize(args, syntax.PrefixTag)
	if !am.Has(syntax.PrefixTag) {
		return command.AddTag{}, command.InvalidFormat(command.AddTagUsage, nil)
	}
	idx, err := ParseIndex(am.Preamble())
	if err != nil {
		return command.AddTag{}, command.InvalidFormat(command.AddTagUsage, err)
	}
	tags, err := ParseTags(am.AllValues(syntax.PrefixTag))
	if err != nil {
		return command.AddTag{}, command.InvalidFormat(command.AddTagUsage, err)
	}
	return command.AddTag{Index: idx, Tags: tags}, nil
}

// ParseDeleteTag parses "INDEX t/TAG..." into a command using policy.
func ParseDeleteTag(args string, policy command.TagPolicy) (command.DeleteTag, error) {
	am := Tokenize(args, syntax.PrefixTag)
	idx, err := ParseIndex(am.Preamble())
	if err != nil {
		return command.DeleteTag{}, command.InvalidFormat(command.DeleteTagUsage, err)
	}
	if !am.Has(syntax.PrefixTag) {
		return command.DeleteTag{}, command.InvalidFormat(command.DeleteTagUsage, nil)
	}
	tags, err := ParseTags(am.AllValues(syntax.PrefixTag))
	if err != nil {
		return command.DeleteTag{}, command.InvalidFormat(command.DeleteTagUsage, err)
	}
	return command.DeleteTag{Index: idx, Tags: tags, Policy: policy}, nil
}
