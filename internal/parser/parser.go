package parser

import (
	"regexp"
	"strings"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/command"
	"github.com/starford/findvisor/internal/syntax"
)

// DefaultHistoryLimit is used when no limit is configured.
const DefaultHistoryLimit = 20

var commandLineRe = regexp.MustCompile(`(?s)^(\S+)(.*)$`)

// Option configures a Parser.
type Option func(*Parser)

// WithDeleteTagPolicy sets the policy given to parsed deletetag commands.
func WithDeleteTagPolicy(p command.TagPolicy) Option {
	return func(ps *Parser) {
		ps.deleteTagPolicy = p
	}
}

// WithHistoryLimit caps the number of entries a history command shows.
func WithHistoryLimit(n int) Option {
	return func(ps *Parser) {
		if n > 0 {
			ps.historyLimit = n
		}
	}
}

// Parser dispatches a command line to the parser of its command word.
type Parser struct {
	deleteTagPolicy command.TagPolicy
	historyLimit    int
}

// New returns a Parser. Without options deletetag uses the partial policy.
func New(opts ...Option) *Parser {
	p := &Parser{
		deleteTagPolicy: command.TagPolicyPartial,
		historyLimit:    DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse turns one line of user input into a Command.
func (p *Parser) Parse(line string) (command.Command, error) {
	m := commandLineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, command.InvalidFormat(command.HelpUsage, nil)
	}
	word, args := m[1], m[2]

	switch word {
	case syntax.WordFind:
		return asCommand(ParseFind(args))
	case syntax.WordReschedule:
		return asCommand(ParseReschedule(args))
	case syntax.WordAddTag:
		return asCommand(ParseAddTag(args))
	case syntax.WordDeleteTag:
		return asCommand(ParseDeleteTag(args, p.deleteTagPolicy))
	case syntax.WordHistory:
		return command.History{Keyword: strings.TrimSpace(args), Limit: p.historyLimit}, nil
	case syntax.WordList:
		return command.List{}, nil
	case syntax.WordToday:
		return command.Today{}, nil
	case syntax.WordHelp:
		return command.Help{}, nil
	case syntax.WordExit:
		return command.Exit{}, nil
	default:
		return nil, apperr.New(apperr.ErrUnknownCommand, command.MessageUnknownCommand)
	}
}

// asCommand drops the typed zero value on error so callers never see a
// non-nil Command next to an error.
func asCommand[C command.Command](c C, err error) (command.Command, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
