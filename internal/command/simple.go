package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/starford/findvisor/internal/datetime"
	"github.com/starford/findvisor/internal/predicate"
	"github.com/starford/findvisor/internal/syntax"
)

// Messages for the argument-less commands.
const (
	MessageListSuccess = "Listed all persons"
	MessageExit        = "Exiting FindVisor as requested ..."
	MessageNoHistory   = "No commands in history"
)

// Usage strings of the argument-less commands.
var (
	ListUsage    = syntax.WordList + ": Lists all persons.\nExample: " + syntax.WordList
	TodayUsage   = syntax.WordToday + ": Lists all persons with a meeting starting today.\nExample: " + syntax.WordToday
	HistoryUsage = syntax.WordHistory + ": Shows recently entered commands, optionally only those containing KEYWORD.\n" +
		"Parameters: [KEYWORD]\nExample: " + syntax.WordHistory + " find"
	HelpUsage = syntax.WordHelp + ": Shows the usage of every command.\nExample: " + syntax.WordHelp
	ExitUsage = syntax.WordExit + ": Exits the program.\nExample: " + syntax.WordExit
)

// List shows every contact.
type List struct{}

// Word implements Command.
func (List) Word() string { return syntax.WordList }

// Execute implements Command.
func (List) Execute(m Model, _ time.Time) (Result, error) {
	m.UpdateFilter(predicate.All())
	return Result{Feedback: MessageListSuccess}, nil
}

// Today shows contacts whose meeting starts on the current day.
type Today struct{}

// Word implements Command.
func (Today) Word() string { return syntax.WordToday }

// Execute implements Command.
func (Today) Execute(m Model, now time.Time) (Result, error) {
	p := predicate.Today(now)
	m.UpdateFilter(p)
	return Result{
		Feedback: fmt.Sprintf(MessagePersonsListed, len(m.FilteredContacts()), p.Description()),
	}, nil
}

// History shows recently executed command lines.
type History struct {
	Keyword string
	Limit   int
}

// Word implements Command.
func (History) Word() string { return syntax.WordHistory }

// Execute implements Command.
func (c History) Execute(m Model, _ time.Time) (Result, error) {
	records, err := m.RecentCommands(c.Keyword, c.Limit)
	if err != nil {
		return Result{}, err
	}
	if len(records) == 0 {
		return Result{Feedback: MessageNoHistory}, nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf("%d. [%s] %s", i+1, datetime.FormatDateTime(r.ExecutedAt), r.Line)
	}
	return Result{Feedback: strings.Join(lines, "\n")}, nil
}

// Help shows the usage of every command.
type Help struct{}

// Word implements Command.
func (Help) Word() string { return syntax.WordHelp }

// Execute implements Command.
func (Help) Execute(_ Model, _ time.Time) (Result, error) {
	return Result{Feedback: strings.Join(Usages(), "\n\n")}, nil
}

// Exit ends the interactive session.
type Exit struct{}

// Word implements Command.
func (Exit) Word() string { return syntax.WordExit }

// Execute implements Command.
func (Exit) Execute(_ Model, _ time.Time) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}

// Usages returns the usage text of every command, in help order.
func Usages() []string {
	return []string{
		FindUsage,
		RescheduleUsage,
		AddTagUsage,
		DeleteTagUsage,
		ListUsage,
		TodayUsage,
		HistoryUsage,
		HelpUsage,
		ExitUsage,
	}
}
