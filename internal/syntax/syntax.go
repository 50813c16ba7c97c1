// Package syntax holds the prefix tokens of the command language.
package syntax

// Prefix marks the start of a field's value in command text, e.g. "n/".
type Prefix string

func (p Prefix) String() string { return string(p) }

// Tokens are part of the user-facing command language and must stay stable.
// PrefixEmail and PrefixEnd share a token; no command accepts both.
const (
	PrefixName          Prefix = "n/"
	PrefixPhone         Prefix = "p/"
	PrefixEmail         Prefix = "e/"
	PrefixAddress       Prefix = "a/"
	PrefixTag           Prefix = "t/"
	PrefixRemark        Prefix = "r/"
	PrefixMeetingDate   Prefix = "m/"
	PrefixMeetingRemark Prefix = "mr/"
	PrefixStart         Prefix = "s/"
	PrefixEnd           Prefix = "e/"
)

// Command words.
const (
	WordFind       = "find"
	WordReschedule = "reschedule"
	WordAddTag     = "addtag"
	WordDeleteTag  = "deletetag"
	WordList       = "list"
	WordToday      = "today"
	WordHistory    = "history"
	WordHelp       = "help"
	WordExit       = "exit"
)
