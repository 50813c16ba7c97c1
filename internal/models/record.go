package models

import "time"

// CommandRecord is one executed command line as kept in the history.
type CommandRecord struct {
	Session    string
	Line       string
	Result     string
	OK         bool
	ExecutedAt time.Time
}
