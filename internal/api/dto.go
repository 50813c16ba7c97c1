package api

import (
	"time"

	"github.com/starford/findvisor/internal/logic"
)

// CommandRequest is the request body for running a command line.
type CommandRequest struct {
	Line string `json:"line" example:"find n/alex" validate:"required"`
}

// CommandResponse is the outcome of a command line (aliased from the logic layer).
type CommandResponse = logic.Response

// ContactsResponse lists the displayed contacts (aliased from the logic layer).
type ContactsResponse = logic.ContactsDTO

// HistoryItem is one executed command line.
type HistoryItem struct {
	Line       string    `json:"line" example:"find n/alex" validate:"required"`
	Result     string    `json:"result"`
	OK         bool      `json:"ok"`
	Session    string    `json:"session"`
	ExecutedAt time.Time `json:"executed_at"`
}

// HistoryResponse wraps history listings.
type HistoryResponse struct {
	Commands []HistoryItem `json:"commands" validate:"required"`
}

// SyntaxResponse lists the usage text of every command.
type SyntaxResponse struct {
	Commands []string `json:"commands" validate:"required"`
}
