package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/starford/findvisor/internal/command"
	"github.com/starford/findvisor/internal/logic"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/parser"
)

const maxCommandBody = 64 << 10

// HistoryReader lists executed command lines.
type HistoryReader interface {
	Search(keyword string, limit int) ([]models.CommandRecord, error)
}

// Handler holds API route handlers.
type Handler struct {
	eng  *logic.Engine
	hist HistoryReader
}

// NewHandler creates a new Handler.
func NewHandler(eng *logic.Engine, hist HistoryReader) *Handler {
	return &Handler{eng: eng, hist: hist}
}

// RunCommand handles POST /api/commands.
//
// Rejected commands are still 200: the feedback is the user-facing answer
// and OK reports whether the command succeeded.
//
//	@Summary		Run one command line
//	@Tags			commands
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CommandRequest	true	"Command line"
//	@Success		200		{object}	CommandResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/commands [post]
func (h *Handler) RunCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxCommandBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if strings.TrimSpace(req.Line) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("line is required"))
		return
	}
	writeJSON(w, http.StatusOK, h.eng.Execute(req.Line))
}

// ListContacts handles GET /api/contacts.
//
//	@Summary		List the contacts selected by the active filter
//	@Tags			contacts
//	@Produce		json
//	@Success		200	{object}	ContactsResponse
//	@Security		BearerAuth
//	@Router			/contacts [get]
func (h *Handler) ListContacts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.eng.View().DTO())
}

// History handles GET /api/history.
//
//	@Summary		List executed command lines, newest first
//	@Tags			commands
//	@Produce		json
//	@Param			keyword	query		string	false	"Only lines containing keyword"
//	@Param			limit	query		int		false	"Maximum entries"
//	@Success		200		{object}	HistoryResponse
//	@Security		BearerAuth
//	@Router			/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = parser.DefaultHistoryLimit
	}
	resp := HistoryResponse{Commands: []HistoryItem{}}
	if h.hist == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	records, err := h.hist.Search(q.Get("keyword"), limit)
	if err != nil {
		slog.Error("history search failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	for _, rec := range records {
		resp.Commands = append(resp.Commands, HistoryItem{
			Line:       rec.Line,
			Result:     rec.Result,
			OK:         rec.OK,
			Session:    rec.Session,
			ExecutedAt: rec.ExecutedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Syntax handles GET /api/syntax.
//
//	@Summary		Usage text of every command
//	@Tags			commands
//	@Produce		json
//	@Success		200	{object}	SyntaxResponse
//	@Security		BearerAuth
//	@Router			/syntax [get]
func (h *Handler) Syntax(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SyntaxResponse{Commands: command.Usages()})
}
