package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/findvisor/internal/logic"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// hist may be nil, in which case /history answers with an empty list.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(eng *logic.Engine, hist HistoryReader, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(eng, hist)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Post("/commands", h.RunCommand)
	r.Get("/contacts", h.ListContacts)
	r.Get("/history", h.History)
	r.Get("/syntax", h.Syntax)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
