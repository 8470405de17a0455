package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
	"github.com/Ben-aoun-1/linksaudi/internal/core/ports"
)

type handlers struct {
	queries  ports.LegalQueryService
	sessions ports.SessionManager
	catalog  ports.FilterCatalog
}

type queryRequest struct {
	SessionID   string              `json:"session_id"`
	Question    string              `json:"question"`
	Filters     domain.SearchFilter `json:"filters"`
	SearchMode  string              `json:"search_mode,omitempty"`
	BypassCache bool                `json:"bypass_cache,omitempty"`
}

type queryResponse struct {
	SessionID string                  `json:"session_id"`
	Answer    string                  `json:"answer"`
	Metadata  domain.ResponseMetadata `json:"metadata"`
	Citations []domain.Citation       `json:"citations"`
}

type catalogResponse struct {
	DocumentTypes []string `json:"document_types"`
	Jurisdictions []string `json:"jurisdictions"`
	PracticeAreas []string `json:"practice_areas"`
}

func (h *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.StartSession()
	writeJSON(w, http.StatusCreated, session.Summary())
}

func (h *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.GetSession(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Summary())
}

func (h *handlers) query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, "malformed request body")
		return
	}

	// A query without a session id starts one on demand; the caller learns
	// the id from the response and can keep the consultation going.
	var session *domain.SessionContext
	if req.SessionID == "" {
		session = h.sessions.StartSession()
	} else {
		var err error
		session, err = h.sessions.GetSession(req.SessionID)
		if err != nil {
			writeError(w, r, err)
			return
		}
	}

	var hint domain.SearchMode
	if req.SearchMode != "" {
		hint = domain.SearchMode(strings.ToLower(req.SearchMode))
		if !hint.Valid() {
			writeErrorStatus(w, http.StatusBadRequest, "unknown search_mode")
			return
		}
	}

	response, err := h.queries.Ask(r.Context(), session, domain.Query{
		Text:        req.Question,
		Filters:     req.Filters,
		ModeHint:    hint,
		BypassCache: req.BypassCache,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{
		SessionID: session.ID(),
		Answer:    response.Content,
		Metadata:  response.Metadata,
		Citations: response.Citations,
	})
}

func (h *handlers) getCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		DocumentTypes: h.catalog.DocumentTypes(),
		Jurisdictions: h.catalog.Jurisdictions(),
		PracticeAreas: h.catalog.PracticeAreas(),
	})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("response_encode_failed", "error", err)
	}
}
