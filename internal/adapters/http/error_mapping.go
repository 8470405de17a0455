package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError translates domain error kinds into transport status codes.
// Internal failures are logged with detail but answered generically.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput), domain.IsKind(err, domain.ErrInvalidFilter):
		writeErrorStatus(w, http.StatusBadRequest, err.Error())
	case domain.IsKind(err, domain.ErrSessionNotFound):
		writeErrorStatus(w, http.StatusNotFound, "session not found")
	case domain.IsKind(err, domain.ErrIndexUnavailable), domain.IsKind(err, domain.ErrTemporary):
		writeErrorStatus(w, http.StatusServiceUnavailable, "service temporarily unavailable")
	case errors.Is(err, context.Canceled):
		// Client went away; status is moot but 499-style handling keeps logs clean.
		writeErrorStatus(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		slog.Error("request_failed", "path", r.URL.Path, "error", err)
		writeErrorStatus(w, http.StatusInternalServerError, "internal error")
	}
}

func writeErrorStatus(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
