package ports

import (
	"context"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

// LegalQueryService is the inbound contract for one question-answering turn.
// The session context is borrowed for the duration of the call only.
type LegalQueryService interface {
	Ask(ctx context.Context, session *domain.SessionContext, query domain.Query) (*domain.LegalResponse, error)
}

// SessionManager owns the lifecycle of consultation sessions.
type SessionManager interface {
	StartSession() *domain.SessionContext
	GetSession(sessionID string) (*domain.SessionContext, error)
}
