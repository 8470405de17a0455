package usecase

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

// SessionRegistry holds the live consultation sessions. Sessions proceed
// fully in parallel; each context serializes its own updates.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.SessionContext
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*domain.SessionContext)}
}

func (r *SessionRegistry) StartSession() *domain.SessionContext {
	session := domain.NewSessionContext(uuid.NewString())

	r.mu.Lock()
	r.sessions[session.ID()] = session
	r.mu.Unlock()

	return session
}

func (r *SessionRegistry) GetSession(sessionID string) (*domain.SessionContext, error) {
	r.mu.RLock()
	session, ok := r.sessions[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.WrapError(domain.ErrSessionNotFound, "get session", fmt.Errorf("unknown session id %s", sessionID))
	}
	return session, nil
}
