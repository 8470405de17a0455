package domain

import (
	"sort"
	"sync"
	"time"
)

// SessionContext accumulates per-session counters across a legal consultation.
// The engine receives it for the duration of one query; updates are serialized
// so overlapping queries in one session cannot interleave.
type SessionContext struct {
	mu sync.Mutex

	sessionID       string
	createdAt       time.Time
	queriesCount    int
	documentTypes   map[string]struct{}
	jurisdictions   map[string]struct{}
	disclaimerShown bool
}

func NewSessionContext(sessionID string) *SessionContext {
	return &SessionContext{
		sessionID:     sessionID,
		createdAt:     time.Now().UTC(),
		documentTypes: make(map[string]struct{}),
		jurisdictions: make(map[string]struct{}),
	}
}

func (s *SessionContext) ID() string { return s.sessionID }

// RecordQuery is called exactly once per completed query, after citation
// assembly succeeded. A failed query leaves the context untouched.
func (s *SessionContext) RecordQuery(meta ResponseMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queriesCount++
	for _, dt := range meta.DocumentTypes {
		if dt != "" {
			s.documentTypes[dt] = struct{}{}
		}
	}
	for _, j := range meta.Jurisdictions {
		if j != "" {
			s.jurisdictions[j] = struct{}{}
		}
	}
}

// ClaimDisclaimer reports whether the legal disclaimer still has to be shown
// in this session, and marks it shown.
func (s *SessionContext) ClaimDisclaimer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disclaimerShown {
		return false
	}
	s.disclaimerShown = true
	return true
}

type SessionSummary struct {
	SessionID              string    `json:"session_id"`
	CreatedAt              time.Time `json:"created_at"`
	QueriesCount           int       `json:"queries_count"`
	DocumentTypesConsulted []string  `json:"document_types_consulted"`
	JurisdictionsConsulted []string  `json:"jurisdictions_consulted"`
}

func (s *SessionContext) Summary() SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionSummary{
		SessionID:              s.sessionID,
		CreatedAt:              s.createdAt,
		QueriesCount:           s.queriesCount,
		DocumentTypesConsulted: sortedKeys(s.documentTypes),
		JurisdictionsConsulted: sortedKeys(s.jurisdictions),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
