package usecase

import (
	"sync"
	"testing"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

func TestSessionRegistryStartAndGet(t *testing.T) {
	registry := NewSessionRegistry()
	session := registry.StartSession()
	if session.ID() == "" {
		t.Fatalf("expected a session id")
	}

	got, err := registry.GetSession(session.ID())
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got != session {
		t.Fatalf("expected the same session context")
	}
}

func TestSessionRegistryUnknownID(t *testing.T) {
	registry := NewSessionRegistry()
	_, err := registry.GetSession("nope")
	if !domain.IsKind(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionContextCountersAccumulate(t *testing.T) {
	session := domain.NewSessionContext("s-1")
	session.RecordQuery(domain.ResponseMetadata{
		DocumentTypes: []string{"Legal Guidance"},
		Jurisdictions: []string{"Saudi Arabia"},
	})
	session.RecordQuery(domain.ResponseMetadata{
		DocumentTypes: []string{"Legal Guidance", "Royal Decree"},
		Jurisdictions: []string{"GCC"},
	})

	summary := session.Summary()
	if summary.QueriesCount != 2 {
		t.Fatalf("expected queries_count=2, got %d", summary.QueriesCount)
	}
	if len(summary.DocumentTypesConsulted) != 2 {
		t.Fatalf("expected 2 distinct document types, got %v", summary.DocumentTypesConsulted)
	}
	if len(summary.JurisdictionsConsulted) != 2 {
		t.Fatalf("expected 2 distinct jurisdictions, got %v", summary.JurisdictionsConsulted)
	}
}

func TestSessionContextSerializesConcurrentUpdates(t *testing.T) {
	session := domain.NewSessionContext("s-1")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session.RecordQuery(domain.ResponseMetadata{DocumentTypes: []string{"Legal Guidance"}})
		}()
	}
	wg.Wait()

	if got := session.Summary().QueriesCount; got != 50 {
		t.Fatalf("expected queries_count=50, got %d", got)
	}
}
