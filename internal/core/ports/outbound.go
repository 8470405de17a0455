package ports

import (
	"context"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

// DocumentIndex is the capability-abstracted connector to a document store.
// Implementations tag every candidate with the raw score they computed and a
// source label naming the backend, so ranking is reproducible from adapter
// output alone. No ordering guarantee; ordering is the ranker's job.
// Results are capped at 50 entries regardless of the requested limit.
type DocumentIndex interface {
	Search(ctx context.Context, text string, filters domain.SearchFilter, mode domain.SearchMode, limit int) ([]domain.Candidate, error)
}

// AnswerComposer drafts the prose answer from the question and the ranked
// passages. The engine treats the result as an opaque string.
type AnswerComposer interface {
	Compose(ctx context.Context, question string, passages []domain.Candidate) (string, error)
}

// FilterCatalog knows the recognized filter values and rejects anything else
// before a query reaches the index.
type FilterCatalog interface {
	DocumentTypes() []string
	Jurisdictions() []string
	PracticeAreas() []string
	ValidateFilter(filter domain.SearchFilter) error
}

// TranscriptPublisher emits completed transcript entries for the audit trail.
type TranscriptPublisher interface {
	PublishTranscript(ctx context.Context, entry domain.TranscriptEntry) error
}

// TranscriptStore persists transcript entries and per-session counters.
type TranscriptStore interface {
	SaveEntry(ctx context.Context, entry domain.TranscriptEntry) error
	BumpSession(ctx context.Context, sessionID string, meta domain.ResponseMetadata) error
}
