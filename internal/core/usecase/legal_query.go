package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
	"github.com/Ben-aoun-1/linksaudi/internal/core/ports"
)

// QueryObserver receives engine-level measurements. Implemented by the
// Prometheus metrics in observability; nil-safe throughout.
type QueryObserver interface {
	ObserveQuery(mode domain.SearchMode, err error, citations int, duration time.Duration)
	ObserveFallback()
}

// LegalQueryConfig bundles the ranking and retrieval knobs of one engine
// instance. TopK is required; the two operating profiles observed in
// production are standard (K=10) and lightweight (K=3).
type LegalQueryConfig struct {
	RelevanceFloor float64
	TopK           int
	Profile        domain.RankingProfile
	CandidateLimit int
	CacheTTL       time.Duration
	Mode           SearchModeConfig
}

// LegalQueryUseCase runs one query end to end: filter validation, mode
// resolution, index search with fallback, ranking, citation assembly, answer
// composition, session bookkeeping, and the transcript audit event.
type LegalQueryUseCase struct {
	index     ports.DocumentIndex
	composer  ports.AnswerComposer
	catalog   ports.FilterCatalog
	publisher ports.TranscriptPublisher
	observer  QueryObserver

	controller *searchModeController
	cache      *gocache.Cache
	cfg        LegalQueryConfig
}

func NewLegalQueryUseCase(
	index ports.DocumentIndex,
	composer ports.AnswerComposer,
	catalog ports.FilterCatalog,
	publisher ports.TranscriptPublisher,
	observer QueryObserver,
	cfg LegalQueryConfig,
) *LegalQueryUseCase {
	if cfg.TopK <= 0 {
		cfg.TopK = 10
	}
	if cfg.CandidateLimit <= 0 {
		cfg.CandidateLimit = 50
	}
	var responseCache *gocache.Cache
	if cfg.CacheTTL > 0 {
		responseCache = gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return &LegalQueryUseCase{
		index:      index,
		composer:   composer,
		catalog:    catalog,
		publisher:  publisher,
		observer:   observer,
		controller: newSearchModeController(cfg.Mode),
		cache:      responseCache,
		cfg:        cfg,
	}
}

func (uc *LegalQueryUseCase) Ask(
	ctx context.Context,
	session *domain.SessionContext,
	query domain.Query,
) (*domain.LegalResponse, error) {
	start := time.Now()

	question := strings.TrimSpace(query.Text)
	if question == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "legal query", fmt.Errorf("question is empty"))
	}

	// Filters are rejected before any index call; a failed validation leaves
	// the session counters untouched.
	if err := uc.catalog.ValidateFilter(query.Filters); err != nil {
		return nil, err
	}

	if cached, ok := uc.cachedResponse(query, question); ok {
		uc.completeQuery(ctx, session, question, query.Filters, cached, start)
		return cached, nil
	}

	candidates, modeUsed, fellBack, err := uc.controller.search(ctx, uc.index, query, uc.cfg.CandidateLimit)
	if fellBack && uc.observer != nil {
		uc.observer.ObserveFallback()
	}
	if err != nil {
		if ctx.Err() != nil || !uc.degradable(err) {
			if uc.observer != nil {
				uc.observer.ObserveQuery(modeUsed, err, 0, time.Since(start))
			}
			return nil, err
		}
		// Both search paths are down. The conversation loop never sees a
		// failed turn for that: degrade to an explicit zero-citation answer.
		slog.Error("document_index_degraded", "mode", string(modeUsed), "error", err)
		candidates = nil
	}

	valid := candidates[:0:0]
	for _, c := range candidates {
		if vErr := c.Validate(); vErr != nil {
			slog.Warn("candidate_dropped", "document_id", c.DocumentID, "file_name", c.FileName, "error", vErr)
			continue
		}
		valid = append(valid, c)
	}

	ranked := rankCandidates(valid, uc.cfg.RelevanceFloor, uc.cfg.TopK)
	citations, meta := assembleCitations(ranked, len(valid), modeUsed, uc.cfg.Profile)

	content, err := uc.composeAnswer(ctx, question, ranked, citations)
	if err != nil {
		if uc.observer != nil {
			uc.observer.ObserveQuery(modeUsed, err, 0, time.Since(start))
		}
		return nil, err
	}

	response := &domain.LegalResponse{
		Content:   content,
		Metadata:  meta,
		Citations: citations,
	}

	uc.storeResponse(query, question, response)
	uc.completeQuery(ctx, session, question, query.Filters, response, start)
	return response, nil
}

// composeAnswer calls the external composer for a non-empty ranked set and
// writes the explicit no-documents answer otherwise. A composer fault is not
// fatal either: the answer degrades to a summary built from the citations.
func (uc *LegalQueryUseCase) composeAnswer(
	ctx context.Context,
	question string,
	ranked []domain.Candidate,
	citations []domain.Citation,
) (string, error) {
	if len(ranked) == 0 {
		return noDocumentsAnswer(question), nil
	}

	content, err := uc.composer.Compose(ctx, question, ranked)
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		slog.Error("answer_composer_degraded", "error", err)
		return summaryAnswer(question, ranked), nil
	}
	return content, nil
}

func (uc *LegalQueryUseCase) completeQuery(
	ctx context.Context,
	session *domain.SessionContext,
	question string,
	filters domain.SearchFilter,
	response *domain.LegalResponse,
	start time.Time,
) {
	if session != nil {
		if session.ClaimDisclaimer() {
			response.Content += "\n\n" + legalDisclaimer
		}
		session.RecordQuery(response.Metadata)
	}

	uc.publishTranscript(ctx, session, question, filters, response)

	if uc.observer != nil {
		mode := domain.ModeBasic
		if response.Metadata.SearchMethod == domain.MethodSemanticSearch {
			mode = domain.ModeSemantic
		}
		uc.observer.ObserveQuery(mode, nil, len(response.Citations), time.Since(start))
	}
}

func (uc *LegalQueryUseCase) publishTranscript(
	ctx context.Context,
	session *domain.SessionContext,
	question string,
	filters domain.SearchFilter,
	response *domain.LegalResponse,
) {
	if uc.publisher == nil {
		return
	}

	entry := domain.TranscriptEntry{
		ID:        uuid.NewString(),
		Question:  question,
		Filters:   filters,
		Response:  *response,
		CreatedAt: time.Now().UTC(),
	}
	if session != nil {
		entry.SessionID = session.ID()
	}

	// Audit trail is best effort; a broker fault must not fail the turn.
	if err := uc.publisher.PublishTranscript(ctx, entry); err != nil {
		slog.Warn("transcript_publish_failed", "entry_id", entry.ID, "error", err)
	}
}

func (uc *LegalQueryUseCase) cachedResponse(query domain.Query, question string) (*domain.LegalResponse, bool) {
	if uc.cache == nil || query.BypassCache {
		return nil, false
	}
	v, ok := uc.cache.Get(responseCacheKey(query, question))
	if !ok {
		return nil, false
	}
	cached, ok := v.(domain.LegalResponse)
	if !ok {
		return nil, false
	}
	return &cached, true
}

func (uc *LegalQueryUseCase) storeResponse(query domain.Query, question string, response *domain.LegalResponse) {
	if uc.cache == nil {
		return
	}
	uc.cache.SetDefault(responseCacheKey(query, question), *response)
}

func responseCacheKey(query domain.Query, question string) string {
	return strings.Join([]string{
		question,
		query.Filters.DocumentType,
		query.Filters.Jurisdiction,
		string(query.ModeHint),
	}, "\x00")
}

// degradable reports whether a search failure may be absorbed into a
// zero-citation response instead of surfacing to the caller.
func (uc *LegalQueryUseCase) degradable(err error) bool {
	return domain.IsKind(err, domain.ErrIndexUnavailable) || domain.IsKind(err, domain.ErrTemporary)
}
