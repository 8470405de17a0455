package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
	"github.com/Ben-aoun-1/linksaudi/internal/core/ports"
)

// SearchModeConfig carries the controller knobs: the configured steady mode,
// per-mode adapter timeouts, and the semantic error budget. A budget of N
// means the Nth consecutive semantic failure demotes the steady mode to basic
// until the process restarts; 0 disables demotion.
type SearchModeConfig struct {
	InitialMode         domain.SearchMode
	SemanticTimeout     time.Duration
	BasicTimeout        time.Duration
	SemanticErrorBudget int
}

// searchModeController decides which index operation serves a query and owns
// the semantic-to-basic fallback. The user never sees a failed turn because
// of a semantic-layer fault: the same query is retried against basic before
// anything returns to the caller. Mode never escalates to semantic on its
// own; only configuration (or an explicit per-query hint, while semantic is
// still trusted) selects it.
type searchModeController struct {
	cfg SearchModeConfig

	mu               sync.Mutex
	steady           domain.SearchMode
	semanticFailures int
}

func newSearchModeController(cfg SearchModeConfig) *searchModeController {
	steady := cfg.InitialMode
	if !steady.Valid() {
		steady = domain.ModeBasic
	}
	return &searchModeController{cfg: cfg, steady: steady}
}

func (c *searchModeController) resolveMode(hint domain.SearchMode) domain.SearchMode {
	c.mu.Lock()
	defer c.mu.Unlock()

	if hint == domain.ModeBasic {
		return domain.ModeBasic
	}
	// A semantic hint is honored only while semantic is still the trusted
	// steady mode; after demotion the controller stays predictable-basic.
	if hint == domain.ModeSemantic && c.steady == domain.ModeSemantic {
		return domain.ModeSemantic
	}
	return c.steady
}

// search runs the resolved mode against the index, falling back from semantic
// to basic on IndexUnavailable or a blown timeout. It reports the mode that
// actually produced the result and whether a fallback fired.
func (c *searchModeController) search(
	ctx context.Context,
	index ports.DocumentIndex,
	query domain.Query,
	limit int,
) (candidates []domain.Candidate, used domain.SearchMode, fellBack bool, err error) {
	mode := c.resolveMode(query.ModeHint)

	if mode == domain.ModeSemantic {
		candidates, err = c.callIndex(ctx, index, query, domain.ModeSemantic, limit, c.cfg.SemanticTimeout)
		if err == nil {
			c.recordSemanticSuccess()
			return candidates, domain.ModeSemantic, false, nil
		}
		if !c.shouldFallBack(ctx, err) {
			return nil, domain.ModeSemantic, false, err
		}
		c.recordSemanticFailure()
		slog.Warn("semantic_search_fallback",
			"error", err,
			"timeout_ms", c.cfg.SemanticTimeout.Milliseconds(),
		)
		fellBack = true
	}

	candidates, err = c.callIndex(ctx, index, query, domain.ModeBasic, limit, c.cfg.BasicTimeout)
	return candidates, domain.ModeBasic, fellBack, err
}

func (c *searchModeController) callIndex(
	ctx context.Context,
	index ports.DocumentIndex,
	query domain.Query,
	mode domain.SearchMode,
	limit int,
	timeout time.Duration,
) ([]domain.Candidate, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return index.Search(ctx, query.Text, query.Filters, mode, limit)
}

// shouldFallBack treats index unavailability and a blown per-mode deadline as
// fallback triggers. A caller-initiated cancellation is not: the abort must
// propagate instead of spending more time on a basic retry.
func (c *searchModeController) shouldFallBack(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return domain.IsKind(err, domain.ErrIndexUnavailable) ||
		domain.IsKind(err, domain.ErrTemporary) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (c *searchModeController) recordSemanticSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.semanticFailures = 0
}

func (c *searchModeController) recordSemanticFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.semanticFailures++
	if c.cfg.SemanticErrorBudget > 0 &&
		c.semanticFailures >= c.cfg.SemanticErrorBudget &&
		c.steady == domain.ModeSemantic {
		c.steady = domain.ModeBasic
		slog.Warn("semantic_search_demoted",
			"consecutive_failures", c.semanticFailures,
			"error_budget", c.cfg.SemanticErrorBudget,
		)
	}
}

func (c *searchModeController) steadyMode() domain.SearchMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steady
}
