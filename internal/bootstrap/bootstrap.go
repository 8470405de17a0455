package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	httpadapter "github.com/Ben-aoun-1/linksaudi/internal/adapters/http"
	"github.com/Ben-aoun-1/linksaudi/internal/config"
	"github.com/Ben-aoun-1/linksaudi/internal/core/ports"
	"github.com/Ben-aoun-1/linksaudi/internal/core/usecase"
	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/catalog"
	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/index/staticguide"
	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/index/weaviate"
	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/llm/openai"
	natsqueue "github.com/Ben-aoun-1/linksaudi/internal/infrastructure/queue/nats"
	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/resilience"
	"github.com/Ben-aoun-1/linksaudi/internal/observability/metrics"
)

// App is the assembled API process.
type App struct {
	Handler http.Handler
	Close   func()
}

// NewApp wires the full query path. The audit queue is optional: with no
// reachable NATS server the engine still answers, transcripts are only logged.
func NewApp(cfg *config.Config) (*App, error) {
	executor := resilience.NewExecutor(resilience.DefaultConfig())

	filterCatalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	index, err := buildIndex(cfg, executor)
	if err != nil {
		return nil, err
	}

	composer := openai.New(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, openai.Options{
		Model:              cfg.OpenAIModel,
		Temperature:        cfg.OpenAITemperature,
		MaxTokens:          cfg.OpenAIMaxTokens,
		ResilienceExecutor: executor,
	})

	var publisher ports.TranscriptPublisher
	closeQueue := func() {}
	queue, err := natsqueue.New(cfg.NATSURL)
	if err != nil {
		slog.Warn("audit_queue_unavailable", "url", cfg.NATSURL, "error", err)
	} else {
		publisher = queue
		closeQueue = queue.Close
	}

	queryMetrics := metrics.NewQueryMetrics()

	engine := usecase.NewLegalQueryUseCase(index, composer, filterCatalog, publisher, queryMetrics,
		usecase.LegalQueryConfig{
			RelevanceFloor: cfg.RelevanceFloor,
			TopK:           cfg.TopK(),
			Profile:        cfg.RankingProfile,
			CandidateLimit: cfg.CandidateLimit,
			CacheTTL:       cfg.CacheTTL,
			Mode: usecase.SearchModeConfig{
				InitialMode:         cfg.SearchMode,
				SemanticTimeout:     cfg.SemanticTimeout,
				BasicTimeout:        cfg.BasicTimeout,
				SemanticErrorBudget: cfg.SemanticErrorBudget,
			},
		})

	handler := httpadapter.NewRouter(httpadapter.Dependencies{
		Queries:        engine,
		Sessions:       usecase.NewSessionRegistry(),
		Catalog:        filterCatalog,
		MetricsHandler: queryMetrics.Handler(),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	return &App{Handler: handler, Close: closeQueue}, nil
}

func loadCatalog(cfg *config.Config) (ports.FilterCatalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	loaded, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load filter catalog: %w", err)
	}
	return loaded, nil
}

func buildIndex(cfg *config.Config, executor *resilience.Executor) (ports.DocumentIndex, error) {
	switch cfg.IndexBackend {
	case "weaviate":
		return weaviate.New(cfg.WeaviateURL, cfg.WeaviateAPIKey, cfg.WeaviateClass, weaviate.Options{
			SemanticCertainty:  cfg.SemanticCertainty,
			ResilienceExecutor: executor,
		}), nil
	case "static":
		return staticguide.New(), nil
	default:
		return nil, fmt.Errorf("unknown index backend %q", cfg.IndexBackend)
	}
}
