package http

import (
	"net/http"

	"github.com/Ben-aoun-1/linksaudi/internal/core/ports"
)

// Dependencies carries everything the HTTP surface needs. MetricsHandler may
// be nil; the /metrics route is then omitted.
type Dependencies struct {
	Queries        ports.LegalQueryService
	Sessions       ports.SessionManager
	Catalog        ports.FilterCatalog
	MetricsHandler http.Handler
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(deps Dependencies) http.Handler {
	h := &handlers{
		queries:  deps.Queries,
		sessions: deps.Sessions,
		catalog:  deps.Catalog,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/legal/sessions", h.createSession)
	mux.HandleFunc("GET /v1/legal/sessions/{id}", h.getSession)
	mux.HandleFunc("POST /v1/legal/query", h.query)
	mux.HandleFunc("GET /v1/legal/catalog", h.getCatalog)
	mux.HandleFunc("GET /healthz", h.health)
	if deps.MetricsHandler != nil {
		mux.Handle("GET /metrics", deps.MetricsHandler)
	}

	var handler http.Handler = mux
	handler = rateLimit(handler, deps.RateLimitRPS, deps.RateLimitBurst)
	handler = accessLog(handler)
	handler = requestID(handler)
	return handler
}
