package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

const namespace = "linksaudi"

// QueryMetrics records per-query measurements for the API process.
type QueryMetrics struct {
	registry *prometheus.Registry

	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	fallbackTotal prometheus.Counter
	citations     prometheus.Histogram
}

func NewQueryMetrics() *QueryMetrics {
	m := &QueryMetrics{
		registry: prometheus.NewRegistry(),
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Completed legal queries by search mode and outcome.",
		}, []string{"mode", "status"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "End to end query latency by search mode.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"mode"}),
		fallbackTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_fallbacks_total",
			Help:      "Semantic searches answered by the basic path instead.",
		}),
		citations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "citations_per_response",
			Help:      "Citations attached to each successful response.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
	}
	m.registry.MustRegister(m.queriesTotal, m.queryDuration, m.fallbackTotal, m.citations)
	return m
}

func (m *QueryMetrics) ObserveQuery(mode domain.SearchMode, err error, citations int, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.queriesTotal.WithLabelValues(string(mode), status).Inc()
	m.queryDuration.WithLabelValues(string(mode)).Observe(duration.Seconds())
	if err == nil {
		m.citations.Observe(float64(citations))
	}
}

func (m *QueryMetrics) ObserveFallback() {
	m.fallbackTotal.Inc()
}

func (m *QueryMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
