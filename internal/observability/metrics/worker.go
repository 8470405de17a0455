package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WorkerMetrics records transcript persistence outcomes for the worker process.
type WorkerMetrics struct {
	registry *prometheus.Registry

	persistedTotal  *prometheus.CounterVec
	persistDuration prometheus.Histogram
}

func NewWorkerMetrics() *WorkerMetrics {
	m := &WorkerMetrics{
		registry: prometheus.NewRegistry(),
		persistedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcripts_persisted_total",
			Help:      "Transcript entries handled by the worker, by outcome.",
		}, []string{"status"}),
		persistDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcript_persist_duration_seconds",
			Help:      "Time spent writing one transcript entry and its session rollup.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.persistedTotal, m.persistDuration)
	return m
}

func (m *WorkerMetrics) ObservePersist(err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.persistedTotal.WithLabelValues(status).Inc()
	m.persistDuration.Observe(duration.Seconds())
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
