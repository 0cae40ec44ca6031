package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the commerce bridge.
type Metrics struct {
	Registry        *prometheus.Registry
	ActionsTotal    *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	CacheHitsTotal  prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	actions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_actions_total",
			Help: "Total dispatched commerce actions by action and outcome.",
		},
		[]string{"action", "outcome"},
	)
	requestDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "commerce_request_duration_seconds",
			Help:    "Latency of commerce bridge requests.",
			Buckets: prometheus.DefBuckets,
		},
	)
	cacheHits := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "commerce_cache_hits_total",
			Help: "Total dispatch responses served from the response cache.",
		},
	)

	registry.MustRegister(actions, requestDuration, cacheHits)

	return &Metrics{
		Registry:        registry,
		ActionsTotal:    actions,
		RequestDuration: requestDuration,
		CacheHitsTotal:  cacheHits,
	}
}

// IncAction increments the action counter for an action/outcome pair.
func (m *Metrics) IncAction(action, outcome string) {
	if m == nil {
		return
	}
	m.ActionsTotal.WithLabelValues(action, outcome).Inc()
}

// ObserveDuration records a bridge request duration.
func (m *Metrics) ObserveDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.Observe(d.Seconds())
}

// IncCacheHit increments the cache hit counter.
func (m *Metrics) IncCacheHit() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}
