package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine collectors. A nil *Metrics is valid and records
// nothing, so components can be built without a registry in tests.
type Metrics struct {
	registry *prometheus.Registry

	matchStage     *prometheus.CounterVec
	fallbacks      *prometheus.CounterVec
	embedCache     *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	recommendation *prometheus.CounterVec
}

// New registers the engine collectors on a fresh registry together with the
// Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		matchStage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recruitads",
			Name:      "role_match_total",
			Help:      "Role matches by the strategy that produced them.",
		}, []string{"stage"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recruitads",
			Name:      "degraded_total",
			Help:      "Collaborator failures that degraded a response.",
		}, []string{"component"}),
		embedCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recruitads",
			Name:      "embedding_lookups_total",
			Help:      "Embedding store lookups by result.",
		}, []string{"result"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "recruitads",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),
		recommendation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recruitads",
			Name:      "recommendations_total",
			Help:      "Recommendations served by data scope.",
		}, []string{"scope"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.matchStage, m.fallbacks, m.embedCache, m.requestLatency, m.recommendation,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) MatchStage(stage string) {
	if m == nil {
		return
	}
	m.matchStage.WithLabelValues(stage).Inc()
}

// Degraded counts a collaborator failure that was absorbed.
func (m *Metrics) Degraded(component string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(component).Inc()
}

// EmbeddingLookup records "hit", "remote" or "miss".
func (m *Metrics) EmbeddingLookup(result string) {
	if m == nil {
		return
	}
	m.embedCache.WithLabelValues(result).Inc()
}

func (m *Metrics) Recommendation(scope string) {
	if m == nil {
		return
	}
	m.recommendation.WithLabelValues(scope).Inc()
}

func (m *Metrics) ObserveRequest(route, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestLatency.WithLabelValues(route, code).Observe(d.Seconds())
}
