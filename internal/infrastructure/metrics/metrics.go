package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application collectors. A nil *Metrics is a no-op.
type Metrics struct {
	registry *prometheus.Registry

	TranscriptFetches *prometheus.CounterVec
	CacheLookups      *prometheus.CounterVec
	LLMRequests       *prometheus.CounterVec
	LLMDuration       *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		TranscriptFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "video_assistant",
			Name:      "transcript_fetches_total",
			Help:      "Transcript fetches by result.",
		}, []string{"result"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "video_assistant",
			Name:      "transcript_cache_lookups_total",
			Help:      "Transcript cache lookups by tier that answered (l1, l2, miss).",
		}, []string{"tier"}),
		LLMRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "video_assistant",
			Name:      "llm_requests_total",
			Help:      "Text generation requests by operation and result.",
		}, []string{"operation", "result"}),
		LLMDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "video_assistant",
			Name:      "llm_request_duration_seconds",
			Help:      "Text generation latency by operation.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80},
		}, []string{"operation"}),
	}
	reg.MustRegister(m.TranscriptFetches, m.CacheLookups, m.LLMRequests, m.LLMDuration)
	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveFetch counts a transcript fetch outcome
func (m *Metrics) ObserveFetch(result string) {
	if m == nil {
		return
	}
	m.TranscriptFetches.WithLabelValues(result).Inc()
}

// ObserveCache counts which cache tier answered a lookup
func (m *Metrics) ObserveCache(tier string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(tier).Inc()
}

// ObserveLLM records one generation call
func (m *Metrics) ObserveLLM(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.LLMRequests.WithLabelValues(operation, result).Inc()
	m.LLMDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
