// Package metrics exposes the map server's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "maritimemap"

// Metrics groups the server's collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	StyleRequests *prometheus.CounterVec
	CacheHits     prometheus.Counter
	GlyphFetches  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		StyleRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "style_requests_total",
			Help:      "Style documents served, by source and result.",
		}, []string{"source", "result"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "style_cache_hits_total",
			Help:      "Style documents served from the cache.",
		}),
		GlyphFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "glyph_fetches_total",
			Help:      "Glyph range lookups, by origin (disk, upstream, error).",
		}, []string{"origin"}),
	}
	m.Registry.MustRegister(
		m.StyleRequests,
		m.CacheHits,
		m.GlyphFetches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Result labels for StyleRequests.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

func (m *Metrics) ObserveStyle(source, result string) {
	if m == nil {
		return
	}
	m.StyleRequests.WithLabelValues(source, result).Inc()
}

func (m *Metrics) ObserveCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

func (m *Metrics) ObserveGlyph(origin string) {
	if m == nil {
		return
	}
	m.GlyphFetches.WithLabelValues(origin).Inc()
}
