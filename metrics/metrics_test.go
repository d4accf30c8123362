package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveStyle("post", ResultOK)
	m.ObserveStyle("post", ResultOK)
	m.ObserveStyle("preset", ResultNotFound)
	m.ObserveCacheHit()
	m.ObserveGlyph("upstream")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StyleRequests.WithLabelValues("post", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StyleRequests.WithLabelValues("preset", ResultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GlyphFetches.WithLabelValues("upstream")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveStyle("get", ResultOK)
		m.ObserveCacheHit()
		m.ObserveGlyph("disk")
	})
}
