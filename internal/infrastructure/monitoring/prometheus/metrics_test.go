package prometheus

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("test")

	m.ObserveAnalysis(10*time.Millisecond, false)
	m.ObserveAnalysis(0, true)
	m.ObserveRecommendation(20 * time.Millisecond)
	m.ObserveSimulation()
	m.ObserveSimulation()
	m.ProfileCacheHit()
	m.ProfileCacheMiss()
	m.DatasetReloaded()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.analysisTotal.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analysisTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.simulationsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.profileCacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.profileCacheMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.datasetReloads))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("test")
	m.ObserveSimulation()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_simulations_total 1")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	// two instances must not collide
	a := NewMetrics("test")
	b := NewMetrics("test")
	a.ObserveSimulation()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.simulationsTotal))
}
