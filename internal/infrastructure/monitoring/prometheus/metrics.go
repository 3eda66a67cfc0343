// Package prometheus exposes the pipeline's operational metrics and the
// /metrics handler. All collectors live on a private registry so tests can
// instantiate the package repeatedly without double-registration panics.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the application collectors. The Observe* methods match
// the observer hooks the application services expose, so wiring is a
// method-value assignment in bootstrap.
type Metrics struct {
	registry *prometheus.Registry

	analysisTotal      *prometheus.CounterVec
	analysisDuration   prometheus.Histogram
	recommendTotal     prometheus.Counter
	recommendDuration  prometheus.Histogram
	simulationsTotal   prometheus.Counter
	profileCacheHits   prometheus.Counter
	profileCacheMisses prometheus.Counter
	datasetReloads     prometheus.Counter
}

// NewMetrics creates and registers all collectors under the namespace.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "cocktailiq"
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		analysisTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_total",
			Help:      "Number of cocktail analyses, by cache outcome.",
		}, []string{"cache"}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of uncached cocktail analyses.",
			Buckets:   prometheus.DefBuckets,
		}),
		recommendTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Number of recommendation runs.",
		}),
		recommendDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "Wall time of recommendation runs, simulation included.",
			Buckets:   prometheus.DefBuckets,
		}),
		simulationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Number of recipe simulations.",
		}),
		profileCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_cache_hits_total",
			Help:      "Ingredient profile cache hits.",
		}),
		profileCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_cache_misses_total",
			Help:      "Ingredient profile cache misses.",
		}),
		datasetReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_reloads_total",
			Help:      "Molecule dataset hot reloads.",
		}),
	}
	registry.MustRegister(
		m.analysisTotal,
		m.analysisDuration,
		m.recommendTotal,
		m.recommendDuration,
		m.simulationsTotal,
		m.profileCacheHits,
		m.profileCacheMisses,
		m.datasetReloads,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveAnalysis matches analysis.WithObserver.
func (m *Metrics) ObserveAnalysis(elapsed time.Duration, cached bool) {
	if cached {
		m.analysisTotal.WithLabelValues("hit").Inc()
		return
	}
	m.analysisTotal.WithLabelValues("miss").Inc()
	m.analysisDuration.Observe(elapsed.Seconds())
}

// ObserveRecommendation matches recommend.WithRecommendObserver.
func (m *Metrics) ObserveRecommendation(elapsed time.Duration) {
	m.recommendTotal.Inc()
	m.recommendDuration.Observe(elapsed.Seconds())
}

// ObserveSimulation matches recommend.WithSimulationObserver.
func (m *Metrics) ObserveSimulation() {
	m.simulationsTotal.Inc()
}

// ProfileCacheHit matches ingredient.WithCacheMetrics' hit hook.
func (m *Metrics) ProfileCacheHit() { m.profileCacheHits.Inc() }

// ProfileCacheMiss matches ingredient.WithCacheMetrics' miss hook.
func (m *Metrics) ProfileCacheMiss() { m.profileCacheMisses.Inc() }

// DatasetReloaded counts molecule hot reloads.
func (m *Metrics) DatasetReloaded() { m.datasetReloads.Inc() }
