// Package metrics provides Prometheus metrics for the ranked CLI.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for a resort session.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	// Session progress
	comparisons  prometheus.Counter
	resortRuns   prometheus.Counter
	oracleAborts prometheus.Counter

	// Working set health
	items        prometheus.Gauge
	maxDeviation prometheus.Gauge
	stabilized   prometheus.Gauge

	// Persistence
	persistErrors   prometheus.Counter
	persistDuration prometheus.Histogram
}

// Global metrics manager instance on its own registry, keeping default
// Go runtime collectors out of the scrape output.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "ranked",
		registry:  prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.comparisons = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "comparisons_total",
		Help:      "Total number of pairwise comparisons answered",
	})

	m.resortRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "resort_runs_total",
		Help:      "Total number of resort runs started",
	})

	m.oracleAborts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "oracle_aborts_total",
		Help:      "Total number of runs aborted by a cancelled or malformed answer",
	})

	m.items = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "items",
		Help:      "Number of items in the working set",
	})

	m.maxDeviation = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "max_deviation",
		Help:      "Largest rating deviation in the working set",
	})

	m.stabilized = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "stabilized",
		Help:      "1 when every deviation is at or below the threshold",
	})

	m.persistErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "persist_errors_total",
		Help:      "Total number of failed ratings file writes",
	})

	m.persistDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "persist_duration_seconds",
		Help:      "Histogram of ratings file write duration",
		Buckets:   prometheus.DefBuckets,
	})
}

// Registry returns the registry holding this manager's metrics, for
// exposing via promhttp.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Default returns the global metrics manager.
func Default() *Manager {
	return globalManager
}

// RecordComparison increments the answered comparisons counter.
func RecordComparison() {
	globalManager.comparisons.Inc()
}

// RecordResortRun increments the started runs counter.
func RecordResortRun() {
	globalManager.resortRuns.Inc()
}

// RecordOracleAbort increments the aborted runs counter.
func RecordOracleAbort() {
	globalManager.oracleAborts.Inc()
}

// RecordPersistError increments the failed writes counter.
func RecordPersistError() {
	globalManager.persistErrors.Inc()
}

// ObservePersistDuration records one ratings file write duration in seconds.
func ObservePersistDuration(seconds float64) {
	globalManager.persistDuration.Observe(seconds)
}

// UpdateItemCount sets the working set size gauge.
func UpdateItemCount(count int) {
	globalManager.items.Set(float64(count))
}

// UpdateMaxDeviation sets the largest-deviation gauge.
func UpdateMaxDeviation(deviation float64) {
	globalManager.maxDeviation.Set(deviation)
}

// UpdateStabilized sets the convergence flag gauge.
func UpdateStabilized(stabilized bool) {
	if stabilized {
		globalManager.stabilized.Set(1)
		return
	}
	globalManager.stabilized.Set(0)
}
