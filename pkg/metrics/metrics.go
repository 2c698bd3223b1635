// Package metrics holds the Prometheus instrumentation for topology parsing
// and ensemble scanning.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the toolkit.
type Registry struct {
	// Model loading
	ModelsLoadedTotal  *prometheus.CounterVec // status: ok | error
	ModelLoadDuration  prometheus.Histogram
	GraphNodes         prometheus.Histogram
	GraphEdges         prometheus.Histogram
	ContactsClassified *prometheus.CounterVec // type: stratigraphic | fault | ...

	// Ensemble comparison
	ComparisonsTotal      prometheus.Counter
	ScanDuration          prometheus.Histogram
	UniqueTopologiesFound prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.ModelsLoadedTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pynoddy_models_loaded_total",
			Help: "Topology models parsed and built, by outcome",
		},
		[]string{"status"},
	)

	r.ModelLoadDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pynoddy_model_load_duration_seconds",
			Help:    "Time to parse and build one model's contact graph",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.GraphNodes = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pynoddy_graph_nodes",
			Help:    "Node count of built contact graphs",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	r.GraphEdges = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pynoddy_graph_edges",
			Help:    "Edge count of built contact graphs",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	r.ContactsClassified = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pynoddy_contacts_classified_total",
			Help: "Edges classified, by contact type",
		},
		[]string{"type"},
	)

	r.ComparisonsTotal = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "pynoddy_graph_comparisons_total",
			Help: "Pairwise graph comparisons performed during scans",
		},
	)

	r.ScanDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pynoddy_ensemble_scan_duration_seconds",
			Help:    "Time to reduce an ensemble to its unique topologies",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
	)

	r.UniqueTopologiesFound = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "pynoddy_unique_topologies",
			Help: "Unique topologies in the most recent ensemble scan",
		},
	)

	return r
}

// PrometheusRegistry returns the underlying registry for exposition.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordModelLoad records the outcome and duration of one model build.
func (r *Registry) RecordModelLoad(err error, duration time.Duration, nodes, edges int) {
	if err != nil {
		r.ModelsLoadedTotal.WithLabelValues("error").Inc()
		return
	}
	r.ModelsLoadedTotal.WithLabelValues("ok").Inc()
	r.ModelLoadDuration.Observe(duration.Seconds())
	r.GraphNodes.Observe(float64(nodes))
	r.GraphEdges.Observe(float64(edges))
}

// RecordScan records a completed ensemble reduction.
func (r *Registry) RecordScan(duration time.Duration, unique int) {
	r.ScanDuration.Observe(duration.Seconds())
	r.UniqueTopologiesFound.Set(float64(unique))
}
