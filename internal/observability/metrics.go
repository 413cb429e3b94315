package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for dataset
// ingestion.
type Metrics struct {
	DatasetsIngested prometheus.Counter
	IngestErrors     prometheus.Counter
	IngestDuration   prometheus.Histogram
	AreasLoaded      prometheus.Gauge
}

// NewMetrics creates and registers all ingestion metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetsIngested,
		m.IngestErrors,
		m.IngestDuration,
		m.AreasLoaded,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bethyw",
			Name:      "datasets_ingested_total",
			Help:      "Total dataset files imported successfully.",
		}),
		IngestErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bethyw",
			Name:      "ingest_errors_total",
			Help:      "Total dataset imports aborted by an error.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bethyw",
			Name:      "ingest_duration_seconds",
			Help:      "Duration of a complete single-dataset parse.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		AreasLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bethyw",
			Name:      "areas_loaded",
			Help:      "Number of areas currently in the aggregate.",
		}),
	}
}
