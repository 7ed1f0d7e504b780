package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "svi_heatmap"

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard pipeline.
type Metrics struct {
	DatasetRows prometheus.Gauge
	LoadErrors  prometheus.Counter

	// Render metrics.
	Renders        *prometheus.CounterVec // labels: scope={all,state}
	RenderErrors   prometheus.Counter
	RenderDuration prometheus.Histogram
	HeatPoints     prometheus.Histogram
	MarkerPoints   prometheus.Histogram

	// Export metrics.
	Exports       *prometheus.CounterVec // labels: format={csv,xlsx,kafka}
	ExportBytes   *prometheus.CounterVec // labels: format={csv,xlsx}
	RowsPublished prometheus.Counter
}

var pointBuckets = []float64{0, 10, 100, 500, 1000, 5000, 10000, 50000}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.DatasetRows,
		m.LoadErrors,
		m.Renders,
		m.RenderErrors,
		m.RenderDuration,
		m.HeatPoints,
		m.MarkerPoints,
		m.Exports,
		m.ExportBytes,
		m.RowsPublished,
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
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Rows in the loaded source dataset.",
		}),
		LoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_errors_total",
			Help:      "Dataset load failures.",
		}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Dashboard renders by selection scope.",
		}, []string{"scope"}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_errors_total",
			Help:      "Dashboard renders that failed.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of a filter-score-layers pass.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		HeatPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "heat_points",
			Help:      "Heat layer points per render.",
			Buckets:   pointBuckets,
		}),
		MarkerPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "marker_points",
			Help:      "Marker layer points per render.",
			Buckets:   pointBuckets,
		}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Exports of the filtered table by format.",
		}, []string{"format"}),
		ExportBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_bytes_total",
			Help:      "Bytes produced by exports, by format.",
		}, []string{"format"}),
		RowsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_published_total",
			Help:      "Scored rows published to the export topic.",
		}),
	}
}
