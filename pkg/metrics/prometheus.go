// Package metrics provides Prometheus metrics for the namepulse engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Report generation
	reportsGenerated prometheus.Counter
	reportDuration   prometheus.Histogram
	analyzerDuration *prometheus.HistogramVec

	// Snapshot scale
	recordsLoaded prometheus.Gauge
	distinctNames prometheus.Gauge

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "namepulse",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.reportsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_generated_total",
		Help:      "Total number of reports computed",
	})

	m.reportDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_duration_milliseconds",
		Help:      "Histogram of full report generation time in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.analyzerDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "analyzer_duration_milliseconds",
			Help:      "Histogram of per-analyzer runtime in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"analyzer"},
	)

	m.recordsLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_loaded",
		Help:      "Number of records in the current snapshot",
	})

	m.distinctNames = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "distinct_names",
		Help:      "Distinct (name, gender) pairs in the current snapshot",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// GetRegistry returns the registry the global manager registers on.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordReportGenerated counts one completed report and its duration.
func RecordReportGenerated(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.reportsGenerated.Inc()
	globalManager.reportDuration.Observe(durationMs)
}

// RecordAnalyzerDuration records one analyzer pass.
func RecordAnalyzerDuration(analyzer string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.analyzerDuration.WithLabelValues(analyzer).Observe(durationMs)
}

// SetSnapshotScale publishes the size of the loaded snapshot.
func SetSnapshotScale(records, distinctNames int) {
	if !globalManager.enabled {
		return
	}
	globalManager.recordsLoaded.Set(float64(records))
	globalManager.distinctNames.Set(float64(distinctNames))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}
