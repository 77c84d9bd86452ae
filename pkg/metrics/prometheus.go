// Package metrics provides Prometheus metrics for the process service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Default histogram buckets for request latency in milliseconds.
var defaultLatencyBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// HTTP performance
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// Business metrics for the process endpoint
	processRequests  prometheus.Counter
	processInputLen  prometheus.Histogram
	authFailures     prometheus.Counter
	requestsRejected prometheus.Counter

	// System health
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global manager on a custom registry so the default Go collectors do not
// leak into the exposition.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "procsvc",
		subsystem:        "http",
		histogramBuckets: defaultLatencyBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.build()
	return m
}

func (m *Manager) build() {
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})

	m.httpErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "HTTP error responses by endpoint and error class.",
	}, []string{"endpoint", "class"})

	m.processRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "process_requests_total",
		Help:      "Successfully processed requests.",
	})

	m.processInputLen = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "process_input_chars",
		Help:      "Input length in characters for processed requests.",
		Buckets:   []float64{0, 8, 64, 256, 1024, 4096, 16384, 65536},
	})

	m.authFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "auth_failures_total",
		Help:      "Requests rejected for a missing or invalid service secret.",
	})

	m.requestsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "validation_failures_total",
		Help:      "Requests rejected for a malformed or invalid body.",
	})

	m.systemMemoryUsage = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_bytes",
		Help:      "Allocated heap bytes.",
	})

	m.systemGoroutineCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Number of live goroutines.",
	})

	m.registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.httpErrors,
		m.processRequests,
		m.processInputLen,
		m.authFailures,
		m.requestsRejected,
		m.systemMemoryUsage,
		m.systemGoroutineCount,
	)
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}

// Handler returns an HTTP handler serving the global registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records request latency in milliseconds.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}

// RecordHTTPError records an error response by class (client_error, server_error).
func RecordHTTPError(endpoint, class string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpErrors.WithLabelValues(endpoint, class).Inc()
}

// RecordProcessed records one successful process call and its input length.
func RecordProcessed(inputChars int) {
	if !globalManager.enabled {
		return
	}
	globalManager.processRequests.Inc()
	globalManager.processInputLen.Observe(float64(inputChars))
}

// RecordAuthFailure records a rejected secret check.
func RecordAuthFailure() {
	if !globalManager.enabled {
		return
	}
	globalManager.authFailures.Inc()
}

// RecordValidationFailure records a rejected request body.
func RecordValidationFailure() {
	if !globalManager.enabled {
		return
	}
	globalManager.requestsRejected.Inc()
}

// UpdateSystemMemoryUsage sets the allocated heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(count))
}
