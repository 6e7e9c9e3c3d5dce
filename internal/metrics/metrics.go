package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "site_dashboard"
)

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database metrics
	DBConnectionsOpen  prometheus.Gauge
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec

	// Business metrics
	ProjectCreatedTotal  prometheus.Counter
	ActivityCreatedTotal prometheus.Counter
	FileUploadedTotal    prometheus.Counter
	FileUploadBytes      prometheus.Counter
	CacheHitsTotal       *prometheus.CounterVec
}

// New creates and registers all metrics with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates and registers all metrics with a custom registry
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		DBConnectionsOpen: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_open",
			Help:      "Open database connections",
		}),
		DBConnectionsInUse: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_in_use",
			Help:      "Database connections currently in use",
		}),
		DBConnectionsIdle: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_idle",
			Help:      "Idle database connections",
		}),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "db_query_duration_seconds",
				Help:      "Database query latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_query_errors_total",
				Help:      "Total number of database query errors",
			},
			[]string{"operation", "table"},
		),
		ProjectCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projects_created_total",
			Help:      "Total number of projects created",
		}),
		ActivityCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activities_created_total",
			Help:      "Total number of site activities created",
		}),
		FileUploadedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_uploaded_total",
			Help:      "Total number of files uploaded to the project library",
		}),
		FileUploadBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "file_upload_bytes_total",
			Help:      "Total bytes uploaded to the project library",
		}),
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_requests_total",
				Help:      "Schedule cache requests by result",
			},
			[]string{"result"},
		),
	}
}

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	if endpoint == "" {
		endpoint = "unknown"
	}
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDBQuery records a database query metric
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// UpdateDBStats updates connection pool gauges from sql.DBStats
func (m *Metrics) UpdateDBStats(stats interface{}) {
	dbStats, ok := stats.(sql.DBStats)
	if !ok {
		return
	}
	m.DBConnectionsOpen.Set(float64(dbStats.OpenConnections))
	m.DBConnectionsInUse.Set(float64(dbStats.InUse))
	m.DBConnectionsIdle.Set(float64(dbStats.Idle))
}

// IncrementProjectCreated increments the project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.ProjectCreatedTotal.Inc()
}

// IncrementActivityCreated increments the activity creation counter
func (m *Metrics) IncrementActivityCreated() {
	m.ActivityCreatedTotal.Inc()
}

// RecordFileUpload records a completed file upload
func (m *Metrics) RecordFileUpload(size int64) {
	m.FileUploadedTotal.Inc()
	m.FileUploadBytes.Add(float64(size))
}

// RecordCacheResult records a schedule cache hit or miss
func (m *Metrics) RecordCacheResult(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheHitsTotal.WithLabelValues(result).Inc()
}

// ShouldSkipEndpoint reports whether a path is excluded from HTTP metrics
func ShouldSkipEndpoint(path string) bool {
	switch path {
	case "/metrics", "/health", "/ready":
		return true
	}
	return false
}
