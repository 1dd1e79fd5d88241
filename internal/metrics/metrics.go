package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Flightdeck
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Store Metrics
	StoreQueriesTotal  prometheus.CounterVec
	StoreQueryDuration prometheus.HistogramVec
	StoreRecords       prometheus.Gauge

	// Mirror Metrics
	FlushesTotal     prometheus.CounterVec
	FlushDuration    prometheus.Histogram
	FlushBytesLast   prometheus.Gauge

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdeck_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightdeck_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		StoreQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_store_queries_total",
				Help: "Total flight store queries by operation type",
			},
			[]string{"operation"},
		),
		StoreQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdeck_store_query_duration_seconds",
				Help:    "Flight store query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"operation"},
		),
		StoreRecords: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "flightdeck_store_records",
				Help: "Current number of flight records in the in-memory table",
			},
		),

		FlushesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_mirror_flushes_total",
				Help: "Total record store file flushes by outcome",
			},
			[]string{"outcome"},
		),
		FlushDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flightdeck_mirror_flush_duration_seconds",
				Help:    "Record store file flush time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		FlushBytesLast: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "flightdeck_mirror_flush_bytes_last",
				Help: "Size in bytes of the most recent record store file flush",
			},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
	}
}
