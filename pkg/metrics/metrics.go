package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics holds the service's Prometheus collectors
type HTTPMetrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestLatency   *prometheus.HistogramVec
	RequestSummary   *prometheus.SummaryVec
	ResponseSize     *prometheus.HistogramVec
	InFlight         prometheus.Gauge
	RateLimitRejects prometheus.Counter
	PanicRecoveries  prometheus.Counter
	InventoryRecords *prometheus.GaugeVec
}

// NewHTTPMetrics creates the collectors and registers them on reg
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)

	return &HTTPMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bikeshop_requests_total",
				Help: "Total number of requests to the bikeshop service",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bikeshop_request_latency_seconds",
				Help:    "Request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// Summary metric for percentile calculation (p50, p90, p95, p99)
		RequestSummary: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "bikeshop_request_duration_summary",
				Help: "Summary of request durations with percentiles",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bikeshop_response_size_bytes",
				Help:    "Response size in bytes",
				Buckets: prometheus.ExponentialBuckets(64, 4, 8),
			},
			[]string{"method", "endpoint"},
		),
		InFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bikeshop_requests_in_flight",
				Help: "Number of requests currently being served",
			},
		),
		RateLimitRejects: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bikeshop_rate_limit_rejects_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
		PanicRecoveries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bikeshop_panic_recoveries_total",
				Help: "Panics recovered while serving requests",
			},
		),
		InventoryRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bikeshop_inventory_records",
				Help: "Number of stored records per resource",
			},
			[]string{"resource"},
		),
	}
}

// ObserveRequest records one completed request
func (m *HTTPMetrics) ObserveRequest(method, endpoint, status string, duration time.Duration, size int) {
	seconds := duration.Seconds()
	m.RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.RequestLatency.WithLabelValues(method, endpoint).Observe(seconds)
	m.RequestSummary.WithLabelValues(method, endpoint).Observe(seconds)
	m.ResponseSize.WithLabelValues(method, endpoint).Observe(float64(size))
}

// SetInventory sets the record gauge for resource
func (m *HTTPMetrics) SetInventory(resource string, count int64) {
	m.InventoryRecords.WithLabelValues(resource).Set(float64(count))
}
