package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements MetricsCollector using Prometheus
type Collector struct {
	queriesTotal     *prometheus.CounterVec
	tokenRequests    *prometheus.CounterVec
	backendLatency   *prometheus.HistogramVec
	inflightRequests prometheus.Gauge
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		queriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legalgw_queries_total",
				Help: "Total number of queries dispatched, by route and outcome",
			},
			[]string{"route", "status"},
		),
		tokenRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legalgw_token_requests_total",
				Help: "Total number of access token acquisitions, by provider and outcome",
			},
			[]string{"provider", "status"},
		),
		backendLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "legalgw_backend_latency_seconds",
				Help:    "Backend call latency in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"route"},
		),
		inflightRequests: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "legalgw_inflight_requests",
				Help: "Number of queries currently being handled",
			},
		),
	}
}

// RecordQuery increments the count of dispatched queries
func (c *Collector) RecordQuery(route, status string) {
	c.queriesTotal.WithLabelValues(route, status).Inc()
}

// RecordTokenRequest increments the count of token acquisitions
func (c *Collector) RecordTokenRequest(provider, status string) {
	c.tokenRequests.WithLabelValues(provider, status).Inc()
}

// ObserveBackendLatency records the duration of a backend call
func (c *Collector) ObserveBackendLatency(route string, duration time.Duration) {
	c.backendLatency.WithLabelValues(route).Observe(duration.Seconds())
}

// IncInflight increments the inflight request gauge
func (c *Collector) IncInflight() {
	c.inflightRequests.Inc()
}

// DecInflight decrements the inflight request gauge
func (c *Collector) DecInflight() {
	c.inflightRequests.Dec()
}
