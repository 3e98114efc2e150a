// Package metrics collects Prometheus metrics for outbound API calls.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records one observation per outbound request. It satisfies
// scout.MetricsRecorder.
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with the
// given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoutctl_api_requests_total",
			Help: "Outbound API requests by operation, method and status code",
		}, []string{"op", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scoutctl_api_request_duration_seconds",
			Help:    "Outbound API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
	reg.MustRegister(c.requests, c.latency)
	return c
}

// RecordRequest records one outbound request. A status of 0 means the
// request never produced a response (transport failure).
func (c *Collector) RecordRequest(op, method string, status int, elapsed time.Duration) {
	c.requests.WithLabelValues(op, method, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(op).Observe(elapsed.Seconds())
}
