// Package metrics collects and exposes Prometheus metrics for the wardrobe
// service: HTTP responses by status code and Gemini call outcomes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the service metrics.
type Collector struct {
	registry      *prometheus.Registry
	httpStatus    *prometheus.CounterVec
	geminiCalls   *prometheus.CounterVec
	geminiLatency *prometheus.HistogramVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wardrobe_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		geminiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wardrobe_gemini_calls_total",
			Help: "Gemini API calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		geminiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wardrobe_gemini_latency_seconds",
			Help:    "Gemini API call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	c.registry.MustRegister(c.httpStatus, c.geminiCalls, c.geminiLatency)
	return c
}

// RecordHTTPStatus counts one HTTP response.
func (c *Collector) RecordHTTPStatus(code int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(code)).Inc()
}

// RecordGeminiCall records one Gemini call's latency and outcome.
func (c *Collector) RecordGeminiCall(operation string, duration time.Duration, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	c.geminiCalls.WithLabelValues(operation, outcome).Inc()
	c.geminiLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// Handler serves the collector's registry in Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
