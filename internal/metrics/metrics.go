// Package metrics owns the Prometheus registry for the API server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds every metric the server exports. Each Collector has its own
// registry, so tests can build as many as they like without clashing.
type Collector struct {
	reg *prometheus.Registry

	Requests        *prometheus.CounterVec   // labels: method, route, status
	RequestDuration *prometheus.HistogramVec // labels: method, route
	Toggles         *prometheus.CounterVec   // label: completed (true|false)
}

// NewCollector builds and registers all metrics, plus the Go runtime and
// process collectors.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "companion_http_requests_total",
			Help: "HTTP requests handled, by route pattern and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "companion_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}, []string{"method", "route"}),
		Toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "companion_activity_toggles_total",
			Help: "Completion toggles, by resulting state.",
		}, []string{"completed"}),
	}

	reg.MustRegister(
		c.Requests, c.RequestDuration, c.Toggles,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveToggle records a completion toggle that left the activity in state completed.
func (c *Collector) ObserveToggle(completed bool) {
	label := "false"
	if completed {
		label = "true"
	}
	c.Toggles.WithLabelValues(label).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
