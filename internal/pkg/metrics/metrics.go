// Package metrics exposes Prometheus instrumentation for the fulfillment
// service: HTTP traffic, order lifecycle counters, and backlog lane gauges.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for the service.
type Metrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	OrdersCreated   prometheus.Counter
	OrdersProcessed prometheus.Counter
	OrdersCancelled prometheus.Counter
	OrdersRejected  *prometheus.CounterVec

	BacklogSize *prometheus.GaugeVec

	registry *prometheus.Registry
}

// New creates and registers the service collectors on a fresh registry.
// Using a dedicated registry keeps tests free of duplicate-registration
// panics; Handler serves exactly the collectors created here.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	return newWithRegistry(registry)
}

func newWithRegistry(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fulfillment",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fulfillment",
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fulfillment",
			Name:      "orders_created_total",
			Help:      "Total number of orders admitted to the backlog.",
		}),
		OrdersProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fulfillment",
			Name:      "orders_processed_total",
			Help:      "Total number of orders processed to completion.",
		}),
		OrdersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fulfillment",
			Name:      "orders_cancelled_total",
			Help:      "Total number of cancelled orders.",
		}),
		OrdersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fulfillment",
			Name:      "orders_rejected_total",
			Help:      "Total number of rejected order operations.",
		}, []string{"reason"}),
		BacklogSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fulfillment",
			Name:      "backlog_size",
			Help:      "Current number of pending orders per backlog lane.",
		}, []string{"lane"}),
	}

	registry.MustRegister(
		m.Requests,
		m.LatencyMS,
		m.OrdersCreated,
		m.OrdersProcessed,
		m.OrdersCancelled,
		m.OrdersRejected,
		m.BacklogSize,
	)

	m.registry = registry
	return m
}

// Handler returns the scrape endpoint for the collectors held by m.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
