// Package metrics provides the Prometheus collectors exposed on /metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups the application's collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec   // by route, method, status
	HTTPRequestDuration *prometheus.HistogramVec // by route, method
	LogoLookupsTotal    *prometheus.CounterVec   // by result: hit|miss|not_found|error
	CatalogReadFailures *prometheus.CounterVec   // by op

	registry *prometheus.Registry
}

// New creates the collectors and registers them, plus the Go and process
// collectors, on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route pattern, method and status code",
		},
		[]string{"route", "method", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern and method",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"route", "method"},
	)
	m.LogoLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logo_lookups_total",
			Help: "Logo lookups by result",
		},
		[]string{"result"},
	)
	m.CatalogReadFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_read_failures_total",
			Help: "Catalog store reads that failed and were answered with a soft default",
		},
		[]string{"op"},
	)

	for _, c := range []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LogoLookupsTotal,
		m.CatalogReadFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, method, fmt.Sprint(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Metrics) LogoLookup(result string) {
	if m == nil {
		return
	}
	m.LogoLookupsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) CatalogReadFailed(op string) {
	if m == nil {
		return
	}
	m.CatalogReadFailures.WithLabelValues(op).Inc()
}
