package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeOK           = "ok"
	outcomeAuth         = "auth"
	outcomeConnectivity = "connectivity"
	outcomeServer       = "server"
	outcomeCanceled     = "canceled"
)

// Metrics records backend call outcomes. A nil *Metrics records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ruralportal",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Backend requests by method and outcome.",
			},
			[]string{"method", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ruralportal",
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Duration of backend requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ruralportal",
				Subsystem: "api",
				Name:      "fallbacks_total",
				Help:      "Reads answered with fallback data because the backend was unreachable.",
			},
			[]string{"context"},
		),
	}
	m.Registry.MustRegister(m.requests, m.duration, m.fallbacks)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) request(method, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, outcome).Inc()
	if elapsed > 0 {
		m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) fallback(context string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(context).Inc()
}
