// Package metrics exposes Prometheus instrumentation for tool dispatch.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the dispatch instruments on a private registry so tests
// can build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	executions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	hostErrors *prometheus.CounterVec
}

// New creates a metrics set with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		executions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "resolve_tool_executions_total",
			Help: "Tool executions by tool name and outcome.",
		}, []string{"tool", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "resolve_tool_duration_seconds",
			Help:    "Tool execution latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),
		hostErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "resolve_host_transient_errors_total",
			Help: "Transient host failures observed during tool execution.",
		}, []string{"tool"}),
	}
}

// ObserveExecution records one tool execution.
func (m *Metrics) ObserveExecution(tool string, success bool, elapsed time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	m.executions.WithLabelValues(tool, status).Inc()
	m.duration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// ObserveTransientHostError records a retried host failure.
func (m *Metrics) ObserveTransientHostError(tool string) {
	m.hostErrors.WithLabelValues(tool).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
