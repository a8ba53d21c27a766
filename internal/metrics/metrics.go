// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all service metrics.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Engine metrics
	Recomputations    prometheus.Counter
	OverweightFlagged prometheus.Counter

	// Store metrics
	StoreOperations *prometheus.CounterVec

	// Chat metrics
	ChatTurns           *prometheus.CounterVec
	ChatCommandsApplied *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tatdocs",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tatdocs",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
	m.Recomputations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tatdocs",
			Name:      "shipment_recomputations_total",
			Help:      "Total number of shipment calculation runs",
		},
	)
	m.OverweightFlagged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tatdocs",
			Name:      "shipment_overweight_flagged_total",
			Help:      "Times a recomputation flagged the shipment overweight",
		},
	)
	m.StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tatdocs",
			Name:      "store_operations_total",
			Help:      "Shipment store operations by outcome",
		},
		[]string{"op", "status"},
	)
	m.ChatTurns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tatdocs",
			Name:      "chat_turns_total",
			Help:      "Assistant turns by outcome",
		},
		[]string{"status"},
	)
	m.ChatCommandsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tatdocs",
			Name:      "chat_commands_applied_total",
			Help:      "Assistant commands applied to the shipment form",
		},
		[]string{"action"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.Recomputations,
		m.OverweightFlagged,
		m.StoreOperations,
		m.ChatTurns,
		m.ChatCommandsApplied,
	)
	return m
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRecomputation records one engine run and its overweight outcome.
func (m *Metrics) RecordRecomputation(overweight bool) {
	m.Recomputations.Inc()
	if overweight {
		m.OverweightFlagged.Inc()
	}
}

// RecordStoreOperation records a store call by outcome.
func (m *Metrics) RecordStoreOperation(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.StoreOperations.WithLabelValues(op, status).Inc()
}

// RecordChatTurn records an assistant turn by outcome.
func (m *Metrics) RecordChatTurn(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.ChatTurns.WithLabelValues(status).Inc()
}

// RecordChatCommand records an applied assistant command.
func (m *Metrics) RecordChatCommand(action string) {
	m.ChatCommandsApplied.WithLabelValues(action).Inc()
}
