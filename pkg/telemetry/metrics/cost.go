package metrics

import (
	"lexora-hq/themis/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// CostMetrics tracks cost accounting metrics for the ledger.
//
// Metrics:
//   - themis_cost_total: Total cost in USD by service and model
//   - themis_cost_per_request: Per-request cost distribution (histogram)
//   - themis_api_calls_total: Billable API calls by service, model, and status
//   - themis_active_requests: Requests currently being tracked
//   - themis_requests_completed_total: Finished requests by status
//   - themis_tracks_dropped_total: Track attempts against unknown request ids
type CostMetrics struct {
	costTotal         *prometheus.CounterVec
	costPerRequest    prometheus.Histogram
	apiCallsTotal     *prometheus.CounterVec
	activeRequests    prometheus.Gauge
	requestsCompleted *prometheus.CounterVec
	tracksDropped     prometheus.Counter

	registry *prometheus.Registry
}

// NewCostMetrics creates and registers cost metrics on the given registry.
// If registry is nil, a new private registry is created with the standard Go
// runtime and process collectors.
func NewCostMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CostMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &CostMetrics{
		registry: registry,

		costTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "cost_total",
				Help:      "Total cost in USD by service and model",
			},
			[]string{"service", "model"},
		),

		costPerRequest: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "cost_per_request",
				Help:      "Per-request cost distribution in USD",
				Buckets:   cfg.CostBuckets,
			},
		),

		apiCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "api_calls_total",
				Help:      "Billable API calls by service, model, and status",
			},
			[]string{"service", "model", "status"},
		),

		activeRequests: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Name:      "active_requests",
				Help:      "Requests currently being tracked by the ledger",
			},
		),

		requestsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "requests_completed_total",
				Help:      "Finished requests by status",
			},
			[]string{"status"},
		),

		tracksDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "tracks_dropped_total",
				Help:      "Track attempts against request ids not in the active set",
			},
		),
	}

	registry.MustRegister(
		m.costTotal,
		m.costPerRequest,
		m.apiCallsTotal,
		m.activeRequests,
		m.requestsCompleted,
		m.tracksDropped,
	)

	return m
}

// RecordCall records one billable API call.
func (m *CostMetrics) RecordCall(service, model string, success bool, cost float64) {
	m.costTotal.WithLabelValues(service, model).Add(cost)
	m.apiCallsTotal.WithLabelValues(service, model, statusLabel(success)).Inc()
}

// RecordStart records a request entering the active set.
func (m *CostMetrics) RecordStart() {
	m.activeRequests.Inc()
}

// RecordFinish records a request leaving the active set with its final cost.
func (m *CostMetrics) RecordFinish(success bool, totalCost float64) {
	m.activeRequests.Dec()
	m.requestsCompleted.WithLabelValues(statusLabel(success)).Inc()
	m.costPerRequest.Observe(totalCost)
}

// RecordDroppedTrack records a track attempt against an unknown request id.
// The ledger absorbs these silently on the request path; the counter is the
// diagnostic signal that something is tracking against ids that were never
// started or were already finished.
func (m *CostMetrics) RecordDroppedTrack() {
	m.tracksDropped.Inc()
}

// Registry returns the underlying Prometheus registry.
func (m *CostMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
