// Package telemetry provides observability for Themis.
//
// # Overview
//
// The telemetry package implements structured logging and Prometheus
// metrics for the cost accounting service. It provides visibility into
// per-request spend and call volume while keeping overhead off the
// request path.
//
// # Components
//
//   - logging: Structured logging via log/slog
//   - metrics: Prometheus cost and call-volume metrics
//
// # Usage
//
//	// Install the process-wide logger
//	logger, err := logging.Install(&cfg.Telemetry.Logging)
//
//	// Create cost metrics on a private registry
//	costMetrics := metrics.NewCostMetrics(&cfg.Telemetry.Metrics, nil)
//
//	// Record a billable call
//	costMetrics.RecordCall("completion", "gpt-4o-mini", true, 0.00045)
package telemetry
