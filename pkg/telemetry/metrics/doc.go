// Package metrics provides Prometheus metrics for the cost ledger.
//
// All metrics live in a configurable namespace (default "themis") on a
// private registry, exposed through Handler. The collectors cover running
// cost totals, per-request cost distribution, billable call counts, the
// active-request gauge, and the dropped-track diagnostic counter.
//
// # Usage
//
//	m := metrics.NewCostMetrics(&cfg.Telemetry.Metrics, nil)
//
//	m.RecordCall("completion", "gpt-4o-mini", true, 0.00045)
//	http.Handle(cfg.Telemetry.Metrics.Path, m.Handler())
//
// Recording a metric never blocks and never fails; metric updates are kept
// outside the ledger's critical section.
package metrics
