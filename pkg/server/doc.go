// Package server provides the HTTP surface of the Themis cost accounting
// service.
//
// Two groups of endpoints are exposed. The primary request path
// (POST /v1/ask, POST /v1/transcribe) is thin orchestration over external
// collaborator interfaces: each handler starts a ledger entry, threads the
// correlation id explicitly into the collaborator call, and finishes the
// entry on every exit path. Retrieval, prompting, and provider mechanics
// live entirely behind the AnswerService and Transcriber interfaces.
//
// The read-only reporting surface (GET /admin/costs/...) serves the ledger's
// query operations: today's totals, recent requests, and per-request detail.
// Absence is reported as 404, never as a server error. /health and /metrics
// round out the operational endpoints.
//
// Cost accounting never fails a client request: ledger errors on the primary
// path degrade observability only.
package server
