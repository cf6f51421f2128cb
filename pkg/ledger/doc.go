// Package ledger implements the per-request API cost ledger for the legal
// research backend.
//
// The ledger correlates an arbitrary number of billable external calls
// (language-model completions, embeddings, audio transcription) to a single
// logical client request, computes their monetary cost from the pricing
// catalog, aggregates running totals, and answers bounded historical and
// daily-aggregate queries.
//
// # Lifecycle
//
// The transport layer calls Start once per inbound request and threads the
// returned correlation id explicitly to every downstream collaborator that
// may incur a billable call. Each billable call site calls TrackCall once on
// completion, success or failure. The transport layer calls Finish exactly
// once on every exit path:
//
//	requestID := ledger.Start("/v1/ask", clientIP)
//	defer func() { ledger.Finish(requestID, success, errMsg) }()
//
//	cost, _ := ledger.TrackCall(requestID, ledger.Call{
//	    Service:      ledger.ServiceCompletion,
//	    Model:        "gpt-4o-mini",
//	    Endpoint:     "chat/completions",
//	    InputTokens:  1000,
//	    OutputTokens: 500,
//	    Duration:     820 * time.Millisecond,
//	    Success:      true,
//	})
//
// # Error policy
//
// Accounting must never be able to abort the primary request path. Tracking
// or finishing an id that is not in the active set is absorbed silently:
// TrackCall still returns the computed cost, Finish returns nil, and the
// only signals are a diagnostic counter and a debug log line. Pricing misses
// resolve to a zero rate. The single condition TrackCall reports as an error
// is a negative quantity, which would corrupt the running totals.
//
// # Memory
//
// Completed requests live in a fixed-capacity ring (1000 by default); the
// oldest entry is evicted on insert once the ring is full, so the ledger's
// memory use is bounded regardless of uptime.
package ledger
