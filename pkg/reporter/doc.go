// Package reporter emits scheduled daily cost rollups from the ledger.
//
// The reporter runs a cron job (UTC) that computes the previous day's
// aggregate from the ledger's completed history and writes it as one
// structured log line. It holds no state of its own and never blocks the
// request path.
package reporter
