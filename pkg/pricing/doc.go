// Package pricing provides the billing-rate catalog used to price external
// API calls.
//
// The catalog is built once from configuration at process start and is
// read-only thereafter. Rates are keyed by (service, model); a lookup miss is
// not an error and resolves to a zero rate, so an unrecognized or newly
// introduced model is billed as free rather than failing the request.
//
// # Cost model
//
// Token-billed calls (completions, embeddings) are priced per 1000 tokens:
//
//	cost = (inputTokens / 1000) * InputPer1K + (outputTokens / 1000) * OutputPer1K
//
// Duration-billed calls (audio transcription) are priced per minute:
//
//	cost = audioMinutes * AudioPerMinute
//
// A rate is duration-billed when AudioPerMinute is non-zero. Costs are
// computed once, when a call is tracked, and stored on the call record, so
// later pricing changes never alter historical totals.
package pricing
