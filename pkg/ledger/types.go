package ledger

import "time"

// Service identifies which external vendor API family a billable call went
// to. The legal research assistant bills against three families: chat
// completions, audio transcription, and embeddings.
type Service string

const (
	// ServiceCompletion is the primary language-model completion provider.
	ServiceCompletion Service = "completion"

	// ServiceTranscription is the audio transcription provider.
	ServiceTranscription Service = "transcription"

	// ServiceEmbedding is the embedding provider used for retrieval.
	ServiceEmbedding Service = "embedding"
)

// APICall describes one billable external call and its computed cost.
// It is immutable once constructed: the cost is computed at track time from
// the pricing catalog and never recomputed, so later pricing changes do not
// retroactively alter historical totals.
type APICall struct {
	// Service is the external vendor API family.
	Service Service `json:"service"`

	// Endpoint identifies the specific operation (e.g. "chat/completions",
	// "audio/transcriptions", "embeddings").
	Endpoint string `json:"endpoint"`

	// Model is the billed model or pricing tier.
	Model string `json:"model"`

	// InputTokens and OutputTokens are the token counts supplied by the
	// caller. Zero for duration-billed calls.
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`

	// AudioMinutes is the billed audio duration for duration-billed calls.
	AudioMinutes float64 `json:"audio_minutes,omitempty"`

	// Cost is the computed cost of the call in USD.
	Cost float64 `json:"cost"`

	// Timestamp is when the call was recorded.
	Timestamp time.Time `json:"timestamp"`

	// Duration is the elapsed wall-clock time of the call.
	Duration time.Duration `json:"duration"`

	// Success reports whether the billed operation itself succeeded.
	Success bool `json:"success"`

	// ErrorMessage holds the failure reason when Success is false.
	ErrorMessage string `json:"error_message,omitempty"`
}

// RequestSummary aggregates all billable calls attributed to one logical
// client request, plus lifecycle timestamps and status.
//
// Summaries are owned exclusively by the Ledger; callers only ever see deep
// copies returned from query operations.
type RequestSummary struct {
	// RequestID is the opaque correlation key issued by Start.
	RequestID string `json:"request_id"`

	// Endpoint is the inbound endpoint that triggered the request.
	Endpoint string `json:"endpoint"`

	// ClientID identifies the client, typically its IP address.
	ClientID string `json:"client_id,omitempty"`

	// StartTime is when tracking started; EndTime is set exactly once by
	// Finish and stays zero while the request is active.
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time,omitzero"`

	// Calls is the append-only ordered sequence of billable calls,
	// insertion order matching call order.
	Calls []APICall `json:"calls"`

	// Running totals, always equal to the sums over Calls.
	TotalCost         float64 `json:"total_cost"`
	TotalInputTokens  int     `json:"total_input_tokens"`
	TotalOutputTokens int     `json:"total_output_tokens"`

	// Success starts true and becomes false permanently once any call
	// fails or Finish reports failure.
	Success bool `json:"success"`

	// ErrorMessage is the last non-empty failure reason observed.
	ErrorMessage string `json:"error_message,omitempty"`
}

// Finished reports whether the summary has left the active set.
func (s *RequestSummary) Finished() bool {
	return !s.EndTime.IsZero()
}

// addCall appends a call and updates the running totals. Caller must hold
// the ledger lock.
func (s *RequestSummary) addCall(call APICall) {
	s.Calls = append(s.Calls, call)
	s.TotalCost += call.Cost
	s.TotalInputTokens += call.InputTokens
	s.TotalOutputTokens += call.OutputTokens

	if !call.Success {
		s.Success = false
		if call.ErrorMessage != "" {
			s.ErrorMessage = call.ErrorMessage
		}
	}
}

// finish marks the summary completed. Failure can only move Success from
// true to false, never back. Caller must hold the ledger lock.
func (s *RequestSummary) finish(success bool, errorMessage string, now time.Time) {
	s.EndTime = now
	if !success {
		s.Success = false
		if errorMessage != "" {
			s.ErrorMessage = errorMessage
		}
	}
}

// clone returns a deep copy safe to hand to callers.
func (s *RequestSummary) clone() *RequestSummary {
	out := *s
	out.Calls = make([]APICall, len(s.Calls))
	copy(out.Calls, s.Calls)
	return &out
}

// DailyTotals aggregates completed requests whose StartTime falls on one UTC
// calendar date.
type DailyTotals struct {
	// Date is the UTC calendar date in ISO 8601 form (YYYY-MM-DD).
	Date string `json:"date"`

	TotalCost         float64 `json:"total_cost"`
	TotalInputTokens  int     `json:"total_input_tokens"`
	TotalOutputTokens int     `json:"total_output_tokens"`
	TotalRequests     int     `json:"total_requests"`

	// Services breaks the totals down by service, unioned across all calls
	// of all matching requests.
	Services map[Service]*ServiceTotals `json:"service_breakdown"`
}

// ServiceTotals is the per-service slice of a daily aggregate.
type ServiceTotals struct {
	Cost         float64 `json:"cost"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	Calls        int     `json:"calls"`
}
