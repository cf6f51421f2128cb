package ledger

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"lexora-hq/themis/pkg/pricing"
	"lexora-hq/themis/pkg/telemetry/metrics"
)

// DefaultHistorySize is the completed-history capacity used when no option
// overrides it.
const DefaultHistorySize = 1000

// Call describes one billable external call to record against a request.
// Token counts are supplied by the caller; the ledger does not count tokens.
type Call struct {
	Service      Service
	Model        string
	Endpoint     string
	InputTokens  int
	OutputTokens int
	AudioMinutes float64
	Duration     time.Duration
	Success      bool
	ErrorMessage string
}

// validate rejects quantities that would corrupt the running totals.
func (c *Call) validate() error {
	if c.InputTokens < 0 {
		return fmt.Errorf("input tokens must not be negative, got %d", c.InputTokens)
	}
	if c.OutputTokens < 0 {
		return fmt.Errorf("output tokens must not be negative, got %d", c.OutputTokens)
	}
	if c.AudioMinutes < 0 {
		return fmt.Errorf("audio minutes must not be negative, got %v", c.AudioMinutes)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %v", c.Duration)
	}
	return nil
}

// Ledger correlates billable external API calls to logical client requests,
// computes their cost from the pricing catalog, and answers bounded
// historical and daily-aggregate queries.
//
// All state lives behind a single mutex. The critical section only ever
// performs map operations and bookkeeping arithmetic; pricing lookups happen
// before the lock is taken and metric updates after it is released, so no
// operation can block another request for long.
//
// A Ledger must be constructed with New and shared explicitly; there is no
// package-level instance. Likewise the request id returned by Start must be
// threaded explicitly to every integration point that bills a cost.
type Ledger struct {
	catalog *pricing.Catalog
	metrics *metrics.CostMetrics
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.RWMutex
	active    map[string]*RequestSummary
	completed *history
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithMetrics attaches cost metrics. Without it the ledger records nothing.
func WithMetrics(m *metrics.CostMetrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// WithHistorySize overrides the completed-history capacity.
// Non-positive sizes are ignored.
func WithHistorySize(size int) Option {
	return func(l *Ledger) {
		if size > 0 {
			l.completed = newHistory(size)
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New creates a cost ledger backed by the given pricing catalog.
func New(catalog *pricing.Catalog, opts ...Option) *Ledger {
	l := &Ledger{
		catalog:   catalog,
		logger:    slog.Default().With("component", "ledger"),
		now:       time.Now,
		active:    make(map[string]*RequestSummary),
		completed: newHistory(DefaultHistorySize),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Start begins tracking a new logical request and returns its correlation
// id. It is safe to call concurrently from unrelated requests; ids are
// random 128-bit UUIDs and never collide in practice.
func (l *Ledger) Start(endpoint, clientID string) string {
	requestID := uuid.NewString()

	summary := &RequestSummary{
		RequestID: requestID,
		Endpoint:  endpoint,
		ClientID:  clientID,
		StartTime: l.now().UTC(),
		Success:   true,
	}

	l.mu.Lock()
	l.active[requestID] = summary
	l.mu.Unlock()

	if l.metrics != nil {
		l.metrics.RecordStart()
	}

	return requestID
}

// TrackCall prices a billable call and appends it to the active summary for
// requestID, updating running totals and the success/error fields.
//
// The computed cost is returned in any case. If requestID is not in the
// active set (never started, already finished, or malformed) the call is
// accepted and dropped: the ledger stays unchanged and no error is returned.
// Accounting must never be able to break the primary request path, so the
// drop is surfaced only through a diagnostic counter and a debug log line.
//
// Negative quantities are rejected with an error and leave the ledger
// untouched.
func (l *Ledger) TrackCall(requestID string, call Call) (float64, error) {
	if err := call.validate(); err != nil {
		return 0, fmt.Errorf("invalid call for request %q: %w", requestID, err)
	}

	rate, priced := l.catalog.Rate(string(call.Service), call.Model)
	cost := rate.Cost(call.InputTokens, call.OutputTokens, call.AudioMinutes)

	record := APICall{
		Service:      call.Service,
		Endpoint:     call.Endpoint,
		Model:        call.Model,
		InputTokens:  call.InputTokens,
		OutputTokens: call.OutputTokens,
		AudioMinutes: call.AudioMinutes,
		Cost:         cost,
		Timestamp:    l.now().UTC(),
		Duration:     call.Duration,
		Success:      call.Success,
		ErrorMessage: call.ErrorMessage,
	}

	l.mu.Lock()
	summary, tracked := l.active[requestID]
	if tracked {
		summary.addCall(record)
	}
	l.mu.Unlock()

	if !tracked {
		if l.metrics != nil {
			l.metrics.RecordDroppedTrack()
		}
		l.logger.Debug("dropping call for unknown request id",
			"request_id", requestID,
			"service", call.Service,
			"model", call.Model,
		)
		return cost, nil
	}

	if !priced {
		l.logger.Debug("no pricing for model, billing as free",
			"service", call.Service,
			"model", call.Model,
		)
	}

	if l.metrics != nil {
		l.metrics.RecordCall(string(call.Service), call.Model, call.Success, cost)
	}

	return cost, nil
}

// Finish completes tracking for requestID: it sets the end time, applies the
// final success/error status (failure is sticky and cannot be reverted by a
// successful finish), and moves the summary from the active set into the
// bounded completed history, evicting the oldest entry when the history is
// at capacity.
//
// It returns a snapshot of the finished summary, or nil when requestID is
// not active. Finishing twice, or finishing an id that was never started, is
// a no-op that returns nil rather than an error.
func (l *Ledger) Finish(requestID string, success bool, errorMessage string) *RequestSummary {
	l.mu.Lock()
	summary, ok := l.active[requestID]
	if !ok {
		l.mu.Unlock()
		return nil
	}

	delete(l.active, requestID)
	summary.finish(success, errorMessage, l.now().UTC())
	l.completed.push(summary)
	snapshot := summary.clone()
	l.mu.Unlock()

	if l.metrics != nil {
		l.metrics.RecordFinish(snapshot.Success, snapshot.TotalCost)
	}

	return snapshot
}

// Summary returns a snapshot of the summary for requestID, checking the
// active set first and then the completed history. It returns nil when the
// id is unknown; absence is not an error.
func (l *Ledger) Summary(requestID string) *RequestSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if summary, ok := l.active[requestID]; ok {
		return summary.clone()
	}
	if summary := l.completed.find(requestID); summary != nil {
		return summary.clone()
	}
	return nil
}

// DailyTotals aggregates completed requests whose StartTime falls on the
// same UTC calendar date as day. A zero day means today.
//
// Only completed requests are considered: a still-in-flight request does not
// appear in the totals until it finishes. This is a documented
// eventual-consistency property of the aggregate, not a bug.
func (l *Ledger) DailyTotals(day time.Time) *DailyTotals {
	if day.IsZero() {
		day = l.now()
	}
	year, month, date := day.UTC().Date()

	totals := &DailyTotals{
		Date:     time.Date(year, month, date, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		Services: make(map[Service]*ServiceTotals),
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, summary := range l.completed.all() {
		sy, sm, sd := summary.StartTime.UTC().Date()
		if sy != year || sm != month || sd != date {
			continue
		}

		totals.TotalCost += summary.TotalCost
		totals.TotalInputTokens += summary.TotalInputTokens
		totals.TotalOutputTokens += summary.TotalOutputTokens
		totals.TotalRequests++

		for _, call := range summary.Calls {
			st := totals.Services[call.Service]
			if st == nil {
				st = &ServiceTotals{}
				totals.Services[call.Service] = st
			}
			st.Cost += call.Cost
			st.InputTokens += call.InputTokens
			st.OutputTokens += call.OutputTokens
			st.Calls++
		}
	}

	return totals
}

// Recent returns snapshots of completed requests sorted by start time
// descending, truncated to limit. The ledger imposes no cap beyond the
// completed-history capacity; callers are responsible for clamping limit to
// something sane.
func (l *Ledger) Recent(limit int) []*RequestSummary {
	if limit <= 0 {
		return nil
	}

	l.mu.RLock()
	retained := l.completed.all()
	snapshots := make([]*RequestSummary, 0, len(retained))
	for _, summary := range retained {
		snapshots = append(snapshots, summary.clone())
	}
	l.mu.RUnlock()

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].StartTime.After(snapshots[j].StartTime)
	})

	if len(snapshots) > limit {
		snapshots = snapshots[:limit]
	}
	return snapshots
}

// ActiveCount returns the number of requests currently being tracked.
func (l *Ledger) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.active)
}

// CompletedCount returns the number of requests retained in the completed
// history.
func (l *Ledger) CompletedCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.completed.len()
}
