package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"lexora-hq/themis/pkg/config"
	"lexora-hq/themis/pkg/ledger"
)

// Reporter emits a scheduled daily cost rollup to the log.
//
// The rollup runs on a cron schedule (default shortly after midnight UTC)
// and summarizes the previous UTC day: total cost, token counts, request
// count, and the per-service breakdown. It reads only the completed history,
// so a request still in flight at the boundary lands in the day it finishes
// being reported, not the day it started serving.
type Reporter struct {
	ledger *ledger.Ledger
	config *config.ReportConfig
	cron   *cron.Cron
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	running bool
}

// New creates a reporter over the given ledger.
func New(l *ledger.Ledger, cfg *config.ReportConfig) *Reporter {
	return &Reporter{
		ledger: l,
		config: cfg,
		cron:   cron.New(cron.WithLocation(time.UTC)),
		logger: slog.Default().With("component", "reporter"),
		now:    time.Now,
	}
}

// Start schedules the daily rollup and returns immediately. The schedule is
// read from the report configuration; when reporting is disabled Start does
// nothing. The job stops when the context is cancelled or Stop is called.
func (r *Reporter) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.config.Enabled {
		r.logger.Info("daily cost report disabled, skipping scheduler")
		return nil
	}
	if r.running {
		return fmt.Errorf("reporter already running")
	}

	if _, err := cron.ParseStandard(r.config.Schedule); err != nil {
		return fmt.Errorf("invalid report schedule %q: %w", r.config.Schedule, err)
	}

	if _, err := r.cron.AddFunc(r.config.Schedule, r.runRollup); err != nil {
		return fmt.Errorf("failed to schedule daily report: %w", err)
	}

	r.cron.Start()
	r.running = true

	r.logger.Info("daily cost report scheduled", "schedule", r.config.Schedule)

	go func() {
		<-ctx.Done()
		r.Stop()
	}()

	return nil
}

// Stop halts the scheduler. Safe to call more than once.
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}

	r.cron.Stop()
	r.running = false
	r.logger.Info("daily cost report stopped")
}

// runRollup logs the rollup for the previous UTC day.
func (r *Reporter) runRollup() {
	day := r.now().UTC().AddDate(0, 0, -1)
	r.Report(day)
}

// Report computes and logs the daily totals for the given day. Exposed so
// operators can trigger an ad-hoc rollup outside the schedule.
func (r *Reporter) Report(day time.Time) *ledger.DailyTotals {
	totals := r.ledger.DailyTotals(day)

	attrs := []any{
		"date", totals.Date,
		"total_cost_usd", totals.TotalCost,
		"total_requests", totals.TotalRequests,
		"input_tokens", totals.TotalInputTokens,
		"output_tokens", totals.TotalOutputTokens,
	}
	for service, st := range totals.Services {
		attrs = append(attrs,
			fmt.Sprintf("%s_cost_usd", service), st.Cost,
			fmt.Sprintf("%s_calls", service), st.Calls,
		)
	}

	r.logger.Info("daily cost report", attrs...)
	return totals
}
