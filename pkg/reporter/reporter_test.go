package reporter

import (
	"context"
	"testing"
	"time"

	"lexora-hq/themis/pkg/config"
	"lexora-hq/themis/pkg/ledger"
	"lexora-hq/themis/pkg/pricing"
)

func testLedger() *ledger.Ledger {
	catalog := pricing.NewCatalog(config.PricingConfig{
		"completion": {
			"gpt-4o-mini": {Input: 0.00015, Output: 0.0006},
		},
	})
	return ledger.New(catalog)
}

func TestReporter_Report(t *testing.T) {
	l := testLedger()

	id := l.Start("/v1/ask", "")
	l.TrackCall(id, ledger.Call{
		Service:      ledger.ServiceCompletion,
		Model:        "gpt-4o-mini",
		InputTokens:  1000,
		OutputTokens: 500,
		Success:      true,
	})
	l.Finish(id, true, "")

	r := New(l, &config.ReportConfig{Enabled: true, Schedule: "5 0 * * *"})

	totals := r.Report(time.Now().UTC())
	if totals.TotalRequests != 1 {
		t.Errorf("total requests = %d, want 1", totals.TotalRequests)
	}
	if totals.Services[ledger.ServiceCompletion] == nil {
		t.Error("expected completion breakdown in rollup")
	}
}

func TestReporter_StartDisabled(t *testing.T) {
	r := New(testLedger(), &config.ReportConfig{Enabled: false, Schedule: "5 0 * * *"})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("disabled reporter Start failed: %v", err)
	}

	// Stop on a never-started scheduler is a no-op.
	r.Stop()
}

func TestReporter_InvalidSchedule(t *testing.T) {
	r := New(testLedger(), &config.ReportConfig{Enabled: true, Schedule: "not a schedule"})

	if err := r.Start(context.Background()); err == nil {
		t.Fatal("expected error for invalid cron schedule")
	}
}

func TestReporter_StartStop(t *testing.T) {
	r := New(testLedger(), &config.ReportConfig{Enabled: true, Schedule: "5 0 * * *"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := r.Start(ctx); err == nil {
		t.Fatal("second Start should fail while running")
	}

	r.Stop()
	r.Stop()
}
