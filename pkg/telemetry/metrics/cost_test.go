package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lexora-hq/themis/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:     true,
		Path:        "/metrics",
		Namespace:   "test",
		CostBuckets: []float64{0.001, 0.01, 0.1},
	}
}

func TestNewCostMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewCostMetrics(testConfig(), registry)

	if m == nil {
		t.Fatal("expected non-nil metrics")
	}
	if m.Registry() != registry {
		t.Error("registry not set correctly")
	}
}

func TestCostMetrics_RecordCall(t *testing.T) {
	m := NewCostMetrics(testConfig(), prometheus.NewRegistry())

	m.RecordCall("completion", "gpt-4o-mini", true, 0.00045)
	m.RecordCall("completion", "gpt-4o-mini", true, 0.00045)
	m.RecordCall("transcription", "whisper-1", false, 0)

	got := testutil.ToFloat64(m.costTotal.WithLabelValues("completion", "gpt-4o-mini"))
	if got != 0.0009 {
		t.Errorf("cost_total = %v, want 0.0009", got)
	}

	calls := testutil.ToFloat64(m.apiCallsTotal.WithLabelValues("completion", "gpt-4o-mini", "success"))
	if calls != 2 {
		t.Errorf("api_calls_total success = %v, want 2", calls)
	}

	failed := testutil.ToFloat64(m.apiCallsTotal.WithLabelValues("transcription", "whisper-1", "error"))
	if failed != 1 {
		t.Errorf("api_calls_total error = %v, want 1", failed)
	}
}

func TestCostMetrics_RequestLifecycle(t *testing.T) {
	m := NewCostMetrics(testConfig(), prometheus.NewRegistry())

	m.RecordStart()
	m.RecordStart()
	if got := testutil.ToFloat64(m.activeRequests); got != 2 {
		t.Errorf("active_requests = %v, want 2", got)
	}

	m.RecordFinish(true, 0.002)
	if got := testutil.ToFloat64(m.activeRequests); got != 1 {
		t.Errorf("active_requests after finish = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.requestsCompleted.WithLabelValues("success")); got != 1 {
		t.Errorf("requests_completed_total = %v, want 1", got)
	}
}

func TestCostMetrics_RecordDroppedTrack(t *testing.T) {
	m := NewCostMetrics(testConfig(), prometheus.NewRegistry())

	m.RecordDroppedTrack()
	m.RecordDroppedTrack()

	if got := testutil.ToFloat64(m.tracksDropped); got != 2 {
		t.Errorf("tracks_dropped_total = %v, want 2", got)
	}
}

func TestCostMetrics_Handler(t *testing.T) {
	m := NewCostMetrics(testConfig(), prometheus.NewRegistry())
	m.RecordCall("embedding", "text-embedding-3-small", true, 0.00002)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("metrics endpoint returned %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "test_api_calls_total") {
		t.Error("expected api_calls_total in metrics output")
	}
}
