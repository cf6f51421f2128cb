package pricing

import (
	"math"
	"testing"

	"lexora-hq/themis/pkg/config"
)

func testCatalog() *Catalog {
	return NewCatalog(config.PricingConfig{
		"completion": {
			"gpt-4o-mini": {Input: 0.00015, Output: 0.0006},
			"gpt-4":       {Input: 0.03, Output: 0.06},
		},
		"transcription": {
			"whisper-1": {AudioMinute: 0.006},
		},
		"embedding": {
			"text-embedding-3-small": {Input: 0.00002},
		},
	})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestCatalog_Rate(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name     string
		service  string
		model    string
		wantOK   bool
		wantRate Rate
	}{
		{
			name:     "known completion model",
			service:  "completion",
			model:    "gpt-4o-mini",
			wantOK:   true,
			wantRate: Rate{InputPer1K: 0.00015, OutputPer1K: 0.0006},
		},
		{
			name:     "known audio model",
			service:  "transcription",
			model:    "whisper-1",
			wantOK:   true,
			wantRate: Rate{AudioPerMinute: 0.006},
		},
		{
			name:    "unknown model falls back to zero rate",
			service: "completion",
			model:   "gpt-5-experimental",
			wantOK:  false,
		},
		{
			name:    "unknown service falls back to zero rate",
			service: "image-generation",
			model:   "dall-e-3",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := catalog.Rate(tt.service, tt.model)
			if ok != tt.wantOK {
				t.Fatalf("Rate(%q, %q) ok = %v, want %v", tt.service, tt.model, ok, tt.wantOK)
			}
			if rate != tt.wantRate {
				t.Errorf("Rate(%q, %q) = %+v, want %+v", tt.service, tt.model, rate, tt.wantRate)
			}
		})
	}
}

func TestRate_Cost(t *testing.T) {
	tests := []struct {
		name         string
		rate         Rate
		inputTokens  int
		outputTokens int
		audioMinutes float64
		want         float64
	}{
		{
			name:         "text billed call",
			rate:         Rate{InputPer1K: 0.00015, OutputPer1K: 0.0006},
			inputTokens:  1000,
			outputTokens: 500,
			want:         0.00045,
		},
		{
			name:         "duration billed call",
			rate:         Rate{AudioPerMinute: 0.006},
			audioMinutes: 2.0,
			want:         0.012,
		},
		{
			name:        "embedding only input tokens",
			rate:        Rate{InputPer1K: 0.00002},
			inputTokens: 2500,
			want:        0.00005,
		},
		{
			name: "zero rate bills as free",
			rate: Rate{},
			// Any quantities cost nothing at the fallback rate.
			inputTokens:  100000,
			outputTokens: 100000,
			want:         0,
		},
		{
			name:         "duration rate ignores token counts",
			rate:         Rate{AudioPerMinute: 0.006},
			inputTokens:  5000,
			outputTokens: 5000,
			audioMinutes: 1.5,
			want:         0.009,
		},
		{
			name:         "negative quantities treated as zero",
			rate:         Rate{InputPer1K: 0.001, OutputPer1K: 0.002},
			inputTokens:  -10,
			outputTokens: 500,
			want:         0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rate.Cost(tt.inputTokens, tt.outputTokens, tt.audioMinutes)
			if !almostEqual(got, tt.want) {
				t.Errorf("Cost(%d, %d, %v) = %v, want %v",
					tt.inputTokens, tt.outputTokens, tt.audioMinutes, got, tt.want)
			}
		})
	}
}

func TestNewCatalog_FromDefaults(t *testing.T) {
	catalog := NewCatalog(config.DefaultPricing())

	rate, ok := catalog.Rate("transcription", "whisper-1")
	if !ok {
		t.Fatal("expected whisper-1 in default catalog")
	}
	if rate.AudioPerMinute != 0.006 {
		t.Errorf("unexpected default audio rate: %v", rate.AudioPerMinute)
	}

	if len(catalog.Services()) != 3 {
		t.Errorf("expected 3 services in default catalog, got %d", len(catalog.Services()))
	}
}
