package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Ledger defaults
	DefaultHistorySize        = 1000
	DefaultRecentDefaultLimit = 50
	DefaultRecentMaxLimit     = 100

	// Report defaults
	DefaultReportSchedule = "5 0 * * *"

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "themis"
)

// DefaultCostBuckets returns the default histogram buckets for per-request
// cost in USD. Retrieval-augmented requests typically cost fractions of a
// cent, so the buckets skew low.
func DefaultCostBuckets() []float64 {
	return []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0}
}

// DefaultPricing returns the built-in pricing table. Rates are USD per 1000
// tokens, except AudioMinute which is USD per minute of audio. The table
// reflects published OpenAI and OpenRouter list prices; deployments should
// override it in configuration as prices change.
func DefaultPricing() PricingConfig {
	return PricingConfig{
		"completion": {
			"anthropic/claude-3.5-sonnet":       {Input: 0.003, Output: 0.015},
			"anthropic/claude-3-haiku":          {Input: 0.00025, Output: 0.00125},
			"openai/gpt-4o":                     {Input: 0.005, Output: 0.015},
			"openai/gpt-4o-mini":                {Input: 0.00015, Output: 0.0006},
			"meta-llama/llama-3.1-8b-instruct":  {Input: 0.00018, Output: 0.00018},
			"meta-llama/llama-3.1-70b-instruct": {Input: 0.0009, Output: 0.0009},
			"gpt-4o":                            {Input: 0.0025, Output: 0.01},
			"gpt-4o-mini":                       {Input: 0.00015, Output: 0.0006},
			"gpt-4":                             {Input: 0.03, Output: 0.06},
			"gpt-3.5-turbo":                     {Input: 0.0015, Output: 0.002},
		},
		"transcription": {
			"whisper-1": {AudioMinute: 0.006},
		},
		"embedding": {
			"text-embedding-3-small": {Input: 0.00002},
			"text-embedding-3-large": {Input: 0.00013},
			"text-embedding-ada-002": {Input: 0.0001},
		},
	}
}

// ApplyDefaults fills in default values for any zero-valued fields.
// It is called automatically by Load.
func ApplyDefaults(cfg *Config) {
	// Server
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	// Ledger
	if cfg.Ledger.HistorySize == 0 {
		cfg.Ledger.HistorySize = DefaultHistorySize
	}
	if cfg.Ledger.RecentDefaultLimit == 0 {
		cfg.Ledger.RecentDefaultLimit = DefaultRecentDefaultLimit
	}
	if cfg.Ledger.RecentMaxLimit == 0 {
		cfg.Ledger.RecentMaxLimit = DefaultRecentMaxLimit
	}

	// Pricing
	if cfg.Pricing == nil {
		cfg.Pricing = DefaultPricing()
	}

	// Report
	if cfg.Report.Schedule == "" {
		cfg.Report.Schedule = DefaultReportSchedule
	}

	// Telemetry
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.CostBuckets == nil {
		cfg.Telemetry.Metrics.CostBuckets = DefaultCostBuckets()
	}
}

// NewDefaultConfig returns a configuration populated entirely with defaults,
// with metrics and reporting enabled. Useful for tests and for running
// without a configuration file.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Report.Enabled = true
	cfg.Telemetry.Metrics.Enabled = true
	ApplyDefaults(cfg)
	return cfg
}
