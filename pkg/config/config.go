package config

import "time"

// Config is the root configuration for the Themis cost accounting service.
type Config struct {
	// Server contains HTTP server configuration including listen address
	// and timeouts.
	Server ServerConfig `yaml:"server"`

	// Ledger contains cost ledger configuration including completed-history
	// capacity and query limits.
	Ledger LedgerConfig `yaml:"ledger"`

	// Pricing contains the per-service, per-model billing rates used to
	// compute call costs. Keys are service names ("completion",
	// "transcription", "embedding"), then model identifiers.
	Pricing PricingConfig `yaml:"pricing"`

	// Report contains configuration for the scheduled daily cost rollup.
	Report ReportConfig `yaml:"report"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of
	// the response.
	// Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next
	// request when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for in-flight
	// requests to drain during graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LedgerConfig contains configuration for the cost ledger.
type LedgerConfig struct {
	// HistorySize is the capacity of the completed-request history.
	// Once exceeded, the oldest completed request is evicted.
	// Default: 1000
	HistorySize int `yaml:"history_size"`

	// RecentDefaultLimit is the number of summaries returned by the
	// recent-requests endpoint when no limit is given.
	// Default: 50
	RecentDefaultLimit int `yaml:"recent_default_limit"`

	// RecentMaxLimit is the largest limit the recent-requests endpoint
	// will honor. Larger values are clamped.
	// Default: 100
	RecentMaxLimit int `yaml:"recent_max_limit"`
}

// PricingConfig maps a service name to its per-model billing rates.
type PricingConfig map[string]map[string]ModelRateConfig

// ModelRateConfig contains the billing rates for one model, in USD.
// A model is duration-billed when AudioMinute is non-zero, otherwise it is
// token-billed using the per-1K-token rates.
type ModelRateConfig struct {
	// Input is the cost per 1000 input tokens.
	Input float64 `yaml:"input"`

	// Output is the cost per 1000 output tokens.
	Output float64 `yaml:"output"`

	// AudioMinute is the cost per minute of audio for duration-billed
	// models (e.g., transcription).
	AudioMinute float64 `yaml:"audio_minute"`
}

// ReportConfig contains configuration for the daily cost rollup job.
type ReportConfig struct {
	// Enabled controls whether the scheduled rollup runs.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Schedule is the cron expression for the rollup, evaluated in UTC.
	// The default runs shortly after midnight so the rollup covers the
	// full previous day.
	// Default: "5 0 * * *"
	Schedule string `yaml:"schedule"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the Prometheus namespace for all metrics.
	// Default: "themis"
	Namespace string `yaml:"namespace"`

	// CostBuckets are the histogram buckets for per-request cost in USD.
	// Default: 0.0001 to 1.0, optimized for retrieval-augmented requests.
	CostBuckets []float64 `yaml:"cost_buckets"`
}
