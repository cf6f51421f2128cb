package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate checks the configuration for errors. It returns a descriptive
// error for the first problem found, or nil when the configuration is valid.
func Validate(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := validateLedger(&cfg.Ledger); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	if err := validatePricing(cfg.Pricing); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	if err := validateTelemetry(&cfg.Telemetry); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	return nil
}

func validateServer(cfg *ServerConfig) error {
	if cfg.ListenAddress == "" {
		return fmt.Errorf("listen_address must not be empty")
	}
	if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen_address %q: %w", cfg.ListenAddress, err)
	}
	if cfg.ReadTimeout < 0 {
		return fmt.Errorf("read_timeout must not be negative")
	}
	if cfg.WriteTimeout < 0 {
		return fmt.Errorf("write_timeout must not be negative")
	}
	return nil
}

func validateLedger(cfg *LedgerConfig) error {
	if cfg.HistorySize <= 0 {
		return fmt.Errorf("history_size must be positive, got %d", cfg.HistorySize)
	}
	if cfg.RecentDefaultLimit <= 0 {
		return fmt.Errorf("recent_default_limit must be positive, got %d", cfg.RecentDefaultLimit)
	}
	if cfg.RecentMaxLimit < cfg.RecentDefaultLimit {
		return fmt.Errorf("recent_max_limit (%d) must not be smaller than recent_default_limit (%d)",
			cfg.RecentMaxLimit, cfg.RecentDefaultLimit)
	}
	return nil
}

func validatePricing(pricing PricingConfig) error {
	for service, models := range pricing {
		if strings.TrimSpace(service) == "" {
			return fmt.Errorf("service name must not be empty")
		}
		for model, rate := range models {
			if strings.TrimSpace(model) == "" {
				return fmt.Errorf("service %q: model name must not be empty", service)
			}
			if rate.Input < 0 || rate.Output < 0 || rate.AudioMinute < 0 {
				return fmt.Errorf("service %q model %q: rates must not be negative", service, model)
			}
		}
	}
	return nil
}

func validateTelemetry(cfg *TelemetryConfig) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format %q (must be json or text)", cfg.Logging.Format)
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("metrics path %q must start with /", cfg.Metrics.Path)
	}

	for i, b := range cfg.Metrics.CostBuckets {
		if b <= 0 {
			return fmt.Errorf("cost_buckets[%d] must be positive, got %v", i, b)
		}
		if i > 0 && b <= cfg.Metrics.CostBuckets[i-1] {
			return fmt.Errorf("cost_buckets must be strictly increasing")
		}
	}

	return nil
}
