package pricing

import (
	"lexora-hq/themis/pkg/config"
)

// Rate contains the billing rates for one (service, model) pair, in USD.
// The zero value is the free rate used for unrecognized models.
type Rate struct {
	// InputPer1K is the cost per 1000 input tokens.
	InputPer1K float64

	// OutputPer1K is the cost per 1000 output tokens.
	OutputPer1K float64

	// AudioPerMinute is the cost per minute of audio. Non-zero means the
	// rate is duration-billed and the token rates are ignored.
	AudioPerMinute float64
}

// Cost computes the cost of a call billed at this rate.
//
// Duration-billed rates use only audioMinutes; token-billed rates use only
// the token counts. Negative quantities are treated as zero.
func (r Rate) Cost(inputTokens, outputTokens int, audioMinutes float64) float64 {
	if r.AudioPerMinute > 0 {
		if audioMinutes < 0 {
			return 0
		}
		return audioMinutes * r.AudioPerMinute
	}

	var cost float64
	if inputTokens > 0 {
		cost += float64(inputTokens) / 1000.0 * r.InputPer1K
	}
	if outputTokens > 0 {
		cost += float64(outputTokens) / 1000.0 * r.OutputPer1K
	}
	return cost
}

// Catalog is a read-only lookup of billing rates keyed by (service, model).
// It is built once from configuration and is safe for concurrent use without
// synchronization.
type Catalog struct {
	rates map[string]map[string]Rate
}

// NewCatalog builds a catalog from the pricing configuration.
func NewCatalog(cfg config.PricingConfig) *Catalog {
	rates := make(map[string]map[string]Rate, len(cfg))
	for service, models := range cfg {
		serviceRates := make(map[string]Rate, len(models))
		for model, rc := range models {
			serviceRates[model] = Rate{
				InputPer1K:     rc.Input,
				OutputPer1K:    rc.Output,
				AudioPerMinute: rc.AudioMinute,
			}
		}
		rates[service] = serviceRates
	}
	return &Catalog{rates: rates}
}

// Rate returns the billing rate for the given service and model. The second
// return value reports whether the pair was found in the catalog; when it is
// false the returned rate is the zero (free) rate. Callers that want to know
// about unpriced models can use it for diagnostics, but a miss is never an
// error.
func (c *Catalog) Rate(service, model string) (Rate, bool) {
	models, ok := c.rates[service]
	if !ok {
		return Rate{}, false
	}
	rate, ok := models[model]
	if !ok {
		// Unrecognized model: billed as free by design.
		return Rate{}, false
	}
	return rate, true
}

// Services returns the service names present in the catalog. Intended for
// diagnostics and configuration validation output.
func (c *Catalog) Services() []string {
	services := make([]string, 0, len(c.rates))
	for service := range c.rates {
		services = append(services, service)
	}
	return services
}
