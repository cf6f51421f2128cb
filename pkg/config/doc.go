// Package config provides configuration loading and validation for Themis.
//
// Configuration is loaded from a YAML file, with defaults applied for any
// omitted fields and environment variable overrides applied on top. The
// loading sequence is:
//
//  1. Parse YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides (THEMIS_SECTION_FIELD)
//  4. Validate the final configuration
//
// # Usage
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ledger := ledger.New(pricing.NewCatalog(cfg.Pricing), ...)
//
// The pricing table is part of the configuration and is immutable for the
// lifetime of the process: unrecognized models are billed at a zero rate
// rather than failing requests, and price changes require a restart.
package config
