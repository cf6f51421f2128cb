package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"lexora-hq/themis/pkg/cli"
	"lexora-hq/themis/pkg/config"
)

var validateFlags struct {
	showPricing bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Load and validate the configuration file without starting the server.

The validate command checks that the configuration parses, that all values
pass validation (listen address, ledger limits, pricing rates, cron
schedule), and prints a summary of what the server would run with.

Examples:
  # Validate the default config
  themis validate

  # Validate a specific config
  themis validate --config /etc/themis/config.yaml

  # Also print the full pricing catalog
  themis validate --pricing`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.showPricing, "pricing", false, "print the pricing catalog")
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("configuration invalid: %v", err))
	}

	fmt.Printf("✓ Configuration valid: %s\n", cfgFile)
	fmt.Println()
	fmt.Printf("Listen address:  %s\n", cfg.Server.ListenAddress)
	fmt.Printf("History size:    %d\n", cfg.Ledger.HistorySize)
	fmt.Printf("Recent limits:   %d default, %d max\n",
		cfg.Ledger.RecentDefaultLimit, cfg.Ledger.RecentMaxLimit)
	if cfg.Report.Enabled {
		fmt.Printf("Rollup schedule: %s (UTC)\n", cfg.Report.Schedule)
	} else {
		fmt.Println("Rollup schedule: disabled")
	}
	fmt.Printf("Metrics:         enabled=%t path=%s\n",
		cfg.Telemetry.Metrics.Enabled, cfg.Telemetry.Metrics.Path)

	services := make([]string, 0, len(cfg.Pricing))
	for service := range cfg.Pricing {
		services = append(services, service)
	}
	sort.Strings(services)

	modelCount := 0
	for _, models := range cfg.Pricing {
		modelCount += len(models)
	}
	fmt.Printf("Pricing:         %d services, %d models\n", len(services), modelCount)

	if validateFlags.showPricing {
		fmt.Println()
		for _, service := range services {
			fmt.Printf("%s:\n", service)

			models := make([]string, 0, len(cfg.Pricing[service]))
			for model := range cfg.Pricing[service] {
				models = append(models, model)
			}
			sort.Strings(models)

			for _, model := range models {
				rate := cfg.Pricing[service][model]
				if rate.AudioMinute > 0 {
					fmt.Printf("  %-24s $%.6f/minute\n", model, rate.AudioMinute)
				} else {
					fmt.Printf("  %-24s $%.6f in, $%.6f out per 1K tokens\n",
						model, rate.Input, rate.Output)
				}
			}
		}
	}

	return nil
}
