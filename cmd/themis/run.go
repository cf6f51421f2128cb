package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"lexora-hq/themis/pkg/cli"
	"lexora-hq/themis/pkg/config"
	"lexora-hq/themis/pkg/ledger"
	"lexora-hq/themis/pkg/pricing"
	"lexora-hq/themis/pkg/reporter"
	"lexora-hq/themis/pkg/server"
	"lexora-hq/themis/pkg/telemetry/logging"
	"lexora-hq/themis/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Themis cost accounting server",
	Long: `Start the Themis cost accounting server with the specified configuration.

The server exposes the QA and transcription endpoints, the cost admin API,
and Prometheus metrics on the configured address. A scheduled rollup logs
the previous day's totals shortly after midnight UTC.

Examples:
  # Start with default config
  themis run

  # Start with custom config
  themis run --config /etc/themis/config.yaml

  # Override listen address
  themis run --listen 0.0.0.0:8080

  # Validate config without starting server
  themis run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.Install(&cfg.Telemetry.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	printBanner(cfg)

	costMetrics := metrics.NewCostMetrics(&cfg.Telemetry.Metrics, nil)
	catalog := pricing.NewCatalog(cfg.Pricing)

	l := ledger.New(catalog,
		ledger.WithMetrics(costMetrics),
		ledger.WithHistorySize(cfg.Ledger.HistorySize),
		ledger.WithLogger(logger),
	)
	fmt.Printf("✓ Pricing catalog loaded (%d services)\n", len(catalog.Services()))

	ctx := cli.SetupSignalHandler()

	rep := reporter.New(l, &cfg.Report)
	if err := rep.Start(ctx); err != nil {
		return cli.NewCommandError("run", fmt.Errorf("failed to start rollup scheduler: %w", err))
	}
	defer rep.Stop()
	if cfg.Report.Enabled {
		fmt.Printf("✓ Daily rollup scheduled (%s UTC)\n", cfg.Report.Schedule)
	}

	// Watch the config file so operators can adjust the log level without
	// a restart. Pricing and server settings still require one.
	watcher, err := config.NewWatcher(cfgFile, logger)
	if err != nil {
		slog.Warn("config watcher unavailable", "error", err)
	} else {
		go func() {
			if err := watcher.Watch(ctx, func(updated *config.Config) {
				if err := logging.SetLevel(&cfg.Telemetry.Logging, updated.Telemetry.Logging.Level); err != nil {
					slog.Warn("invalid log level in reloaded config", "error", err)
				}
			}); err != nil {
				slog.Warn("config watcher stopped", "error", err)
			}
		}()
		defer watcher.Stop()
	}

	srv := server.New(cfg, l, costMetrics, server.WithLogger(logger))

	fmt.Println()
	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

func printBanner(cfg *config.Config) {
	fmt.Printf("Lexora Themis v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	slog.Debug("ledger configured",
		"history_size", cfg.Ledger.HistorySize,
		"recent_default_limit", cfg.Ledger.RecentDefaultLimit,
	)
	if cfg.Report.Enabled {
		slog.Debug("rollup schedule", "schedule", cfg.Report.Schedule)
	}
}
