package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "themis",
	Short: "Themis - per-request API cost accounting for Lexora",
	Long: `Themis is the cost accounting service of the Lexora legal research
backend. It attributes every billable external API call (LLM completions,
embeddings, audio transcription) to the client request that caused it,
computes costs from a configurable pricing catalog, and serves:

  - Per-request cost detail with the full call breakdown
  - Daily cost aggregates with a per-service breakdown
  - A bounded history of recent requests
  - Prometheus metrics for cost and call volume`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
