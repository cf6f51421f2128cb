// Themis is the cost accounting service for the Lexora legal research
// backend.
//
// It correlates billable external API calls (LLM completions, embeddings,
// audio transcription) to logical client requests, prices them from a
// configurable catalog, and exposes daily aggregates and recent-request
// queries over HTTP.
//
// Usage:
//
//	# Start the server with default configuration
//	themis run
//
//	# Start with a custom configuration file
//	themis run --config /etc/themis/config.yaml
//
//	# Validate a configuration file
//	themis validate --config config.yaml
//
//	# Show version information
//	themis version
package main

func main() {
	Execute()
}
