/*
Package cli provides command-line interface utilities for Themis.

The cli package includes typed command errors and signal handling helpers
used by the themis command.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
