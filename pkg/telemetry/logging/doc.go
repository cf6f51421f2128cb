// Package logging provides structured logging for Themis on top of log/slog.
//
// Loggers are configured through config.LoggingConfig (level, format, source
// annotation) and can be installed as the process default so that components
// logging via slog.Default share one configuration. The log level can be
// re-applied at runtime by the configuration watcher; format changes require
// a restart.
package logging
