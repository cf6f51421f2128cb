package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, "server:\n  listen_address: \"0.0.0.0:9090\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("expected listen address from file, got %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("expected default read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Ledger.HistorySize != DefaultHistorySize {
		t.Errorf("expected default history size, got %d", cfg.Ledger.HistorySize)
	}
	if cfg.Report.Schedule != DefaultReportSchedule {
		t.Errorf("expected default report schedule, got %q", cfg.Report.Schedule)
	}
	if len(cfg.Pricing) == 0 {
		t.Error("expected default pricing table to be applied")
	}
}

func TestLoad_ParsesPricing(t *testing.T) {
	path := writeConfigFile(t, `
pricing:
  completion:
    gpt-4o-mini:
      input: 0.00015
      output: 0.0006
  transcription:
    whisper-1:
      audio_minute: 0.006
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rate, ok := cfg.Pricing["completion"]["gpt-4o-mini"]
	if !ok {
		t.Fatal("expected completion/gpt-4o-mini rate")
	}
	if rate.Input != 0.00015 || rate.Output != 0.0006 {
		t.Errorf("unexpected completion rate: %+v", rate)
	}

	audio, ok := cfg.Pricing["transcription"]["whisper-1"]
	if !ok {
		t.Fatal("expected transcription/whisper-1 rate")
	}
	if audio.AudioMinute != 0.006 {
		t.Errorf("unexpected audio rate: %+v", audio)
	}

	// A pricing section in the file fully replaces the defaults.
	if _, ok := cfg.Pricing["embedding"]; ok {
		t.Error("expected file pricing to replace default pricing")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, "server:\n  listen_address: \"127.0.0.1:8080\"\n")

	t.Setenv("THEMIS_SERVER_LISTEN_ADDRESS", "127.0.0.1:7070")
	t.Setenv("THEMIS_SERVER_READ_TIMEOUT", "45s")
	t.Setenv("THEMIS_LEDGER_HISTORY_SIZE", "500")
	t.Setenv("THEMIS_LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:7070" {
		t.Errorf("expected env override for listen address, got %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("expected env override for read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Ledger.HistorySize != 500 {
		t.Errorf("expected env override for history size, got %d", cfg.Ledger.HistorySize)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected env override for logging level, got %q", cfg.Telemetry.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
