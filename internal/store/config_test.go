package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing config file, got error: %v", err)
	}

	if cfg.Account != defaultAccount {
		t.Errorf("Expected default account, got %s", cfg.Account)
	}
	if cfg.API.BaseURL != defaultBaseURL {
		t.Errorf("Expected default base URL, got %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.API.TimeoutSeconds)
	}
	if cfg.Output.Dir != "data" {
		t.Errorf("Expected default output dir 'data', got %s", cfg.Output.Dir)
	}
	if cfg.Output.SummaryFile != "quoting_strategy_summary.csv" {
		t.Errorf("Unexpected default summary file: %s", cfg.Output.SummaryFile)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
account: "0x1234000000000000000000000000000000000000"
api:
  timeout_seconds: 10
output:
  dir: "out"
archive:
  enabled: true
  path: "out/history.db"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Account != "0x1234000000000000000000000000000000000000" {
		t.Errorf("Unexpected account: %s", cfg.Account)
	}
	if cfg.API.TimeoutSeconds != 10 {
		t.Errorf("Expected timeout 10, got %d", cfg.API.TimeoutSeconds)
	}
	// unset fields still receive defaults
	if cfg.API.BaseURL != defaultBaseURL {
		t.Errorf("Expected default base URL, got %s", cfg.API.BaseURL)
	}
	if !cfg.Archive.Enabled || cfg.Archive.Path != "out/history.db" {
		t.Errorf("Unexpected archive config: %+v", cfg.Archive)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("QUOTEWATCH_ACCOUNT", "0xbeef000000000000000000000000000000000000")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Account != "0xbeef000000000000000000000000000000000000" {
		t.Errorf("Expected env override to win, got %s", cfg.Account)
	}
}

func TestLoadConfigRejectsBadAccount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(`account: "wintermute"`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for non-0x account")
	}
}

func TestValidateTimeout(t *testing.T) {
	cfg := &Config{Account: defaultAccount}
	cfg.API.TimeoutSeconds = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected error for negative timeout")
	}
}
