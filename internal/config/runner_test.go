package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadRunnerConfigDefaults(t *testing.T) {
	cfg, err := LoadRunnerConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Default log level mismatch: got %s, want info", cfg.LogLevel)
	}

	if cfg.Wasm.CacheDir != "" {
		t.Errorf("Default cache dir should be empty, got %s", cfg.Wasm.CacheDir)
	}

	if cfg.Wasm.TimeoutSeconds != 30 {
		t.Errorf("Default timeout mismatch: got %d, want 30", cfg.Wasm.TimeoutSeconds)
	}

	if cfg.Wasm.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.Wasm.Timeout())
	}
}

func TestLoadRunnerConfigFromFile(t *testing.T) {
	// Create temporary config file
	tmpfile, err := os.CreateTemp("", "config*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	configContent := `
log_level: debug
wasm:
  cache_dir: /tmp/wasm-cache
  timeout_seconds: 5
`
	if _, err := tmpfile.Write([]byte(configContent)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunnerConfig(tmpfile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Log level mismatch: got %s, want debug", cfg.LogLevel)
	}

	if cfg.Wasm.CacheDir != "/tmp/wasm-cache" {
		t.Errorf("Cache dir mismatch: got %s, want /tmp/wasm-cache", cfg.Wasm.CacheDir)
	}

	if cfg.Wasm.TimeoutSeconds != 5 {
		t.Errorf("Timeout mismatch: got %d, want 5", cfg.Wasm.TimeoutSeconds)
	}
}

func TestLoadRunnerConfigMissingFile(t *testing.T) {
	if _, err := LoadRunnerConfig("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
