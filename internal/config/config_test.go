package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Timing.MinDurationSeconds != 0.5 {
		t.Fatalf("min duration = %v, want 0.5", cfg.Timing.MinDurationSeconds)
	}
	if cfg.Timing.ContextWindow != 3 {
		t.Fatalf("context window = %d, want 3", cfg.Timing.ContextWindow)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if strings.Contains(cfg.Paths.JournalPath, "~") {
		t.Fatalf("journal path not expanded: %q", cfg.Paths.JournalPath)
	}
	if cfg.MinDuration() != 500*time.Millisecond {
		t.Fatalf("MinDuration = %v, want 500ms", cfg.MinDuration())
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[timing]
min_duration_seconds = 1.5
context_window = 5

[grammar]
enabled = true
url = "http://localhost:8010/"
timeout_seconds = 3

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Timing.MinDurationSeconds != 1.5 || cfg.Timing.ContextWindow != 5 {
		t.Fatalf("unexpected timing: %+v", cfg.Timing)
	}
	if cfg.Grammar.URL != "http://localhost:8010" {
		t.Fatalf("grammar url not trimmed: %q", cfg.Grammar.URL)
	}
	if cfg.GrammarTimeout() != 3*time.Second {
		t.Fatalf("grammar timeout = %v, want 3s", cfg.GrammarTimeout())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min duration", func(c *Config) { c.Timing.MinDurationSeconds = 0 }},
		{"huge min duration", func(c *Config) { c.Timing.MinDurationSeconds = 60 }},
		{"grammar without url", func(c *Config) { c.Grammar.Enabled = true }},
		{"bad log format", func(c *Config) { c.Logging.Format = "yaml" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Logging.Format = "console"
			cfg.Logging.Level = "info"
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Timing.MinDurationSeconds != 0.5 {
		t.Fatalf("sample changed defaults: %+v", cfg.Timing)
	}
}
