// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 8093 {
		t.Errorf("Server.Port = %d, want 8093", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}

	// Dataset URL is the one required field and therefore has no default.
	if cfg.Dataset.URL != "" {
		t.Errorf("Dataset.URL should be empty by default, got %q", cfg.Dataset.URL)
	}
	if cfg.Dataset.RefreshInterval != 5*time.Minute {
		t.Errorf("Dataset.RefreshInterval = %v, want 5m", cfg.Dataset.RefreshInterval)
	}
	if cfg.Dataset.Timezone != "UTC" {
		t.Errorf("Dataset.Timezone = %q, want UTC", cfg.Dataset.Timezone)
	}

	if cfg.Charts.PieTopGames != 7 {
		t.Errorf("Charts.PieTopGames = %d, want 7", cfg.Charts.PieTopGames)
	}
	if cfg.Charts.BarTopGames != 5 {
		t.Errorf("Charts.BarTopGames = %d, want 5", cfg.Charts.BarTopGames)
	}
	if cfg.Charts.TimelineWindow != 24*time.Hour {
		t.Errorf("Charts.TimelineWindow = %v, want 24h", cfg.Charts.TimelineWindow)
	}

	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitReqs != 100 {
		t.Errorf("Security.RateLimitReqs = %d, want 100", cfg.Security.RateLimitReqs)
	}

	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"DATASET_URL", "dataset.url"},
		{"DATASET_REFRESH_INTERVAL", "dataset.refresh_interval"},
		{"HTTP_PORT", "server.port"},
		{"HTTP_SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
		{"CHARTS_PIE_TOP_GAMES", "charts.pie_top_games"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		// Unmapped variables are dropped, not guessed.
		{"PATH", ""},
		{"RANDOM_UNRELATED_VAR", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("DATASET_URL", "http://dataset.internal:9000/sessions.json")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Dataset.URL != "http://dataset.internal:9000/sessions.json" {
		t.Errorf("Dataset.URL = %q", cfg.Dataset.URL)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
	// Untouched settings keep their defaults.
	if cfg.Charts.PieTopGames != 7 {
		t.Errorf("Charts.PieTopGames = %d, want default 7", cfg.Charts.PieTopGames)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
dataset:
  url: http://files.internal/sessions.json
  refresh_interval: 90s
charts:
  bar_top_games: 8
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Dataset.URL != "http://files.internal/sessions.json" {
		t.Errorf("Dataset.URL = %q", cfg.Dataset.URL)
	}
	if cfg.Dataset.RefreshInterval != 90*time.Second {
		t.Errorf("Dataset.RefreshInterval = %v, want 90s", cfg.Dataset.RefreshInterval)
	}
	if cfg.Charts.BarTopGames != 8 {
		t.Errorf("Charts.BarTopGames = %d, want 8", cfg.Charts.BarTopGames)
	}
}

func TestLoadEnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("dataset:\n  url: http://from-file/sessions.json\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("DATASET_URL", "http://from-env/sessions.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Dataset.URL != "http://from-env/sessions.json" {
		t.Errorf("env must beat file, got %q", cfg.Dataset.URL)
	}
}

func TestLoadRejectsMissingDatasetURL(t *testing.T) {
	// No DATASET_URL anywhere: validation must fail.
	if _, err := Load(); err == nil {
		t.Fatal("Load() without DATASET_URL should fail validation")
	}
}
