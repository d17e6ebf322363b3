// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access
// from multiple goroutines.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Charts   ChartsConfig   `koanf:"charts"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8093)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown grace period (default: 15s)
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port pair the server binds to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatasetConfig holds the session dataset source settings. The dataset is
// a JSON document of raw session records fetched over HTTP and refreshed
// on a fixed cadence.
//
// Environment Variables:
//   - DATASET_URL: Dataset endpoint (required)
//   - DATASET_TIMEOUT: Per-fetch timeout (default: 15s)
//   - DATASET_REFRESH_INTERVAL: Background refresh cadence (default: 5m)
//   - DATASET_TIMEZONE: IANA timezone for timestamp parsing and calendar
//     bucketing (default: UTC)
type DatasetConfig struct {
	URL             string        `koanf:"url"`
	Timeout         time.Duration `koanf:"timeout"`
	RefreshInterval time.Duration `koanf:"refresh_interval"`
	Timezone        string        `koanf:"timezone"`
}

// Location resolves the configured timezone. Call after Validate; an
// invalid name falls back to UTC.
func (c DatasetConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ChartsConfig holds the chart shaping knobs.
//
// Environment Variables:
//   - CHARTS_PIE_TOP_GAMES: Doughnut top-N cut (default: 7)
//   - CHARTS_BAR_TOP_GAMES: Stacked bar top-N cut (default: 5)
//   - CHARTS_TIMELINE_WINDOW: Trailing timeline span (default: 24h)
type ChartsConfig struct {
	PieTopGames    int           `koanf:"pie_top_games"`
	BarTopGames    int           `koanf:"bar_top_games"`
	TimelineWindow time.Duration `koanf:"timeline_window"`
}

// SecurityConfig holds CORS and rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Allowed origins, comma-separated (default: *)
//   - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Disable rate limiting entirely (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
