// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateCharts(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateDataset() error {
	if c.Dataset.URL == "" {
		return fmt.Errorf("DATASET_URL is required")
	}
	if err := validateHTTPURL(c.Dataset.URL, "DATASET_URL"); err != nil {
		return fmt.Errorf("DATASET_URL is invalid: %w", err)
	}
	if c.Dataset.Timeout <= 0 {
		return fmt.Errorf("DATASET_TIMEOUT must be positive, got %v", c.Dataset.Timeout)
	}
	if c.Dataset.RefreshInterval < time.Second {
		return fmt.Errorf("DATASET_REFRESH_INTERVAL must be at least 1s, got %v", c.Dataset.RefreshInterval)
	}
	if _, err := time.LoadLocation(c.Dataset.Timezone); err != nil {
		return fmt.Errorf("DATASET_TIMEZONE is not a valid IANA timezone: %w", err)
	}
	return nil
}

func (c *Config) validateCharts() error {
	if c.Charts.PieTopGames < 1 {
		return fmt.Errorf("CHARTS_PIE_TOP_GAMES must be at least 1, got %d", c.Charts.PieTopGames)
	}
	if c.Charts.BarTopGames < 1 {
		return fmt.Errorf("CHARTS_BAR_TOP_GAMES must be at least 1, got %d", c.Charts.BarTopGames)
	}
	if c.Charts.TimelineWindow <= 0 {
		return fmt.Errorf("CHARTS_TIMELINE_WINDOW must be positive, got %v", c.Charts.TimelineWindow)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL validates that a URL is properly formatted for HTTP/HTTPS
// services: scheme http/https and host present.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	return nil
}
