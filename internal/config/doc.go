// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

/*
Package config provides centralized configuration management for Playtrack.

This package handles loading, validation, and parsing of configuration for
all application components. It ensures consistent configuration across the
backend services and provides sensible defaults for optional settings.

# Configuration Sources

Configuration is layered with Koanf v2, highest priority last:

  - Built-in defaults
  - Optional YAML config file (config.yaml)
  - Environment variables

# Configuration Structure

The package organizes configuration into logical groups:

  - ServerConfig: HTTP server settings (host, port, timeouts)
  - DatasetConfig: Session dataset source (URL, refresh cadence, timezone)
  - ChartsConfig: Chart shaping knobs (top-N cuts, timeline window)
  - SecurityConfig: CORS and rate limiting
  - LoggingConfig: Log levels and output formats

# Environment Variables

Environment variables map onto config paths via envTransformFunc, e.g.
DATASET_URL -> dataset.url, HTTP_PORT -> server.port, LOG_LEVEL ->
logging.level.
*/
package config
