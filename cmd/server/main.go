// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

// Package main is the entry point for the Playtrack server.
//
// Playtrack is a self-hosted analytics dashboard for game activity
// trackers. It periodically fetches a JSON dataset of game sessions,
// normalizes it into an in-memory snapshot, and serves aggregated chart
// data (playtime per game, activity by day, presence timelines) over a
// REST API.
//
// # Application Architecture
//
// The server initializes in the following order:
//
//  1. Configuration: layered load via Koanf v2 (defaults, config.yaml,
//     environment variables)
//  2. Logging: zerolog, JSON by default
//  3. Data source: HTTP client with circuit breaker, snapshot store,
//     background refresher
//  4. HTTP server: chi router with the dashboard API under /api/v1 and
//     Prometheus metrics at /metrics
//  5. Supervisor tree: suture supervises the refresher and HTTP server
//
// # Configuration
//
// Only DATASET_URL is required; everything else has a default. See the
// config package for the full environment variable list.
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the server stops
// accepting connections, in-flight requests get the configured grace
// period, and the refresher loop is canceled.
//
// # Example Usage
//
//	export DATASET_URL=https://tracker.example.net/stats/sessions.json
//	export DATASET_TIMEZONE=America/New_York
//	./playtrack
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/playtrackhq/playtrack/internal/api"
	"github.com/playtrackhq/playtrack/internal/config"
	"github.com/playtrackhq/playtrack/internal/datasource"
	"github.com/playtrackhq/playtrack/internal/logging"
	"github.com/playtrackhq/playtrack/internal/supervisor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config not yet available, use the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("dataset_url", cfg.Dataset.URL).
		Str("timezone", cfg.Dataset.Timezone).
		Dur("refresh_interval", cfg.Dataset.RefreshInterval).
		Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Data source wiring: client -> store -> refresher.
	client := datasource.NewClient(cfg.Dataset)
	store := datasource.NewStore()
	refresher := datasource.NewRefresher(client, store, cfg.Dataset.RefreshInterval, cfg.Dataset.Location())

	// Load the first snapshot before serving so the dashboard never shows
	// an empty state on a healthy upstream. A failure here is not fatal;
	// the refresher retries on its cadence.
	initCtx, initCancel := context.WithTimeout(ctx, cfg.Dataset.Timeout)
	if err := refresher.RefreshNow(initCtx); err != nil {
		logging.Warn().Err(err).Msg("Initial dataset fetch failed, serving empty until refresh succeeds")
	}
	initCancel()

	handler := api.NewHandler(store, refresher, cfg)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(handler, cfg),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(refresher)
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting Playtrack")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Playtrack stopped gracefully")
}
