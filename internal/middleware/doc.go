// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

/*
Package middleware provides HTTP middleware for the Playtrack API server.

All middleware use the standard func(http.Handler) http.Handler shape so
they compose with chi's Use():

  - RequestID: per-request UUID, propagated via header and context
  - RequestLogger: structured zerolog access logs
  - PrometheusMetrics: request counters, latency histograms, in-flight gauge
  - Compression: pooled gzip for clients that accept it

Ordering matters: RequestID should run first so the logger and metrics
middleware see the ID in context.
*/
package middleware
