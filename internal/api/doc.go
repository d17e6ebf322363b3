// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

// Package api provides the HTTP surface of Playtrack.
//
// All endpoints are read-only views over the in-memory dataset snapshot,
// except POST /api/v1/refresh which triggers an on-demand upstream fetch.
// Responses use the models.APIResponse envelope; chart endpoints share a
// common query surface (user, period, games, all, limit) validated with
// go-playground/validator before any aggregation runs.
//
// Routing uses chi with a global middleware stack (request ID, access
// logging, CORS) and a per-API stack (rate limiting, Prometheus metrics,
// gzip compression). Prometheus scraping lives at /metrics outside the
// rate-limited subtree.
package api
