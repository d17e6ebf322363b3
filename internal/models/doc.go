// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

// Package models defines the shared data structures used across Playtrack.
//
// The package contains three groups of types:
//
//   - Session types: RawSession (wire format from the upstream dataset),
//     Session (normalized, immutable record), StatusRun and Status
//   - Chart types: ChartData, Dataset, TimelineData - the plain series
//     handed to the dashboard's chart renderers
//   - API types: APIResponse, Metadata, APIError - the standardized
//     response envelope used by all HTTP endpoints
//
// All durations are expressed in milliseconds and all instants as Unix
// epoch milliseconds, matching the contract with the dashboard client.
package models
