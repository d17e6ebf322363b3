// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

// Package analytics implements the time-bucketed aggregation pipeline that
// turns a flat list of game activity sessions into per-bucket, per-category
// duration series suitable for charting.
//
// The pipeline stages, leaf to root:
//
//   - Normalize: raw dataset records -> canonical Session values (timestamp
//     parsing, status run-length encoding, derived active/idle durations)
//   - Filter: user / time-window / game predicates over the working set
//   - SelectCategories: top-N game ranking with "Other" tail collapse
//   - AggregateBuckets: per (bucket, category) duration totals with exact
//     splitting of sessions that cross bucket boundaries
//   - SplitTimeline / BuildTimeline: lossless expansion of sessions into
//     one sub-interval per status run for Gantt-style rendering
//   - series builders (GamesPlayed, ActivityByDay, ActivityTrend,
//     GameDetails, Timeline): the five dashboard chart series
//
// Every function in this package is pure: results depend only on the
// arguments (including the explicit "now" and *time.Location), repeated
// calls on identical inputs produce identical output, and nothing is
// retained between calls. Malformed input records are reported and skipped,
// never fatal.
package analytics
