// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

/*
Package datasource fetches the raw session dataset and maintains the
in-memory snapshot the API serves from.

The flow:

	Client (HTTP + circuit breaker)
	   -> analytics.Normalize
	   -> Store.Replace (atomic snapshot swap)

The Client fetches the JSON dataset with rate-limit aware retries and a
sony/gobreaker circuit breaker so a flapping upstream cannot pile up
requests. The Refresher runs the fetch-normalize-swap cycle on a fixed
cadence under suture supervision, and also serves throttled manual
refreshes triggered over the API.

Reads are lock-cheap: the Store hands out immutable snapshots behind an
RWMutex, so request handlers never block a refresh and vice versa.
*/
package datasource
