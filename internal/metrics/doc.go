// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

/*
Package metrics provides Prometheus instrumentation for Playtrack.

All metrics are registered with the default registry via promauto and
exposed on GET /metrics by the API server.

# Metric Groups

API endpoints:

	api_requests_total{method, endpoint, status_code}
	api_request_duration_seconds{method, endpoint}
	api_active_requests
	api_rate_limit_hits_total{endpoint}

Dataset fetching:

	dataset_fetch_duration_seconds
	dataset_fetches_total{result}
	dataset_last_refresh_timestamp

Snapshot state:

	snapshot_sessions
	snapshot_dropped_records_total

Circuit breaker:

	circuit_breaker_state{name}
	circuit_breaker_requests_total{name, result}
	circuit_breaker_state_transitions_total{name, from_state, to_state}

# Usage

Record helpers keep call sites terse:

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest(r.Method, pattern, strconv.Itoa(status), time.Since(start))
*/
package metrics
