// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Dataset fetch/refresh health
// - Snapshot freshness and size
// - Circuit breaker state

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Dataset Fetch Metrics
	DatasetFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_fetch_duration_seconds",
			Help:    "Duration of dataset fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_fetches_total",
			Help: "Total number of dataset fetch attempts",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	DatasetLastRefresh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_last_refresh_timestamp",
			Help: "Unix timestamp of the last successful dataset refresh",
		},
	)

	// Snapshot Metrics
	SnapshotSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_sessions",
			Help: "Number of normalized sessions in the current snapshot",
		},
	)

	SnapshotDroppedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_dropped_records_total",
			Help: "Total number of raw records dropped during normalization",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rate limit rejection for an endpoint.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordDatasetFetch records a dataset fetch attempt and its outcome.
// result is "success", "failure", or "rejected" (breaker open).
func RecordDatasetFetch(duration time.Duration, result string) {
	DatasetFetchDuration.Observe(duration.Seconds())
	DatasetFetchesTotal.WithLabelValues(result).Inc()
}

// RecordSnapshotReplace records a successful snapshot swap.
func RecordSnapshotReplace(sessions, droppedRecords int, at time.Time) {
	SnapshotSessions.Set(float64(sessions))
	SnapshotDroppedRecords.Add(float64(droppedRecords))
	DatasetLastRefresh.Set(float64(at.Unix()))
}

// RecordBreakerTransition records a circuit breaker state change and
// updates the state gauge.
func RecordBreakerTransition(name, fromState, toState string, stateValue float64) {
	CircuitBreakerTransitions.WithLabelValues(name, fromState, toState).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(stateValue)
}
