// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package datasource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/playtrackhq/playtrack/internal/config"
	"github.com/playtrackhq/playtrack/internal/logging"
	"github.com/playtrackhq/playtrack/internal/metrics"
	"github.com/playtrackhq/playtrack/internal/models"
)

// maxErrorBodySize limits how much of a response body is read for error
// reporting, preventing unbounded allocation on large error responses.
const maxErrorBodySize = 64 * 1024 // 64KB

// breakerName labels the dataset circuit breaker in logs and metrics.
const breakerName = "dataset"

// FetchError describes a failed dataset fetch with enough context to log
// and surface over the API.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("dataset fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("dataset fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrBreakerOpen is returned when the circuit breaker rejects a fetch.
var ErrBreakerOpen = errors.New("dataset circuit breaker open")

// Client fetches the raw session dataset over HTTP.
//
// Resilience:
//   - Circuit breaker opens at a 60% failure rate over at least 10
//     requests; 3 probes allowed half-open, 2 minute recovery timeout
//   - HTTP 429 handled with exponential backoff (1s, 2s, 4s, 8s, 16s),
//     honoring Retry-After when present
//   - Context cancellation respected during backoff waits
//
// Thread Safety: safe for concurrent use.
type Client struct {
	url            string
	hc             *http.Client
	cb             *gobreaker.CircuitBreaker[[]models.RawSession]
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewClient creates a dataset client from configuration.
func NewClient(cfg config.DatasetConfig) *Client {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]models.RawSession](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordBreakerTransition(name, fromStr, toStr, stateToFloat(to))
		},
	})

	return &Client{
		url:            cfg.URL,
		hc:             &http.Client{Timeout: cfg.Timeout},
		cb:             cb,
		maxRetries:     5,
		retryBaseDelay: time.Second,
	}
}

// Fetch retrieves and decodes the raw session dataset with circuit
// breaker protection.
func (c *Client) Fetch(ctx context.Context) ([]models.RawSession, error) {
	start := time.Now()

	raws, err := c.cb.Execute(func() ([]models.RawSession, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordDatasetFetch(time.Since(start), "rejected")
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Fetch rejected")
			return nil, fmt.Errorf("%w: %w", ErrBreakerOpen, err)
		}
		metrics.RecordDatasetFetch(time.Since(start), "failure")
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		return nil, err
	}

	metrics.RecordDatasetFetch(time.Since(start), "success")
	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()

	return raws, nil
}

// fetch performs the HTTP request with rate-limit aware retries and
// decodes the response body.
func (c *Client) fetch(ctx context.Context) ([]models.RawSession, error) {
	resp, err := c.doRequestWithRateLimit(ctx)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, &FetchError{
			URL:        c.url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", string(body)),
		}
	}

	var raws []models.RawSession
	if err := json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("decode: %w", err)}
	}

	return raws, nil
}

// doRequestWithRateLimit performs the GET with automatic HTTP 429
// handling: exponential backoff honoring Retry-After, cancellable waits.
func (c *Client) doRequestWithRateLimit(ctx context.Context) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
		if err != nil {
			return nil, &FetchError{URL: c.url, Err: fmt.Errorf("create request: %w", err)}
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.hc.Do(req)
		if err != nil {
			return nil, &FetchError{URL: c.url, Err: err}
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close() // retrying anyway

		if attempt == c.maxRetries {
			lastErr = &FetchError{
				URL:        c.url,
				StatusCode: http.StatusTooManyRequests,
				Err:        fmt.Errorf("rate limit exceeded after %d retries", c.maxRetries),
			}
			break
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// readBodyForError reads at most maxErrorBodySize of a response body for
// error diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
