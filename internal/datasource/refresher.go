// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package datasource

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/playtrackhq/playtrack/internal/analytics"
	"github.com/playtrackhq/playtrack/internal/logging"
	"github.com/playtrackhq/playtrack/internal/metrics"
)

// ErrRefreshThrottled is returned by Refresh when manual refreshes come
// in faster than the throttle allows.
var ErrRefreshThrottled = errors.New("refresh throttled")

// manualRefreshPerMinute bounds API-triggered refreshes; the background
// cadence is not subject to it.
const manualRefreshPerMinute = 2

// Refresher runs the fetch-normalize-swap cycle on a fixed cadence. It
// implements suture.Service; a fetch failure is logged and retried on the
// next tick rather than returned, so the supervisor only restarts the
// service on panics.
type Refresher struct {
	client   *Client
	store    *Store
	interval time.Duration
	loc      *time.Location
	limiter  *rate.Limiter
}

// NewRefresher wires a refresher to a client and store. loc is the
// timezone session timestamps are parsed in.
func NewRefresher(client *Client, store *Store, interval time.Duration, loc *time.Location) *Refresher {
	return &Refresher{
		client:   client,
		store:    store,
		interval: interval,
		loc:      loc,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/manualRefreshPerMinute), 1),
	}
}

// Serve runs the periodic refresh loop until ctx is canceled.
func (r *Refresher) Serve(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Catch up immediately if the initial refresh never happened, e.g.
	// the dataset was unreachable at startup.
	if !r.store.Ready() {
		if err := r.RefreshNow(ctx); err != nil {
			logging.Warn().Err(err).Msg("Initial dataset refresh failed, will retry on next tick")
		}
	}

	for {
		select {
		case <-ticker.C:
			if err := r.RefreshNow(ctx); err != nil {
				logging.Error().Err(err).Msg("Dataset refresh failed")
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// String names the service in supervisor logs.
func (r *Refresher) String() string {
	return "dataset-refresher"
}

// Refresh performs an on-demand refresh, throttled so API clients cannot
// hammer the upstream. Returns ErrRefreshThrottled when over the limit.
func (r *Refresher) Refresh(ctx context.Context) error {
	if !r.limiter.Allow() {
		return ErrRefreshThrottled
	}
	return r.RefreshNow(ctx)
}

// RefreshNow performs one fetch-normalize-swap cycle unconditionally.
func (r *Refresher) RefreshNow(ctx context.Context) error {
	raws, err := r.client.Fetch(ctx)
	if err != nil {
		return err
	}

	sessions, dropped := analytics.Normalize(raws, r.loc)
	for _, perr := range dropped {
		logging.Warn().
			Int("index", perr.Index).
			Str("field", perr.Field).
			Str("value", perr.Value).
			Msg("Dropped malformed session record")
	}

	snap := NewSnapshot(sessions, len(dropped), time.Now())
	if !r.store.Replace(snap) {
		logging.Debug().Msg("Stale snapshot discarded")
		return nil
	}

	metrics.RecordSnapshotReplace(len(sessions), len(dropped), snap.FetchedAt)
	logging.Info().
		Int("sessions", len(sessions)).
		Int("dropped", len(dropped)).
		Int("users", len(snap.Users)).
		Int("games", len(snap.Games)).
		Msg("Dataset snapshot refreshed")

	return nil
}
