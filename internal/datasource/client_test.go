// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package datasource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/playtrackhq/playtrack/internal/config"
)

func newTestClient(url string) *Client {
	c := NewClient(config.DatasetConfig{URL: url, Timeout: 5 * time.Second})
	c.retryBaseDelay = time.Millisecond
	return c
}

func TestClientFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"game": "Factorio", "user": "lobabob", "start": "10/9/2020, 7:00:00 PM", "stop": "10/9/2020, 8:00:00 PM", "statusLog": [0, 0, 1]},
			{"game": "Terraria", "user": "solewolf", "start": "10/9/2020, 1:00:00 PM", "stop": "10/9/2020, 2:30:00 PM"}
		]`))
	}))
	defer srv.Close()

	raws, err := newTestClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(raws) != 2 {
		t.Fatalf("expected 2 records, got %d", len(raws))
	}
	if raws[0].Game != "Factorio" || raws[0].User != "lobabob" {
		t.Errorf("record 0 = %+v", raws[0])
	}
	if len(raws[0].StatusLog) != 3 {
		t.Errorf("statusLog = %v", raws[0].StatusLog)
	}
	if raws[1].StatusLog != nil {
		t.Errorf("missing statusLog should decode as nil, got %v", raws[1].StatusLog)
	}
}

func TestClientFetchHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error on HTTP 500")
	}

	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	if ferr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", ferr.StatusCode)
	}
}

func TestClientFetchDecodeError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestClientFetchRetriesRateLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	raws, err := newTestClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch should survive transient 429s: %v", err)
	}
	if raws == nil {
		t.Error("expected decoded empty dataset")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestClientFetchContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	client.retryBaseDelay = time.Hour // force the wait path

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx)
	if err == nil {
		t.Fatal("expected context error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
