// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package datasource

import (
	"sort"
	"sync"
	"time"

	"github.com/playtrackhq/playtrack/internal/models"
)

// Snapshot is one immutable view of the normalized dataset. Consumers
// must treat it as read-only; a refresh builds a new Snapshot rather
// than mutating the published one.
type Snapshot struct {
	Sessions  []models.Session
	Users     []string
	Games     []string
	FetchedAt time.Time
	Dropped   int
}

// NewSnapshot builds a snapshot from normalized sessions, deriving the
// sorted unique user and game lists.
func NewSnapshot(sessions []models.Session, dropped int, fetchedAt time.Time) *Snapshot {
	userSet := make(map[string]struct{})
	gameSet := make(map[string]struct{})
	for _, s := range sessions {
		if s.User != "" {
			userSet[s.User] = struct{}{}
		}
		if s.Game != "" {
			gameSet[s.Game] = struct{}{}
		}
	}

	snap := &Snapshot{
		Sessions:  sessions,
		Users:     make([]string, 0, len(userSet)),
		Games:     make([]string, 0, len(gameSet)),
		FetchedAt: fetchedAt,
		Dropped:   dropped,
	}
	for user := range userSet {
		snap.Users = append(snap.Users, user)
	}
	for game := range gameSet {
		snap.Games = append(snap.Games, game)
	}
	sort.Strings(snap.Users)
	sort.Strings(snap.Games)

	return snap
}

// Store publishes the current Snapshot to request handlers. Writes are
// last-write-wins by fetch time so a slow refresh can never clobber a
// newer snapshot.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore returns an empty store. Current() returns an empty snapshot
// until the first Replace.
func NewStore() *Store {
	return &Store{snap: &Snapshot{}}
}

// Replace publishes a new snapshot. Returns false when the store already
// holds a snapshot fetched at the same instant or later.
func (s *Store) Replace(snap *Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snap.FetchedAt.IsZero() && !snap.FetchedAt.After(s.snap.FetchedAt) {
		return false
	}
	s.snap = snap
	return true
}

// Current returns the published snapshot. Never nil.
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Ready reports whether at least one refresh has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.snap.FetchedAt.IsZero()
}
