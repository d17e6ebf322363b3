// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/playtrackhq/playtrack/internal/models"
)

// BucketMode selects the time axis of an aggregation.
type BucketMode int

// Bucketing schemes.
const (
	// BucketHourOfDay folds durations into 24 recurring hour slots.
	BucketHourOfDay BucketMode = iota

	// BucketDayOfWeek folds durations into 7 recurring weekday slots,
	// Sunday first.
	BucketDayOfWeek

	// BucketCalendarDay assigns durations to absolute local calendar
	// dates over a trailing window ending today.
	BucketCalendarDay
)

// DefaultCalendarWindowDays is the floor for the automatic calendar-day
// window: even a young dataset gets a 30-day axis so the daily chart has a
// stable width.
const DefaultCalendarWindowDays = 30

// calendarDayLabel is the axis label format for calendar-day buckets.
const calendarDayLabel = "2006-01-02"

var dayOfWeekLabels = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// BucketedDurations is the result of a bucketed aggregation: a fixed,
// zero-filled axis plus one duration series per category, all aligned to
// Labels. Series values are milliseconds.
type BucketedDurations struct {
	Mode       BucketMode
	Labels     []string
	Categories []string
	Series     map[string][]int64
}

// AggregateBuckets computes total duration per (bucket, category) over the
// filtered working set.
//
// Sessions that cross bucket boundaries are split exactly: the walk adds
// the time until the next hour/day boundary to the current bucket, advances
// to the boundary, and repeats until the session's remaining duration is
// exhausted, so no time is lost or double counted. Sessions with
// non-positive duration are no-ops.
//
// The category of every fragment is resolved through sel, which was
// computed over the whole set - the same category list applies to every
// bucket (stacked-bar stability).
//
// Buckets are generated eagerly for the entire axis even when empty:
// 24 hour slots, 7 weekday slots, or windowDays calendar dates ascending
// and ending today. For BucketCalendarDay, windowDays <= 0 selects the
// automatic window: days since the earliest session in the set, floored at
// DefaultCalendarWindowDays.
func AggregateBuckets(sessions []models.Session, mode BucketMode, windowDays int, sel CategorySelection, now time.Time, loc *time.Location) *BucketedDurations {
	agg := &BucketedDurations{
		Mode:       mode,
		Categories: sel.Categories,
		Series:     make(map[string][]int64, len(sel.Categories)),
	}

	var windowStart time.Time
	switch mode {
	case BucketHourOfDay:
		agg.Labels = hourOfDayLabels()
	case BucketDayOfWeek:
		agg.Labels = append([]string(nil), dayOfWeekLabels...)
	case BucketCalendarDay:
		if windowDays <= 0 {
			windowDays = autoWindowDays(sessions, now, loc)
		}
		today := startOfDay(now.In(loc))
		windowStart = today.AddDate(0, 0, -(windowDays - 1))
		agg.Labels = make([]string, 0, windowDays)
		for day := windowStart; !day.After(today); day = day.AddDate(0, 0, 1) {
			agg.Labels = append(agg.Labels, day.Format(calendarDayLabel))
		}
	}

	for _, category := range sel.Categories {
		agg.Series[category] = make([]int64, len(agg.Labels))
	}

	for _, s := range sessions {
		category, ok := sel.Resolve(s.Game)
		if !ok {
			continue
		}
		series := agg.Series[category]
		walkBuckets(s, mode, loc, func(bucketTime time.Time, fragmentMS int64) {
			idx := -1
			switch mode {
			case BucketHourOfDay:
				idx = bucketTime.Hour()
			case BucketDayOfWeek:
				idx = int(bucketTime.Weekday())
			case BucketCalendarDay:
				idx = daysBetween(windowStart, startOfDay(bucketTime))
			}
			if idx >= 0 && idx < len(series) {
				series[idx] += fragmentMS
			}
		})
	}

	return agg
}

// walkBuckets splits a session's duration across hour or day boundaries,
// invoking add once per fragment with the fragment's starting instant.
//
// The loop strictly decreases the remaining duration on every iteration,
// guaranteeing termination; a defensive guard flushes the remainder into
// the current bucket should a boundary computation ever fail to advance.
func walkBuckets(s models.Session, mode BucketMode, loc *time.Location, add func(bucketTime time.Time, fragmentMS int64)) {
	remaining := s.Duration
	if remaining <= 0 {
		return
	}

	current := time.UnixMilli(s.Start).In(loc)
	for remaining > 0 {
		next := nextBoundary(current, mode)
		untilNext := next.Sub(current).Milliseconds()
		if untilNext <= 0 || remaining <= untilNext {
			add(current, remaining)
			return
		}
		add(current, untilNext)
		remaining -= untilNext
		current = next
	}
}

// nextBoundary returns the next hour boundary (BucketHourOfDay) or local
// midnight (other modes) strictly after t.
func nextBoundary(t time.Time, mode BucketMode) time.Time {
	year, month, day := t.Date()
	if mode == BucketHourOfDay {
		return time.Date(year, month, day, t.Hour()+1, 0, 0, 0, t.Location())
	}
	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())
}

// autoWindowDays derives the automatic calendar window: the number of days
// spanned from the earliest session's start date through today, floored at
// DefaultCalendarWindowDays.
func autoWindowDays(sessions []models.Session, now time.Time, loc *time.Location) int {
	days := DefaultCalendarWindowDays
	if len(sessions) == 0 {
		return days
	}

	earliest := sessions[0].Start
	for _, s := range sessions[1:] {
		if s.Start < earliest {
			earliest = s.Start
		}
	}

	span := daysBetween(startOfDay(time.UnixMilli(earliest).In(loc)), startOfDay(now.In(loc))) + 1
	if span > days {
		days = span
	}
	return days
}

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from midnight a to midnight b, rounding
// away the hour DST shifts introduce.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// hourOfDayLabels returns the 24 hour-slot labels, "12 AM" through "11 PM".
func hourOfDayLabels() []string {
	labels := make([]string, 24)
	for i := range labels {
		hour := i % 12
		if hour == 0 {
			hour = 12
		}
		suffix := "AM"
		if i >= 12 {
			suffix = "PM"
		}
		labels[i] = fmt.Sprintf("%d %s", hour, suffix)
	}
	return labels
}
