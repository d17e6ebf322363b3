// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package analytics

import (
	"sort"
	"time"

	"github.com/playtrackhq/playtrack/internal/models"
)

// Default top-N thresholds per chart, matching the dashboard layout: the
// doughnut legend has room for more entries than a stacked bar's.
const (
	DefaultPieTopGames = 7
	DefaultBarTopGames = 5
)

// GamesPlayed builds the "games played" doughnut series: total duration per
// game over the filtered set, top-N plus "Other", one dataset.
func GamesPlayed(sessions []models.Session, limit int, selected []string, showAll bool) models.ChartData {
	sel := SelectCategories(sessions, limit, selected, showAll)

	totals := make(map[string]int64, len(sel.Categories))
	for _, s := range sessions {
		category, ok := sel.Resolve(s.Game)
		if !ok {
			continue
		}
		totals[category] += s.Duration
	}

	data := models.ChartData{
		Labels:   make([]string, 0, len(sel.Categories)),
		Datasets: []models.Dataset{{Label: "Playtime", Data: make([]int64, 0, len(sel.Categories))}},
	}
	for _, category := range sel.Categories {
		data.Labels = append(data.Labels, TruncateLabel(category))
		data.Datasets[0].Data = append(data.Datasets[0].Data, totals[category])
	}
	return data
}

// ActivityByDay builds the stacked daily bar series: one dataset per
// selected category over a trailing calendar-day axis ending today.
// Datasets are ordered by descending total so the most-played games stack
// at the bottom of the legend first.
func ActivityByDay(sessions []models.Session, period models.TimePeriod, limit int, selected []string, showAll bool, now time.Time, loc *time.Location) models.ChartData {
	windowDays := 0 // auto
	if period.Finite() {
		windowDays = period.Days()
	}

	sel := SelectCategories(sessions, limit, selected, showAll)
	buckets := AggregateBuckets(sessions, BucketCalendarDay, windowDays, sel, now, loc)

	data := models.ChartData{
		Labels:   buckets.Labels,
		Datasets: make([]models.Dataset, 0, len(buckets.Categories)),
	}
	for _, category := range buckets.Categories {
		data.Datasets = append(data.Datasets, models.Dataset{
			Label: TruncateLabel(category),
			Data:  buckets.Series[category],
		})
	}
	sort.SliceStable(data.Datasets, func(i, j int) bool {
		return sumSeries(data.Datasets[i].Data) > sumSeries(data.Datasets[j].Data)
	})
	return data
}

// ActivityTrend builds the activity-trend series: total playtime folded
// into hour-of-day slots when the filter window is a single day, or
// day-of-week slots otherwise. A single "Playtime" dataset, no per-game
// split.
func ActivityTrend(sessions []models.Session, period models.TimePeriod, now time.Time, loc *time.Location) models.ChartData {
	mode := BucketDayOfWeek
	if period == models.PeriodDay {
		mode = BucketHourOfDay
	}

	sel := SingleCategory("Playtime")
	buckets := AggregateBuckets(sessions, mode, 0, sel, now, loc)

	return models.ChartData{
		Labels:   buckets.Labels,
		Datasets: []models.Dataset{{Label: "Playtime", Data: buckets.Series["Playtime"]}},
	}
}

// GameDetails builds the per-game user breakdown doughnut: active duration
// per user for one game, descending, ties in first-seen order.
func GameDetails(sessions []models.Session, game string) models.ChartData {
	type userTotal struct {
		user  string
		total int64
	}
	var totals []userTotal
	index := make(map[string]int)
	for _, s := range sessions {
		if s.Game != game {
			continue
		}
		i, ok := index[s.User]
		if !ok {
			i = len(totals)
			index[s.User] = i
			totals = append(totals, userTotal{user: s.User})
		}
		totals[i].total += s.ActiveDuration
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].total > totals[j].total })

	data := models.ChartData{
		Labels:   make([]string, 0, len(totals)),
		Datasets: []models.Dataset{{Label: TruncateLabel(game), Data: make([]int64, 0, len(totals))}},
	}
	for _, ut := range totals {
		data.Labels = append(data.Labels, ut.user)
		data.Datasets[0].Data = append(data.Datasets[0].Data, ut.total)
	}
	return data
}

// Timeline builds the trailing-window timeline chart data.
func Timeline(sessions []models.Session, now time.Time, window time.Duration) models.TimelineData {
	return BuildTimeline(sessions, now, window)
}

func sumSeries(values []int64) int64 {
	var sum int64
	for _, v := range values {
		sum += v
	}
	return sum
}
