// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package analytics

import (
	"sort"

	"github.com/playtrackhq/playtrack/internal/models"
)

// OtherCategory is the synthesized category that absorbs the long tail of
// games beyond the top-N cut.
const OtherCategory = "Other"

// MaxCategoryLabelLength bounds category display names in chart labels and
// legends. The dashboard's chart components assume this limit.
const MaxCategoryLabelLength = 30

// CategorySelection maps games to the bounded category set a chart plots.
// The same selection is applied to every bucket of an aggregation so that
// stacked bars keep a stable legend across the whole axis.
type CategorySelection struct {
	// Categories is the ordered list of categories to chart individually.
	// When the tail is collapsed, OtherCategory is last.
	Categories []string

	byGame   map[string]string
	hasOther bool
	catchAll string
}

// SelectCategories ranks games by total duration over the whole filtered
// set and picks the categories to chart.
//
// Precedence, highest first:
//
//  1. Explicitly selected games: emit exactly those, in the given order,
//     with no "Other" collapse; limit and showAll are ignored.
//  2. Show-all toggle: emit every game, no collapse.
//  3. Default: top limit games by total duration (stable descending sort,
//     ties keep first-seen order) plus "Other" when a tail remains.
func SelectCategories(sessions []models.Session, limit int, selected []string, showAll bool) CategorySelection {
	if len(selected) > 0 {
		sel := CategorySelection{byGame: make(map[string]string, len(selected))}
		for _, game := range selected {
			if _, dup := sel.byGame[game]; dup {
				continue
			}
			sel.byGame[game] = game
			sel.Categories = append(sel.Categories, game)
		}
		return sel
	}

	type gameTotal struct {
		game  string
		total int64
	}
	var totals []gameTotal
	index := make(map[string]int)
	for _, s := range sessions {
		i, ok := index[s.Game]
		if !ok {
			i = len(totals)
			index[s.Game] = i
			totals = append(totals, gameTotal{game: s.Game})
		}
		totals[i].total += s.Duration
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].total > totals[j].total
	})

	top := len(totals)
	if !showAll && limit > 0 && limit < top {
		top = limit
	}

	sel := CategorySelection{
		byGame:   make(map[string]string, len(totals)),
		hasOther: top < len(totals),
	}
	for i, gt := range totals {
		if i < top {
			sel.byGame[gt.game] = gt.game
			sel.Categories = append(sel.Categories, gt.game)
		} else {
			sel.byGame[gt.game] = OtherCategory
		}
	}
	if sel.hasOther {
		sel.Categories = append(sel.Categories, OtherCategory)
	}
	return sel
}

// SingleCategory returns a selection that folds every game into one
// category. Used by charts that plot total playtime without a per-game
// split.
func SingleCategory(label string) CategorySelection {
	return CategorySelection{Categories: []string{label}, catchAll: label}
}

// Resolve maps a game to its chart category. The second return value is
// false when the game is excluded from the chart entirely (possible only
// under an explicit selection).
func (cs CategorySelection) Resolve(game string) (string, bool) {
	if cs.catchAll != "" {
		return cs.catchAll, true
	}
	category, ok := cs.byGame[game]
	return category, ok
}

// HasOther reports whether the selection collapsed a tail into "Other".
func (cs CategorySelection) HasOther() bool {
	return cs.hasOther
}

// TruncateLabel bounds a category display name to MaxCategoryLabelLength
// runes for legend rendering.
func TruncateLabel(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxCategoryLabelLength {
		return name
	}
	return string(runes[:MaxCategoryLabelLength])
}
