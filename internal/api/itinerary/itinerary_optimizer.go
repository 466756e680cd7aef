package itinerary

import (
	"github.com/wanderplan/go-travel-planner/internal/types"
)

// openerZones are the central zones preferred for the first activity of a day.
var openerZones = map[string]bool{
	"Central": true,
	"Midtown": true,
}

// OptimizeDays partitions activities into an ordered sequence of daily plans.
//
// Day-trip activities each occupy a dedicated day, emitted first in input
// order. City activities are packed greedily: a day opens with the first
// remaining morning activity in a central zone when one exists, then extends
// nearest-neighbor by haversine distance from the last placed activity,
// subject to the per-day hour budget. Ties break by input order, so the
// result is deterministic for identical input.
//
// Returns the day lists plus two report slices: overBudget holds city
// activities whose single duration exceeds maxDailyHours (excluded from
// scheduling entirely), and unplaced holds coordinate-less activities that
// the nearest-neighbor step could never reach; these are still scheduled, on
// trailing catch-all days in input order, and reported so callers can flag
// them.
func OptimizeDays(activities []types.Activity, maxDailyHours float64) (days [][]types.Activity, overBudget, unplaced []types.Activity) {
	var city []types.Activity
	for _, a := range activities {
		if a.Type == types.ActivityTypeDayTrip {
			days = append(days, []types.Activity{a})
			continue
		}
		if estimateDurationHours(a.Duration) > maxDailyHours {
			overBudget = append(overBudget, a)
			continue
		}
		city = append(city, a)
	}

	remaining := city
	for len(remaining) > 0 {
		var day []types.Activity
		var hours float64
		// Last placed coordinates; nil until a located activity is placed,
		// and never carried over from a previous day.
		var current *types.Coordinates

		// Prefer a morning activity in a central zone as the day opener.
		for i, a := range remaining {
			if a.OptimalTime == types.OptimalMorning && openerZones[a.Zone] {
				day = append(day, a)
				hours += estimateDurationHours(a.Duration)
				current = a.Coordinates
				remaining = removeAt(remaining, i)
				break
			}
		}

		for {
			pick := pickNext(remaining, current, maxDailyHours-hours)
			if pick < 0 {
				break
			}
			a := remaining[pick]
			day = append(day, a)
			hours += estimateDurationHours(a.Duration)
			current = a.Coordinates
			remaining = removeAt(remaining, pick)
		}

		if len(day) == 0 {
			// Nothing placeable is left: only coordinate-less activities that
			// never match the opener rule remain.
			break
		}
		days = append(days, day)
	}

	// Schedule whatever the greedy loop could not reach on catch-all days
	// rather than dropping it silently.
	unplaced = remaining
	for len(remaining) > 0 {
		var day []types.Activity
		var hours float64
		for len(remaining) > 0 {
			est := estimateDurationHours(remaining[0].Duration)
			if len(day) > 0 && hours+est > maxDailyHours {
				break
			}
			day = append(day, remaining[0])
			hours += est
			remaining = remaining[1:]
		}
		days = append(days, day)
	}

	return days, overBudget, unplaced
}

// pickNext selects the index of the next activity to add to the current day,
// or -1 when nothing fits. Only activities with coordinates are candidates;
// with a known current location the closest one wins, otherwise the first
// fitting candidate in input order is taken.
func pickNext(remaining []types.Activity, current *types.Coordinates, budget float64) int {
	best := -1
	bestDist := 0.0
	for i, a := range remaining {
		if a.Coordinates == nil {
			continue
		}
		if estimateDurationHours(a.Duration) > budget {
			continue
		}
		if current == nil {
			return i
		}
		d := calculateDistance(current.Latitude, current.Longitude, a.Coordinates.Latitude, a.Coordinates.Longitude)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func removeAt(activities []types.Activity, i int) []types.Activity {
	out := make([]types.Activity, 0, len(activities)-1)
	out = append(out, activities[:i]...)
	return append(out, activities[i+1:]...)
}
