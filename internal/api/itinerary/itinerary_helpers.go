package itinerary

import (
	"math"
	"strings"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

// calculateDistance calculates the distance between two coordinates using the Haversine formula
// Returns distance in kilometers
func calculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371 // Earth's radius in kilometers

	// Convert degrees to radians
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	// Differences
	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	// Haversine formula
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

// durationRule maps a recognized descriptor substring to an hour estimate.
// Checked in order; the first match wins.
type durationRule struct {
	substring string
	hours     float64
}

var durationRules = []durationRule{
	{"Full day", 8},
	{"Half day", 4},
	{"3-4 hours", 3.5},
	{"2-3 hours", 2.5},
	{"1-2 hours", 1.5},
	{"1.5 hours", 1.5},
	{"1 hour", 1},
}

// defaultActivityHours is assumed for any descriptor that matches no rule.
// Downstream day budgeting depends on this fallback, so keep it stable.
const defaultActivityHours = 2

// estimateDurationHours maps a free-text duration descriptor to a numeric
// hour budget. This is a best-effort substring heuristic, not a parser; keep
// it isolated here so a stricter parser can replace it without touching the
// optimizer.
func estimateDurationHours(descriptor string) float64 {
	for _, rule := range durationRules {
		if strings.Contains(descriptor, rule.substring) {
			return rule.hours
		}
	}
	return defaultActivityHours
}

// primaryZone returns the most frequent zone among the activities, breaking
// ties by first-encountered order. Empty zones are ignored.
func primaryZone(activities []types.Activity) string {
	counts := make(map[string]int, len(activities))
	best := ""
	bestCount := 0
	for _, a := range activities {
		if a.Zone == "" {
			continue
		}
		counts[a.Zone]++
		if counts[a.Zone] > bestCount {
			best = a.Zone
			bestCount = counts[a.Zone]
		}
	}
	return best
}
