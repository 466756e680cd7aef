package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

func cityActivity(name, duration string, lat, lng float64) types.Activity {
	return types.Activity{
		Name:        name,
		Duration:    duration,
		Type:        types.ActivityTypeCity,
		Coordinates: &types.Coordinates{Latitude: lat, Longitude: lng},
	}
}

func flatten(days [][]types.Activity) []string {
	var names []string
	for _, day := range days {
		for _, a := range day {
			names = append(names, a.Name)
		}
	}
	return names
}

func TestOptimizeDays_EmptyInput(t *testing.T) {
	days, overBudget, unplaced := OptimizeDays(nil, 8)
	assert.Empty(t, days)
	assert.Empty(t, overBudget)
	assert.Empty(t, unplaced)
}

func TestOptimizeDays_DayTripsGetDedicatedDays(t *testing.T) {
	activities := []types.Activity{
		cityActivity("Museum", "2-3 hours", 19.88, 102.13),
		{
			Name:        "Kuang Si Falls",
			Duration:    "Full day",
			Type:        types.ActivityTypeDayTrip,
			Zone:        "Day Trip",
			Coordinates: &types.Coordinates{Latitude: 19.7489, Longitude: 102.0714},
		},
		cityActivity("Night Market", "2-3 hours", 19.8854, 102.1351),
	}

	days, overBudget, unplaced := OptimizeDays(activities, 8)
	require.Len(t, days, 2)
	assert.Empty(t, overBudget)
	assert.Empty(t, unplaced)

	// The day trip occupies day 1 alone; the two city stops share day 2.
	require.Len(t, days[0], 1)
	assert.Equal(t, "Kuang Si Falls", days[0][0].Name)
	assert.Len(t, days[1], 2)
}

func TestOptimizeDays_RespectsDailyBudget(t *testing.T) {
	// Five 2-hour stops against an 8-hour budget: four fit on day one, the
	// fifth spills to day two.
	activities := []types.Activity{
		cityActivity("A", "1-2 hours", 40.7794, -73.9632),
		cityActivity("B", "1-2 hours", 40.7614, -73.9776),
		cityActivity("C", "1-2 hours", 40.7829, -73.9654),
		cityActivity("D", "1-2 hours", 40.7480, -74.0048),
		cityActivity("E", "1-2 hours", 40.6892, -74.0445),
	}
	for i := range activities {
		activities[i].Duration = "unspecified" // 2h default
	}

	days, overBudget, unplaced := OptimizeDays(activities, 8)
	require.Len(t, days, 2)
	assert.Len(t, days[0], 4)
	assert.Len(t, days[1], 1)
	assert.Empty(t, overBudget)
	assert.Empty(t, unplaced)

	for _, day := range days {
		var hours float64
		for _, a := range day {
			hours += estimateDurationHours(a.Duration)
		}
		assert.LessOrEqual(t, hours, 8.0)
	}
}

func TestOptimizeDays_NoActivityLostOrDuplicated(t *testing.T) {
	activities := []types.Activity{
		cityActivity("A", "3-4 hours", 51.5194, -0.1270),
		cityActivity("B", "2-3 hours", 51.5076, -0.0994),
		cityActivity("C", "3-4 hours", 51.5081, -0.0759),
		cityActivity("D", "2-3 hours", 51.4994, -0.1273),
		{Name: "E", Duration: "2-3 hours", Type: types.ActivityTypeCity}, // no coordinates
	}

	days, overBudget, unplaced := OptimizeDays(activities, 8)
	assert.Empty(t, overBudget)

	names := flatten(days)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, names)
	assert.Len(t, names, 5)

	// The coordinate-less stop is reported and lands on the trailing day.
	require.Len(t, unplaced, 1)
	assert.Equal(t, "E", unplaced[0].Name)
	lastDay := days[len(days)-1]
	assert.Equal(t, "E", lastDay[len(lastDay)-1].Name)
}

func TestOptimizeDays_OverBudgetActivitiesExcluded(t *testing.T) {
	activities := []types.Activity{
		cityActivity("Short", "1-2 hours", 48.8606, 2.3376),
		cityActivity("Long", "Full day", 48.8584, 2.2945),
	}

	days, overBudget, unplaced := OptimizeDays(activities, 4)
	require.Len(t, overBudget, 1)
	assert.Equal(t, "Long", overBudget[0].Name)
	assert.Empty(t, unplaced)
	assert.NotContains(t, flatten(days), "Long")
	assert.Contains(t, flatten(days), "Short")
}

func TestOptimizeDays_OpenerPrefersCentralMorning(t *testing.T) {
	opener := types.Activity{
		Name:        "Louvre Museum",
		Duration:    "3-4 hours",
		Type:        types.ActivityTypeCity,
		Zone:        "Central",
		OptimalTime: types.OptimalMorning,
		Coordinates: &types.Coordinates{Latitude: 48.8606, Longitude: 2.3376},
	}
	other := cityActivity("Eiffel Tower", "2-3 hours", 48.8584, 2.2945)
	other.OptimalTime = types.OptimalEvening

	days, _, _ := OptimizeDays([]types.Activity{other, opener}, 8)
	require.NotEmpty(t, days)
	assert.Equal(t, "Louvre Museum", days[0][0].Name)
}

func TestOptimizeDays_NearestNeighborOrdering(t *testing.T) {
	// Start in central London; the Tate (0.5 km away) must be picked before
	// the Tower (3.5 km away) even though the Tower appears first.
	start := types.Activity{
		Name:        "British Museum",
		Duration:    "1-2 hours",
		Type:        types.ActivityTypeCity,
		Zone:        "Central",
		OptimalTime: types.OptimalMorning,
		Coordinates: &types.Coordinates{Latitude: 51.5194, Longitude: -0.1270},
	}
	tower := cityActivity("Tower of London", "1-2 hours", 51.5081, -0.0759)
	tate := cityActivity("Tate Modern", "1-2 hours", 51.5076, -0.0994)

	days, _, _ := OptimizeDays([]types.Activity{start, tower, tate}, 8)
	require.Len(t, days, 1)
	require.Len(t, days[0], 3)
	assert.Equal(t, "British Museum", days[0][0].Name)
	assert.Equal(t, "Tate Modern", days[0][1].Name)
	assert.Equal(t, "Tower of London", days[0][2].Name)
}

func TestOptimizeDays_Deterministic(t *testing.T) {
	activities := []types.Activity{
		cityActivity("A", "2-3 hours", 35.7148, 139.7967),
		cityActivity("B", "2-3 hours", 35.7144, 139.7744),
		cityActivity("C", "1-2 hours", 35.6598, 139.7006),
		{Name: "D", Duration: "1 hour", Type: types.ActivityTypeCity},
	}

	first, _, _ := OptimizeDays(activities, 8)
	for i := 0; i < 10; i++ {
		again, _, _ := OptimizeDays(activities, 8)
		assert.Equal(t, first, again)
	}
}
