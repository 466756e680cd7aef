package themeparks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

// stubProvider is a canned WaitTimesProvider for routing tests.
type stubProvider struct {
	parks      []types.ThemePark
	parksErr   error
	waits      *types.ParkWaitTimes
	waitsErr   error
	lastParkID string
}

func (s *stubProvider) GetParks(ctx context.Context) ([]types.ThemePark, error) {
	return s.parks, s.parksErr
}

func (s *stubProvider) GetWaitTimes(ctx context.Context, parkID string) (*types.ParkWaitTimes, error) {
	s.lastParkID = parkID
	return s.waits, s.waitsErr
}

func waitsWithAverage(parkID string, avg float64, max int, source string) *types.ParkWaitTimes {
	return &types.ParkWaitTimes{
		ParkID: parkID,
		Source: source,
		Summary: types.WaitTimeSummary{
			TotalAttractions: 2,
			OpenAttractions:  2,
			AverageWait:      avg,
			MaxWait:          max,
		},
	}
}

func TestListParks_MergesProviders(t *testing.T) {
	qt := &stubProvider{parks: []types.ThemePark{{ID: "6", Name: "Magic Kingdom"}}}
	wta := &stubProvider{parks: []types.ThemePark{{ID: "efteling", Name: "Efteling"}}}
	svc := NewServiceImpl(qt, wta, testLogger())

	parks, err := svc.ListParks(context.Background())
	require.NoError(t, err)
	require.Len(t, parks, 2)
	assert.Equal(t, "6", parks[0].ID)
	assert.Equal(t, "efteling", parks[1].ID)
}

func TestListParks_ToleratesOneProviderFailing(t *testing.T) {
	qt := &stubProvider{parksErr: errors.New("timeout")}
	wta := &stubProvider{parks: []types.ThemePark{{ID: "efteling"}}}
	svc := NewServiceImpl(qt, wta, testLogger())

	parks, err := svc.ListParks(context.Background())
	require.NoError(t, err)
	require.Len(t, parks, 1)
	assert.Equal(t, "efteling", parks[0].ID)
}

func TestListParks_FailsWhenAllProvidersFail(t *testing.T) {
	qt := &stubProvider{parksErr: errors.New("timeout")}
	wta := &stubProvider{parksErr: errors.New("unreachable")}
	svc := NewServiceImpl(qt, wta, testLogger())

	_, err := svc.ListParks(context.Background())
	assert.Error(t, err)
}

func TestGetPark_MatchesAliasedID(t *testing.T) {
	qt := &stubProvider{parks: []types.ThemePark{{ID: "6", Name: "Magic Kingdom"}}}
	wta := &stubProvider{}
	svc := NewServiceImpl(qt, wta, testLogger())

	park, err := svc.GetPark(context.Background(), "wdw_magic_kingdom")
	require.NoError(t, err)
	assert.Equal(t, "Magic Kingdom", park.Name)
}

func TestGetPark_NotFound(t *testing.T) {
	qt := &stubProvider{parks: []types.ThemePark{{ID: "6"}}}
	wta := &stubProvider{}
	svc := NewServiceImpl(qt, wta, testLogger())

	_, err := svc.GetPark(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, types.ErrParkNotFound)
}

func TestGetWaitTimes_RoutesMockParksToWaitTimesApp(t *testing.T) {
	qt := &stubProvider{waits: waitsWithAverage("6", 30, 60, "queue-times")}
	wta := &stubProvider{waits: waitsWithAverage("efteling", 25, 30, "waittimes-app-mock")}
	svc := NewServiceImpl(qt, wta, testLogger())

	waits, err := svc.GetWaitTimes(context.Background(), "efteling")
	require.NoError(t, err)
	assert.Equal(t, "waittimes-app-mock", waits.Source)
	assert.Equal(t, "efteling", wta.lastParkID)
	assert.Empty(t, qt.lastParkID)

	waits, err = svc.GetWaitTimes(context.Background(), "wdw_magic_kingdom")
	require.NoError(t, err)
	assert.Equal(t, "queue-times", waits.Source)
	assert.Equal(t, "wdw_magic_kingdom", qt.lastParkID)
}

func TestGetCrowdPrediction_DerivesFromAverageWait(t *testing.T) {
	qt := &stubProvider{waits: waitsWithAverage("6", 40, 75, "queue-times")}
	svc := NewServiceImpl(qt, &stubProvider{}, testLogger())

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	pred, err := svc.GetCrowdPrediction(context.Background(), "6", date)
	require.NoError(t, err)

	assert.Equal(t, "6", pred.ParkID)
	assert.Equal(t, "2026-09-15", pred.Date)
	assert.Equal(t, 4, pred.CrowdIndex)
	assert.Equal(t, "Moderate", pred.Description)
	assert.Equal(t, 0.7, pred.Confidence)
	assert.Equal(t, 0.9, pred.WaitMultiplier)
	assert.Equal(t, 40.0, pred.AverageWait)
	assert.Equal(t, 75, pred.MaxWait)
	assert.Equal(t, "derived_from_queue-times", pred.Source)
	assert.Equal(t, []string{"12:00 PM - 3:00 PM"}, pred.PeakTimes)
	assert.Equal(t, []string{"8:00 AM - 11:00 AM", "6:00 PM - 9:00 PM"}, pred.BestVisitTimes)
}

func TestCrowdLevel_Thresholds(t *testing.T) {
	tests := []struct {
		avgWait   float64
		wantIndex int
		wantDesc  string
	}{
		{0, 1, "Ghost Town"},
		{10, 1, "Ghost Town"},
		{10.1, 2, "Very Light"},
		{20, 2, "Very Light"},
		{30, 3, "Light"},
		{45, 4, "Moderate"},
		{60, 5, "Busy"},
		{75, 6, "Very Busy"},
		{90, 7, "Packed"},
		{120, 8, "Extremely Packed"},
		{121, 9, "Avoid at All Costs"},
		{500, 9, "Avoid at All Costs"},
	}
	for _, tt := range tests {
		index, desc := crowdLevel(tt.avgWait)
		assert.Equal(t, tt.wantIndex, index, "avg wait %v", tt.avgWait)
		assert.Equal(t, tt.wantDesc, desc, "avg wait %v", tt.avgWait)
	}
}

func TestWaitMultiplier_ScalesWithIndex(t *testing.T) {
	assert.Equal(t, 0.3, waitMultiplier(1))
	assert.Equal(t, 1.0, waitMultiplier(5))
	assert.Equal(t, 2.5, waitMultiplier(9))
	assert.Equal(t, 1.0, waitMultiplier(0))
}

func TestPeakAndBestVisitTimes_TierBoundaries(t *testing.T) {
	assert.Equal(t, []string{"No significant peak times"}, peakTimes(3))
	assert.Equal(t, []string{"12:00 PM - 3:00 PM"}, peakTimes(5))
	assert.Len(t, peakTimes(6), 2)

	assert.Equal(t, []string{"Any time is good"}, bestVisitTimes(1))
	assert.Len(t, bestVisitTimes(4), 2)
	assert.Len(t, bestVisitTimes(9), 2)
}

func planWaits() *types.ParkWaitTimes {
	return &types.ParkWaitTimes{
		ParkID: "6",
		Source: "queue-times",
		Attractions: []types.ParkAttraction{
			{ID: "101", Name: "Space Mountain", WaitTime: 45, IsOpen: true, Land: "Tomorrowland"},
			{ID: "102", Name: "Haunted Mansion", WaitTime: 20, IsOpen: true, Land: "Liberty Square"},
			{ID: "103", Name: "Splash Mountain", WaitTime: 70, IsOpen: false, Land: "Frontierland"},
			{ID: "104", Name: "Pirates of the Caribbean", WaitTime: 65, IsOpen: true, Land: "Adventureland"},
		},
		Summary: types.WaitTimeSummary{TotalAttractions: 4, OpenAttractions: 3, AverageWait: 40, MaxWait: 70},
	}
}

func TestOptimizePlan_OrdersByLiveWait(t *testing.T) {
	qt := &stubProvider{waits: planWaits()}
	svc := NewServiceImpl(qt, &stubProvider{}, testLogger())

	visitDate := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	arrival, _ := time.Parse("15:04", "09:00")

	plan, err := svc.OptimizePlan(context.Background(), "6", []string{"101", "102", "103", "104", "999"}, visitDate, arrival)
	require.NoError(t, err)

	// Closed and unknown IDs are dropped; the rest runs shortest wait first.
	require.Len(t, plan.Stops, 3)
	assert.Equal(t, "Haunted Mansion", plan.Stops[0].Attraction.Name)
	assert.Equal(t, "Space Mountain", plan.Stops[1].Attraction.Name)
	assert.Equal(t, "Pirates of the Caribbean", plan.Stops[2].Attraction.Name)
	assert.Equal(t, []int{1, 2, 3}, []int{plan.Stops[0].Order, plan.Stops[1].Order, plan.Stops[2].Order})

	assert.Equal(t, "09:00 AM", plan.Stops[0].RecommendedTime)
	assert.Equal(t, "09:45 AM", plan.Stops[1].RecommendedTime)
	assert.Equal(t, "10:30 AM", plan.Stops[2].RecommendedTime)

	// Average wait 40 -> crowd index 4, multiplier 0.9.
	assert.Equal(t, 4, plan.CrowdIndex)
	assert.Equal(t, "Moderate", plan.CrowdDescription)
	assert.Equal(t, 18, plan.Stops[0].ProjectedWait)
	assert.Equal(t, 41, plan.Stops[1].ProjectedWait)
	assert.Equal(t, 59, plan.Stops[2].ProjectedWait)

	assert.Equal(t, []string{"Located in Liberty Square"}, plan.Stops[0].Tips)
	assert.Contains(t, plan.Stops[2].Tips, "High wait time - consider visiting during off-peak hours")

	assert.Equal(t, "2026-10-31", plan.VisitDate)
	assert.Equal(t, "09:00", plan.ArrivalTime)
	assert.Equal(t, 3, plan.TotalAttractions)
	assert.Equal(t, "135 minutes", plan.EstimatedTotalTime)
	assert.Equal(t, "queue-times", plan.Source)
	assert.Contains(t, plan.GeneralTips, "Current crowd level: Moderate")
}

func TestOptimizePlan_CrowdedDayTips(t *testing.T) {
	waits := planWaits()
	waits.Summary.AverageWait = 85 // index 7
	svc := NewServiceImpl(&stubProvider{waits: waits}, &stubProvider{}, testLogger())

	arrival, _ := time.Parse("15:04", "08:00")
	plan, err := svc.OptimizePlan(context.Background(), "6", []string{"102"}, time.Now(), arrival)
	require.NoError(t, err)

	require.Len(t, plan.Stops, 1)
	assert.Contains(t, plan.Stops[0].Tips, "Very crowded day - arrive early for shorter waits")
	assert.Equal(t, 7, plan.CrowdIndex)
	assert.Equal(t, 32, plan.Stops[0].ProjectedWait) // 20 * 1.6
}

func TestOptimizePlan_NothingPlannable(t *testing.T) {
	svc := NewServiceImpl(&stubProvider{waits: planWaits()}, &stubProvider{}, testLogger())

	arrival, _ := time.Parse("15:04", "08:00")
	_, err := svc.OptimizePlan(context.Background(), "6", []string{"103", "999"}, time.Now(), arrival)
	require.ErrorIs(t, err, types.ErrNoPlannableAttractions)
}

func TestOptimizePlan_PropagatesProviderFailure(t *testing.T) {
	upstream := &types.UpstreamError{Source: "queue-times", StatusCode: 500, Err: errors.New("boom")}
	svc := NewServiceImpl(&stubProvider{waitsErr: upstream}, &stubProvider{}, testLogger())

	arrival, _ := time.Parse("15:04", "08:00")
	_, err := svc.OptimizePlan(context.Background(), "6", []string{"101"}, time.Now(), arrival)
	var got *types.UpstreamError
	require.ErrorAs(t, err, &got)
}
