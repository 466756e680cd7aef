package themeparks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

func TestWaitTimesAppGetParks_MockModeWithoutKey(t *testing.T) {
	client := NewWaitTimesAppClient("", testLogger())

	parks, err := client.GetParks(context.Background())
	require.NoError(t, err)
	require.Len(t, parks, 3)

	// Stable order regardless of map iteration.
	assert.Equal(t, "efteling", parks[0].ID)
	assert.Equal(t, "europa_park", parks[1].ID)
	assert.Equal(t, "phantasialand", parks[2].ID)
	for _, p := range parks {
		assert.Equal(t, "waittimes-app-mock", p.Source)
	}
}

func TestWaitTimesAppGetWaitTimes_MockMode(t *testing.T) {
	client := NewWaitTimesAppClient("", testLogger())

	waits, err := client.GetWaitTimes(context.Background(), "europa_park")
	require.NoError(t, err)

	assert.Equal(t, "europa_park", waits.ParkID)
	assert.Equal(t, "waittimes-app-mock", waits.Source)
	require.Len(t, waits.Attractions, 2)
	assert.NotEmpty(t, waits.Attractions[0].LastUpdated)

	assert.Equal(t, 2, waits.Summary.OpenAttractions)
	assert.Equal(t, 40.0, waits.Summary.AverageWait)
	assert.Equal(t, 45, waits.Summary.MaxWait)
}

func TestWaitTimesAppGetWaitTimes_UnknownMockPark(t *testing.T) {
	client := NewWaitTimesAppClient("", testLogger())

	_, err := client.GetWaitTimes(context.Background(), "disneyland_tokyo")
	assert.ErrorIs(t, err, types.ErrParkNotFound)
}

func TestWaitTimesAppGetParks_LiveModeParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/parks", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"parks": [
			{"id": "toverland", "name": "Toverland", "country": "Netherlands", "timezone": "Europe/Amsterdam", "latitude": 51.397, "longitude": 5.985}
		]}`))
	}))
	defer srv.Close()

	client := NewWaitTimesAppClientWithBaseURL(srv.URL, "secret", testLogger())
	parks, err := client.GetParks(context.Background())
	require.NoError(t, err)
	require.Len(t, parks, 1)
	assert.Equal(t, "toverland", parks[0].ID)
	assert.Equal(t, "waittimes-app", parks[0].Source)
	require.NotNil(t, parks[0].Coordinates)
}

func TestWaitTimesAppGetParks_FallsBackToMockOnUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewWaitTimesAppClientWithBaseURL(srv.URL, "secret", testLogger())
	parks, err := client.GetParks(context.Background())
	require.NoError(t, err)
	assert.Len(t, parks, 3)
	assert.Equal(t, "waittimes-app-mock", parks[0].Source)
}

func TestWaitTimesAppGetWaitTimes_LiveModeDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/parks/toverland/wait-times", r.URL.Path)
		_, _ = w.Write([]byte(`{"attractions": [
			{"id": "fenix", "name": "Fenix", "wait_time": 25},
			{"id": "troy", "name": "Troy", "wait_time": null, "is_open": false, "area": "Avalon"}
		]}`))
	}))
	defer srv.Close()

	client := NewWaitTimesAppClientWithBaseURL(srv.URL, "secret", testLogger())
	waits, err := client.GetWaitTimes(context.Background(), "toverland")
	require.NoError(t, err)
	require.Len(t, waits.Attractions, 2)

	// Missing is_open defaults to open, missing area to "Main Area".
	fenix := waits.Attractions[0]
	assert.True(t, fenix.IsOpen)
	assert.Equal(t, "OPERATIONAL", fenix.Status)
	assert.Equal(t, "Main Area", fenix.Land)

	troy := waits.Attractions[1]
	assert.False(t, troy.IsOpen)
	assert.Equal(t, "Avalon", troy.Land)
	assert.Zero(t, troy.WaitTime)
}

func TestIsMockPark(t *testing.T) {
	assert.True(t, IsMockPark("efteling"))
	assert.True(t, IsMockPark("phantasialand"))
	assert.False(t, IsMockPark("wdw_magic_kingdom"))
	assert.False(t, IsMockPark(""))
}
