package themeparks

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

func newParkRouter(qt, wta WaitTimesProvider) http.Handler {
	h := NewThemeParksHandler(NewServiceImpl(qt, wta, testLogger()), testLogger())
	r := chi.NewRouter()
	r.Get("/theme-parks", h.List)
	r.Get("/theme-parks/{parkID}", h.Get)
	r.Get("/theme-parks/{parkID}/wait-times", h.WaitTimes)
	r.Get("/theme-parks/{parkID}/crowd-prediction", h.CrowdPrediction)
	r.Post("/theme-parks/{parkID}/plan", h.OptimizePlan)
	return r
}

func parkPost(t *testing.T, router http.Handler, target, payload string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func parkGet(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestListParksEndpoint(t *testing.T) {
	qt := &stubProvider{parks: []types.ThemePark{{ID: "6", Name: "Magic Kingdom"}}}
	router := newParkRouter(qt, &stubProvider{})

	rec, body := parkGet(t, router, "/theme-parks")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
}

func TestListParksEndpoint_AllProvidersDown(t *testing.T) {
	down := errors.New("unreachable")
	router := newParkRouter(&stubProvider{parksErr: down}, &stubProvider{parksErr: down})

	rec, _ := parkGet(t, router, "/theme-parks")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetParkEndpoint_NotFound(t *testing.T) {
	router := newParkRouter(&stubProvider{parks: []types.ThemePark{{ID: "6"}}}, &stubProvider{})

	rec, body := parkGet(t, router, "/theme-parks/unknown_park")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "theme park not found", body["error"])
}

func TestWaitTimesEndpoint_UpstreamFailure(t *testing.T) {
	qt := &stubProvider{waitsErr: &types.UpstreamError{
		Source:     "queue-times",
		StatusCode: http.StatusInternalServerError,
		Err:        errors.New("boom"),
	}}
	router := newParkRouter(qt, &stubProvider{})

	rec, body := parkGet(t, router, "/theme-parks/6/wait-times")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "wait time provider unavailable", body["error"])
}

func TestCrowdPredictionEndpoint(t *testing.T) {
	qt := &stubProvider{waits: waitsWithAverage("6", 65, 95, "queue-times")}
	router := newParkRouter(qt, &stubProvider{})

	rec, body := parkGet(t, router, "/theme-parks/6/crowd-prediction?date=2026-10-31")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-10-31", body["date"])
	assert.Equal(t, float64(6), body["crowd_index"])
	assert.Equal(t, "Very Busy", body["crowd_description"])
}

func TestCrowdPredictionEndpoint_BadDate(t *testing.T) {
	router := newParkRouter(&stubProvider{}, &stubProvider{})

	rec, _ := parkGet(t, router, "/theme-parks/6/crowd-prediction?date=Halloween")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptimizePlanEndpoint(t *testing.T) {
	qt := &stubProvider{waits: planWaits()}
	router := newParkRouter(qt, &stubProvider{})

	rec, body := parkPost(t, router, "/theme-parks/6/plan",
		`{"selected_attractions":["101","102"],"visit_date":"2026-10-31"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "2026-10-31", body["visit_date"])
	assert.Equal(t, "08:00", body["arrival_time"])
	assert.Equal(t, float64(2), body["total_attractions"])

	stops, ok := body["plan"].([]interface{})
	require.True(t, ok)
	require.Len(t, stops, 2)
	first := stops[0].(map[string]interface{})
	assert.Equal(t, "08:00 AM", first["recommended_time"])
	attraction := first["attraction"].(map[string]interface{})
	assert.Equal(t, "Haunted Mansion", attraction["name"])
}

func TestOptimizePlanEndpoint_EmptySelection(t *testing.T) {
	router := newParkRouter(&stubProvider{waits: planWaits()}, &stubProvider{})

	rec, body := parkPost(t, router, "/theme-parks/6/plan",
		`{"selected_attractions":[],"visit_date":"2026-10-31"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "at least one attraction must be selected", body["error"])
}

func TestOptimizePlanEndpoint_BadDate(t *testing.T) {
	router := newParkRouter(&stubProvider{waits: planWaits()}, &stubProvider{})

	rec, body := parkPost(t, router, "/theme-parks/6/plan",
		`{"selected_attractions":["101"],"visit_date":"31/10/2026"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "visit_date must be formatted YYYY-MM-DD", body["error"])
}

func TestOptimizePlanEndpoint_AllSelectedClosed(t *testing.T) {
	router := newParkRouter(&stubProvider{waits: planWaits()}, &stubProvider{})

	rec, body := parkPost(t, router, "/theme-parks/6/plan",
		`{"selected_attractions":["103"],"visit_date":"2026-10-31"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "selected attractions are closed or unknown", body["error"])
}
