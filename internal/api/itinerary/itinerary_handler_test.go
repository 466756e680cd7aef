package itinerary

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

func newItineraryRouter(catalog Catalog, repo Repository) http.Handler {
	svc := newTestService(catalog, repo)
	h := NewItineraryHandler(svc, catalog, testLogger())
	r := chi.NewRouter()
	r.Post("/itinerary/generate", h.Generate)
	r.Post("/itineraries", h.Save)
	r.Get("/itineraries", h.List)
	r.Get("/itineraries/{itineraryID}", h.Get)
	r.Delete("/itineraries/{itineraryID}", h.Delete)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGenerateEndpoint_ReturnsItinerary(t *testing.T) {
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, new(MockRepository))

	rec := doJSON(t, router, http.MethodPost, "/itinerary/generate", types.GenerateItineraryRequest{
		Destination: "Luang Prabang",
		Interests:   []string{"cultural experiences"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var itinerary types.Itinerary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &itinerary))
	assert.Equal(t, "Luang Prabang, Laos", itinerary.Destination)
	assert.Equal(t, 1, itinerary.TotalDays)
}

func TestGenerateEndpoint_RequiresDestination(t *testing.T) {
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, new(MockRepository))

	rec := doJSON(t, router, http.MethodPost, "/itinerary/generate", types.GenerateItineraryRequest{
		Interests: []string{"museums"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateEndpoint_UnknownDestinationListsKnownKeys(t *testing.T) {
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, new(MockRepository))

	rec := doJSON(t, router, http.MethodPost, "/itinerary/generate", types.GenerateItineraryRequest{
		Destination: "atlantis",
		Interests:   []string{"museums"},
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []interface{}{"luang_prabang"}, body["known_destinations"])
}

func TestGenerateEndpoint_NoMatchingInterests(t *testing.T) {
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, new(MockRepository))

	rec := doJSON(t, router, http.MethodPost, "/itinerary/generate", types.GenerateItineraryRequest{
		Destination: "luang_prabang",
		Interests:   []string{"theme parks"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateEndpoint_RejectsMalformedBody(t *testing.T) {
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, new(MockRepository))

	req := httptest.NewRequest(http.MethodPost, "/itinerary/generate", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveEndpoint_PersistsAndReturnsID(t *testing.T) {
	repo := new(MockRepository)
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, repo)

	id := uuid.New()
	repo.On("SaveItinerary", mock.Anything, mock.Anything).Return(id, nil)

	rec := doJSON(t, router, http.MethodPost, "/itineraries", types.SaveItineraryRequest{
		Title:       "Laos escape",
		Destination: "Luang Prabang, Laos",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body["id"])
	repo.AssertExpectations(t)
}

func TestSaveEndpoint_RequiresTitleAndDestination(t *testing.T) {
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, new(MockRepository))

	rec := doJSON(t, router, http.MethodPost, "/itineraries", types.SaveItineraryRequest{
		Title: "Missing destination",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEndpoint_InvalidID(t *testing.T) {
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, new(MockRepository))

	req := httptest.NewRequest(http.MethodGet, "/itineraries/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEndpoint_NotFound(t *testing.T) {
	repo := new(MockRepository)
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, repo)

	id := uuid.New()
	repo.On("GetItinerary", mock.Anything, id).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/itineraries/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEndpoint_ReturnsCount(t *testing.T) {
	repo := new(MockRepository)
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, repo)

	repo.On("GetItineraries", mock.Anything).Return([]types.SavedItinerary{
		{ID: uuid.New(), Title: "One"},
		{ID: uuid.New(), Title: "Two"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/itineraries", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["count"])
}

func TestDeleteEndpoint(t *testing.T) {
	repo := new(MockRepository)
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, repo)

	id := uuid.New()
	repo.On("DeleteItinerary", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/itineraries/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	repo.AssertExpectations(t)
}

func TestDeleteEndpoint_NotFound(t *testing.T) {
	repo := new(MockRepository)
	router := newItineraryRouter(&stubCatalog{dest: testDestination()}, repo)

	id := uuid.New()
	repo.On("DeleteItinerary", mock.Anything, id).Return(types.ErrSavedItineraryMissing)

	req := httptest.NewRequest(http.MethodDelete, "/itineraries/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
