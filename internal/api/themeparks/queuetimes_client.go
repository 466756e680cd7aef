package themeparks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

const queueTimesBaseURL = "https://queue-times.com"

// Cache windows: park listings change rarely, queue data every few minutes.
const (
	parksCacheTTL = 4 * time.Hour
	waitsCacheTTL = 5 * time.Minute
)

// queueTimesParksResponse mirrors /parks.json: companies wrapping parks.
type queueTimesCompany struct {
	Name  string `json:"name"`
	Parks []struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Country   string `json:"country"`
		Continent string `json:"continent"`
		Timezone  string `json:"timezone"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"parks"`
}

// queueTimesWaitResponse mirrors /parks/{id}/queue_times.json: lands wrapping rides.
type queueTimesWaitResponse struct {
	Lands []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Rides []queueTimesRide `json:"rides"`
	} `json:"lands"`
	Rides []queueTimesRide `json:"rides"`
}

type queueTimesRide struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	IsOpen      bool   `json:"is_open"`
	WaitTime    *int   `json:"wait_time"`
	LastUpdated string `json:"last_updated"`
}

// parkIDAliases maps well-known slugs to Queue Times numeric park IDs.
var parkIDAliases = map[string]string{
	"wdw_magic_kingdom":         "6",
	"wdw_epcot":                 "8",
	"wdw_hollywood_studios":     "7",
	"wdw_animal_kingdom":        "9",
	"universal_studios_orlando": "3",
	"islands_of_adventure":      "4",
	"disneyland_california":     "1",
	"california_adventure":      "2",
}

// QueueTimesClient fetches live park and queue data from queue-times.com.
type QueueTimesClient struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
	cache   *cache.Cache
}

// NewQueueTimesClient creates a client with a 30 second request timeout.
func NewQueueTimesClient(logger *slog.Logger) *QueueTimesClient {
	return &QueueTimesClient{
		logger:  logger,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: queueTimesBaseURL,
		cache:   cache.New(parksCacheTTL, 10*time.Minute),
	}
}

// NewQueueTimesClientWithBaseURL is used by tests pointing at a local server.
func NewQueueTimesClientWithBaseURL(baseURL string, logger *slog.Logger) *QueueTimesClient {
	c := NewQueueTimesClient(logger)
	c.baseURL = baseURL
	return c
}

func (c *QueueTimesClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &types.UpstreamError{Source: "queue-times", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &types.UpstreamError{
			Source:     "queue-times",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &types.UpstreamError{Source: "queue-times", Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// GetParks returns the flattened list of all parks across companies.
func (c *QueueTimesClient) GetParks(ctx context.Context) ([]types.ThemePark, error) {
	const cacheKey = "queue_times_parks_list"
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.([]types.ThemePark), nil
	}

	var companies []queueTimesCompany
	if err := c.getJSON(ctx, c.baseURL+"/parks.json", &companies); err != nil {
		return nil, err
	}

	var parks []types.ThemePark
	for _, company := range companies {
		for _, p := range company.Parks {
			park := types.ThemePark{
				ID:        strconv.Itoa(p.ID),
				Name:      p.Name,
				Country:   p.Country,
				Continent: p.Continent,
				Timezone:  p.Timezone,
				Company:   company.Name,
				Source:    "queue-times",
			}
			if lat, err1 := strconv.ParseFloat(p.Latitude, 64); err1 == nil {
				if lng, err2 := strconv.ParseFloat(p.Longitude, 64); err2 == nil {
					park.Coordinates = &types.Coordinates{Latitude: lat, Longitude: lng}
				}
			}
			parks = append(parks, park)
		}
	}

	c.cache.Set(cacheKey, parks, parksCacheTTL)
	c.logger.InfoContext(ctx, "fetched parks from queue-times", slog.Int("count", len(parks)))
	return parks, nil
}

// ResolveParkID maps a friendly slug to the upstream numeric ID, passing
// through IDs it does not recognize.
func ResolveParkID(parkID string) string {
	if mapped, ok := parkIDAliases[parkID]; ok {
		return mapped
	}
	return parkID
}

// GetWaitTimes returns the processed live queue state for one park.
func (c *QueueTimesClient) GetWaitTimes(ctx context.Context, parkID string) (*types.ParkWaitTimes, error) {
	qtID := ResolveParkID(parkID)
	cacheKey := "queue_times_wait_" + qtID
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.(*types.ParkWaitTimes), nil
	}

	var payload queueTimesWaitResponse
	url := fmt.Sprintf("%s/parks/%s/queue_times.json", c.baseURL, qtID)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	result := &types.ParkWaitTimes{
		ParkID:      parkID,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Source:      "queue-times",
	}

	appendRide := func(land string, ride queueTimesRide) {
		wait := 0
		if ride.WaitTime != nil {
			wait = *ride.WaitTime
		}
		status := "CLOSED"
		if ride.IsOpen {
			status = "OPERATIONAL"
		}
		result.Attractions = append(result.Attractions, types.ParkAttraction{
			ID:          strconv.Itoa(ride.ID),
			Name:        ride.Name,
			WaitTime:    wait,
			IsOpen:      ride.IsOpen,
			Status:      status,
			Land:        land,
			LastUpdated: ride.LastUpdated,
		})
	}

	for _, land := range payload.Lands {
		for _, ride := range land.Rides {
			appendRide(land.Name, ride)
		}
	}
	// Some parks report rides at the top level without lands.
	for _, ride := range payload.Rides {
		appendRide("", ride)
	}

	result.Summary = summarize(result.Attractions)

	c.cache.Set(cacheKey, result, waitsCacheTTL)
	c.logger.InfoContext(ctx, "fetched wait times from queue-times",
		slog.String("park_id", parkID),
		slog.Int("attractions", result.Summary.TotalAttractions))
	return result, nil
}

// summarize computes aggregate queue stats over open attractions with a
// positive wait.
func summarize(attractions []types.ParkAttraction) types.WaitTimeSummary {
	summary := types.WaitTimeSummary{TotalAttractions: len(attractions)}
	totalWait, waitCount := 0, 0
	for _, a := range attractions {
		if !a.IsOpen {
			continue
		}
		summary.OpenAttractions++
		if a.WaitTime > 0 {
			totalWait += a.WaitTime
			waitCount++
			if a.WaitTime > summary.MaxWait {
				summary.MaxWait = a.WaitTime
			}
		}
	}
	if waitCount > 0 {
		summary.AverageWait = math.Round(float64(totalWait)/float64(waitCount)*10) / 10
	}
	return summary
}
