package themeparks

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

// Ensure implementation satisfies the interface at compile time
var _ Service = (*ServiceImpl)(nil)

// WaitTimesProvider is the shape both upstream clients share.
type WaitTimesProvider interface {
	GetParks(ctx context.Context) ([]types.ThemePark, error)
	GetWaitTimes(ctx context.Context, parkID string) (*types.ParkWaitTimes, error)
}

// Service defines theme park wait time and crowd operations.
type Service interface {
	ListParks(ctx context.Context) ([]types.ThemePark, error)
	GetPark(ctx context.Context, parkID string) (*types.ThemePark, error)
	GetWaitTimes(ctx context.Context, parkID string) (*types.ParkWaitTimes, error)
	GetCrowdPrediction(ctx context.Context, parkID string, date time.Time) (*types.CrowdPrediction, error)
	OptimizePlan(ctx context.Context, parkID string, selected []string, visitDate, arrival time.Time) (*types.ParkPlan, error)
}

// ServiceImpl aggregates two wait-time providers: queue-times.com for global
// coverage and Wartezeiten.APP for additional European parks.
type ServiceImpl struct {
	logger       *slog.Logger
	queueTimes   WaitTimesProvider
	waitTimesApp WaitTimesProvider
}

// NewServiceImpl creates a new theme park service instance.
func NewServiceImpl(queueTimes, waitTimesApp WaitTimesProvider, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:       logger,
		queueTimes:   queueTimes,
		waitTimesApp: waitTimesApp,
	}
}

// ListParks fans out to both providers concurrently and merges the results.
// One provider failing does not sink the whole listing as long as the other
// answers.
func (s *ServiceImpl) ListParks(ctx context.Context) ([]types.ThemePark, error) {
	ctx, span := otel.Tracer("ThemeParkService").Start(ctx, "ListParks")
	defer span.End()

	var qtParks, wtaParks []types.ThemePark
	var qtErr, wtaErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		qtParks, qtErr = s.queueTimes.GetParks(gctx)
		return nil
	})
	g.Go(func() error {
		wtaParks, wtaErr = s.waitTimesApp.GetParks(gctx)
		return nil
	})
	_ = g.Wait()

	if qtErr != nil && wtaErr != nil {
		span.SetStatus(codes.Error, "all providers failed")
		return nil, fmt.Errorf("listing parks: %w", qtErr)
	}
	if qtErr != nil {
		s.logger.WarnContext(ctx, "queue-times listing failed, serving partial results", slog.Any("error", qtErr))
	}
	if wtaErr != nil {
		s.logger.WarnContext(ctx, "waittimes-app listing failed, serving partial results", slog.Any("error", wtaErr))
	}

	merged := append(append([]types.ThemePark{}, qtParks...), wtaParks...)
	span.SetAttributes(attribute.Int("park_count", len(merged)))
	span.SetStatus(codes.Ok, "parks listed")
	return merged, nil
}

// GetPark resolves a park ID against the merged provider listings.
func (s *ServiceImpl) GetPark(ctx context.Context, parkID string) (*types.ThemePark, error) {
	ctx, span := otel.Tracer("ThemeParkService").Start(ctx, "GetPark", trace.WithAttributes(
		attribute.String("park_id", parkID),
	))
	defer span.End()

	parks, err := s.ListParks(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "listing failed")
		return nil, err
	}

	resolved := ResolveParkID(parkID)
	for i := range parks {
		if parks[i].ID == parkID || parks[i].ID == resolved {
			span.SetStatus(codes.Ok, "park found")
			return &parks[i], nil
		}
	}

	span.SetStatus(codes.Error, "park not found")
	return nil, fmt.Errorf("park %q: %w", parkID, types.ErrParkNotFound)
}

// GetWaitTimes routes the request to the provider owning the park ID:
// mock-catalog slugs go to WaitTimesApp, everything else to Queue Times.
func (s *ServiceImpl) GetWaitTimes(ctx context.Context, parkID string) (*types.ParkWaitTimes, error) {
	ctx, span := otel.Tracer("ThemeParkService").Start(ctx, "GetWaitTimes", trace.WithAttributes(
		attribute.String("park_id", parkID),
	))
	defer span.End()

	provider := s.queueTimes
	if IsMockPark(parkID) {
		provider = s.waitTimesApp
	}

	waits, err := provider.GetWaitTimes(ctx, parkID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "wait time fetch failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("attractions", waits.Summary.TotalAttractions),
		attribute.Float64("average_wait", waits.Summary.AverageWait),
	)
	span.SetStatus(codes.Ok, "wait times fetched")
	return waits, nil
}

// GetCrowdPrediction derives a crowd level from the park's live average wait.
func (s *ServiceImpl) GetCrowdPrediction(ctx context.Context, parkID string, date time.Time) (*types.CrowdPrediction, error) {
	ctx, span := otel.Tracer("ThemeParkService").Start(ctx, "GetCrowdPrediction", trace.WithAttributes(
		attribute.String("park_id", parkID),
	))
	defer span.End()

	waits, err := s.GetWaitTimes(ctx, parkID)
	if err != nil {
		span.SetStatus(codes.Error, "wait time fetch failed")
		return nil, err
	}

	index, description := crowdLevel(waits.Summary.AverageWait)
	prediction := &types.CrowdPrediction{
		ParkID:         parkID,
		Date:           date.Format("2006-01-02"),
		CrowdIndex:     index,
		Description:    description,
		Confidence:     0.7,
		PeakTimes:      peakTimes(index),
		BestVisitTimes: bestVisitTimes(index),
		WaitMultiplier: waitMultiplier(index),
		AverageWait:    waits.Summary.AverageWait,
		MaxWait:        waits.Summary.MaxWait,
		Source:         "derived_from_" + waits.Source,
	}

	span.SetAttributes(attribute.Int("crowd_index", index))
	span.SetStatus(codes.Ok, "prediction derived")
	return prediction, nil
}

// planSlotMinutes is the spacing between touring plan stops: average wait
// plus ride and walk time.
const planSlotMinutes = 45

// OptimizePlan orders the selected attractions by live wait, shortest first,
// into a timed touring plan. Closed and unknown attraction IDs are dropped;
// ties keep the park's listing order so the plan stays deterministic.
func (s *ServiceImpl) OptimizePlan(ctx context.Context, parkID string, selected []string, visitDate, arrival time.Time) (*types.ParkPlan, error) {
	ctx, span := otel.Tracer("ThemeParkService").Start(ctx, "OptimizePlan", trace.WithAttributes(
		attribute.String("park_id", parkID),
		attribute.Int("selected_count", len(selected)),
	))
	defer span.End()

	waits, err := s.GetWaitTimes(ctx, parkID)
	if err != nil {
		span.SetStatus(codes.Error, "wait time fetch failed")
		return nil, err
	}

	wanted := make(map[string]bool, len(selected))
	for _, id := range selected {
		wanted[id] = true
	}

	stops := make([]types.ParkAttraction, 0, len(selected))
	for _, a := range waits.Attractions {
		if wanted[a.ID] && a.IsOpen {
			stops = append(stops, a)
		}
	}
	if len(stops) == 0 {
		span.SetStatus(codes.Error, "nothing plannable")
		return nil, fmt.Errorf("park %q: %w", parkID, types.ErrNoPlannableAttractions)
	}

	sort.SliceStable(stops, func(i, j int) bool { return stops[i].WaitTime < stops[j].WaitTime })

	index, description := crowdLevel(waits.Summary.AverageWait)
	multiplier := waitMultiplier(index)

	plan := make([]types.ParkPlanStop, 0, len(stops))
	for i, a := range stops {
		slot := arrival.Add(time.Duration(i*planSlotMinutes) * time.Minute)

		var tips []string
		if a.WaitTime > 60 {
			tips = append(tips, "High wait time - consider visiting during off-peak hours")
		}
		if index >= 7 {
			tips = append(tips, "Very crowded day - arrive early for shorter waits")
		}
		if a.Land != "" {
			tips = append(tips, "Located in "+a.Land)
		}

		plan = append(plan, types.ParkPlanStop{
			Order:           i + 1,
			Attraction:      types.PlannedAttraction{ID: a.ID, Name: a.Name, Land: a.Land},
			RecommendedTime: slot.Format("03:04 PM"),
			EstimatedWait:   a.WaitTime,
			ProjectedWait:   int(math.Round(float64(a.WaitTime) * multiplier)),
			Tips:            tips,
		})
	}

	span.SetAttributes(attribute.Int("plan_size", len(plan)), attribute.Int("crowd_index", index))
	span.SetStatus(codes.Ok, "plan built")
	return &types.ParkPlan{
		ParkID:             parkID,
		VisitDate:          visitDate.Format("2006-01-02"),
		ArrivalTime:        arrival.Format("15:04"),
		CrowdIndex:         index,
		CrowdDescription:   description,
		TotalAttractions:   len(plan),
		EstimatedTotalTime: fmt.Sprintf("%d minutes", len(plan)*planSlotMinutes),
		Stops:              plan,
		GeneralTips: []string{
			"Current crowd level: " + description,
			"Best times to visit: " + strings.Join(bestVisitTimes(index), ", "),
			"Avoid peak times: " + strings.Join(peakTimes(index), ", "),
			"Live wait data refreshes roughly every five minutes",
		},
		Source: waits.Source,
	}, nil
}

// crowdLevel maps an average wait in minutes onto the 1-9 crowd scale.
func crowdLevel(avgWait float64) (int, string) {
	switch {
	case avgWait <= 10:
		return 1, "Ghost Town"
	case avgWait <= 20:
		return 2, "Very Light"
	case avgWait <= 30:
		return 3, "Light"
	case avgWait <= 45:
		return 4, "Moderate"
	case avgWait <= 60:
		return 5, "Busy"
	case avgWait <= 75:
		return 6, "Very Busy"
	case avgWait <= 90:
		return 7, "Packed"
	case avgWait <= 120:
		return 8, "Extremely Packed"
	default:
		return 9, "Avoid at All Costs"
	}
}

func peakTimes(index int) []string {
	switch {
	case index <= 3:
		return []string{"No significant peak times"}
	case index <= 5:
		return []string{"12:00 PM - 3:00 PM"}
	default:
		return []string{"11:00 AM - 2:00 PM", "4:00 PM - 7:00 PM"}
	}
}

func bestVisitTimes(index int) []string {
	switch {
	case index <= 3:
		return []string{"Any time is good"}
	case index <= 5:
		return []string{"8:00 AM - 11:00 AM", "6:00 PM - 9:00 PM"}
	default:
		return []string{"8:00 AM - 10:00 AM", "8:00 PM - 10:00 PM"}
	}
}

func waitMultiplier(index int) float64 {
	multipliers := map[int]float64{
		1: 0.3, 2: 0.5, 3: 0.7, 4: 0.9, 5: 1.0,
		6: 1.3, 7: 1.6, 8: 2.0, 9: 2.5,
	}
	if m, ok := multipliers[index]; ok {
		return m
	}
	return 1.0
}
