package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/wanderplan/go-travel-planner/app/observability/metrics"
	"github.com/wanderplan/go-travel-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// DefaultMaxDailyHours is the per-day hour budget when the caller supplies none.
const DefaultMaxDailyHours = 8

// Catalog is the destination lookup the planner consumes. Implemented by the
// destinations package; injected so the planner stays decoupled from the
// static data tables.
type Catalog interface {
	Resolve(query string) (*types.Destination, bool)
	Keys() []string
}

// Service defines the business logic contract for itinerary operations.
type Service interface {
	GenerateItinerary(ctx context.Context, req types.GenerateItineraryRequest) (*types.Itinerary, error)
	SaveItinerary(ctx context.Context, req types.SaveItineraryRequest) (uuid.UUID, error)
	GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error)
	GetItineraries(ctx context.Context) ([]types.SavedItinerary, error)
	DeleteItinerary(ctx context.Context, id uuid.UUID) error
}

type ServiceImpl struct {
	logger        *slog.Logger
	catalog       Catalog
	repository    Repository
	maxDailyHours float64
}

// NewServiceImpl creates a planner. maxDailyHours is the per-day hour budget
// applied when a request does not carry its own; zero or negative falls back
// to DefaultMaxDailyHours.
func NewServiceImpl(catalog Catalog, repository Repository, maxDailyHours float64, logger *slog.Logger) *ServiceImpl {
	if maxDailyHours <= 0 {
		maxDailyHours = DefaultMaxDailyHours
	}
	return &ServiceImpl{
		logger:        logger,
		catalog:       catalog,
		repository:    repository,
		maxDailyHours: maxDailyHours,
	}
}

// GenerateItinerary looks up the destination, filters its activities by the
// requested interests, and assembles an optimized multi-day plan. The result
// is built fresh per request and is not persisted unless the caller saves it.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req types.GenerateItineraryRequest) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary")
	defer span.End()
	span.SetAttributes(attribute.String("destination", req.Destination))

	dest, ok := s.catalog.Resolve(req.Destination)
	if !ok {
		span.SetStatus(codes.Error, "destination not found")
		return nil, fmt.Errorf("%w: %q", types.ErrDestinationNotFound, req.Destination)
	}

	activities := filterActivitiesByInterests(dest, req.Interests)
	if len(activities) == 0 {
		span.SetStatus(codes.Error, "no matching activities")
		return nil, fmt.Errorf("%w: destination %q, interests %v", types.ErrNoMatchingActivities, dest.Name, req.Interests)
	}

	maxDailyHours := req.MaxDailyHours
	if maxDailyHours <= 0 {
		maxDailyHours = s.maxDailyHours
	}

	start := time.Now()
	days, overBudget, unplaced := OptimizeDays(activities, maxDailyHours)
	metrics.Get().OptimizerDurationSeconds.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.Int("activity_count", len(activities))))

	if len(overBudget) > 0 {
		s.logger.WarnContext(ctx, "Activities exceed the daily hour budget and were excluded",
			slog.String("destination", dest.Name),
			slog.Int("count", len(overBudget)),
			slog.Float64("max_daily_hours", maxDailyHours))
	}

	result := s.assemble(dest, req, days, overBudget, unplaced)

	span.SetAttributes(attribute.Int("total_days", result.TotalDays))
	span.SetStatus(codes.Ok, "itinerary generated")
	return result, nil
}

// assemble wraps optimizer output into the response shape: day numbers,
// positional dates, per-day totals and zone statistics, and itinerary-level
// guidance notes. Pure transformation, no side effects.
func (s *ServiceImpl) assemble(dest *types.Destination, req types.GenerateItineraryRequest, days [][]types.Activity, overBudget, unplaced []types.Activity) *types.Itinerary {
	plans := make([]types.DailyPlan, 0, len(days))
	hasDayTrip := false

	for i, day := range days {
		var total float64
		includesDayTrip := false
		for _, a := range day {
			total += estimateDurationHours(a.Duration)
			if a.Type == types.ActivityTypeDayTrip {
				includesDayTrip = true
				hasDayTrip = true
			}
		}

		plan := types.DailyPlan{
			Day:                 i + 1,
			Activities:          day,
			TotalEstimatedHours: total,
			PrimaryZone:         primaryZone(day),
			IncludesDayTrip:     includesDayTrip,
		}
		if i < len(req.Dates) {
			plan.Date = req.Dates[i]
		}
		plans = append(plans, plan)
	}

	notes := []string{
		"Activities are grouped by zone proximity to minimize travel time between stops.",
	}
	if hasDayTrip {
		notes = append(notes, "Day trips are scheduled on dedicated days and are never combined with other activities.")
	}
	if len(unplaced) > 0 {
		notes = append(notes, fmt.Sprintf("%d activities without map coordinates were scheduled on the final day(s): %s.",
			len(unplaced), activityNames(unplaced)))
	}
	if len(overBudget) > 0 {
		notes = append(notes, fmt.Sprintf("Excluded because a single visit exceeds the %.0f-hour daily budget: %s. Review their duration data.",
			s.maxHoursOrDefault(req.MaxDailyHours), activityNames(overBudget)))
	}
	if req.NumberOfDays > 0 && len(plans) > req.NumberOfDays {
		notes = append(notes, fmt.Sprintf("The selected activities need %d days; you requested %d.", len(plans), req.NumberOfDays))
	}

	return &types.Itinerary{
		Destination:       dest.Name,
		Interests:         req.Interests,
		TotalDays:         len(plans),
		OptimizedDays:     plans,
		OptimizationNotes: notes,
	}
}

func (s *ServiceImpl) SaveItinerary(ctx context.Context, req types.SaveItineraryRequest) (uuid.UUID, error) {
	id, err := s.repository.SaveItinerary(ctx, req)
	if err != nil {
		s.logger.Error("failed to save itinerary", "error", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (s *ServiceImpl) GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error) {
	saved, err := s.repository.GetItinerary(ctx, id)
	if err != nil {
		s.logger.Error("failed to get itinerary", "error", err)
		return nil, err
	}
	if saved == nil {
		return nil, types.ErrSavedItineraryMissing
	}
	return saved, nil
}

func (s *ServiceImpl) GetItineraries(ctx context.Context) ([]types.SavedItinerary, error) {
	saved, err := s.repository.GetItineraries(ctx)
	if err != nil {
		s.logger.Error("failed to list itineraries", "error", err)
		return nil, err
	}
	return saved, nil
}

func (s *ServiceImpl) DeleteItinerary(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteItinerary(ctx, id); err != nil {
		s.logger.Error("failed to delete itinerary", "error", err)
		return err
	}
	return nil
}

// filterActivitiesByInterests collects catalog activities whose category
// matches any requested interest (case-insensitive substring, as the catalog
// categories are free-form tags).
func filterActivitiesByInterests(dest *types.Destination, interests []string) []types.Activity {
	var out []types.Activity
	for _, group := range sortedGroups(dest) {
		for _, a := range dest.Activities[group] {
			for _, interest := range interests {
				if strings.Contains(strings.ToLower(a.Category), strings.ToLower(interest)) {
					out = append(out, a)
					break
				}
			}
		}
	}
	return out
}

// sortedGroups returns the activity group keys in a stable order so
// generation is deterministic across calls.
func sortedGroups(dest *types.Destination) []string {
	keys := make([]string, 0, len(dest.Activities))
	for k := range dest.Activities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func activityNames(activities []types.Activity) string {
	names := make([]string, len(activities))
	for i, a := range activities {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

func (s *ServiceImpl) maxHoursOrDefault(v float64) float64 {
	if v <= 0 {
		return s.maxDailyHours
	}
	return v
}
