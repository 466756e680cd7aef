package destinations

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

// Ensure implementation satisfies the interface at compile time
var _ Service = (*ServiceImpl)(nil)

// Service defines read operations over the destination catalog.
type Service interface {
	ListDestinations(ctx context.Context, filter types.DestinationFilter) ([]types.Destination, error)
	GetDestination(ctx context.Context, query string) (*types.Destination, error)
	GetInterests(ctx context.Context) []string
	GetSafetyGuidelines(ctx context.Context) types.SafetyGuidelines
	KnownKeys() []string
}

// ServiceImpl provides destination lookups backed by the static catalog.
type ServiceImpl struct {
	logger  *slog.Logger
	catalog *Catalog
}

// NewServiceImpl creates a new destination service instance.
func NewServiceImpl(catalog *Catalog, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		catalog: catalog,
	}
}

// ListDestinations returns the catalog entries matching the filter.
func (s *ServiceImpl) ListDestinations(ctx context.Context, filter types.DestinationFilter) ([]types.Destination, error) {
	_, span := otel.Tracer("DestinationService").Start(ctx, "ListDestinations", trace.WithAttributes(
		attribute.String("filter.region", filter.Region),
		attribute.Int("filter.min_safety", filter.MinSafetyRating),
		attribute.Bool("filter.hidden_gems", filter.HiddenGemsOnly),
	))
	defer span.End()

	if filter.MinSafetyRating < 0 || filter.MinSafetyRating > 5 {
		err := fmt.Errorf("min_safety must be between 0 and 5, got %d", filter.MinSafetyRating)
		span.SetStatus(codes.Error, "invalid filter")
		return nil, err
	}

	results := s.catalog.Filter(filter)
	span.SetAttributes(attribute.Int("result_count", len(results)))
	span.SetStatus(codes.Ok, "destinations listed")
	return results, nil
}

// GetDestination resolves a free-form destination query against the catalog.
func (s *ServiceImpl) GetDestination(ctx context.Context, query string) (*types.Destination, error) {
	_, span := otel.Tracer("DestinationService").Start(ctx, "GetDestination", trace.WithAttributes(
		attribute.String("query", query),
	))
	defer span.End()

	dest, ok := s.catalog.Resolve(query)
	if !ok {
		span.SetStatus(codes.Error, "destination not found")
		s.logger.DebugContext(ctx, "destination lookup miss", slog.String("query", query))
		return nil, fmt.Errorf("resolving %q: %w", query, types.ErrDestinationNotFound)
	}

	span.SetAttributes(attribute.String("destination.key", dest.Key))
	span.SetStatus(codes.Ok, "destination resolved")
	return dest, nil
}

// GetInterests returns the supported interest tags.
func (s *ServiceImpl) GetInterests(ctx context.Context) []string {
	return s.catalog.Interests()
}

// GetSafetyGuidelines returns static solo female travel safety advice.
func (s *ServiceImpl) GetSafetyGuidelines(ctx context.Context) types.SafetyGuidelines {
	return Guidelines()
}

// KnownKeys returns all catalog keys, used in not-found responses.
func (s *ServiceImpl) KnownKeys() []string {
	return s.catalog.Keys()
}

// ParseFilter builds a DestinationFilter from raw query string values.
func ParseFilter(region, minSafety, hiddenGems, search string) (types.DestinationFilter, error) {
	filter := types.DestinationFilter{
		Region: strings.TrimSpace(region),
		Search: strings.TrimSpace(search),
	}
	if minSafety != "" {
		var n int
		if _, err := fmt.Sscanf(minSafety, "%d", &n); err != nil {
			return filter, fmt.Errorf("invalid min_safety %q", minSafety)
		}
		filter.MinSafetyRating = n
	}
	switch strings.ToLower(hiddenGems) {
	case "", "false", "0":
	case "true", "1":
		filter.HiddenGemsOnly = true
	default:
		return filter, fmt.Errorf("invalid hidden_gems %q", hiddenGems)
	}
	return filter, nil
}
