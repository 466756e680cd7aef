package blogs

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

// Ensure implementation satisfies the interface at compile time
var _ Service = (*ServiceImpl)(nil)

const blogCacheTTL = 24 * time.Hour

// Service defines travel blog insight operations.
type Service interface {
	GetBlogData(ctx context.Context, destination string, interests []string) (*types.BlogData, error)
	RefreshBlogData(ctx context.Context, destination string, interests []string) (*types.BlogData, error)
}

// ServiceImpl aggregates travel blog content for a destination, caching
// results for a day since blog content changes slowly.
type ServiceImpl struct {
	logger  *slog.Logger
	fetcher Fetcher
	cache   *cache.Cache
}

// NewServiceImpl creates a new blog service instance.
func NewServiceImpl(fetcher Fetcher, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		fetcher: fetcher,
		cache:   cache.New(blogCacheTTL, time.Hour),
	}
}

// GetBlogData returns extracted blog insights for a destination, serving a
// generic fallback payload when no source is reachable.
func (s *ServiceImpl) GetBlogData(ctx context.Context, destination string, interests []string) (*types.BlogData, error) {
	ctx, span := otel.Tracer("BlogService").Start(ctx, "GetBlogData", trace.WithAttributes(
		attribute.String("destination", destination),
	))
	defer span.End()

	key := cacheKey(destination, interests)
	if cached, found := s.cache.Get(key); found {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		span.SetStatus(codes.Ok, "served from cache")
		return cached.(*types.BlogData), nil
	}

	data := s.build(ctx, destination, interests)
	if !data.Fallback {
		s.cache.Set(key, data, blogCacheTTL)
	}

	span.SetAttributes(
		attribute.Int("activity_count", len(data.Activities)),
		attribute.Bool("fallback", data.Fallback),
	)
	span.SetStatus(codes.Ok, "blog data assembled")
	return data, nil
}

// RefreshBlogData drops the cached entry and rebuilds it.
func (s *ServiceImpl) RefreshBlogData(ctx context.Context, destination string, interests []string) (*types.BlogData, error) {
	s.cache.Delete(cacheKey(destination, interests))
	return s.GetBlogData(ctx, destination, interests)
}

func (s *ServiceImpl) build(ctx context.Context, destination string, interests []string) *types.BlogData {
	data := &types.BlogData{Destination: destination}

	articles, err := s.fetcher.FetchArticles(ctx, destination)
	if err != nil || len(articles) == 0 {
		if err != nil {
			s.logger.WarnContext(ctx, "all blog sources failed, serving fallback",
				slog.String("destination", destination), slog.Any("error", err))
		}
		return fallbackData(destination)
	}

	seenSources := map[string]bool{}
	for _, article := range articles {
		data.Activities = append(data.Activities, extractActivities(article, interests)...)
		data.Tips = append(data.Tips, extractTips(article.Text)...)
		if !seenSources[article.Source] {
			seenSources[article.Source] = true
			data.Sources = append(data.Sources, article.Source)
		}
	}
	sort.Strings(data.Sources)

	if len(data.Activities) == 0 && len(data.Tips) == 0 {
		return fallbackData(destination)
	}

	s.logger.InfoContext(ctx, "assembled blog data",
		slog.String("destination", destination),
		slog.Int("articles", len(articles)),
		slog.Int("activities", len(data.Activities)))
	return data
}

// fallbackData keeps the endpoint useful when scraping yields nothing.
func fallbackData(destination string) *types.BlogData {
	return &types.BlogData{
		Destination: destination,
		Fallback:    true,
		Tips: []string{
			"Check recent traveler reviews before booking tours or activities",
			"Ask accommodation staff for current local recommendations",
			"Book popular attractions in advance during peak season",
		},
	}
}

func cacheKey(destination string, interests []string) string {
	sorted := make([]string, len(interests))
	copy(sorted, interests)
	sort.Strings(sorted)
	return strings.ToLower(destination) + "|" + strings.Join(sorted, "+")
}
