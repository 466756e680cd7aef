package blogs

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/go-travel-planner/internal/api"
)

// Handler serves travel blog insight endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// NewBlogsHandler creates a new blogs handler instance.
func NewBlogsHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Get handles GET /blogs/{destination} with an optional comma-separated
// interests query parameter.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	destination := chi.URLParam(r, "destination")
	ctx, span := otel.Tracer("BlogsHandler").Start(r.Context(), "Get", trace.WithAttributes(
		attribute.String("destination", destination),
	))
	defer span.End()

	data, err := h.service.GetBlogData(ctx, destination, parseInterests(r))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "blog data fetch failed")
		h.logger.ErrorContext(ctx, "failed to assemble blog data",
			slog.String("destination", destination), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to assemble blog data")
		return
	}

	span.SetStatus(codes.Ok, "blog data returned")
	api.WriteJSONResponse(w, r, http.StatusOK, data)
}

// Refresh handles POST /blogs/{destination}/refresh, dropping the cached
// entry before rebuilding.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	destination := chi.URLParam(r, "destination")
	ctx, span := otel.Tracer("BlogsHandler").Start(r.Context(), "Refresh", trace.WithAttributes(
		attribute.String("destination", destination),
	))
	defer span.End()

	data, err := h.service.RefreshBlogData(ctx, destination, parseInterests(r))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "blog data refresh failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to refresh blog data")
		return
	}

	span.SetStatus(codes.Ok, "blog data refreshed")
	api.WriteJSONResponse(w, r, http.StatusOK, data)
}

func parseInterests(r *http.Request) []string {
	raw := r.URL.Query().Get("interests")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	interests := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			interests = append(interests, trimmed)
		}
	}
	return interests
}
