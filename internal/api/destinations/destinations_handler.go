package destinations

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/go-travel-planner/internal/api"
	"github.com/wanderplan/go-travel-planner/internal/types"
)

// Handler serves destination catalog endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// NewDestinationsHandler creates a new destinations handler instance.
func NewDestinationsHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// List handles GET /destinations with optional region, min_safety,
// hidden_gems, and q filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationsHandler").Start(r.Context(), "List", trace.WithAttributes(
		semconvAttrs(r)...,
	))
	defer span.End()

	q := r.URL.Query()
	filter, err := ParseFilter(q.Get("region"), q.Get("min_safety"), q.Get("hidden_gems"), q.Get("q"))
	if err != nil {
		span.SetStatus(codes.Error, "invalid filter")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.service.ListDestinations(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing destinations failed")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "destinations listed")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"destinations": results,
		"count":        len(results),
	})
}

// Get handles GET /destinations/{destinationKey} with fuzzy key matching.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationsHandler").Start(r.Context(), "Get", trace.WithAttributes(
		semconvAttrs(r)...,
	))
	defer span.End()

	key := chi.URLParam(r, "destinationKey")
	dest, err := h.service.GetDestination(ctx, key)
	if err != nil {
		if errors.Is(err, types.ErrDestinationNotFound) {
			span.SetStatus(codes.Error, "destination not found")
			api.WriteJSONResponse(w, r, http.StatusNotFound, map[string]interface{}{
				"error":              "destination not found",
				"known_destinations": h.service.KnownKeys(),
			})
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "destination lookup failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to look up destination")
		return
	}

	span.SetStatus(codes.Ok, "destination returned")
	api.WriteJSONResponse(w, r, http.StatusOK, dest)
}

// Interests handles GET /interests.
func (h *Handler) Interests(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationsHandler").Start(r.Context(), "Interests")
	defer span.End()

	span.SetStatus(codes.Ok, "interests returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"available_interests": h.service.GetInterests(ctx),
		"solo_female_notes":   "Special focus on solo female traveler safety and women-friendly activities",
	})
}

// SafetyGuidelines handles GET /safety-guidelines.
func (h *Handler) SafetyGuidelines(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationsHandler").Start(r.Context(), "SafetyGuidelines")
	defer span.End()

	span.SetStatus(codes.Ok, "guidelines returned")
	api.WriteJSONResponse(w, r, http.StatusOK, h.service.GetSafetyGuidelines(ctx))
}

func semconvAttrs(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("http.method", r.Method),
		attribute.String("http.path", r.URL.Path),
	}
}
