package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/wanderplan/go-travel-planner/internal/api"
	"github.com/wanderplan/go-travel-planner/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
	catalog Catalog
}

func NewItineraryHandler(service Service, catalog Catalog, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		catalog: catalog,
	}
}

// Generate handles POST /itineraries/generate - builds an optimized multi-day plan
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Generate")
	defer span.End()

	l := h.logger.With(slog.String("method", "Generate"))

	var req types.GenerateItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Destination == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "destination is required")
		return
	}

	itinerary, err := h.service.GenerateItinerary(ctx, req)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, types.ErrDestinationNotFound):
			l.WarnContext(ctx, "Destination not found", slog.String("destination", req.Destination))
			span.SetStatus(codes.Error, "Destination not found")
			api.WriteJSONResponse(w, r, http.StatusNotFound, map[string]any{
				"error":              err.Error(),
				"known_destinations": h.catalog.Keys(),
			})
		case errors.Is(err, types.ErrNoMatchingActivities):
			l.WarnContext(ctx, "No matching activities", slog.Any("interests", req.Interests))
			span.SetStatus(codes.Error, "No matching activities")
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		default:
			l.ErrorContext(ctx, "Failed to generate itinerary", slog.Any("error", err))
			span.SetStatus(codes.Error, "Service operation failed")
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate itinerary")
		}
		return
	}

	l.InfoContext(ctx, "Itinerary generated",
		slog.String("destination", itinerary.Destination),
		slog.Int("total_days", itinerary.TotalDays))
	span.SetStatus(codes.Ok, "Itinerary generated")
	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}

// Save handles POST /itineraries - persists a generated itinerary
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Save")
	defer span.End()

	l := h.logger.With(slog.String("method", "Save"))

	var req types.SaveItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Title == "" || req.Destination == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "title and destination are required")
		return
	}

	id, err := h.service.SaveItinerary(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to save itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to save itinerary")
		return
	}

	span.SetStatus(codes.Ok, "Itinerary saved")
	api.WriteJSONResponse(w, r, http.StatusCreated, map[string]any{"id": id})
}

// Get handles GET /itineraries/{itineraryID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Get")
	defer span.End()

	l := h.logger.With(slog.String("method", "Get"))

	id, err := uuid.Parse(chi.URLParam(r, "itineraryID"))
	if err != nil {
		span.SetStatus(codes.Error, "Invalid itinerary ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid itinerary ID")
		return
	}

	saved, err := h.service.GetItinerary(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrSavedItineraryMissing) {
			span.SetStatus(codes.Error, "Itinerary not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "itinerary not found")
			return
		}
		l.ErrorContext(ctx, "Failed to get itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to get itinerary")
		return
	}

	span.SetStatus(codes.Ok, "Itinerary returned")
	api.WriteJSONResponse(w, r, http.StatusOK, saved)
}

// List handles GET /itineraries
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "List")
	defer span.End()

	l := h.logger.With(slog.String("method", "List"))

	saved, err := h.service.GetItineraries(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list itineraries", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list itineraries")
		return
	}

	l.InfoContext(ctx, "Successfully returned itineraries", slog.Int("count", len(saved)))
	span.SetStatus(codes.Ok, "Itineraries returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{
		"itineraries": saved,
		"count":       len(saved),
	})
}

// Delete handles DELETE /itineraries/{itineraryID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Delete")
	defer span.End()

	l := h.logger.With(slog.String("method", "Delete"))

	id, err := uuid.Parse(chi.URLParam(r, "itineraryID"))
	if err != nil {
		span.SetStatus(codes.Error, "Invalid itinerary ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid itinerary ID")
		return
	}

	if err := h.service.DeleteItinerary(ctx, id); err != nil {
		if errors.Is(err, types.ErrSavedItineraryMissing) {
			api.ErrorResponse(w, r, http.StatusNotFound, "itinerary not found")
			return
		}
		l.ErrorContext(ctx, "Failed to delete itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete itinerary")
		return
	}

	span.SetStatus(codes.Ok, "Itinerary deleted")
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
