package themeparks

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/go-travel-planner/internal/api"
	"github.com/wanderplan/go-travel-planner/internal/types"
)

// Handler serves theme park wait time and crowd endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// NewThemeParksHandler creates a new theme parks handler instance.
func NewThemeParksHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// List handles GET /theme-parks.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ThemeParksHandler").Start(r.Context(), "List")
	defer span.End()

	parks, err := h.service.ListParks(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing parks failed")
		h.logger.ErrorContext(ctx, "failed to list parks", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "theme park providers unavailable")
		return
	}

	span.SetStatus(codes.Ok, "parks listed")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"parks": parks,
		"count": len(parks),
	})
}

// Get handles GET /theme-parks/{parkID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ThemeParksHandler").Start(r.Context(), "Get", trace.WithAttributes(
		attribute.String("park_id", chi.URLParam(r, "parkID")),
	))
	defer span.End()

	park, err := h.service.GetPark(ctx, chi.URLParam(r, "parkID"))
	if err != nil {
		if errors.Is(err, types.ErrParkNotFound) {
			span.SetStatus(codes.Error, "park not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "theme park not found")
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "park lookup failed")
		api.ErrorResponse(w, r, http.StatusBadGateway, "theme park providers unavailable")
		return
	}

	span.SetStatus(codes.Ok, "park returned")
	api.WriteJSONResponse(w, r, http.StatusOK, park)
}

// WaitTimes handles GET /theme-parks/{parkID}/wait-times.
func (h *Handler) WaitTimes(w http.ResponseWriter, r *http.Request) {
	parkID := chi.URLParam(r, "parkID")
	ctx, span := otel.Tracer("ThemeParksHandler").Start(r.Context(), "WaitTimes", trace.WithAttributes(
		attribute.String("park_id", parkID),
	))
	defer span.End()

	waits, err := h.service.GetWaitTimes(ctx, parkID)
	if err != nil {
		h.respondUpstreamError(ctx, w, r, span, err, parkID)
		return
	}

	span.SetStatus(codes.Ok, "wait times returned")
	api.WriteJSONResponse(w, r, http.StatusOK, waits)
}

// CrowdPrediction handles GET /theme-parks/{parkID}/crowd-prediction with an
// optional date query parameter (YYYY-MM-DD, defaults to today).
func (h *Handler) CrowdPrediction(w http.ResponseWriter, r *http.Request) {
	parkID := chi.URLParam(r, "parkID")
	ctx, span := otel.Tracer("ThemeParksHandler").Start(r.Context(), "CrowdPrediction", trace.WithAttributes(
		attribute.String("park_id", parkID),
	))
	defer span.End()

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			span.SetStatus(codes.Error, "invalid date")
			api.ErrorResponse(w, r, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}
		date = parsed
	}

	prediction, err := h.service.GetCrowdPrediction(ctx, parkID, date)
	if err != nil {
		h.respondUpstreamError(ctx, w, r, span, err, parkID)
		return
	}

	span.SetStatus(codes.Ok, "prediction returned")
	api.WriteJSONResponse(w, r, http.StatusOK, prediction)
}

// OptimizePlan handles POST /theme-parks/{parkID}/plan. The body selects
// attraction IDs plus a visit date; arrival_time defaults to 08:00.
func (h *Handler) OptimizePlan(w http.ResponseWriter, r *http.Request) {
	parkID := chi.URLParam(r, "parkID")
	ctx, span := otel.Tracer("ThemeParksHandler").Start(r.Context(), "OptimizePlan", trace.WithAttributes(
		attribute.String("park_id", parkID),
	))
	defer span.End()

	var req types.ParkPlanRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.SelectedAttractions) == 0 {
		api.ErrorResponse(w, r, http.StatusBadRequest, "at least one attraction must be selected")
		return
	}

	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		span.SetStatus(codes.Error, "invalid date")
		api.ErrorResponse(w, r, http.StatusBadRequest, "visit_date must be formatted YYYY-MM-DD")
		return
	}

	arrivalRaw := req.ArrivalTime
	if arrivalRaw == "" {
		arrivalRaw = "08:00"
	}
	arrival, err := time.Parse("15:04", arrivalRaw)
	if err != nil {
		span.SetStatus(codes.Error, "invalid arrival time")
		api.ErrorResponse(w, r, http.StatusBadRequest, "arrival_time must be formatted HH:MM")
		return
	}

	plan, err := h.service.OptimizePlan(ctx, parkID, req.SelectedAttractions, visitDate, arrival)
	if err != nil {
		if errors.Is(err, types.ErrNoPlannableAttractions) {
			span.SetStatus(codes.Error, "nothing plannable")
			api.ErrorResponse(w, r, http.StatusBadRequest, "selected attractions are closed or unknown")
			return
		}
		h.respondUpstreamError(ctx, w, r, span, err, parkID)
		return
	}

	span.SetStatus(codes.Ok, "plan returned")
	api.WriteJSONResponse(w, r, http.StatusOK, plan)
}

func (h *Handler) respondUpstreamError(ctx context.Context, w http.ResponseWriter, r *http.Request, span trace.Span, err error, parkID string) {
	if errors.Is(err, types.ErrParkNotFound) {
		span.SetStatus(codes.Error, "park not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "theme park not found")
		return
	}
	var upstream *types.UpstreamError
	if errors.As(err, &upstream) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream failure")
		h.logger.ErrorContext(ctx, "upstream provider failure",
			slog.String("park_id", parkID),
			slog.String("source", upstream.Source),
			slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "wait time provider unavailable")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, "wait time fetch failed")
	api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch wait times")
}
