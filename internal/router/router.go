package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors" // Import CORS middleware if needed

	"github.com/wanderplan/go-travel-planner/internal/api/blogs"
	"github.com/wanderplan/go-travel-planner/internal/api/destinations"
	"github.com/wanderplan/go-travel-planner/internal/api/itinerary"
	"github.com/wanderplan/go-travel-planner/internal/api/themeparks"
)

// Config contains dependencies needed for the router setup
type Config struct {
	DestinationsHandler *destinations.Handler
	ItineraryHandler    *itinerary.Handler
	ThemeParksHandler   *themeparks.Handler
	BlogsHandler        *blogs.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	// Optional: Add CORS middleware if your frontend is on a different origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	// Heartbeat/Health check endpoint
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","timestamp":%q,"message":"WanderPlan API is running"}`,
			time.Now().UTC().Format(time.RFC3339))
	})

	// Group API routes, potentially versioning them
	r.Route("/api/v1", func(r chi.Router) {

		// --- Destination catalog ---
		r.Get("/destinations", cfg.DestinationsHandler.List)
		r.Get("/destinations/{destinationKey}", cfg.DestinationsHandler.Get)
		r.Get("/interests", cfg.DestinationsHandler.Interests)
		r.Get("/safety-guidelines", cfg.DestinationsHandler.SafetyGuidelines)

		// --- Itinerary planning ---
		r.Post("/itinerary/generate", cfg.ItineraryHandler.Generate)
		r.Post("/itineraries", cfg.ItineraryHandler.Save)
		r.Get("/itineraries", cfg.ItineraryHandler.List)
		r.Get("/itineraries/{itineraryID}", cfg.ItineraryHandler.Get)
		r.Delete("/itineraries/{itineraryID}", cfg.ItineraryHandler.Delete)

		// --- Theme parks ---
		r.Get("/theme-parks", cfg.ThemeParksHandler.List)
		r.Get("/theme-parks/{parkID}", cfg.ThemeParksHandler.Get)
		r.Get("/theme-parks/{parkID}/wait-times", cfg.ThemeParksHandler.WaitTimes)
		r.Get("/theme-parks/{parkID}/crowd-prediction", cfg.ThemeParksHandler.CrowdPrediction)
		r.Post("/theme-parks/{parkID}/plan", cfg.ThemeParksHandler.OptimizePlan)

		// --- Travel blog insights ---
		r.Get("/blogs/{destination}", cfg.BlogsHandler.Get)
		r.Post("/blogs/{destination}/refresh", cfg.BlogsHandler.Refresh)
	})

	return r
}
