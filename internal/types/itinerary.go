package types

import (
	"time"

	"github.com/google/uuid"
)

// DailyPlan is one day of an assembled itinerary. Activities are kept in
// visiting order as chosen by the optimizer.
type DailyPlan struct {
	Day                 int        `json:"day"`
	Date                string     `json:"date,omitempty"`
	Activities          []Activity `json:"activities"`
	TotalEstimatedHours float64    `json:"total_estimated_hours"`
	PrimaryZone         string     `json:"primary_zone,omitempty"`
	IncludesDayTrip     bool       `json:"includes_day_trip"`
}

// Itinerary is the full generation response consumed by the presentation layer.
type Itinerary struct {
	Destination       string      `json:"destination"`
	Interests         []string    `json:"interests"`
	TotalDays         int         `json:"total_days"`
	OptimizedDays     []DailyPlan `json:"optimized_days"`
	OptimizationNotes []string    `json:"optimization_notes"`
}

// GenerateItineraryRequest is the payload for itinerary generation.
type GenerateItineraryRequest struct {
	Destination   string   `json:"destination"`
	Interests     []string `json:"interests"`
	NumberOfDays  int      `json:"number_of_days,omitempty"`
	MaxDailyHours float64  `json:"max_daily_hours,omitempty"`
	Dates         []string `json:"dates,omitempty"`
}

// SavedItinerary matches the saved_itineraries table structure.
type SavedItinerary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	Payload     Itinerary `json:"payload"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaveItineraryRequest is the payload for persisting a generated itinerary.
type SaveItineraryRequest struct {
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	Payload     Itinerary `json:"payload"`
}
