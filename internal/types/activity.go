package types

// ActivityType distinguishes in-city activities from day trips. Day trips
// always occupy a full day on their own.
type ActivityType string

const (
	ActivityTypeCity    ActivityType = "city"
	ActivityTypeDayTrip ActivityType = "day_trip"
)

// OptimalTime is a time-of-day hint used as a tie-break when opening a day.
type OptimalTime string

const (
	OptimalMorning   OptimalTime = "morning"
	OptimalAfternoon OptimalTime = "afternoon"
	OptimalEvening   OptimalTime = "evening"
	OptimalFullDay   OptimalTime = "full_day"
	OptimalHalfDay   OptimalTime = "half_day"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Activity is a single schedulable attraction or experience. Coordinates are
// optional; some legacy catalog records carry none, in which case
// proximity-based placement degrades to input order.
type Activity struct {
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Description string       `json:"description,omitempty"`
	Duration    string       `json:"estimated_duration"`
	Type        ActivityType `json:"type"`
	Zone        string       `json:"zone,omitempty"`
	Coordinates *Coordinates `json:"location,omitempty"`
	OptimalTime OptimalTime  `json:"optimal_time,omitempty"`
	Address     string       `json:"address,omitempty"`
	BestTime    string       `json:"best_time,omitempty"`
	SafetyNotes string       `json:"solo_female_notes,omitempty"`
}
