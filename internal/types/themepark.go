package types

// ThemePark is a park entry as returned by the wait-time aggregators.
type ThemePark struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Country     string       `json:"country"`
	Continent   string       `json:"continent,omitempty"`
	Timezone    string       `json:"timezone,omitempty"`
	Company     string       `json:"company,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Source      string       `json:"source"`
}

// ParkAttraction is one ride with its live queue state.
type ParkAttraction struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WaitTime    int    `json:"wait_time"`
	IsOpen      bool   `json:"is_open"`
	Status      string `json:"status"`
	Land        string `json:"land,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
}

// WaitTimeSummary aggregates the live queue state of a park.
type WaitTimeSummary struct {
	TotalAttractions int     `json:"total_attractions"`
	OpenAttractions  int     `json:"open_attractions"`
	AverageWait      float64 `json:"average_wait"`
	MaxWait          int     `json:"max_wait"`
}

// ParkWaitTimes is the processed wait-time payload for one park.
type ParkWaitTimes struct {
	ParkID      string           `json:"park_id"`
	LastUpdated string           `json:"last_updated"`
	Attractions []ParkAttraction `json:"attractions"`
	Summary     WaitTimeSummary  `json:"summary"`
	Source      string           `json:"source"`
}

// ParkPlanRequest selects attractions for a one-day touring plan.
type ParkPlanRequest struct {
	SelectedAttractions []string `json:"selected_attractions"`
	VisitDate           string   `json:"visit_date"`
	ArrivalTime         string   `json:"arrival_time,omitempty"`
}

// PlannedAttraction identifies one ride inside a touring plan stop.
type PlannedAttraction struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Land string `json:"land,omitempty"`
}

// ParkPlanStop is one ordered slot in a touring plan. ProjectedWait scales
// the live wait by the crowd multiplier for the visit date.
type ParkPlanStop struct {
	Order           int               `json:"order"`
	Attraction      PlannedAttraction `json:"attraction"`
	RecommendedTime string            `json:"recommended_time"`
	EstimatedWait   int               `json:"estimated_wait"`
	ProjectedWait   int               `json:"projected_wait"`
	Tips            []string          `json:"tips"`
}

// ParkPlan is an optimized touring order over the selected attractions,
// built from live waits and the derived crowd level.
type ParkPlan struct {
	ParkID             string         `json:"park_id"`
	VisitDate          string         `json:"visit_date"`
	ArrivalTime        string         `json:"arrival_time"`
	CrowdIndex         int            `json:"crowd_level"`
	CrowdDescription   string         `json:"crowd_description"`
	TotalAttractions   int            `json:"total_attractions"`
	EstimatedTotalTime string         `json:"estimated_total_time"`
	Stops              []ParkPlanStop `json:"plan"`
	GeneralTips        []string       `json:"general_tips"`
	Source             string         `json:"data_source"`
}

// CrowdPrediction is a crowd level derived from live average waits. The
// Queue Times API carries no explicit crowd data.
type CrowdPrediction struct {
	ParkID         string   `json:"park_id"`
	Date           string   `json:"date"`
	CrowdIndex     int      `json:"crowd_index"`
	Description    string   `json:"crowd_description"`
	Confidence     float64  `json:"prediction_confidence"`
	PeakTimes      []string `json:"peak_times"`
	BestVisitTimes []string `json:"best_visit_times"`
	WaitMultiplier float64  `json:"estimated_wait_multiplier"`
	AverageWait    float64  `json:"average_wait"`
	MaxWait        int      `json:"max_wait"`
	Source         string   `json:"source"`
}
