package types

// Destination is one entry of the static destinations catalog, including the
// solo-female safety metadata carried over from the curated database.
type Destination struct {
	Key          string                `json:"key"`
	Name         string                `json:"name"`
	Country      string                `json:"country"`
	Region       string                `json:"region"`
	SafetyRating int                   `json:"solo_female_safety"`
	SafetyNotes  string                `json:"safety_notes"`
	Description  string                `json:"description"`
	HiddenGem    bool                  `json:"hidden_gem"`
	Activities   map[string][]Activity `json:"activities,omitempty"`
}

// DestinationFilter holds the optional predicates applied to the catalog.
// All supplied predicates must hold (logical AND).
type DestinationFilter struct {
	Region          string
	MinSafetyRating int
	HiddenGemsOnly  bool
	Search          string
}

// SafetyGuidelines is the static advice payload for solo female travelers.
type SafetyGuidelines struct {
	GeneralTips        []string `json:"general_tips"`
	AccommodationTips  []string `json:"accommodation_tips"`
	TransportationTips []string `json:"transportation_tips"`
}
