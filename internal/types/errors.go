package types

import (
	"errors"
	"fmt"
)

// Sentinel errors translated into caller-visible responses at the handler layer.
var (
	ErrDestinationNotFound    = errors.New("destination not found")
	ErrNoMatchingActivities   = errors.New("no activities found for the selected interests")
	ErrSavedItineraryMissing  = errors.New("saved itinerary not found")
	ErrParkNotFound           = errors.New("theme park not found")
	ErrNoPlannableAttractions = errors.New("no selected attraction is open")
)

// UpstreamError is returned at the collaborator boundary when a third-party
// call fails. Callers decide whether to serve a fallback payload or propagate
// the error; the services never retry automatically.
type UpstreamError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s returned status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("upstream %s unavailable: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
