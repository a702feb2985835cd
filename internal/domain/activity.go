// Package domain contains the core data types for the trip companion.
// Apart from uuid it only depends on the pure geo package and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-companion/internal/geo"
)

// ActivityType is the category tag of an itinerary activity.
type ActivityType string

const (
	ActivityTransport   ActivityType = "transport"
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityMeal        ActivityType = "meal"
	ActivityLogistics   ActivityType = "logistics"
	ActivityLeisure     ActivityType = "leisure"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTransport, ActivitySightseeing, ActivityMeal, ActivityLogistics, ActivityLeisure:
		return true
	}
	return false
}

// CriticalNote is the Notes value that marks an activity that must not be missed.
const CriticalNote = "CRITICAL"

// ActivityStatus is the display state of an activity on the timeline.
type ActivityStatus string

const (
	StatusPending   ActivityStatus = "pending"
	StatusCritical  ActivityStatus = "critical"
	StatusCompleted ActivityStatus = "completed"
)

// Activity is one scheduled item of the trip itinerary.
// StartTime and EndTime are "HH:MM" wall-clock strings in the trip timezone.
// EndCoords is nil unless the activity moves between two places (a transfer).
// Completed is the only field mutated after seeding.
type Activity struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	KeyDetails      string           `json:"key_details,omitempty"`
	Type            ActivityType     `json:"type"`
	LocationName    string           `json:"location_name"`
	EndLocationName string           `json:"end_location_name,omitempty"`
	StartTime       string           `json:"start_time"`
	EndTime         string           `json:"end_time"`
	Coords          geo.Coordinates  `json:"coords"`
	EndCoords       *geo.Coordinates `json:"end_coords,omitempty"`
	PriceEUR        float64          `json:"price_eur"`
	PriceNOK        float64          `json:"price_nok"`
	Completed       bool             `json:"completed"`
	Notes           string           `json:"notes,omitempty"`
	Position        int              `json:"position"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// IsCritical reports whether the activity is flagged as must-not-miss.
func (a Activity) IsCritical() bool {
	return a.Notes == CriticalNote
}

// HasRoute reports whether the activity has a destination distinct from its start.
func (a Activity) HasRoute() bool {
	return a.EndCoords != nil
}

// IsPaid reports whether the activity contributes to the budget.
// Free activities have a zero EUR price.
func (a Activity) IsPaid() bool {
	return a.PriceEUR > 0
}

// Status derives the timeline state. Only critical logistics items are
// highlighted; completion always wins.
func (a Activity) Status() ActivityStatus {
	switch {
	case a.Completed:
		return StatusCompleted
	case a.Type == ActivityLogistics && a.IsCritical():
		return StatusCritical
	default:
		return StatusPending
	}
}

// Price returns the activity's price in the given currency.
func (a Activity) Price(c Currency) float64 {
	if c == CurrencyNOK {
		return a.PriceNOK
	}
	return a.PriceEUR
}

// TimelineEntry is an Activity plus the derived strings the timeline shows.
// Countdown is empty for completed activities. DistanceMeters is set only
// when the caller supplied a user location; RouteMeters only for transfers.
type TimelineEntry struct {
	Activity       Activity       `json:"activity"`
	Status         ActivityStatus `json:"status"`
	Duration       string         `json:"duration"`
	Countdown      string         `json:"countdown,omitempty"`
	DistanceMeters *float64       `json:"distance_m,omitempty"`
	RouteMeters    *float64       `json:"route_m,omitempty"`
}
