// Package service contains the business logic for the trip companion.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/geo"
	"github.com/pkordes/trip-companion/internal/repo"
	"github.com/pkordes/trip-companion/internal/timefmt"
)

// ActivityService implements the itinerary operations: reading the timeline,
// toggling completion, and proximity lookups.
type ActivityService struct {
	repo repo.ActivityRepo
	now  func() time.Time
}

// NewActivityService constructs an ActivityService backed by the provided repo.
// now supplies the current moment in the trip timezone; countdowns are
// computed against it.
func NewActivityService(r repo.ActivityRepo, now func() time.Time) *ActivityService {
	return &ActivityService{repo: r, now: now}
}

// Create validates and persists a new activity. Wall-clock strings are
// normalized to zero-padded "HH:MM" before they reach the repo.
func (s *ActivityService) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	norm, err := validateActivity(act)
	if err != nil {
		return domain.Activity{}, err
	}
	result, err := s.repo.Create(ctx, norm)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity by ID.
func (s *ActivityService) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// List returns the itinerary in order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	acts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.List: %w", err)
	}
	if acts == nil {
		return []domain.Activity{}, nil
	}
	return acts, nil
}

// Timeline returns the itinerary with the derived display values.
// user is optional; when set each entry carries its distance from it.
func (s *ActivityService) Timeline(ctx context.Context, user *geo.Coordinates) ([]domain.TimelineEntry, error) {
	if user != nil {
		if err := user.Validate(); err != nil {
			return nil, fmt.Errorf("%w: user location: %w", domain.ErrValidation, err)
		}
	}

	acts, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Timeline: %w", err)
	}

	now := s.now()
	entries := make([]domain.TimelineEntry, 0, len(acts))
	for _, a := range acts {
		e, err := NewTimelineEntry(a, now, user)
		if err != nil {
			return nil, fmt.Errorf("service.ActivityService.Timeline: activity %s: %w", a.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ToggleComplete flips the completion flag of an activity. It is the only
// mutation the itinerary supports.
func (s *ActivityService) ToggleComplete(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	result, err := s.repo.ToggleCompleted(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.ToggleComplete: %w", err)
	}
	return result, nil
}

// Nearest returns the activity whose start location is closest to from,
// together with the distance in metres.
// Returns domain.ErrNotFound when the itinerary is empty.
func (s *ActivityService) Nearest(ctx context.Context, from geo.Coordinates) (domain.Activity, float64, error) {
	if err := from.Validate(); err != nil {
		return domain.Activity{}, 0, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	acts, err := s.List(ctx)
	if err != nil {
		return domain.Activity{}, 0, fmt.Errorf("service.ActivityService.Nearest: %w", err)
	}
	if len(acts) == 0 {
		return domain.Activity{}, 0, fmt.Errorf("service.ActivityService.Nearest: %w", domain.ErrNotFound)
	}

	best, bestDist := acts[0], math.Inf(1)
	for _, a := range acts {
		if d := geo.Distance(from, a.Coords); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best, bestDist, nil
}

// NewTimelineEntry derives the display values of a for the moment now.
// The countdown is omitted once the activity is completed.
func NewTimelineEntry(a domain.Activity, now time.Time, user *geo.Coordinates) (domain.TimelineEntry, error) {
	dur, err := timefmt.Duration(a.StartTime, a.EndTime)
	if err != nil {
		return domain.TimelineEntry{}, err
	}

	e := domain.TimelineEntry{
		Activity: a,
		Status:   a.Status(),
		Duration: dur,
	}

	if !a.Completed {
		e.Countdown, err = timefmt.CountdownToStart(a.StartTime, now)
		if err != nil {
			return domain.TimelineEntry{}, err
		}
	}
	if user != nil {
		d := geo.Distance(*user, a.Coords)
		e.DistanceMeters = &d
	}
	if a.HasRoute() {
		d := geo.RouteLength(a.Coords, *a.EndCoords)
		e.RouteMeters = &d
	}
	return e, nil
}

// validateActivity enforces the itinerary invariants and returns a copy with
// normalized wall-clock strings.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - Type must be one of the known categories.
//   - StartTime and EndTime must be valid 24-hour "HH:MM" strings.
//   - Coords (and EndCoords, if set) must be in range.
//   - Prices must not be negative.
func validateActivity(a domain.Activity) (domain.Activity, error) {
	if strings.TrimSpace(a.Title) == "" {
		return domain.Activity{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !a.Type.Valid() {
		return domain.Activity{}, fmt.Errorf("%w: unknown activity type %q", domain.ErrValidation, a.Type)
	}

	start, err := timefmt.ParseClock(a.StartTime)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("%w: start_time: %w", domain.ErrValidation, err)
	}
	end, err := timefmt.ParseClock(a.EndTime)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("%w: end_time: %w", domain.ErrValidation, err)
	}
	a.StartTime, a.EndTime = start.String(), end.String()

	if err := a.Coords.Validate(); err != nil {
		return domain.Activity{}, fmt.Errorf("%w: coords: %w", domain.ErrValidation, err)
	}
	if a.EndCoords != nil {
		if err := a.EndCoords.Validate(); err != nil {
			return domain.Activity{}, fmt.Errorf("%w: end_coords: %w", domain.ErrValidation, err)
		}
	}
	if a.PriceEUR < 0 || a.PriceNOK < 0 {
		return domain.Activity{}, fmt.Errorf("%w: prices must not be negative", domain.ErrValidation)
	}
	return a, nil
}
