package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/trip-companion/internal/domain"
)

// TimelineResponse is the body of GET /activities.
type TimelineResponse struct {
	Data []domain.TimelineEntry `json:"data"`
}

// NearestResponse is the body of GET /activities/nearest.
type NearestResponse struct {
	Activity       domain.Activity `json:"activity"`
	DistanceMeters float64         `json:"distance_m"`
}

// ListActivities handles GET /activities.
// Optional ?lat=&lng= adds each entry's distance from the user.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	user, err := optionalLocation(r)
	if errors.Is(err, errHalfLocation) {
		validation(w, err.Error())
		return
	}
	if err != nil {
		badParameter(w, err)
		return
	}

	entries, err := s.activities.Timeline(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, TimelineResponse{Data: entries})
}

// GetNearestActivity handles GET /activities/nearest?lat=&lng=.
func (s *Server) GetNearestActivity(w http.ResponseWriter, r *http.Request) {
	from, err := coordinates(r, "lat", "lng")
	if err != nil {
		badParameter(w, err)
		return
	}

	act, dist, err := s.activities.Nearest(r.Context(), from)
	if err != nil {
		writeServiceError(w, r, err, "no activities in the itinerary")
		return
	}
	writeJSON(w, http.StatusOK, NearestResponse{Activity: act, DistanceMeters: dist})
}

// GetActivity handles GET /activities/{id}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badParameter(w, err)
		return
	}

	act, err := s.activities.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, act)
}

// ToggleActivity handles POST /activities/{id}/toggle.
// It flips the completion flag and returns the updated activity.
func (s *Server) ToggleActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badParameter(w, err)
		return
	}

	act, err := s.activities.ToggleComplete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "activity not found")
		return
	}
	if s.metrics != nil {
		s.metrics.ObserveToggle(act.Completed)
	}
	writeJSON(w, http.StatusOK, act)
}
