package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/trip-companion/internal/geo"
	"github.com/pkordes/trip-companion/internal/timefmt"
)

// DurationResponse is the body of GET /tools/duration.
type DurationResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
}

// CountdownResponse is the body of GET /tools/countdown.
type CountdownResponse struct {
	Time      string    `json:"time"`
	Now       time.Time `json:"now"`
	Countdown string    `json:"countdown"`
}

// DistanceResponse is the body of GET /tools/distance.
type DistanceResponse struct {
	From           geo.Coordinates `json:"from"`
	To             geo.Coordinates `json:"to"`
	DistanceMeters float64         `json:"distance_m"`
}

// GetDuration handles GET /tools/duration?start=HH:MM&end=HH:MM.
func (s *Server) GetDuration(w http.ResponseWriter, r *http.Request) {
	var start, end string
	if err := query(r, "start", true, &start); err != nil {
		badParameter(w, err)
		return
	}
	if err := query(r, "end", true, &end); err != nil {
		badParameter(w, err)
		return
	}

	d, err := timefmt.Duration(start, end)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, DurationResponse{Start: start, End: end, Duration: d})
}

// GetCountdown handles GET /tools/countdown?time=HH:MM.
// The countdown is measured from the server clock in the trip's timezone.
func (s *Server) GetCountdown(w http.ResponseWriter, r *http.Request) {
	var target string
	if err := query(r, "time", true, &target); err != nil {
		badParameter(w, err)
		return
	}

	now := s.now()
	c, err := timefmt.CountdownToStart(target, now)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, CountdownResponse{Time: target, Now: now, Countdown: c})
}

// GetDistance handles GET /tools/distance?from_lat=&from_lng=&to_lat=&to_lng=.
// Out-of-range coordinates are rejected with invalid_coordinate.
func (s *Server) GetDistance(w http.ResponseWriter, r *http.Request) {
	from, err := coordinates(r, "from_lat", "from_lng")
	if err != nil {
		badParameter(w, err)
		return
	}
	to, err := coordinates(r, "to_lat", "to_lng")
	if err != nil {
		badParameter(w, err)
		return
	}

	d, err := geo.CheckedDistance(from, to)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, DistanceResponse{From: from, To: to, DistanceMeters: d})
}
