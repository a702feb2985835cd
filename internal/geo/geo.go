// Package geo provides great-circle distance calculations between
// geographic coordinates. Everything here is pure: no I/O, no shared state.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6_371_000.0

// ErrInvalidCoordinate is returned when a latitude or longitude falls outside
// its valid range. Callers should map this to a client error.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinates is a point on the Earth's surface in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Validate reports whether c lies within latitude [-90, 90] and
// longitude [-180, 180]. NaN is rejected for both.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

// Distance returns the great-circle distance between a and b in metres using
// the haversine formula.
//
// No range validation is performed; out-of-range input produces whatever the
// formula yields. Use CheckedDistance at trust boundaries.
func Distance(a, b Coordinates) float64 {
	phi1 := toRadians(a.Latitude)
	phi2 := toRadians(b.Latitude)
	dPhi := toRadians(b.Latitude - a.Latitude)
	dLambda := toRadians(b.Longitude - a.Longitude)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// Rounding can push h a hair outside [0, 1] for identical or antipodal points.
	h = math.Max(0, math.Min(1, h))

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// CheckedDistance validates both points before computing Distance.
func CheckedDistance(a, b Coordinates) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("geo.CheckedDistance: from: %w", err)
	}
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("geo.CheckedDistance: to: %w", err)
	}
	return Distance(a, b), nil
}

// RouteLength returns the straight-line length of the polyline through points,
// in metres. Fewer than two points yield 0.
func RouteLength(points ...Coordinates) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
