package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-companion/internal/geo"
)

var (
	flam       = geo.Coordinates{Latitude: 60.8638, Longitude: 7.1187}
	stegastein = geo.Coordinates{Latitude: 60.9080, Longitude: 7.2090}
	myrdal     = geo.Coordinates{Latitude: 60.7353, Longitude: 7.1225}
)

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, geo.Distance(flam, flam))

	for _, c := range []geo.Coordinates{
		{Latitude: 0, Longitude: 0},
		{Latitude: 90, Longitude: 180},
		{Latitude: -90, Longitude: -180},
		{Latitude: -33.8688, Longitude: 151.2093},
	} {
		assert.Equal(t, 0.0, geo.Distance(c, c), "distance(%v, %v)", c, c)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]geo.Coordinates{
		{flam, stegastein},
		{flam, myrdal},
		{{Latitude: 51.5074, Longitude: -0.1278}, {Latitude: 40.7128, Longitude: -74.0060}},
		{{Latitude: 0, Longitude: 179.5}, {Latitude: 0, Longitude: -179.5}},
	}
	for _, p := range pairs {
		ab := geo.Distance(p[0], p[1])
		ba := geo.Distance(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-9)
		assert.Greater(t, ab, 0.0)
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// One degree of longitude along the equator is R·π/180.
	equator := geo.Distance(geo.Coordinates{}, geo.Coordinates{Longitude: 1})
	assert.InDelta(t, geo.EarthRadiusMeters*math.Pi/180, equator, 1e-6)

	// Pole to pole is half the circumference.
	poles := geo.Distance(geo.Coordinates{Latitude: 90}, geo.Coordinates{Latitude: -90})
	assert.InDelta(t, geo.EarthRadiusMeters*math.Pi, poles, 1e-6)

	// Flåm to Myrdal is roughly 14.3 km as the crow flies.
	assert.InDelta(t, 14_290, geo.Distance(flam, myrdal), 50)
}

func TestDistance_Antipodal(t *testing.T) {
	d := geo.Distance(geo.Coordinates{Latitude: 0, Longitude: 0}, geo.Coordinates{Latitude: 0, Longitude: 180})
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, geo.EarthRadiusMeters*math.Pi, d, 1e-6)
}

func TestDistance_AcrossAntimeridian(t *testing.T) {
	d := geo.Distance(geo.Coordinates{Latitude: 0, Longitude: 179.5}, geo.Coordinates{Latitude: 0, Longitude: -179.5})
	assert.InDelta(t, geo.EarthRadiusMeters*math.Pi/180, d, 1e-3)
}

// TestDistance_OutOfRangeIsNotValidated documents that the unchecked variant
// returns a finite number for out-of-range input rather than failing.
func TestDistance_OutOfRangeIsNotValidated(t *testing.T) {
	d := geo.Distance(geo.Coordinates{Latitude: 100, Longitude: 0}, geo.Coordinates{Latitude: 80, Longitude: 0})
	assert.False(t, math.IsNaN(d))
	assert.False(t, math.IsInf(d, 0))
	assert.GreaterOrEqual(t, d, 0.0)
}

func TestDistance_Idempotent(t *testing.T) {
	assert.Equal(t, geo.Distance(flam, stegastein), geo.Distance(flam, stegastein))
}

func TestCoordinates_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       geo.Coordinates
		wantErr bool
	}{
		{"origin", geo.Coordinates{}, false},
		{"flam", flam, false},
		{"north pole", geo.Coordinates{Latitude: 90, Longitude: 0}, false},
		{"dateline", geo.Coordinates{Latitude: 0, Longitude: -180}, false},
		{"latitude too high", geo.Coordinates{Latitude: 90.0001}, true},
		{"latitude too low", geo.Coordinates{Latitude: -91}, true},
		{"longitude too high", geo.Coordinates{Longitude: 181}, true},
		{"longitude too low", geo.Coordinates{Longitude: -180.5}, true},
		{"nan latitude", geo.Coordinates{Latitude: math.NaN()}, true},
		{"nan longitude", geo.Coordinates{Longitude: math.NaN()}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckedDistance(t *testing.T) {
	d, err := geo.CheckedDistance(flam, stegastein)
	require.NoError(t, err)
	assert.Equal(t, geo.Distance(flam, stegastein), d)

	_, err = geo.CheckedDistance(geo.Coordinates{Latitude: 95}, flam)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
	assert.ErrorContains(t, err, "from")

	_, err = geo.CheckedDistance(flam, geo.Coordinates{Longitude: 200})
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
	assert.ErrorContains(t, err, "to")
}

func TestRouteLength(t *testing.T) {
	assert.Equal(t, 0.0, geo.RouteLength())
	assert.Equal(t, 0.0, geo.RouteLength(flam))
	assert.Equal(t, geo.Distance(flam, myrdal), geo.RouteLength(flam, myrdal))
	assert.InDelta(t,
		geo.Distance(flam, myrdal)+geo.Distance(myrdal, stegastein),
		geo.RouteLength(flam, myrdal, stegastein),
		1e-9,
	)
}
