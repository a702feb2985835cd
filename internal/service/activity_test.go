package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/geo"
	"github.com/pkordes/trip-companion/internal/service"
	"github.com/pkordes/trip-companion/internal/timefmt"
)

// ---- helpers ---------------------------------------------------------------

var (
	flam   = geo.Coordinates{Latitude: 60.8638, Longitude: 7.1187}
	myrdal = geo.Coordinates{Latitude: 60.7353, Longitude: 7.1225}
	aegir  = geo.Coordinates{Latitude: 60.8630, Longitude: 7.1140}
)

// fixedNow returns a clock frozen at 2025-05-14 08:30 UTC.
func fixedNow() time.Time {
	return time.Date(2025, 5, 14, 8, 30, 0, 0, time.UTC)
}

func trainFixture() domain.Activity {
	end := myrdal
	return domain.Activity{
		ID:              uuid.New(),
		Title:           "Tren Flåmsbana",
		Type:            domain.ActivityTransport,
		LocationName:    "Estación de Flåm",
		EndLocationName: "Myrdal",
		StartTime:       "10:00",
		EndTime:         "11:00",
		Coords:          flam,
		EndCoords:       &end,
		PriceEUR:        55,
		PriceNOK:        630,
	}
}

func lunchFixture() domain.Activity {
	return domain.Activity{
		ID:           uuid.New(),
		Title:        "Almuerzo en Ægir Bryggeri",
		Type:         domain.ActivityMeal,
		LocationName: "Ægir Bryggeri",
		StartTime:    "12:30",
		EndTime:      "13:20",
		Coords:       aegir,
		PriceEUR:     30,
		PriceNOK:     350,
	}
}

func newActivityService(r *mockActivityRepo) *service.ActivityService {
	return service.NewActivityService(r, fixedNow)
}

// ---- Create ----------------------------------------------------------------

func TestActivityService_Create_NormalizesTimes(t *testing.T) {
	input := lunchFixture()
	input.StartTime = "7:05"

	var stored domain.Activity
	svc := newActivityService(&mockActivityRepo{
		create: func(_ context.Context, a domain.Activity) (domain.Activity, error) {
			stored = a
			return a, nil
		},
	})

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "07:05", stored.StartTime)
	assert.Equal(t, "13:20", stored.EndTime)
}

func TestActivityService_Create_Validation(t *testing.T) {
	bad := lunchFixture()
	bad.EndCoords = &geo.Coordinates{Latitude: 95}

	tests := []struct {
		name    string
		mutate  func(a *domain.Activity)
		wantErr error
	}{
		{"blank title", func(a *domain.Activity) { a.Title = "  " }, domain.ErrValidation},
		{"unknown type", func(a *domain.Activity) { a.Type = "party" }, domain.ErrValidation},
		{"bad start", func(a *domain.Activity) { a.StartTime = "25:00" }, timefmt.ErrInvalidTimeFormat},
		{"bad end", func(a *domain.Activity) { a.EndTime = "noon" }, timefmt.ErrInvalidTimeFormat},
		{"bad coords", func(a *domain.Activity) { a.Coords.Longitude = 181 }, geo.ErrInvalidCoordinate},
		{"bad end coords", func(a *domain.Activity) { a.EndCoords = bad.EndCoords }, geo.ErrInvalidCoordinate},
		{"negative price", func(a *domain.Activity) { a.PriceNOK = -1 }, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := lunchFixture()
			tt.mutate(&input)
			svc := newActivityService(&mockActivityRepo{})

			_, err := svc.Create(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---- GetByID / List --------------------------------------------------------

func TestActivityService_GetByID_NotFound(t *testing.T) {
	svc := newActivityService(&mockActivityRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_List_ReturnsEmptySlice(t *testing.T) {
	svc := newActivityService(listing())

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Timeline --------------------------------------------------------------

func TestActivityService_Timeline(t *testing.T) {
	train := trainFixture()
	lunch := lunchFixture()
	lunch.Completed = true

	svc := newActivityService(listing(train, lunch))

	entries, err := svc.Timeline(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, train.ID, entries[0].Activity.ID)
	assert.Equal(t, "1h", entries[0].Duration)
	assert.Equal(t, "1h 30m", entries[0].Countdown)
	assert.Equal(t, domain.StatusPending, entries[0].Status)
	require.NotNil(t, entries[0].RouteMeters)
	assert.InDelta(t, geo.Distance(flam, myrdal), *entries[0].RouteMeters, 1e-9)
	assert.Nil(t, entries[0].DistanceMeters)

	assert.Equal(t, "50 min", entries[1].Duration)
	assert.Empty(t, entries[1].Countdown, "completed activities carry no countdown")
	assert.Equal(t, domain.StatusCompleted, entries[1].Status)
	assert.Nil(t, entries[1].RouteMeters)
}

func TestActivityService_Timeline_WithUserLocation(t *testing.T) {
	svc := newActivityService(listing(lunchFixture()))

	entries, err := svc.Timeline(context.Background(), &flam)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].DistanceMeters)
	assert.InDelta(t, geo.Distance(flam, aegir), *entries[0].DistanceMeters, 1e-9)
}

func TestActivityService_Timeline_InvalidUserLocation(t *testing.T) {
	svc := newActivityService(listing(lunchFixture()))

	_, err := svc.Timeline(context.Background(), &geo.Coordinates{Latitude: -100})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestActivityService_Timeline_PassedActivity(t *testing.T) {
	early := lunchFixture()
	early.StartTime, early.EndTime = "07:00", "07:40"

	svc := newActivityService(listing(early))

	entries, err := svc.Timeline(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, timefmt.Finished, entries[0].Countdown)
}

func TestActivityService_Timeline_CorruptStoredTime(t *testing.T) {
	broken := lunchFixture()
	broken.EndTime = "99:99"

	svc := newActivityService(listing(broken))

	_, err := svc.Timeline(context.Background(), nil)

	assert.ErrorIs(t, err, timefmt.ErrInvalidTimeFormat)
}

// ---- ToggleComplete --------------------------------------------------------

func TestActivityService_ToggleComplete(t *testing.T) {
	act := lunchFixture()
	svc := newActivityService(&mockActivityRepo{
		toggleCompleted: func(_ context.Context, id uuid.UUID) (domain.Activity, error) {
			require.Equal(t, act.ID, id)
			act.Completed = !act.Completed
			return act, nil
		},
	})

	got, err := svc.ToggleComplete(context.Background(), act.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	got, err = svc.ToggleComplete(context.Background(), act.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestActivityService_ToggleComplete_NotFound(t *testing.T) {
	svc := newActivityService(&mockActivityRepo{
		toggleCompleted: func(_ context.Context, _ uuid.UUID) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	})

	_, err := svc.ToggleComplete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Nearest ---------------------------------------------------------------

func TestActivityService_Nearest(t *testing.T) {
	train := trainFixture()
	lunch := lunchFixture()
	svc := newActivityService(listing(train, lunch))

	got, dist, err := svc.Nearest(context.Background(), aegir)

	require.NoError(t, err)
	assert.Equal(t, lunch.ID, got.ID)
	assert.Equal(t, 0.0, dist)
}

func TestActivityService_Nearest_Empty(t *testing.T) {
	svc := newActivityService(listing())

	_, _, err := svc.Nearest(context.Background(), flam)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_Nearest_InvalidLocation(t *testing.T) {
	svc := newActivityService(listing(lunchFixture()))

	_, _, err := svc.Nearest(context.Background(), geo.Coordinates{Longitude: 500})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- error propagation -----------------------------------------------------

func TestActivityService_List_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	svc := newActivityService(&mockActivityRepo{
		list: func(_ context.Context) ([]domain.Activity, error) {
			return nil, repoErr
		},
	})

	_, err := svc.Timeline(context.Background(), nil)

	assert.ErrorIs(t, err, repoErr)
}
