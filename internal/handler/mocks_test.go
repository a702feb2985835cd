package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/geo"
	"github.com/pkordes/trip-companion/internal/handler"
)

// mockActivityServicer is a test double for handler.ActivityServicer.
// Set only the method fields your test needs.
type mockActivityServicer struct {
	getByID  func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	list     func(ctx context.Context) ([]domain.Activity, error)
	timeline func(ctx context.Context, user *geo.Coordinates) ([]domain.TimelineEntry, error)
	toggle   func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	nearest  func(ctx context.Context, from geo.Coordinates) (domain.Activity, float64, error)
}

func (m *mockActivityServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, id)
}
func (m *mockActivityServicer) List(ctx context.Context) ([]domain.Activity, error) {
	return m.list(ctx)
}
func (m *mockActivityServicer) Timeline(ctx context.Context, user *geo.Coordinates) ([]domain.TimelineEntry, error) {
	return m.timeline(ctx, user)
}
func (m *mockActivityServicer) ToggleComplete(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	return m.toggle(ctx, id)
}
func (m *mockActivityServicer) Nearest(ctx context.Context, from geo.Coordinates) (domain.Activity, float64, error) {
	return m.nearest(ctx, from)
}

type mockBudgetServicer struct {
	summary func(ctx context.Context, currency domain.Currency) (domain.BudgetSummary, error)
}

func (m *mockBudgetServicer) Summary(ctx context.Context, c domain.Currency) (domain.BudgetSummary, error) {
	return m.summary(ctx, c)
}

type mockGuideServicer struct {
	phrases func(ctx context.Context) ([]domain.Phrase, error)
	lookup  func(ctx context.Context, word string) (domain.Phrase, error)
}

func (m *mockGuideServicer) Phrases(ctx context.Context) ([]domain.Phrase, error) {
	return m.phrases(ctx)
}
func (m *mockGuideServicer) Lookup(ctx context.Context, word string) (domain.Phrase, error) {
	return m.lookup(ctx, word)
}

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.ActivityServicer = (*mockActivityServicer)(nil)
	_ handler.BudgetServicer   = (*mockBudgetServicer)(nil)
	_ handler.GuideServicer    = (*mockGuideServicer)(nil)
	_ handler.ExportServicer   = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// do sends a request through the full router, the same way main.go mounts it.
func do(t *testing.T, srv *handler.Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// requireErrorCode asserts the status and the error code of an error response.
func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) handler.ErrorResponse {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	assertJSON(t, rec)
	body := decode[handler.ErrorResponse](t, rec)
	require.Equal(t, code, body.Error.Code)
	return body
}

func assertJSON(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

var flam = geo.Coordinates{Latitude: 60.8638, Longitude: 7.1187}

func activityFixture() domain.Activity {
	end := geo.Coordinates{Latitude: 60.7353, Longitude: 7.1225}
	return domain.Activity{
		ID:              uuid.New(),
		Title:           "Tren de Flåm",
		Type:            domain.ActivityTransport,
		LocationName:    "Flåm Stasjon",
		EndLocationName: "Myrdal",
		StartTime:       "09:35",
		EndTime:         "10:30",
		Coords:          flam,
		EndCoords:       &end,
		PriceEUR:        79,
		PriceNOK:        910,
		Position:        2,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}
