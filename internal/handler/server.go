// Package handler implements the HTTP handlers for the trip companion API.
// All handlers are methods on Server. Methods are split into feature files
// (health.go, activity.go, budget.go, ...) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/geo"
	"github.com/pkordes/trip-companion/internal/metrics"
)

// ActivityServicer defines the itinerary operations the activity handlers
// depend on. Defined here, in the consumer package, so handler tests can
// inject a mock without touching the database or service layer.
type ActivityServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
	Timeline(ctx context.Context, user *geo.Coordinates) ([]domain.TimelineEntry, error)
	ToggleComplete(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	Nearest(ctx context.Context, from geo.Coordinates) (domain.Activity, float64, error)
}

// BudgetServicer defines the budget operation the budget handler depends on.
type BudgetServicer interface {
	Summary(ctx context.Context, currency domain.Currency) (domain.BudgetSummary, error)
}

// GuideServicer defines the phrasebook operations the guide handlers depend on.
type GuideServicer interface {
	Phrases(ctx context.Context) ([]domain.Phrase, error)
	Lookup(ctx context.Context, word string) (domain.Phrase, error)
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
// Build it with NewServer and mount Routes() on the application router.
type Server struct {
	activities ActivityServicer
	budget     BudgetServicer
	guide      GuideServicer
	export     ExportServicer
	now        func() time.Time
	metrics    *metrics.Collector
	openapi    []byte
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithClock overrides the clock used by the countdown tool.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithMetrics records toggle counts on c and serves its registry at /metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Server) { s.metrics = c }
}

// WithOpenAPI serves doc at /openapi.yaml.
func WithOpenAPI(doc []byte) Option {
	return func(s *Server) { s.openapi = doc }
}

// NewServer constructs the Server with all its dependencies.
// Any servicer may be nil when a test only exercises the other routes.
func NewServer(activities ActivityServicer, budget BudgetServicer, guide GuideServicer, export ExportServicer, opts ...Option) *Server {
	s := &Server{
		activities: activities,
		budget:     budget,
		guide:      guide,
		export:     export,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Routes returns a chi router with every endpoint registered.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	if s.openapi != nil {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", s.ListActivities)
		r.Get("/nearest", s.GetNearestActivity)
		r.Get("/{id}", s.GetActivity)
		r.Post("/{id}/toggle", s.ToggleActivity)
	})

	r.Get("/budget", s.GetBudget)
	r.Get("/phrases", s.ListPhrases)
	r.Get("/phrases/{word}", s.GetPhrase)
	r.Get("/map", s.GetMap)
	r.Get("/export", s.GetExport)

	r.Route("/tools", func(r chi.Router) {
		r.Get("/duration", s.GetDuration)
		r.Get("/countdown", s.GetCountdown)
		r.Get("/distance", s.GetDistance)
	})

	return r
}
