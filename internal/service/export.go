package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/geo"
	"github.com/pkordes/trip-companion/internal/repo"
	"github.com/pkordes/trip-companion/internal/timefmt"
)

// ExportService assembles a flat export of the itinerary.
type ExportService struct {
	activities repo.ActivityRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(activities repo.ActivityRepo) *ExportService {
	return &ExportService{activities: activities}
}

// Export returns one ExportRow per activity in itinerary order.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	acts, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(acts))
	for _, a := range acts {
		dur, err := timefmt.Duration(a.StartTime, a.EndTime)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: activity %s: %w", a.ID, err)
		}
		row := domain.ExportRow{
			ActivityID:      a.ID.String(),
			StartTime:       a.StartTime,
			EndTime:         a.EndTime,
			Duration:        dur,
			Title:           a.Title,
			Type:            string(a.Type),
			LocationName:    a.LocationName,
			EndLocationName: a.EndLocationName,
			PriceEUR:        a.PriceEUR,
			PriceNOK:        a.PriceNOK,
			Completed:       a.Completed,
			Critical:        a.IsCritical(),
		}
		if a.HasRoute() {
			row.RouteMeters = geo.Distance(a.Coords, *a.EndCoords)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
