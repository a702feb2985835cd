package domain

// ExportRow is a single row in the itinerary export.
// It is a flat view of one activity with its derived duration and route
// length. RouteMeters is zero for activities without a destination.
type ExportRow struct {
	ActivityID      string
	StartTime       string
	EndTime         string
	Duration        string
	Title           string
	Type            string
	LocationName    string
	EndLocationName string
	PriceEUR        float64
	PriceNOK        float64
	Completed       bool
	Critical        bool
	RouteMeters     float64
}
