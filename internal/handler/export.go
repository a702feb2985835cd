package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/trip-companion/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"activity_id", "start_time", "end_time", "duration",
	"title", "type", "location", "end_location",
	"price_eur", "price_nok", "completed", "critical", "route_m",
}

// ExportRow is the JSON shape of one exported activity.
type ExportRow struct {
	ActivityID      string  `json:"activity_id"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Duration        string  `json:"duration"`
	Title           string  `json:"title"`
	Type            string  `json:"type"`
	LocationName    string  `json:"location"`
	EndLocationName *string `json:"end_location,omitempty"`
	PriceEUR        float64 `json:"price_eur"`
	PriceNOK        float64 `json:"price_nok"`
	Completed       bool    `json:"completed"`
	Critical        bool    `json:"critical"`
	RouteMeters     float64 `json:"route_m"`
}

// GetExport handles GET /export.
// It returns the whole itinerary as a flat table.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := query(r, "format", false, &format); err != nil {
		badParameter(w, err)
		return
	}
	if format != nil && *format != "csv" && *format != "json" {
		validation(w, "format must be csv or json")
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	if format != nil && *format == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, buildJSONRows(rows))
}

// buildJSONRows converts domain rows to the JSON response rows.
// Empty optional strings become nil pointers (omitempty in JSON).
func buildJSONRows(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		row := ExportRow{
			ActivityID:   r.ActivityID,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			Duration:     r.Duration,
			Title:        r.Title,
			Type:         r.Type,
			LocationName: r.LocationName,
			PriceEUR:     r.PriceEUR,
			PriceNOK:     r.PriceNOK,
			Completed:    r.Completed,
			Critical:     r.Critical,
			RouteMeters:  r.RouteMeters,
		}
		if r.EndLocationName != "" {
			row.EndLocationName = &r.EndLocationName
		}
		out = append(out, row)
	}
	return out
}

// writeCSV encodes domain rows as CSV with a header row.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// bytes.Buffer.Write never returns an error.
	_ = cw.Write(csvHeaders)
	for _, r := range rows {
		_ = cw.Write(csvRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// csvRecord encodes a domain.ExportRow as a flat string slice.
// Prices and route length drop trailing zeros; route length is whole metres.
func csvRecord(r domain.ExportRow) []string {
	return []string{
		r.ActivityID,
		r.StartTime,
		r.EndTime,
		r.Duration,
		r.Title,
		r.Type,
		r.LocationName,
		r.EndLocationName,
		strconv.FormatFloat(r.PriceEUR, 'f', -1, 64),
		strconv.FormatFloat(r.PriceNOK, 'f', -1, 64),
		strconv.FormatBool(r.Completed),
		strconv.FormatBool(r.Critical),
		strconv.FormatFloat(r.RouteMeters, 'f', 0, 64),
	}
}
