package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/geo"
	"github.com/pkordes/trip-companion/internal/timefmt"
)

// Error codes returned in ErrorDetail.Code.
const (
	codeNotFound          = "not_found"
	codeValidation        = "validation_error"
	codeInvalidTimeFormat = "invalid_time_format"
	codeInvalidCoordinate = "invalid_coordinate"
	codeInvalidParameter  = "invalid_parameter"
	codeInternal          = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// notFound writes a 404. The caller supplies the message (e.g. "activity not
// found") because the handler is the layer that knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, codeNotFound, message)
}

// badParameter writes a 400 for a path or query parameter that could not be
// bound to its declared type.
func badParameter(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, codeInvalidParameter, err.Error())
}

// validation writes a 422 for a request rejected before reaching the service.
func validation(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, codeValidation, message)
}

// writeServiceError maps an error returned by the service layer or a core
// package to its HTTP status. The more specific core errors are checked before
// ErrValidation because the service wraps both.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFound(w, notFoundMsg)
	case errors.Is(err, timefmt.ErrInvalidTimeFormat):
		writeError(w, http.StatusUnprocessableEntity, codeInvalidTimeFormat, unwrapMessage(err))
	case errors.Is(err, geo.ErrInvalidCoordinate):
		writeError(w, http.StatusUnprocessableEntity, codeInvalidCoordinate, unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, codeValidation, unwrapMessage(err))
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "timefmt.Duration: start: invalid time format: ..." → "start: invalid time format: ..."
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"timefmt.Duration: ",
		"timefmt.CountdownToStart: ",
		"geo.CheckedDistance: ",
		"validation error: ",
	} {
		if rest, ok := strings.CutPrefix(msg, prefix); ok && rest != "" {
			return rest
		}
	}
	return msg
}
