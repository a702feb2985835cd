package handler

import (
	"net/http"

	"github.com/pkordes/trip-companion/internal/domain"
)

// GetBudget handles GET /budget?currency=EUR|NOK. EUR is the default.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	var raw *string
	if err := query(r, "currency", false, &raw); err != nil {
		badParameter(w, err)
		return
	}

	var in string
	if raw != nil {
		in = *raw
	}
	currency, err := domain.ParseCurrency(in)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	summary, err := s.budget.Summary(r.Context(), currency)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
