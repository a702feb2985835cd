package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-companion/internal/domain"
)

// PhraseListResponse is the body of GET /phrases.
type PhraseListResponse struct {
	Data []domain.Phrase `json:"data"`
}

// ListPhrases handles GET /phrases.
func (s *Server) ListPhrases(w http.ResponseWriter, r *http.Request) {
	phrases, err := s.guide.Phrases(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, PhraseListResponse{Data: phrases})
}

// GetPhrase handles GET /phrases/{word}.
func (s *Server) GetPhrase(w http.ResponseWriter, r *http.Request) {
	p, err := s.guide.Lookup(r.Context(), chi.URLParam(r, "word"))
	if err != nil {
		writeServiceError(w, r, err, "phrase not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
