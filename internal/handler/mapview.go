package handler

import (
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-companion/internal/mapview"
)

// GetMap handles GET /map.
// Optional ?lat=&lng= adds the user marker; optional ?focus={activity id}
// centres the view on that activity's start location.
func (s *Server) GetMap(w http.ResponseWriter, r *http.Request) {
	user, err := optionalLocation(r)
	if errors.Is(err, errHalfLocation) {
		validation(w, err.Error())
		return
	}
	if err != nil {
		badParameter(w, err)
		return
	}
	if user != nil {
		if err := user.Validate(); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
	}

	var focus *openapi_types.UUID
	if err := query(r, "focus", false, &focus); err != nil {
		badParameter(w, err)
		return
	}

	acts, err := s.activities.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	// One renderer per request: layer state never outlives the response.
	m := mapview.NewGeoJSON()
	m.Render(acts, user)

	if focus != nil {
		found := false
		for _, a := range acts {
			if a.ID == *focus {
				m.Focus(a.Coords)
				found = true
				break
			}
		}
		if !found {
			notFound(w, "activity not found")
			return
		}
	}

	writeJSON(w, http.StatusOK, m.Snapshot())
}
