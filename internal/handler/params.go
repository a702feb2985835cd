package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-companion/internal/geo"
)

var errHalfLocation = errors.New("lat and lng must be given together")

// pathID binds the {name} URL parameter as a UUID, the same way the
// generated server wrappers bind path parameters.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// query binds a form-style query parameter into dest. Optional parameters
// take a pointer-to-pointer and are left nil when absent.
func query(r *http.Request, name string, required bool, dest any) error {
	return runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest)
}

// coordinates binds a required latitude/longitude pair.
func coordinates(r *http.Request, latName, lngName string) (geo.Coordinates, error) {
	var c geo.Coordinates
	if err := query(r, latName, true, &c.Latitude); err != nil {
		return geo.Coordinates{}, err
	}
	if err := query(r, lngName, true, &c.Longitude); err != nil {
		return geo.Coordinates{}, err
	}
	return c, nil
}

// optionalLocation binds the optional ?lat=&lng= pair. It returns nil when
// both are absent and errHalfLocation when only one is present.
func optionalLocation(r *http.Request) (*geo.Coordinates, error) {
	var lat, lng *float64
	if err := query(r, "lat", false, &lat); err != nil {
		return nil, err
	}
	if err := query(r, "lng", false, &lng); err != nil {
		return nil, err
	}
	switch {
	case lat == nil && lng == nil:
		return nil, nil
	case lat == nil || lng == nil:
		return nil, errHalfLocation
	}
	return &geo.Coordinates{Latitude: *lat, Longitude: *lng}, nil
}
