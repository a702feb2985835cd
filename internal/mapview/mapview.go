// Package mapview turns itinerary activities into map layers.
//
// The map itself lives in the client. This package only decides what is on it:
// a marker per activity start, an end marker and straight route line for
// transfers, the user's position, and where the view is centred.
package mapview

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/geo"
)

// Zoom levels used by the client map.
const (
	DefaultZoom = 13
	FocusZoom   = 14
)

// DefaultCenter is where the map opens: Flåm.
var DefaultCenter = geo.Coordinates{Latitude: 60.8638, Longitude: 7.1187}

// Feature kinds, stored in the "kind" property of every feature.
const (
	KindStart = "start"
	KindEnd   = "end"
	KindRoute = "route"
	KindUser  = "user"
)

// Renderer is the capability a map UI exposes to the view layer.
// Render replaces every layer with the given activities and user position
// (nil when unknown). Focus moves the view to loc.
type Renderer interface {
	Render(activities []domain.Activity, user *geo.Coordinates)
	Focus(loc geo.Coordinates)
}

// View is the map viewport.
type View struct {
	Center geo.Coordinates `json:"center"`
	Zoom   int             `json:"zoom"`
}

// Snapshot is the serialisable state of a GeoJSON renderer.
type Snapshot struct {
	View   View                       `json:"view"`
	Layers *geojson.FeatureCollection `json:"layers"`
}

// GeoJSON is a Renderer that keeps its layers as a GeoJSON FeatureCollection.
// It is not safe for concurrent use; create one per request.
type GeoJSON struct {
	layers *geojson.FeatureCollection
	view   View
}

var _ Renderer = (*GeoJSON)(nil)

// NewGeoJSON returns an empty renderer centred on DefaultCenter.
func NewGeoJSON() *GeoJSON {
	return &GeoJSON{
		layers: geojson.NewFeatureCollection(),
		view:   View{Center: DefaultCenter, Zoom: DefaultZoom},
	}
}

// Render discards the previous layers and draws activities and user.
func (g *GeoJSON) Render(activities []domain.Activity, user *geo.Coordinates) {
	fc := geojson.NewFeatureCollection()

	for _, a := range activities {
		start := geojson.NewFeature(point(a.Coords))
		setActivityProps(start, a, KindStart)
		start.Properties["popup"] = "Inicio: " + a.LocationName
		fc.Append(start)

		if !a.HasRoute() {
			continue
		}

		end := geojson.NewFeature(point(*a.EndCoords))
		setActivityProps(end, a, KindEnd)
		end.Properties["popup"] = "Fin: " + a.EndLocationName
		fc.Append(end)

		route := geojson.NewFeature(orb.LineString{point(a.Coords), point(*a.EndCoords)})
		setActivityProps(route, a, KindRoute)
		route.Properties["distance_m"] = geo.RouteLength(a.Coords, *a.EndCoords)
		fc.Append(route)
	}

	if user != nil {
		me := geojson.NewFeature(point(*user))
		me.Properties["kind"] = KindUser
		me.Properties["popup"] = "Estás aquí"
		fc.Append(me)
	}

	g.layers = fc
}

// Focus centres the view on loc at FocusZoom.
func (g *GeoJSON) Focus(loc geo.Coordinates) {
	g.view = View{Center: loc, Zoom: FocusZoom}
}

// Snapshot returns the current view and layers.
func (g *GeoJSON) Snapshot() Snapshot {
	return Snapshot{View: g.view, Layers: g.layers}
}

func setActivityProps(f *geojson.Feature, a domain.Activity, kind string) {
	f.Properties["kind"] = kind
	f.Properties["activity_id"] = a.ID.String()
	f.Properties["title"] = a.Title
	f.Properties["status"] = string(a.Status())
}

// point converts to orb's [lng, lat] order.
func point(c geo.Coordinates) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
