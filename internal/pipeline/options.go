package pipeline

import (
	"fmt"

	"github.com/couchcryptid/svi-heatmap/internal/domain"
)

// Default initial view: the continental United States.
const (
	DefaultCenterLat = 37.0902
	DefaultCenterLon = -95.7129
	DefaultZoom      = 4
)

const (
	osmTileURL     = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	osmAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`

	mapboxAttribution = `&copy; <a href="https://www.mapbox.com/about/maps/">Mapbox</a> ` + osmAttribution
)

// MapView is the initial canvas state handed to the presentation shell.
type MapView struct {
	CenterLat   float64 `json:"center_lat"`
	CenterLon   float64 `json:"center_lon"`
	Zoom        int     `json:"zoom"`
	TileURL     string  `json:"tile_url"`
	Attribution string  `json:"attribution"`
}

// Options configures what a Dashboard renders.
type Options struct {
	Map     MapView
	Heat    domain.HeatOptions
	Markers domain.MarkerOptions

	// TablePreviewRows caps the rows embedded in the sidebar table; 0 means all.
	TablePreviewRows int
}

// DefaultOptions returns the dashboard's stock look: US-centered OSM basemap,
// radius 15 heat with max zoom 12, clustering off from zoom 10.
func DefaultOptions() Options {
	return Options{
		Map: MapView{
			CenterLat:   DefaultCenterLat,
			CenterLon:   DefaultCenterLon,
			Zoom:        DefaultZoom,
			TileURL:     osmTileURL,
			Attribution: osmAttribution,
		},
		Heat: domain.HeatOptions{
			Radius:  domain.DefaultHeatRadius,
			MaxZoom: domain.DefaultHeatMaxZoom,
		},
		Markers: domain.MarkerOptions{
			DisableClusteringAtZoom: domain.DefaultDisableClusteringAtZoom,
		},
	}
}

// WithMapbox switches the basemap to Mapbox raster tiles for the given style,
// e.g. "mapbox/light-v11". An empty token leaves the OSM basemap in place.
func (o Options) WithMapbox(token, style string) Options {
	if token == "" {
		return o
	}
	o.Map.TileURL = fmt.Sprintf(
		"https://api.mapbox.com/styles/v1/%s/tiles/256/{z}/{x}/{y}@2x?access_token=%s", style, token)
	o.Map.Attribution = mapboxAttribution
	return o
}
