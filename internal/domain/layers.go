package domain

import (
	"encoding/json"
	"math"

	"github.com/golang/geo/s2"
)

// Default layer tuning.
const (
	DefaultHeatRadius              = 15
	DefaultHeatMaxZoom             = 12
	DefaultDisableClusteringAtZoom = 10
)

// Overlay group names shown in the layer control.
const (
	HeatLayerName   = "Heatmap Layer"
	MarkerLayerName = "Marker Layer"
)

// HeatPoint is one weighted point of the heat overlay.
type HeatPoint struct {
	Lat    float64
	Lon    float64
	Weight float64
}

// MarshalJSON encodes the point as a [lat, lon, weight] triple, the shape
// heat renderers take directly.
func (p HeatPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.Lat, p.Lon, p.Weight})
}

// UnmarshalJSON decodes a [lat, lon, weight] triple.
func (p *HeatPoint) UnmarshalJSON(data []byte) error {
	var triple [3]float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	p.Lat, p.Lon, p.Weight = triple[0], triple[1], triple[2]
	return nil
}

// Marker is one point of the marker overlay. Tooltip is revealed on hover.
type Marker struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Tooltip string  `json:"tooltip"`
}

// HeatOptions tunes the heat overlay: Radius is the per-point spread in
// pixels and MaxZoom is the zoom level at which intensity stops scaling.
type HeatOptions struct {
	Radius  int `json:"radius"`
	MaxZoom int `json:"max_zoom"`
}

// MarkerOptions tunes marker clustering. Below DisableClusteringAtZoom nearby
// markers collapse into count glyphs; at or above it every marker is drawn.
type MarkerOptions struct {
	DisableClusteringAtZoom int `json:"disable_clustering_at_zoom"`
}

// Bounds is the lat/lon rectangle enclosing a set of points.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// coordinates returns the row's lat/lon and whether both are present and
// finite.
func coordinates(row Row, latCol, lonCol int) (float64, float64, bool) {
	lat, ok := row[latCol].Float()
	if !ok || !finite(lat) {
		return 0, 0, false
	}
	lon, ok := row[lonCol].Float()
	if !ok || !finite(lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// BuildHeatLayer emits one point per row with a latitude, a longitude and a
// combined score, in table order. t must already be scored.
func BuildHeatLayer(t *Table) ([]HeatPoint, error) {
	latCol, err := t.ColumnIndex(ColLatitude)
	if err != nil {
		return nil, err
	}
	lonCol, err := t.ColumnIndex(ColLongitude)
	if err != nil {
		return nil, err
	}
	scoreCol, err := t.ColumnIndex(ColCombinedScore)
	if err != nil {
		return nil, err
	}

	points := make([]HeatPoint, 0, len(t.rows))
	for _, row := range t.rows {
		lat, lon, ok := coordinates(row, latCol, lonCol)
		if !ok {
			continue
		}
		score, ok := row[scoreCol].Float()
		if !ok {
			continue
		}
		points = append(points, HeatPoint{Lat: lat, Lon: lon, Weight: score})
	}
	return points, nil
}

// BuildMarkerLayer emits one hover-text marker per row with both coordinates.
// The score is not required.
func BuildMarkerLayer(t *Table) ([]Marker, error) {
	latCol, err := t.ColumnIndex(ColLatitude)
	if err != nil {
		return nil, err
	}
	lonCol, err := t.ColumnIndex(ColLongitude)
	if err != nil {
		return nil, err
	}
	tooltip, err := NewTooltipper(t)
	if err != nil {
		return nil, err
	}

	markers := make([]Marker, 0, len(t.rows))
	for _, row := range t.rows {
		lat, lon, ok := coordinates(row, latCol, lonCol)
		if !ok {
			continue
		}
		markers = append(markers, Marker{Lat: lat, Lon: lon, Tooltip: tooltip.Text(row)})
	}
	return markers, nil
}

// MarkerBounds returns the rectangle enclosing all markers, or false when
// there are none. Every heat point is also a marker, so this bounds both
// overlays.
func MarkerBounds(markers []Marker) (Bounds, bool) {
	rect := s2.EmptyRect()
	for _, m := range markers {
		rect = rect.AddPoint(s2.LatLngFromDegrees(m.Lat, m.Lon))
	}
	if rect.IsEmpty() {
		return Bounds{}, false
	}
	lo, hi := rect.Lo(), rect.Hi()
	return Bounds{
		South: lo.Lat.Degrees(),
		West:  lo.Lng.Degrees(),
		North: hi.Lat.Degrees(),
		East:  hi.Lng.Degrees(),
	}, true
}
