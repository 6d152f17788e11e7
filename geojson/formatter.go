// Package geojson renders entries as a GeoJSON FeatureCollection, using
// go-geom for the point geometries.
package geojson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/archmap"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Ensure Formatter implements archmap.Formatter at compile time.
var _ archmap.Formatter = (*Formatter)(nil)

// Fields below are declared in key order so encoding/json emits every
// object with sorted keys.

type featureCollection struct {
	Features []feature `json:"features"`
	Type     string    `json:"type"`
}

type feature struct {
	Geometry   geometry   `json:"geometry"`
	ID         int        `json:"id"`
	Properties properties `json:"properties"`
	Type       string     `json:"type"`
}

type geometry struct {
	Coordinates json.RawMessage `json:"coordinates"`
	Type        string          `json:"type"`
}

type properties struct {
	Comment string `json:"Comment"`
	Name    string `json:"Name"`
}

// Formatter renders entries as an indented FeatureCollection. Each entry
// becomes a Point feature whose id is its position in the input.
type Formatter struct {
	indent string
}

// NewFormatter creates a new Formatter indenting with two spaces.
func NewFormatter() *Formatter {
	return &Formatter{indent: "  "}
}

// Format renders entries. Coordinates are [longitude, latitude].
func (f *Formatter) Format(entries []archmap.Entry) (string, error) {
	fc := featureCollection{
		Features: make([]feature, 0, len(entries)),
		Type:     "FeatureCollection",
	}
	for i, e := range entries {
		g, err := encodePoint(e)
		if err != nil {
			return "", fmt.Errorf("entry %d: %w", i, err)
		}
		fc.Features = append(fc.Features, feature{
			Geometry: g,
			ID:       i,
			Properties: properties{
				Comment: e.Comment,
				Name:    e.Name,
			},
			Type: "Feature",
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", f.indent)
	if err := enc.Encode(fc); err != nil {
		return "", fmt.Errorf("encoding feature collection: %w", err)
	}
	return buf.String(), nil
}

// encodePoint converts the entry's exact coordinates to a GeoJSON point.
func encodePoint(e archmap.Entry) (geometry, error) {
	lon, _ := e.Longitude.Float64()
	lat, _ := e.Latitude.Float64()

	g, err := geojson.Encode(geom.NewPointFlat(geom.XY, []float64{lon, lat}))
	if err != nil {
		return geometry{}, fmt.Errorf("encoding point: %w", err)
	}
	if g.Coordinates == nil {
		return geometry{}, fmt.Errorf("encoding point: no coordinates")
	}
	return geometry{Coordinates: *g.Coordinates, Type: g.Type}, nil
}
