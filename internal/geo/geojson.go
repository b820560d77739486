package geo

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// Measurement holds the measured size of a single GeoJSON feature.
// Area is set for polygonal geometries, Length for linear ones.
type Measurement struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Type   string  `json:"type" yaml:"type"`
	Area   float64 `json:"area,omitempty" yaml:"area,omitempty"`     // m²
	Length float64 `json:"length,omitempty" yaml:"length,omitempty"` // m
}

// IsArea reports whether the measurement came from a polygonal geometry.
func (m Measurement) IsArea() bool {
	return m.Type == "Polygon" || m.Type == "MultiPolygon"
}

// DecodeFeatureCollection parses a GeoJSON document. A single Feature or a
// bare Geometry is wrapped into a collection.
func DecodeFeatureCollection(data []byte) (*geojson.FeatureCollection, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("decode feature collection: %w", err)
		}
		return fc, nil

	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("decode feature: %w", err)
		}
		fc := geojson.NewFeatureCollection()
		fc.Append(f)
		return fc, nil

	case "":
		return nil, errors.New("decode geojson: missing type")

	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("decode geometry: %w", err)
		}
		fc := geojson.NewFeatureCollection()
		fc.Append(geojson.NewFeature(g.Geometry()))
		return fc, nil
	}
}

// MeasureFeatures measures every polygonal and linear feature of the
// collection in order. Points and unknown geometries are skipped.
func MeasureFeatures(fc *geojson.FeatureCollection) []Measurement {
	if fc == nil {
		return nil
	}

	out := make([]Measurement, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}

		m, ok := Measure(f.Geometry)
		if !ok {
			continue
		}
		m.Name, _ = f.Properties["name"].(string)
		out = append(out, m)
	}

	return out
}

// Measure returns the area or length of a geometry. The second result is
// false for geometries without a size (points, collections).
func Measure(g orb.Geometry) (Measurement, bool) {
	m := Measurement{Type: g.GeoJSONType()}

	switch v := g.(type) {
	case orb.Ring:
		m.Area = RingArea(v)
	case orb.Polygon:
		m.Area = PolygonArea(v)
	case orb.MultiPolygon:
		for _, p := range v {
			m.Area += PolygonArea(p)
		}
	case orb.LineString, orb.MultiLineString:
		m.Length = PathLength(v)
	default:
		return Measurement{}, false
	}

	return m, true
}

// PathLength returns the great-circle length of a line in meters.
func PathLength(g orb.Geometry) float64 {
	return orbgeo.LengthHaversine(g)
}
