// Package geo measures geographic shapes given in WGS84 degrees.
package geo

import "github.com/paulmach/orb"

// Point is a position in decimal degrees.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Polygon is an implicitly closed sequence of points.
type Polygon []Point

// FromRing converts an orb ring ([lon, lat] order) into a Polygon.
// A repeated closing vertex is kept, it adds a zero length edge.
func FromRing(r orb.Ring) Polygon {
	poly := make(Polygon, len(r))
	for i, p := range r {
		poly[i] = Point{Lat: p.Lat(), Lng: p.Lon()}
	}

	return poly
}

// RingArea returns the geodesic area of a single orb ring.
func RingArea(r orb.Ring) float64 {
	return GeodesicArea(FromRing(r))
}

// PolygonArea returns the area of the outer ring minus its holes.
// Holes larger than the shell clamp the result at zero.
func PolygonArea(p orb.Polygon) float64 {
	if len(p) == 0 {
		return 0
	}

	area := RingArea(p[0])
	for _, hole := range p[1:] {
		area -= RingArea(hole)
	}

	if area < 0 {
		return 0
	}
	return area
}
