package geo

import "math"

// EarthRadius is the WGS84 equatorial radius in meters used for the
// spherical earth approximation.
const EarthRadius = 6378137.0

const degToRad = math.Pi / 180.0

// GeodesicArea returns the area in square meters enclosed by the polygon
// on a sphere of EarthRadius.
//
// The polygon is treated as closed and its winding order does not matter.
// Polygons with fewer than three points have no area. The approximation
// breaks down for rings crossing the antimeridian or enclosing a pole.
// Non-finite coordinates yield NaN or Inf.
func GeodesicArea(points Polygon) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	var area float64
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += (p2.Lng - p1.Lng) * degToRad *
			(2 + math.Sin(p1.Lat*degToRad) + math.Sin(p2.Lat*degToRad))
	}
	area = area * EarthRadius * EarthRadius / 2.0

	return math.Abs(area)
}
