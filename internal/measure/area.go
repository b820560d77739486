package measure

import "slices"

const (
	sqMetersPerSqYard = 0.836127
	sqYardsPerSqMile  = 3097600
	sqYardsPerAcre    = 4840
)

// ReadableArea formats an area given in square meters.
//
// Metric output uses km² (only when KM is an allowed unit), hectares
// (when HA is allowed) or m². Imperial output uses mi², acres or yd².
// Bands are picked top down with inclusive thresholds.
func ReadableArea(area float64, system UnitSystem, precision Precision) string {
	p := withDefaults(precision)

	if system.IsMetric() {
		units := system.areaUnits()

		switch {
		case area >= 1000000 && slices.Contains(units, KM):
			return Round(area*0.000001, p[KM]) + " km&sup2;"
		case area >= 10000 && slices.Contains(units, HA):
			return Round(area*0.0001, p[HA]) + " ha"
		default:
			return Round(area, p[M]) + " m&sup2;"
		}
	}

	yards := area / sqMetersPerSqYard

	switch {
	case yards >= sqYardsPerSqMile:
		return Round(yards/sqYardsPerSqMile, p[MI]) + " mi&sup2;"
	case yards >= sqYardsPerAcre:
		return Round(yards/sqYardsPerAcre, p[AC]) + " acres"
	default:
		return Round(yards, p[YD]) + " yd&sup2;"
	}
}
