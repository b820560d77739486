package measure

// DistanceUnits names the unit family used for a distance.
type DistanceUnits string

// Distance unit families.
const (
	DistanceMetric       DistanceUnits = "metric"
	DistanceFeet         DistanceUnits = "feet"
	DistanceNauticalMile DistanceUnits = "nauticalMile"
	DistanceYards        DistanceUnits = "yards"
)

const (
	yardsPerMeter = 1.09361
	yardsPerMile  = 1760
)

// ResolveDistanceUnits picks the unit family. A named unit wins, then a
// metric system, then the feet flag, then the nautical mile flag.
// Yards is the fallback.
func ResolveDistanceUnits(system UnitSystem, feet, nauticalMile bool) DistanceUnits {
	switch {
	case system.kind == kindUnit && system.unit != "":
		return DistanceUnits(system.unit)
	case system.IsMetric():
		return DistanceMetric
	case feet:
		return DistanceFeet
	case nauticalMile:
		return DistanceNauticalMile
	default:
		return DistanceYards
	}
}

// ReadableDistance formats a distance given in meters.
//
// The feet and nauticalMile flags only apply when system is not metric.
// Unknown unit names fall back to yards and miles.
func ReadableDistance(distance float64, system UnitSystem, feet, nauticalMile bool, precision Precision) string {
	p := withDefaults(precision)

	switch ResolveDistanceUnits(system, feet, nauticalMile) {
	case DistanceMetric:
		if distance > 1000 {
			return Round(distance/1000, p[KM]) + " km"
		}
		return Round(distance, p[M]) + " m"

	case DistanceFeet:
		return Round(distance*(yardsPerMeter*3), p[FT]) + " ft"

	case DistanceNauticalMile:
		// Kept as historically computed: scaled by 0.53996 then divided
		// by 1000, which is not a plain meters to nautical miles conversion.
		return Round(distance*0.53996/1000, p[NM]) + " nm"

	default:
		yards := distance * yardsPerMeter
		if yards > yardsPerMile {
			return Round(yards/yardsPerMile, p[MI]) + " miles"
		}
		return Round(yards, p[YD]) + " yd"
	}
}
