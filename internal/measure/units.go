package measure

import "strings"

type systemKind int

const (
	kindFlag systemKind = iota
	kindUnit
	kindUnits
)

// UnitSystem selects how a value is displayed. It is either a metric
// flag, a single unit name or a list of allowed area units.
// The zero value is Imperial.
type UnitSystem struct {
	kind   systemKind
	metric bool
	unit   string
	units  []string
}

// Metric selects the metric system with the default units.
func Metric() UnitSystem {
	return UnitSystem{kind: kindFlag, metric: true}
}

// Imperial selects the imperial (yards based) system.
func Imperial() UnitSystem {
	return UnitSystem{kind: kindFlag}
}

// Unit selects a single named unit. For areas it is the only metric unit
// considered, for distances it names the unit family directly.
// An empty name behaves like Imperial.
func Unit(name string) UnitSystem {
	return UnitSystem{kind: kindUnit, unit: name}
}

// Units restricts metric area output to the listed unit keys.
// An empty list still selects the metric system.
func Units(keys ...string) UnitSystem {
	return UnitSystem{kind: kindUnits, units: append([]string{}, keys...)}
}

// IsMetric reports whether the selector picks the metric branch.
func (u UnitSystem) IsMetric() bool {
	switch u.kind {
	case kindUnit:
		return u.unit != ""
	case kindUnits:
		return true
	default:
		return u.metric
	}
}

// String returns the textual form accepted by ParseUnitSystem.
func (u UnitSystem) String() string {
	switch u.kind {
	case kindUnit:
		return u.unit
	case kindUnits:
		return strings.Join(u.units, ",")
	default:
		if u.metric {
			return "metric"
		}
		return "imperial"
	}
}

// areaUnits returns the candidate metric area units.
func (u UnitSystem) areaUnits() []string {
	switch u.kind {
	case kindUnit:
		return []string{u.unit}
	case kindUnits:
		return u.units
	default:
		return []string{HA, M}
	}
}

// ParseUnitSystem converts textual input from flags, query strings and
// config files into a selector:
//
//	metric, true          -> Metric
//	imperial, false, ""   -> Imperial
//	km,ha,m               -> Units
//	anything else         -> Unit
func ParseUnitSystem(s string) UnitSystem {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "metric", "true":
		return Metric()
	case "imperial", "false", "":
		return Imperial()
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		keys := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				keys = append(keys, p)
			}
		}
		return Units(keys...)
	}

	return Unit(s)
}
