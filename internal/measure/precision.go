// Package measure renders areas and distances as readable strings
// in metric or imperial units.
package measure

import (
	"math"
	"strconv"
)

// Unit keys used by the precision table.
const (
	KM = "km"
	HA = "ha"
	M  = "m"
	MI = "mi"
	AC = "ac"
	YD = "yd"
	FT = "ft"
	NM = "nm"
)

// Precision maps a unit key to the number of decimals shown for it.
// Zero means the value is rounded to an integer.
type Precision map[string]int

// DefaultPrecision returns a fresh copy of the built-in precision table.
func DefaultPrecision() Precision {
	return Precision{
		KM: 2,
		HA: 2,
		M:  0,
		MI: 2,
		AC: 2,
		YD: 0,
		FT: 0,
		NM: 2,
	}
}

// Merge returns a new table with the entries of override replacing
// those of p. Neither input is modified.
func (p Precision) Merge(override Precision) Precision {
	out := make(Precision, len(p)+len(override))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}

	return out
}

// withDefaults merges override over the default table.
func withDefaults(override Precision) Precision {
	return DefaultPrecision().Merge(override)
}

// Round formats value with the given number of decimals. A precision of
// zero or less rounds half up to an integer and prints no decimal point.
func Round(value float64, precision int) string {
	if precision <= 0 {
		// +0 folds negative zero
		return strconv.FormatFloat(math.Floor(value+0.5)+0, 'f', 0, 64)
	}

	return strconv.FormatFloat(value, 'f', precision, 64)
}
