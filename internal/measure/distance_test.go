package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDistanceUnits(t *testing.T) {
	tests := []struct {
		name     string
		system   UnitSystem
		feet     bool
		nautical bool
		expected DistanceUnits
	}{
		{"metric", Metric(), false, false, DistanceMetric},
		{"metric beats flags", Metric(), true, true, DistanceMetric},
		{"unit string", Unit("feet"), false, false, DistanceFeet},
		{"unit string beats flags", Unit("nauticalMile"), true, false, DistanceNauticalMile},
		{"unit list is metric", Units(KM), true, false, DistanceMetric},
		{"feet", Imperial(), true, false, DistanceFeet},
		{"feet beats nautical", Imperial(), true, true, DistanceFeet},
		{"nautical", Imperial(), false, true, DistanceNauticalMile},
		{"yards", Imperial(), false, false, DistanceYards},
		{"empty unit string", Unit(""), false, true, DistanceNauticalMile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDistanceUnits(tt.system, tt.feet, tt.nautical))
		})
	}
}

func TestReadableDistance(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		system   UnitSystem
		feet     bool
		nautical bool
		expected string
	}{
		{"meters", 500, Metric(), false, false, "500 m"},
		{"kilometers", 1500, Metric(), false, false, "1.50 km"},
		{"kilometer threshold is exclusive", 1000, Metric(), false, false, "1000 m"},
		{"metric unit string", 1500, Unit("metric"), false, false, "1.50 km"},
		{"miles", 2000, Imperial(), false, false, "1.24 miles"},
		{"yards", 1000, Imperial(), false, false, "1094 yd"},
		{"feet flag", 100, Imperial(), true, false, "328 ft"},
		{"feet unit string", 100, Unit("feet"), false, false, "328 ft"},
		{"nautical flag", 1852, Imperial(), false, true, "1.00 nm"},
		{"nautical unit string", 2000, Unit("nauticalMile"), false, false, "1.08 nm"},
		{"unknown unit string", 2000, Unit("furlong"), false, false, "1.24 miles"},
		{"yards unit string", 10, Unit("yards"), false, false, "11 yd"},
		{"zero", 0, Metric(), false, false, "0 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReadableDistance(tt.distance, tt.system, tt.feet, tt.nautical, nil))
		})
	}
}

func TestReadableDistance_PrecisionOverride(t *testing.T) {
	assert.Equal(t, "1.500 km", ReadableDistance(1500, Metric(), false, false, Precision{KM: 3}))
	assert.Equal(t, "500.0 m", ReadableDistance(500, Metric(), false, false, Precision{M: 1}))
	assert.Equal(t, "328.1 ft", ReadableDistance(100, Imperial(), true, false, Precision{FT: 1}))
	assert.Equal(t, "1 nm", ReadableDistance(1852, Imperial(), false, true, Precision{NM: 0}))
	assert.Equal(t, "1.243 miles", ReadableDistance(2000, Imperial(), false, false, Precision{MI: 3}))
}
