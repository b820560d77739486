package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collectionJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "field"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "road"},
      "geometry": {"type": "LineString", "coordinates": [[0,0],[1,0]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "well"},
      "geometry": {"type": "Point", "coordinates": [0.5,0.5]}
    },
    {
      "type": "Feature",
      "properties": {"name": 42},
      "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[0,0],[1,0],[1,1],[0,1],[0,0]]],
        [[[2,0],[3,0],[3,1],[2,1],[2,0]]]
      ]}
    }
  ]
}`

func TestFromRing(t *testing.T) {
	poly := FromRing(orb.Ring{{10, 20}, {11, 21}})
	assert.Equal(t, Polygon{{Lat: 20, Lng: 10}, {Lat: 21, Lng: 11}}, poly)
}

func TestRingArea_ClosingVertex(t *testing.T) {
	open := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	closed := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}

	assert.InEpsilon(t, RingArea(open), RingArea(closed), 1e-12)
	assert.InEpsilon(t, GeodesicArea(square(1)), RingArea(open), 1e-12)
}

func TestPolygonArea(t *testing.T) {
	shell := orb.Ring{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}
	hole := orb.Ring{{0.5, 0.5}, {1.5, 0.5}, {1.5, 1.5}, {0.5, 1.5}, {0.5, 0.5}}

	t.Run("shell only", func(t *testing.T) {
		assert.InEpsilon(t, RingArea(shell), PolygonArea(orb.Polygon{shell}), 1e-12)
	})

	t.Run("with hole", func(t *testing.T) {
		want := RingArea(shell) - RingArea(hole)
		assert.InEpsilon(t, want, PolygonArea(orb.Polygon{shell, hole}), 1e-12)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, PolygonArea(nil))
	})

	t.Run("hole larger than shell", func(t *testing.T) {
		assert.Equal(t, 0.0, PolygonArea(orb.Polygon{hole, shell}))
	})
}

func TestPathLength(t *testing.T) {
	// one degree along the equator
	want := EarthRadius * degToRad
	assert.InEpsilon(t, want, PathLength(orb.LineString{{0, 0}, {1, 0}}), 1e-9)
	assert.Equal(t, 0.0, PathLength(orb.LineString{{5, 5}}))
}

func TestDecodeFeatureCollection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		features int
		wantErr  bool
	}{
		{"collection", collectionJSON, 4, false},
		{"feature", `{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,2]}}`, 1, false},
		{"geometry", `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`, 1, false},
		{"missing type", `{"coordinates":[1,2]}`, 0, true},
		{"invalid json", `{"type":`, 0, true},
		{"unknown geometry", `{"type":"Circle","coordinates":[1,2]}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc, err := DecodeFeatureCollection([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, fc.Features, tt.features)
		})
	}
}

func TestMeasureFeatures(t *testing.T) {
	fc, err := DecodeFeatureCollection([]byte(collectionJSON))
	require.NoError(t, err)

	ms := MeasureFeatures(fc)
	require.Len(t, ms, 3)

	cell := GeodesicArea(square(1))

	assert.Equal(t, "field", ms[0].Name)
	assert.Equal(t, "Polygon", ms[0].Type)
	assert.True(t, ms[0].IsArea())
	assert.InEpsilon(t, cell, ms[0].Area, 1e-12)

	assert.Equal(t, "road", ms[1].Name)
	assert.Equal(t, "LineString", ms[1].Type)
	assert.False(t, ms[1].IsArea())
	assert.InEpsilon(t, EarthRadius*degToRad, ms[1].Length, 1e-9)

	assert.Empty(t, ms[2].Name)
	assert.Equal(t, "MultiPolygon", ms[2].Type)
	assert.InEpsilon(t, 2*cell, ms[2].Area, 1e-9)
}

func TestMeasureFeatures_Nil(t *testing.T) {
	assert.Nil(t, MeasureFeatures(nil))
}
