// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/woozymasta/geomeasure/internal/config"
	"github.com/woozymasta/geomeasure/internal/geo"
	"github.com/woozymasta/geomeasure/internal/measure"

	"github.com/rs/zerolog/log"
)

// FeatureResult is a measured feature with its readable form.
type FeatureResult struct {
	geo.Measurement
	Readable string `json:"readable"`
}

// AreaResponse is returned by HandleArea.
type AreaResponse struct {
	Features          []FeatureResult `json:"features"`
	TotalArea         float64         `json:"total_area"`
	TotalAreaReadable string          `json:"total_area_readable"`
}

// ReadableResponse is returned by the readable value handlers.
type ReadableResponse struct {
	Value    float64 `json:"value"`
	Readable string  `json:"readable"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleArea measures the polygons and lines of a GeoJSON request body.
func (s *ServerContext) HandleArea(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	precision, err := s.precision(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	areaSystem := s.areaSystem(r)
	distSystem, feet, nautical := s.distanceSystem(r, "distance_units")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fc, err := geo.DecodeFeatureCollection(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	measurements := geo.MeasureFeatures(fc)
	resp := AreaResponse{Features: make([]FeatureResult, 0, len(measurements))}

	for _, m := range measurements {
		res := FeatureResult{Measurement: m}
		if m.IsArea() {
			res.Readable = measure.ReadableArea(m.Area, areaSystem, precision)
			resp.TotalArea += m.Area
		} else {
			res.Readable = measure.ReadableDistance(m.Length, distSystem, feet, nautical, precision)
		}
		resp.Features = append(resp.Features, res)
	}
	resp.TotalAreaReadable = measure.ReadableArea(resp.TotalArea, areaSystem, precision)

	log.Debug().
		Int("features", len(fc.Features)).
		Int("measured", len(resp.Features)).
		Float64("total_area", resp.TotalArea).
		Msg("Area request measured")

	writeJSON(w, http.StatusOK, resp)
}

// HandleReadableArea formats the square meter value from the query.
func (s *ServerContext) HandleReadableArea(w http.ResponseWriter, r *http.Request) {
	value, precision, ok := s.readableParams(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, ReadableResponse{
		Value:    value,
		Readable: measure.ReadableArea(value, s.areaSystem(r), precision),
	})
}

// HandleReadableDistance formats the meter value from the query.
func (s *ServerContext) HandleReadableDistance(w http.ResponseWriter, r *http.Request) {
	value, precision, ok := s.readableParams(w, r)
	if !ok {
		return
	}

	system, feet, nautical := s.distanceSystem(r, "units")
	q := r.URL.Query()
	if v := q.Get("feet"); v != "" {
		feet, _ = strconv.ParseBool(v)
	}
	if v := q.Get("nautical"); v != "" {
		nautical, _ = strconv.ParseBool(v)
	}

	writeJSON(w, http.StatusOK, ReadableResponse{
		Value:    value,
		Readable: measure.ReadableDistance(value, system, feet, nautical, precision),
	})
}

// readableParams parses the common value and precision parameters,
// writing an error response when they are invalid.
func (s *ServerContext) readableParams(w http.ResponseWriter, r *http.Request) (float64, measure.Precision, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return 0, nil, false
	}

	raw := r.URL.Query().Get("value")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid value %q", raw))
		return 0, nil, false
	}

	precision, err := s.precision(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, nil, false
	}

	return value, precision, true
}

func (s *ServerContext) areaSystem(r *http.Request) measure.UnitSystem {
	if v, ok := r.URL.Query()["units"]; ok {
		return measure.ParseUnitSystem(v[0])
	}
	return s.AreaSystem
}

func (s *ServerContext) distanceSystem(r *http.Request, param string) (measure.UnitSystem, bool, bool) {
	if v, ok := r.URL.Query()[param]; ok {
		return config.DistanceFlags(v[0])
	}
	return config.DistanceFlags(s.DistanceUnits)
}

// precision merges the "precision" query (km:3,m:1) over the configured table.
func (s *ServerContext) precision(r *http.Request) (measure.Precision, error) {
	raw := r.URL.Query().Get("precision")
	if raw == "" {
		return s.Precision, nil
	}

	override, err := parsePrecision(raw)
	if err != nil {
		return nil, err
	}
	return s.Precision.Merge(override), nil
}

func parsePrecision(raw string) (measure.Precision, error) {
	p := measure.Precision{}
	for _, pair := range strings.Split(raw, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid precision %q, expected unit:digits", pair)
		}
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid precision digits for %s: %q", key, val)
		}
		p[key] = n
	}
	return p, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
