package server

import (
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/geomeasure/internal/config"
	"github.com/woozymasta/geomeasure/internal/measure"
)

// maxBodySize limits GeoJSON uploads.
const maxBodySize = 10 << 20

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config        *config.Config
	Precision     measure.Precision
	AreaSystem    measure.UnitSystem
	DistanceUnits string
}

// NewServerContext resolves the display defaults from the configuration.
func NewServerContext(cfg *config.Config) *ServerContext {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &ServerContext{
		Config:        cfg,
		Precision:     measure.DefaultPrecision().Merge(cfg.Precision),
		AreaSystem:    cfg.AreaSystem(),
		DistanceUnits: cfg.DistanceUnits,
	}

	log.Info().
		Str("area_units", s.AreaSystem.String()).
		Str("distance_units", s.DistanceUnits).
		Interface("precision", s.Precision).
		Msg("Server context initialized")

	return s
}
