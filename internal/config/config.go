// Package config handles configuration loading and display defaults.
package config

import (
	"fmt"
	"os"

	"github.com/woozymasta/geomeasure/internal/measure"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Precision     measure.Precision `yaml:"precision,omitempty" json:"precision,omitempty"`
	AreaUnits     string            `yaml:"area_units,omitempty" json:"area_units,omitempty"`         // metric | imperial | <unit> | km,ha,m
	DistanceUnits string            `yaml:"distance_units,omitempty" json:"distance_units,omitempty"` // metric | imperial | feet | nauticalMile | yards
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		AreaUnits:     "metric",
		DistanceUnits: "metric",
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Fields missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// AreaSystem returns the unit selector for areas.
func (c *Config) AreaSystem() measure.UnitSystem {
	return measure.ParseUnitSystem(c.AreaUnits)
}

// DistanceSystem returns the unit selector for distances together with
// the feet and nautical mile flags of the legacy call form.
func (c *Config) DistanceSystem() (system measure.UnitSystem, feet, nauticalMile bool) {
	return DistanceFlags(c.DistanceUnits)
}

// DistanceFlags converts a textual distance unit into the selector and
// flags accepted by measure.ReadableDistance.
func DistanceFlags(units string) (system measure.UnitSystem, feet, nauticalMile bool) {
	switch measure.DistanceUnits(units) {
	case measure.DistanceFeet:
		return measure.Imperial(), true, false
	case measure.DistanceNauticalMile:
		return measure.Imperial(), false, true
	case measure.DistanceYards:
		return measure.Imperial(), false, false
	}

	return measure.ParseUnitSystem(units), false, false
}
