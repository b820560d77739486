package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geomeasure/internal/config"
	"github.com/woozymasta/geomeasure/internal/geo"
	"github.com/woozymasta/geomeasure/internal/logger"
	"github.com/woozymasta/geomeasure/internal/measure"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input         string         `short:"i" long:"in"             description:"Input GeoJSON file path. Reads from stdin if empty"`
	Output        string         `short:"o" long:"out"            description:"Output file path. Writes to stdout if empty"`
	Format        string         `short:"f" long:"format"         description:"Output format" choice:"json" choice:"yaml" default:"json"`
	ConfigFile    string         `short:"c" long:"config"         env:"CONFIG_FILE" description:"Path to configuration file with display defaults"`
	AreaUnits     string         `short:"u" long:"units"          description:"Area units: metric, imperial, a unit key or a list (km,ha,m)"`
	DistanceUnits string         `short:"d" long:"distance-units" description:"Distance units: metric, imperial, feet, nauticalMile or yards"`
	Precision     map[string]int `short:"P" long:"precision"      description:"Decimals per unit key, e.g. -P km:3 -P m:1"`
}

// Row is a single measured feature in the output.
type Row struct {
	Name           string  `json:"name,omitempty" yaml:"name,omitempty"`
	Type           string  `json:"type" yaml:"type"`
	Area           float64 `json:"area,omitempty" yaml:"area,omitempty"`
	AreaReadable   string  `json:"area_readable,omitempty" yaml:"area_readable,omitempty"`
	Length         float64 `json:"length,omitempty" yaml:"length,omitempty"`
	LengthReadable string  `json:"length_readable,omitempty" yaml:"length_readable,omitempty"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
	} else {
		inputData, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to read input")
	}

	cfg := config.Default()
	if opts.ConfigFile != "" {
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
		}
	}

	rows, err := measureDocument(inputData, cfg, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to measure input")
	}

	outputData, err := marshalRows(rows, opts.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal output")
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output")
		}
		log.Info().
			Int("features", len(rows)).
			Str("path", opts.Output).
			Str("format", opts.Format).
			Msg("Measurements written")
	} else {
		fmt.Println(string(outputData))
	}
}

// measureDocument decodes GeoJSON and renders every measured feature.
// Command line units and precision take priority over the config file.
func measureDocument(data []byte, cfg *config.Config, opts Options) ([]Row, error) {
	fc, err := geo.DecodeFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	areaSystem := cfg.AreaSystem()
	if opts.AreaUnits != "" {
		areaSystem = measure.ParseUnitSystem(opts.AreaUnits)
	}

	distSystem, feet, nautical := cfg.DistanceSystem()
	if opts.DistanceUnits != "" {
		distSystem, feet, nautical = config.DistanceFlags(opts.DistanceUnits)
	}

	precision := cfg.Precision.Merge(opts.Precision)

	measurements := geo.MeasureFeatures(fc)
	rows := make([]Row, 0, len(measurements))

	for _, m := range measurements {
		row := Row{Name: m.Name, Type: m.Type}
		if m.IsArea() {
			row.Area = m.Area
			row.AreaReadable = measure.ReadableArea(m.Area, areaSystem, precision)
		} else {
			row.Length = m.Length
			row.LengthReadable = measure.ReadableDistance(m.Length, distSystem, feet, nautical, precision)
		}

		log.Debug().
			Str("name", m.Name).
			Str("type", m.Type).
			Float64("area", m.Area).
			Float64("length", m.Length).
			Msg("Feature measured")

		rows = append(rows, row)
	}

	if skipped := len(fc.Features) - len(rows); skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("Features without area or length skipped")
	}

	return rows, nil
}

func marshalRows(rows []Row, format string) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(rows)
	}
	return json.MarshalIndent(rows, "", "  ")
}
