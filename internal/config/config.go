package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/mr1hm/go-panorama-kml/internal/models"
)

const (
	FormatKML     = "kml"
	FormatGeoJSON = "geojson"
)

var ErrMissingArgument = errors.New("missing required argument")

type Config struct {
	Center  CenterConfig
	Output  OutputConfig
	Logging LoggingConfig
}

type CenterConfig struct {
	Latitude  models.Coordinate
	Longitude models.Coordinate
	Altitude  float64

	latSet, lonSet, altSet bool
}

type OutputConfig struct {
	Path   string // empty means stdout
	Format string
}

type LoggingConfig struct {
	Level string
}

// Load builds the config from PANO_* environment variables and then the
// command line flags in args (without the program name). Flags win.
func Load(args []string) (*Config, error) {
	cfg := &Config{
		Output: OutputConfig{
			Path:   getEnv("PANO_OUTPUT", ""),
			Format: getEnv("PANO_FORMAT", FormatKML),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	var err error
	if cfg.Center.Latitude, cfg.Center.latSet, err = getEnvCoordinate("PANO_LAT"); err != nil {
		return nil, err
	}
	if cfg.Center.Longitude, cfg.Center.lonSet, err = getEnvCoordinate("PANO_LON"); err != nil {
		return nil, err
	}
	if cfg.Center.Altitude, cfg.Center.altSet, err = getEnvFloat("PANO_ALT"); err != nil {
		return nil, err
	}

	fs := NewFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewFlagSet binds the command line flags to cfg: -m latitude, -p longitude,
// -a altitude, -f file, each with a long form.
func NewFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("panokml", flag.ContinueOnError)

	lat := &coordinateValue{c: &cfg.Center.Latitude, set: &cfg.Center.latSet}
	lon := &coordinateValue{c: &cfg.Center.Longitude, set: &cfg.Center.lonSet}
	alt := &floatValue{f: &cfg.Center.Altitude, set: &cfg.Center.altSet}

	fs.Var(lat, "m", "latitude in degrees (decimal or d:m:s)")
	fs.Var(lat, "lat", "latitude in degrees (decimal or d:m:s)")
	fs.Var(lon, "p", "longitude in degrees (decimal or d:m:s)")
	fs.Var(lon, "lon", "longitude in degrees (decimal or d:m:s)")
	fs.Var(alt, "a", "altitude in meters")
	fs.Var(alt, "alt", "altitude in meters")
	fs.StringVar(&cfg.Output.Path, "f", cfg.Output.Path, "output filename, e.g. pano.kml - stdout if not specified")
	fs.StringVar(&cfg.Output.Path, "file", cfg.Output.Path, "output filename, e.g. pano.kml - stdout if not specified")
	fs.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "output format: kml or geojson")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn, error")

	return fs
}

// Point returns the normalized center point.
func (c *Config) Point() models.Center {
	return models.NewCenter(c.Center.Latitude, c.Center.Longitude, c.Center.Altitude)
}

func (c *Config) validate() error {
	if !c.Center.latSet {
		return fmt.Errorf("%w: latitude (-m/-lat or PANO_LAT)", ErrMissingArgument)
	}
	if !c.Center.lonSet {
		return fmt.Errorf("%w: longitude (-p/-lon or PANO_LON)", ErrMissingArgument)
	}
	if !c.Center.altSet {
		return fmt.Errorf("%w: altitude (-a/-alt or PANO_ALT)", ErrMissingArgument)
	}

	switch c.Output.Format {
	case FormatKML, FormatGeoJSON:
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

type coordinateValue struct {
	c   *models.Coordinate
	set *bool
}

func (v *coordinateValue) String() string {
	if v.c == nil || v.set == nil || !*v.set {
		return ""
	}
	return v.c.String()
}

func (v *coordinateValue) Set(s string) error {
	c, err := models.ParseCoordinate(s)
	if err != nil {
		return err
	}
	*v.c = c
	*v.set = true
	return nil
}

type floatValue struct {
	f   *float64
	set *bool
}

func (v *floatValue) String() string {
	if v.f == nil || v.set == nil || !*v.set {
		return ""
	}
	return strconv.FormatFloat(*v.f, 'g', -1, 64)
}

func (v *floatValue) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*v.f = f
	*v.set = true
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvFloat(key string) (float64, bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s: %q", key, val)
	}
	return f, true, nil
}

func getEnvCoordinate(key string) (models.Coordinate, bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return models.Coordinate{}, false, nil
	}
	c, err := models.ParseCoordinate(val)
	if err != nil {
		return models.Coordinate{}, false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return c, true, nil
}
