package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/stationmap/internal/geo"
	"github.com/sells-group/stationmap/internal/propagation"
)

// Config holds the full application configuration.
type Config struct {
	Station     StationConfig       `yaml:"station" mapstructure:"station"`
	Propagation propagation.Options `yaml:"propagation" mapstructure:"propagation"`
	Distance    DistanceConfig      `yaml:"distance" mapstructure:"distance"`
	Log         LogConfig           `yaml:"log" mapstructure:"log"`
}

// StationConfig describes the operator's home station.
type StationConfig struct {
	Callsign string  `yaml:"callsign" mapstructure:"callsign"`
	Lat      float64 `yaml:"lat" mapstructure:"lat"`
	Lon      float64 `yaml:"lon" mapstructure:"lon"`
}

// Coordinate returns the station position.
func (s StationConfig) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: s.Lat, Lon: s.Lon}
}

// DistanceConfig configures distance output.
type DistanceConfig struct {
	Unit string `yaml:"unit" mapstructure:"unit"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("stationmap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("STATIONMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("station.callsign", "")
	v.SetDefault("station.lat", 33.0)
	v.SetDefault("station.lon", -112.0)
	v.SetDefault("propagation.min_reliability_pct", propagation.DefaultMinReliabilityPct)
	v.SetDefault("propagation.future_hours", propagation.DefaultFutureHours)
	v.SetDefault("distance.unit", string(geo.Kilometers))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the station position, distance unit and selection options.
// All problems are reported together.
func (c *Config) Validate() error {
	var problems []string

	if err := c.Station.Coordinate().Validate(); err != nil {
		problems = append(problems, "station: "+err.Error())
	}
	if _, err := geo.ParseUnit(c.Distance.Unit); err != nil {
		problems = append(problems, "distance.unit must be km or mi")
	}
	if err := c.Propagation.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
