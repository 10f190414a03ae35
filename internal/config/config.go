// Package config loads entityidentity's runtime settings: snapshot file
// locations, resolver thresholds, and logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Snapshots  SnapshotConfig  `yaml:"snapshots" mapstructure:"snapshots"`
	Thresholds ThresholdConfig `yaml:"thresholds" mapstructure:"thresholds"`
	Log        LogConfig       `yaml:"log" mapstructure:"log"`
}

// SnapshotConfig names the on-disk location of each domain's snapshot
// file. Empty means "use the package default search path" (§4.3).
// GSMC_TICKERS_PATH, ENTITYIDENTITY_FACILITIES_PATH, COMPANIES_DB_PATH,
// and UNITS_DB_PATH (spec.md §6) bind onto these fields as explicit
// environment aliases in Load.
type SnapshotConfig struct {
	CompaniesPath   string `yaml:"companies_path" mapstructure:"companies_path"`
	CountriesPath   string `yaml:"countries_path" mapstructure:"countries_path"`
	PlacesPath      string `yaml:"places_path" mapstructure:"places_path"`
	MetalsPath      string `yaml:"metals_path" mapstructure:"metals_path"`
	BasketsPath     string `yaml:"baskets_path" mapstructure:"baskets_path"`
	InstrumentsPath string `yaml:"instruments_path" mapstructure:"instruments_path"`
	UnitsPath       string `yaml:"units_path" mapstructure:"units_path"`
}

// ThresholdConfig carries scoring cutoffs loaded from config and the
// environment. The resolver packages do not read these values; they use
// their own package constants.
type ThresholdConfig struct {
	FuzzyCountryThreshold int     `yaml:"fuzzy_country_threshold" mapstructure:"fuzzy_country_threshold"`
	PlaceThreshold        int     `yaml:"place_threshold" mapstructure:"place_threshold"`
	MetalThreshold        int     `yaml:"metal_threshold" mapstructure:"metal_threshold"`
	BasketThreshold       int     `yaml:"basket_threshold" mapstructure:"basket_threshold"`
	InstrumentThreshold   int     `yaml:"instrument_threshold" mapstructure:"instrument_threshold"`
	CompanyHighConf       float64 `yaml:"company_high_conf" mapstructure:"company_high_conf"`
	CompanyHighConfGap    float64 `yaml:"company_high_conf_gap" mapstructure:"company_high_conf_gap"`
	CompanyUncertain      float64 `yaml:"company_uncertain" mapstructure:"company_uncertain"`
}

// LogConfig configures the global zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from config.yaml (if present) and the
// environment, falling back to the defaults below.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ENTITYIDENTITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("thresholds.fuzzy_country_threshold", 85)
	v.SetDefault("thresholds.place_threshold", 90)
	v.SetDefault("thresholds.metal_threshold", 90)
	v.SetDefault("thresholds.basket_threshold", 90)
	v.SetDefault("thresholds.instrument_threshold", 90)
	v.SetDefault("thresholds.company_high_conf", 88.0)
	v.SetDefault("thresholds.company_high_conf_gap", 6.0)
	v.SetDefault("thresholds.company_uncertain", 76.0)

	// Spec.md §6's named environment variables are bound as explicit
	// aliases so they work without the ENTITYIDENTITY_ prefix.
	_ = v.BindEnv("snapshots.instruments_path", "GSMC_TICKERS_PATH")
	_ = v.BindEnv("snapshots.places_path", "ENTITYIDENTITY_FACILITIES_PATH")
	_ = v.BindEnv("snapshots.companies_path", "COMPANIES_DB_PATH")
	_ = v.BindEnv("snapshots.units_path", "UNITS_DB_PATH")

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
