package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a pulsar invocation.
// Values are populated from .pulsar.yaml, PULSAR_* env vars, and CLI flags.
type Config struct {
	Damping       float64 `mapstructure:"damping"`
	Samples       int     `mapstructure:"samples"`
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
	Precision     int     `mapstructure:"precision"`
	Verbose       bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("damping", 0.85)
	viper.SetDefault("samples", 10000)
	viper.SetDefault("tolerance", 0.001)
	viper.SetDefault("max_iterations", 200)
	viper.SetDefault("precision", 4)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
