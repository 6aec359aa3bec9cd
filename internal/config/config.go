// Package config layers CLI settings from defaults, an optional h2si.yaml,
// H2SI_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to setting names when reading the environment,
// e.g. H2SI_SAMPLES.
const EnvPrefix = "H2SI"

// Settings is the resolved configuration for one CLI invocation.
type Settings struct {
	Samples   int     `mapstructure:"samples"`
	Seed      uint64  `mapstructure:"seed"`
	Tolerance float64 `mapstructure:"tolerance"`
	Precision int     `mapstructure:"precision"`
	Verbose   int     `mapstructure:"verbose"`
	Templates string  `mapstructure:"templates"`
	Out       string  `mapstructure:"out"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("samples", 100_000)
	v.SetDefault("seed", 1)
	v.SetDefault("tolerance", 1e-10)
	v.SetDefault("precision", 6)
	v.SetDefault("verbose", 0)
	v.SetDefault("templates", "templates")
	v.SetDefault("out", "output")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// ReadFile loads path into v. With an empty path it looks for h2si.yaml in
// the working directory and is silent when none exists.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("h2si")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}

	if s.Samples <= 0 {
		return Settings{}, fmt.Errorf("samples must be positive, got %d", s.Samples)
	}
	if !(s.Tolerance > 0) {
		return Settings{}, fmt.Errorf("tolerance must be positive, got %g", s.Tolerance)
	}
	if s.Precision < 0 || s.Precision > 17 {
		return Settings{}, fmt.Errorf("precision must be within [0, 17], got %d", s.Precision)
	}
	return s, nil
}
