// Package config loads runtime settings for the solving service from an
// optional config file and ILPD_-prefixed environment variables. Environment
// variables win over the file, the file wins over defaults.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/polyhedral/ilpd/solver"
)

// Config is the runtime configuration of the batch runner.
type Config struct {
	// Backend selects the solving engine by registry name.
	Backend string `mapstructure:"backend"`
	// Presolve toggles the engine presolver where the backend supports one.
	Presolve bool `mapstructure:"presolve"`
	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the configuration. path optionally names a config file; when
// empty, ilpd.yaml is looked up in the working directory and a missing file
// is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("backend", "glpk")
	v.SetDefault("presolve", true)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("ILPD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "config: read")
		}
	} else {
		v.SetConfigName("ilpd")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "config: read")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := solver.New(c.Backend); err != nil {
		return errors.Wrap(err, "config: backend")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.Errorf("config: unknown log level %q", c.LogLevel)
	}
}
