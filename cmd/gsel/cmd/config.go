package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read as configuration,
// e.g. GSEL_CURVE or GSEL_CRS_POLICY.
const EnvPrefix = "GSEL"

// Config is the resolved configuration of one invocation.
type Config struct {
	Curve string `mapstructure:"curve"`
	Log   struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CRS struct {
		Policy string `mapstructure:"policy"`
	} `mapstructure:"crs"`
	Selftest struct {
		Statements int `mapstructure:"statements"`
		Workers    int `mapstructure:"workers"`
	} `mapstructure:"selftest"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("curve", "bls12-381")
	v.SetDefault("log.level", "info")
	v.SetDefault("selftest.statements", 8)
	v.SetDefault("selftest.workers", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// crs.policy has no default; bind it so Unmarshal sees the env var.
	_ = v.BindEnv("crs.policy")
	return v
}

// loadConfig reads the config file (an explicit path, or gsel.yaml in the
// working directory if present) and decodes the merged settings.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gsel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a console logger on w at the configured level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}
