package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "LVSEARCH"

// Loader loads configuration from files.
type Loader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperLoader implements Loader using Viper.
type viperLoader struct {
	validator Validator
}

// NewLoader creates a Loader that validates with v.
func NewLoader(v Validator) Loader {
	return &viperLoader{validator: v}
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. The file must exist.
func (l *viperLoader) Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.decode(v)
}

// LoadWithDefaults is Load, except that an empty path or a missing file
// yields the defaults (still subject to environment overrides).
func (l *viperLoader) LoadWithDefaults(path string) (*Config, error) {
	if path == "" {
		return l.decode(newViper())
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return l.decode(newViper())
	}

	return l.Load(path)
}

// decode unmarshals v into a Config and validates it.
func (l *viperLoader) decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := l.validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// newViper returns a Viper instance seeded with DefaultConfig and bound to
// LVSEARCH_* environment variables. Every key has a default, which is what
// lets AutomaticEnv reach it during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault("search.algorithm", d.Search.Algorithm)
	v.SetDefault("search.heuristic", d.Search.Heuristic)
	v.SetDefault("search.diagonal", d.Search.Diagonal)
	v.SetDefault("search.max_expansions", d.Search.MaxExpansions)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.show_path", d.Output.ShowPath)
	v.SetDefault("output.show_explored", d.Output.ShowExplored)
	v.SetDefault("output.verify", d.Output.Verify)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}
