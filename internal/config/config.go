// Package config resolves runtime settings from an optional ~/.tortuga.yaml
// file and TORTUGA_* environment variables, environment winning.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const envPrefix = "tortuga"

type Config struct {
	// DBPath overrides the sqlite file location (default ~/.tortuga.db).
	DBPath string `envconfig:"DB_PATH" yaml:"db_path"`
	// LogLevel is a logrus level name. The default lives in Load, not in a
	// struct tag: envconfig applies tag defaults whenever the variable is
	// unset, which would stomp a value read from the yaml file.
	LogLevel string `envconfig:"LOG_LEVEL" yaml:"log_level"`
	// Today overrides the current calendar day (YYYY-MM-DD). Meant for
	// testing daily resets and streaks without touching the clock.
	Today string `envconfig:"TODAY" yaml:"today"`
}

// DefaultFilePath returns ~/.tortuga.yaml.
func DefaultFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".tortuga.yaml"), nil
}

// Load reads the yaml file if present, then applies environment overrides.
func Load() (*Config, error) {
	var cfg Config

	path, err := DefaultFilePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// No config file is the common case.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed logrus level. Validate must have passed.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
