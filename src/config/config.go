// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings read at startup.
type Config struct {
	DataDir    string        `env:"CHATFLOW_DATA_DIR"    envDefault:".chatflow"`
	ProfileDB  string        `env:"CHATFLOW_PROFILE_DB"`
	LoginDelay time.Duration `env:"CHATFLOW_LOGIN_DELAY" envDefault:"1s"`
	LogLevel   string        `env:"CHATFLOW_LOG_LEVEL"   envDefault:"info"`
	LogFile    string        `env:"CHATFLOW_LOG_FILE"`
	Seed       bool          `env:"CHATFLOW_SEED"        envDefault:"true"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given environment instead of the process one.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ProfileDB == "" {
		cfg.ProfileDB = filepath.Join(cfg.DataDir, "profile.db")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "chatflow.log")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	if c.LoginDelay < 0 {
		return fmt.Errorf("CHATFLOW_LOGIN_DELAY must not be negative, got %s", c.LoginDelay)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown CHATFLOW_LOG_LEVEL %q", c.LogLevel)
	}
}
