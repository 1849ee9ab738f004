// Package config loads runtime settings from a config file, ASSETS_*
// environment variables and endpoint profiles.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

const EnvPrefix = "ASSETS"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Source  SourceConfig  `mapstructure:"source"`
	View    ViewConfig    `mapstructure:"view"`
	Log     LogConfig     `mapstructure:"log"`
	Refresh RefreshConfig `mapstructure:"refresh"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type SourceConfig struct {
	Kind     string        `mapstructure:"kind"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Fallback bool          `mapstructure:"fallback"`
	Profile  string        `mapstructure:"profile"`
}

type ViewConfig struct {
	Window   string `mapstructure:"window"`
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// RefreshConfig limits manual refreshes: Rate per second with bursts of Burst.
type RefreshConfig struct {
	Rate  float64 `mapstructure:"rate"`
	Burst int     `mapstructure:"burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("source.kind", "opencost")
	v.SetDefault("source.base_url", "http://localhost:9003")
	v.SetDefault("source.timeout", 30*time.Second)
	v.SetDefault("source.fallback", false)
	v.SetDefault("source.profile", "")
	v.SetDefault("view.window", string(domain.DefaultWindow))
	v.SetDefault("view.currency", domain.DefaultCurrency)
	v.SetDefault("log.level", "info")
	v.SetDefault("refresh.rate", 1.0)
	v.SetDefault("refresh.burst", 3)
}

// Load reads path when it is set, then applies ASSETS_* environment overrides
// (ASSETS_SOURCE_BASE_URL for source.base_url).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := domain.ParseWindow(c.View.Window); err != nil {
		return fmt.Errorf("view.window: %w", err)
	}
	if c.Source.Kind == "" {
		return errors.New("source.kind is required")
	}
	if c.Refresh.Rate <= 0 || c.Refresh.Burst <= 0 {
		return errors.New("refresh.rate and refresh.burst must be positive")
	}
	return nil
}

// ApplyProfile overrides the endpoint and currency with the values of a
// profile. Empty profile values leave the config unchanged.
func (c *Config) ApplyProfile(p Profile) {
	if p.URL != "" {
		c.Source.BaseURL = p.URL
	}
	if p.Currency != "" {
		c.View.Currency = p.Currency
	}
}

// Window returns the configured default window. Load has validated it.
func (c *Config) Window() domain.Window {
	w, err := domain.ParseWindow(c.View.Window)
	if err != nil {
		return domain.DefaultWindow
	}
	return w
}
