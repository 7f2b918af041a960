package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/responsiv/internal/leads"
	"github.com/san-kum/responsiv/internal/metrics"
	"github.com/san-kum/responsiv/internal/sim"
)

const (
	DefaultQuality      = "perfect"
	DefaultDevice       = "desktop"
	DefaultEra          = "2026"
	DefaultSeriesLength = metrics.DefaultLength
	DefaultTickInterval = metrics.DefaultInterval
	DefaultSubmitDelay  = leads.DefaultDelay
	DefaultLogLevel     = "info"
	EnvPrefix           = "RESPONSIV_"
)

var ErrUnknownPreset = errors.New("unknown preset")

type Config struct {
	Quality       string        `yaml:"quality" env:"QUALITY"`
	Device        string        `yaml:"device" env:"DEVICE"`
	Era           string        `yaml:"era" env:"ERA"`
	SimulateUser  bool          `yaml:"simulate_user" env:"SIMULATE_USER"`
	Cinematic     bool          `yaml:"cinematic" env:"CINEMATIC"`
	ShowAnalytics bool          `yaml:"show_analytics" env:"SHOW_ANALYTICS"`
	SeriesLength  int           `yaml:"series_length" env:"SERIES_LENGTH"`
	TickInterval  time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	SubmitDelay   time.Duration `yaml:"submit_delay" env:"SUBMIT_DELAY"`
	Seed          int64         `yaml:"seed" env:"SEED"`
	LogFile       string        `yaml:"log_file" env:"LOG_FILE"`
	LogLevel      string        `yaml:"log_level" env:"LOG_LEVEL"`
}

func DefaultConfig() *Config {
	return &Config{
		Quality:       DefaultQuality,
		Device:        DefaultDevice,
		Era:           DefaultEra,
		ShowAnalytics: true,
		SeriesLength:  DefaultSeriesLength,
		TickInterval:  DefaultTickInterval,
		SubmitDelay:   DefaultSubmitDelay,
		LogLevel:      DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes the file over cfg. Keys absent from the file keep their
// current values.
func LoadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Resolve layers defaults, the named preset, the config file and RESPONSIV_*
// variables, in that order. Empty preset or path skip that layer.
func Resolve(preset, path string) (*Config, error) {
	return resolve(preset, path, (*Config).ApplyEnv)
}

// ResolveFrom is Resolve over an explicit environment, for tests.
func ResolveFrom(preset, path string, environ map[string]string) (*Config, error) {
	return resolve(preset, path, func(c *Config) error { return c.ApplyEnvFrom(environ) })
}

func resolve(preset, path string, applyEnv func(*Config) error) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		cfg = GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, preset, ListPresets())
		}
	}
	if path != "" {
		if err := LoadInto(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from RESPONSIV_* variables. Unset variables leave
// the current value alone.
func (c *Config) ApplyEnv() error {
	return env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix})
}

// ApplyEnvFrom is ApplyEnv over an explicit environment, for tests.
func (c *Config) ApplyEnvFrom(environ map[string]string) error {
	return env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix, Environment: environ})
}

// State parses the textual fields into the initial presentation state.
func (c *Config) State() (sim.State, error) {
	q, err := sim.ParseQuality(c.Quality)
	if err != nil {
		return sim.State{}, err
	}
	d, err := sim.ParseDevice(c.Device)
	if err != nil {
		return sim.State{}, err
	}
	e, err := sim.ParseEra(c.Era)
	if err != nil {
		return sim.State{}, err
	}
	return sim.State{
		Quality:       q,
		Device:        d,
		Era:           e,
		SimulateUser:  c.SimulateUser,
		CinematicMode: c.Cinematic,
		ShowAnalytics: c.ShowAnalytics,
	}, nil
}

// Normalize replaces non-positive tuning values with defaults.
func (c *Config) Normalize() {
	if c.SeriesLength <= 0 {
		c.SeriesLength = DefaultSeriesLength
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.SubmitDelay < 0 {
		c.SubmitDelay = DefaultSubmitDelay
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
