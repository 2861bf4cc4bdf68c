package config

import (
	"errors"
	"fmt"
	"os"

	"power-bidding/internal/profile"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Forecast ForecastConfig `yaml:"forecast"`
	Bidding  BiddingConfig  `yaml:"bidding"`
	// Optional per-segment overrides of the built-in profile table.
	Profile *profile.Table `yaml:"profile"`
}

type ServerConfig struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	Pretty   bool   `yaml:"pretty_logs"`
}

type ForecastConfig struct {
	// Confidence is drawn uniformly from [ConfidenceLow, ConfidenceHigh].
	ConfidenceLow  float64 `yaml:"confidence_low"`
	ConfidenceHigh float64 `yaml:"confidence_high"`
	// BoundMargin is the relative half-width of the prediction interval.
	BoundMargin  float64 `yaml:"bound_margin"`
	DefaultModel string  `yaml:"default_model"`
}

type BiddingConfig struct {
	DefaultMaxCapacity float64 `yaml:"default_max_capacity"`
	DefaultMinCapacity float64 `yaml:"default_min_capacity"`
	DefaultRiskLevel   string  `yaml:"default_risk_level"`
	// EnforceMinCapacity floors per-slot quantities up to min capacity.
	// Off by default: historically min_capacity was accepted but never
	// applied, and flipping that silently would change every portfolio.
	EnforceMinCapacity bool `yaml:"enforce_min_capacity"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
			Pretty:   false,
		},
		Forecast: ForecastConfig{
			ConfidenceLow:  0.85,
			ConfidenceHigh: 0.95,
			BoundMargin:    0.10,
			DefaultModel:   "ensemble",
		},
		Bidding: BiddingConfig{
			DefaultMaxCapacity: 1000,
			DefaultMinCapacity: 100,
			DefaultRiskLevel:   "medium",
			EnforceMinCapacity: false,
		},
	}
}

// Load reads a YAML config, overlays it onto the defaults, and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config without validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return Merge(Default(), &file), nil
}

// Merge overlays non-zero fields from override onto base.
func Merge(base, override *Config) *Config {
	out := *base
	if override.Server.Port != "" {
		out.Server.Port = override.Server.Port
	}
	if override.Server.LogLevel != "" {
		out.Server.LogLevel = override.Server.LogLevel
	}
	if override.Server.Pretty {
		out.Server.Pretty = true
	}
	if override.Forecast.ConfidenceLow != 0 {
		out.Forecast.ConfidenceLow = override.Forecast.ConfidenceLow
	}
	if override.Forecast.ConfidenceHigh != 0 {
		out.Forecast.ConfidenceHigh = override.Forecast.ConfidenceHigh
	}
	if override.Forecast.BoundMargin != 0 {
		out.Forecast.BoundMargin = override.Forecast.BoundMargin
	}
	if override.Forecast.DefaultModel != "" {
		out.Forecast.DefaultModel = override.Forecast.DefaultModel
	}
	if override.Bidding.DefaultMaxCapacity != 0 {
		out.Bidding.DefaultMaxCapacity = override.Bidding.DefaultMaxCapacity
	}
	if override.Bidding.DefaultMinCapacity != 0 {
		out.Bidding.DefaultMinCapacity = override.Bidding.DefaultMinCapacity
	}
	if override.Bidding.DefaultRiskLevel != "" {
		out.Bidding.DefaultRiskLevel = override.Bidding.DefaultRiskLevel
	}
	if override.Bidding.EnforceMinCapacity {
		out.Bidding.EnforceMinCapacity = true
	}
	if override.Profile != nil {
		merged := mergeProfile(profile.DefaultTable(), *override.Profile)
		out.Profile = &merged
	}
	return &out
}

// mergeProfile overlays any segment fields set in override onto base, so a
// config file can tweak one ratio without restating the whole table.
func mergeProfile(base, override profile.Table) profile.Table {
	out := base
	out.MorningPeak = mergeSegment(base.MorningPeak, override.MorningPeak)
	out.EveningPeak = mergeSegment(base.EveningPeak, override.EveningPeak)
	out.NightTrough = mergeSegment(base.NightTrough, override.NightTrough)
	out.Normal = mergeSegment(base.Normal, override.Normal)
	return out
}

func mergeSegment(base, override profile.Segment) profile.Segment {
	out := base
	if override.PriceLow != 0 {
		out.PriceLow = override.PriceLow
	}
	if override.PriceHigh != 0 {
		out.PriceHigh = override.PriceHigh
	}
	if override.CapacityRatio != 0 {
		out.CapacityRatio = override.CapacityRatio
	}
	if override.PriceRatio != 0 {
		out.PriceRatio = override.PriceRatio
	}
	return out
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	f := c.Forecast
	if f.ConfidenceLow <= 0 || f.ConfidenceHigh > 1 || f.ConfidenceLow > f.ConfidenceHigh {
		return fmt.Errorf("forecast confidence band [%.2f, %.2f] must satisfy 0 < low <= high <= 1",
			f.ConfidenceLow, f.ConfidenceHigh)
	}
	if f.BoundMargin <= 0 || f.BoundMargin >= 1 {
		return fmt.Errorf("forecast bound_margin %.2f must be in (0, 1)", f.BoundMargin)
	}
	b := c.Bidding
	if b.DefaultMaxCapacity <= 0 {
		return errors.New("bidding default_max_capacity must be > 0")
	}
	if b.DefaultMinCapacity < 0 || b.DefaultMinCapacity > b.DefaultMaxCapacity {
		return errors.New("bidding default_min_capacity must satisfy 0 <= min <= max")
	}
	if err := c.ProfileTable().Validate(); err != nil {
		return fmt.Errorf("profile config invalid: %w", err)
	}
	return nil
}

// ProfileTable returns the effective segment table: the built-in policy with
// any file overrides already applied.
func (c *Config) ProfileTable() profile.Table {
	if c.Profile != nil {
		return *c.Profile
	}
	return profile.DefaultTable()
}
