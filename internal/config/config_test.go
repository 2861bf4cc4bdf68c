package config

import (
	"os"
	"path/filepath"
	"testing"

	"power-bidding/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0.85, cfg.Forecast.ConfidenceLow)
	assert.Equal(t, 0.95, cfg.Forecast.ConfidenceHigh)
	assert.Equal(t, "ensemble", cfg.Forecast.DefaultModel)
	assert.Equal(t, 1000.0, cfg.Bidding.DefaultMaxCapacity)
	assert.Equal(t, 100.0, cfg.Bidding.DefaultMinCapacity)
	assert.False(t, cfg.Bidding.EnforceMinCapacity)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: "9090"
  log_level: debug
bidding:
  default_max_capacity: 2000
  enforce_min_capacity: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 2000.0, cfg.Bidding.DefaultMaxCapacity)
	assert.True(t, cfg.Bidding.EnforceMinCapacity)
	// Untouched fields keep their defaults.
	assert.Equal(t, 100.0, cfg.Bidding.DefaultMinCapacity)
	assert.Equal(t, 0.10, cfg.Forecast.BoundMargin)
}

func TestLoad_ProfileSegmentOverride(t *testing.T) {
	path := writeTempConfig(t, `
profile:
  evening_peak:
    price_high: 800
    capacity_ratio: 0.95
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	table := cfg.ProfileTable()
	assert.Equal(t, 800.0, table.EveningPeak.PriceHigh)
	assert.Equal(t, 0.95, table.EveningPeak.CapacityRatio)
	// Unset fields fall back to the built-in policy.
	assert.Equal(t, 600.0, table.EveningPeak.PriceLow)
	assert.Equal(t, 1.15, table.EveningPeak.PriceRatio)
	assert.Equal(t, profile.EveningPeak, table.EveningPeak.Name)
	// Other segments untouched.
	assert.Equal(t, 0.3, table.NightTrough.CapacityRatio)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"min above max", "bidding:\n  default_min_capacity: 5000\n"},
		{"bad confidence band", "forecast:\n  confidence_low: 0.99\n  confidence_high: 0.90\n"},
		{"bad bound margin", "forecast:\n  bound_margin: 1.5\n"},
		{"bad capacity ratio", "profile:\n  normal:\n    capacity_ratio: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestProfileTable_DefaultWhenUnset(t *testing.T) {
	cfg := Default()
	assert.Equal(t, profile.DefaultTable(), cfg.ProfileTable())
}
