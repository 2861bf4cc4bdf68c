// Package forecast produces the 96-slot intraday price series a bid
// portfolio is built from. The randomness source is injected so tests can
// pin a seed and assert exact outputs.
package forecast

import (
	"math/rand"
	"strings"
	"time"

	"power-bidding/internal/config"
	"power-bidding/internal/model"
	"power-bidding/internal/profile"
)

// Result bundles a forecast with the identity of the model that ran.
// When the requested model name is unknown, Requested keeps the caller's
// spelling and Model describes what actually produced the series.
type Result struct {
	Series    model.PriceSeries
	Model     Info
	Requested string
}

// Engine dispatches forecast requests to a registered model.
type Engine struct {
	models       map[string]Model
	defaultAlias string
	seed         func() int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed pins the RNG seed, making every forecast reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = func() int64 { return seed }
	}
}

// New builds an engine with the synthetic profile model registered under the
// configured default alias plus its canonical names.
func New(table profile.Table, cfg config.ForecastConfig, opts ...Option) *Engine {
	e := &Engine{
		models:       map[string]Model{},
		defaultAlias: strings.ToLower(cfg.DefaultModel),
		seed:         func() int64 { return time.Now().UnixNano() },
	}
	synthetic := SyntheticModel{
		Table:          table,
		ConfidenceLow:  cfg.ConfidenceLow,
		ConfidenceHigh: cfg.ConfidenceHigh,
		BoundMargin:    cfg.BoundMargin,
	}
	e.Register(synthetic, e.defaultAlias, "synthetic-profile", "profile", "synthetic")
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register makes a model selectable under the given aliases.
func (e *Engine) Register(m Model, aliases ...string) {
	for _, a := range aliases {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			e.models[a] = m
		}
	}
}

// Models lists the registered models, deduplicated by identity.
func (e *Engine) Models() []Info {
	seen := map[string]bool{}
	out := make([]Info, 0, len(e.models))
	for _, m := range e.models {
		info := m.Info()
		if !seen[info.Name] {
			seen[info.Name] = true
			out = append(out, info)
		}
	}
	return out
}

// Forecast produces the price series for one calendar date.
// modelName is resolved against the registry; unknown or empty names fall
// back to the default model, and the result reports which model ran.
func (e *Engine) Forecast(date time.Time, modelName string) (*Result, error) {
	if date.IsZero() {
		return nil, model.NewInvalidInput("date", "date is required")
	}

	requested := strings.ToLower(strings.TrimSpace(modelName))
	if requested == "" {
		requested = e.defaultAlias
	}
	m, ok := e.models[requested]
	if !ok {
		m = e.models[e.defaultAlias]
	}

	rng := rand.New(rand.NewSource(e.seed()))
	series, err := m.Predict(date, rng)
	if err != nil {
		return nil, err
	}
	return &Result{Series: series, Model: m.Info(), Requested: requested}, nil
}

// ParseDate parses the wire-format forecast date (ISO "YYYY-MM-DD").
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, model.NewInvalidInput("date", "date is required")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, model.NewInvalidInput("date", "expected YYYY-MM-DD, got %q", s)
	}
	return t, nil
}
