package models

// ForecastRequest represents the request body for a day-ahead forecast.
type ForecastRequest struct {
	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Model string `json:"model,omitempty"`         // default: "ensemble"
}

// OptimizeRequest represents the request body for bid optimization.
// Capacity and risk fields fall back to the configured defaults when omitted.
type OptimizeRequest struct {
	PredictedPrices []float64 `json:"predicted_prices" binding:"required"` // ideally length 96
	MaxCapacity     float64   `json:"max_capacity,omitempty"`              // default: 1000
	MinCapacity     float64   `json:"min_capacity,omitempty"`              // default: 100
	RiskLevel       string    `json:"risk_level,omitempty"`                // low|medium|high, default: medium
}

// PipelineRequest runs a forecast and feeds it straight into the optimizer,
// the sequence the dashboard otherwise issues as two calls.
type PipelineRequest struct {
	Date        string  `json:"date" binding:"required"`
	Model       string  `json:"model,omitempty"`
	MaxCapacity float64 `json:"max_capacity,omitempty"`
	MinCapacity float64 `json:"min_capacity,omitempty"`
	RiskLevel   string  `json:"risk_level,omitempty"`
}
