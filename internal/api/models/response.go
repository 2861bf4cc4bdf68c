package models

import "time"

// Prediction is one forecast slot on the wire.
type Prediction struct {
	SlotIndex  int       `json:"slot_index"`
	Timestamp  time.Time `json:"timestamp"`
	Price      float64   `json:"price"`
	Confidence float64   `json:"confidence"`
	LowerBound float64   `json:"lower_bound"`
	UpperBound float64   `json:"upper_bound"`
}

// ForecastStatistics summarizes a prediction series.
type ForecastStatistics struct {
	Count             int     `json:"count"`
	AveragePrice      float64 `json:"average_price"`
	AverageConfidence float64 `json:"average_confidence"`
	MinPrice          float64 `json:"min_price"`
	MaxPrice          float64 `json:"max_price"`
}

// ModelInfo identifies the forecast model that produced a response.
type ModelInfo struct {
	Name    string `json:"name"`
	Source  string `json:"source"`
	Version string `json:"version"`
}

// ForecastResponse represents the response from the forecast operation.
type ForecastResponse struct {
	Date        string             `json:"date"`
	Predictions []Prediction       `json:"predictions"`
	Statistics  ForecastStatistics `json:"statistics"`
	ModelInfo   ModelInfo          `json:"model_info"`
}

// OptimizedBid is one slot's bid on the wire.
type OptimizedBid struct {
	SlotIndex      int     `json:"slot_index"`
	TimePeriod     string  `json:"time_period"`
	BidPrice       float64 `json:"bid_price"`
	BidQuantity    float64 `json:"bid_quantity"`
	WinProbability float64 `json:"win_probability"`
	ExpectedProfit float64 `json:"expected_profit"`
	PredictedPrice float64 `json:"predicted_price"`
}

// BidSummary contains the aggregated portfolio statistics.
type BidSummary struct {
	TotalCapacity         float64 `json:"total_capacity"`
	AverageWinProbability float64 `json:"average_win_probability"`
	ExpectedProfit        float64 `json:"expected_profit"`
	AverageBidPrice       float64 `json:"average_bid_price"`
	TotalBids             int     `json:"total_bids"`
}

// OptimizeResponse represents the response from the optimize operation.
type OptimizeResponse struct {
	RiskLevel       string         `json:"risk_level"`
	OptimizedBids   []OptimizedBid `json:"optimized_bids"`
	Summary         BidSummary     `json:"summary"`
	Recommendations []string       `json:"recommendations"`
	FallbackSlots   []int          `json:"fallback_slots,omitempty"`
}

// PipelineResponse bundles a forecast with the portfolio built from it.
type PipelineResponse struct {
	Forecast ForecastResponse `json:"forecast"`
	Bids     OptimizeResponse `json:"bids"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
