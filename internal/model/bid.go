package model

// RiskLevel selects how aggressively bids are priced.
// Keep these values stable; they are used in requests and CSV output.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Factor maps a risk level to the scalar multiplier applied to bid prices.
// Unrecognized levels behave as medium.
func (r RiskLevel) Factor() float64 {
	switch r {
	case RiskLow:
		return 0.9
	case RiskHigh:
		return 1.1
	default:
		return 1.0
	}
}

// BidEntry is one slot's proposed bid.
type BidEntry struct {
	SlotIndex      int     `json:"slot_index"`
	TimePeriod     string  `json:"time_period"` // "HH:MM"
	BidPrice       float64 `json:"bid_price"`
	BidQuantity    float64 `json:"bid_quantity"`
	WinProbability float64 `json:"win_probability"` // clamped to [0.1, 0.95]
	ExpectedProfit float64 `json:"expected_profit"` // may be negative
	PredictedPrice float64 `json:"predicted_price"`
}

// Summary holds the headline statistics for a portfolio.
type Summary struct {
	TotalCapacity         float64 `json:"total_capacity"`
	AverageWinProbability float64 `json:"average_win_probability"`
	ExpectedProfit        float64 `json:"expected_profit"`
	AverageBidPrice       float64 `json:"average_bid_price"`
	TotalBids             int     `json:"total_bids"`
}

// BidPortfolio is the full set of 96 BidEntries for one optimize request.
// FallbackSlots lists the slot indexes whose predicted price was substituted
// with the mean of the supplied series because the input was short.
type BidPortfolio struct {
	RiskLevel     RiskLevel  `json:"risk_level"`
	Entries       []BidEntry `json:"entries"`
	Summary       Summary    `json:"summary"`
	FallbackSlots []int      `json:"fallback_slots,omitempty"`
}
