package handlers

import (
	"net/http"

	"power-bidding/internal/analysis"
	"power-bidding/internal/api/models"
	"power-bidding/internal/bidding"
	"power-bidding/internal/config"
	"power-bidding/internal/model"
	"power-bidding/internal/profile"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BidHandler handles bid-optimization requests
type BidHandler struct {
	optimizer *bidding.Optimizer
	table     profile.Table
	defaults  config.BiddingConfig
	log       zerolog.Logger
}

// NewBidHandler creates a new bid handler
func NewBidHandler(optimizer *bidding.Optimizer, table profile.Table, defaults config.BiddingConfig, log zerolog.Logger) *BidHandler {
	return &BidHandler{optimizer: optimizer, table: table, defaults: defaults, log: log}
}

// Optimize handles POST /api/v1/bids/optimize
func (h *BidHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	portfolio, err := h.run(req.PredictedPrices, req.MaxCapacity, req.MinCapacity, req.RiskLevel)
	if err != nil {
		writeError(c, err)
		return
	}

	recs := analysis.Recommendations(h.table, portfolio)
	c.JSON(http.StatusOK, toOptimizeResponse(portfolio, recs))
}

// run applies the configured defaults and executes the optimizer, logging
// when short inputs had slots backfilled with the series mean.
func (h *BidHandler) run(prices []float64, maxCap, minCap float64, risk string) (*model.BidPortfolio, error) {
	if maxCap == 0 {
		maxCap = h.defaults.DefaultMaxCapacity
	}
	if minCap == 0 {
		minCap = h.defaults.DefaultMinCapacity
	}
	if risk == "" {
		risk = h.defaults.DefaultRiskLevel
	}

	portfolio, err := h.optimizer.Optimize(prices, maxCap, minCap, model.RiskLevel(risk))
	if err != nil {
		return nil, err
	}

	if len(portfolio.FallbackSlots) > 0 {
		h.log.Warn().
			Int("supplied", len(prices)).
			Int("fallback_slots", len(portfolio.FallbackSlots)).
			Msg("short price series, missing slots filled with mean")
	}
	h.log.Info().
		Str("risk_level", string(portfolio.RiskLevel)).
		Float64("total_capacity", portfolio.Summary.TotalCapacity).
		Float64("expected_profit", portfolio.Summary.ExpectedProfit).
		Msg("portfolio optimized")

	return portfolio, nil
}
