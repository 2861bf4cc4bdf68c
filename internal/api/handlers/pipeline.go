package handlers

import (
	"net/http"

	"power-bidding/internal/analysis"
	"power-bidding/internal/api/models"
	"power-bidding/internal/forecast"

	"github.com/gin-gonic/gin"
)

// PipelineHandler chains the two operations: forecast a date, then optimize
// bids against the forecast prices.
type PipelineHandler struct {
	forecasts *ForecastHandler
	bids      *BidHandler
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(forecasts *ForecastHandler, bids *BidHandler) *PipelineHandler {
	return &PipelineHandler{forecasts: forecasts, bids: bids}
}

// Run handles POST /api/v1/pipeline
func (h *PipelineHandler) Run(c *gin.Context) {
	var req models.PipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	date, err := forecast.ParseDate(req.Date)
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := h.forecasts.engine.Forecast(date, req.Model)
	if err != nil {
		writeError(c, err)
		return
	}

	portfolio, err := h.bids.run(res.Series.Prices(), req.MaxCapacity, req.MinCapacity, req.RiskLevel)
	if err != nil {
		writeError(c, err)
		return
	}

	recs := analysis.Recommendations(h.bids.table, portfolio)
	c.JSON(http.StatusOK, models.PipelineResponse{
		Forecast: toForecastResponse(res),
		Bids:     toOptimizeResponse(portfolio, recs),
	})
}
