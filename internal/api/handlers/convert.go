package handlers

import (
	"errors"
	"net/http"

	"power-bidding/internal/analysis"
	"power-bidding/internal/api/models"
	"power-bidding/internal/forecast"
	"power-bidding/internal/model"

	"github.com/gin-gonic/gin"
)

// writeError maps a core error to the JSON error shape. Validation failures
// become 400s that name the offending field; anything else is a 500.
func writeError(c *gin.Context, err error) {
	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: invalid.Message,
				Details: map[string]interface{}{"field": invalid.Field},
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		},
	})
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

func toForecastResponse(res *forecast.Result) models.ForecastResponse {
	stats := analysis.SummarizeSeries(res.Series)
	predictions := make([]models.Prediction, len(res.Series.Slots))
	for i, s := range res.Series.Slots {
		predictions[i] = models.Prediction{
			SlotIndex:  s.SlotIndex,
			Timestamp:  s.Timestamp,
			Price:      s.Price,
			Confidence: s.Confidence,
			LowerBound: s.LowerBound,
			UpperBound: s.UpperBound,
		}
	}
	return models.ForecastResponse{
		Date:        res.Series.Date.Format("2006-01-02"),
		Predictions: predictions,
		Statistics: models.ForecastStatistics{
			Count:             stats.Count,
			AveragePrice:      stats.AveragePrice,
			AverageConfidence: stats.AverageConfidence,
			MinPrice:          stats.MinPrice,
			MaxPrice:          stats.MaxPrice,
		},
		ModelInfo: models.ModelInfo{
			Name:    res.Model.Name,
			Source:  res.Model.Source,
			Version: res.Model.Version,
		},
	}
}

func toOptimizeResponse(p *model.BidPortfolio, recommendations []string) models.OptimizeResponse {
	bids := make([]models.OptimizedBid, len(p.Entries))
	for i, e := range p.Entries {
		bids[i] = models.OptimizedBid{
			SlotIndex:      e.SlotIndex,
			TimePeriod:     e.TimePeriod,
			BidPrice:       e.BidPrice,
			BidQuantity:    e.BidQuantity,
			WinProbability: e.WinProbability,
			ExpectedProfit: e.ExpectedProfit,
			PredictedPrice: e.PredictedPrice,
		}
	}
	return models.OptimizeResponse{
		RiskLevel:     string(p.RiskLevel),
		OptimizedBids: bids,
		Summary: models.BidSummary{
			TotalCapacity:         p.Summary.TotalCapacity,
			AverageWinProbability: p.Summary.AverageWinProbability,
			ExpectedProfit:        p.Summary.ExpectedProfit,
			AverageBidPrice:       p.Summary.AverageBidPrice,
			TotalBids:             p.Summary.TotalBids,
		},
		Recommendations: recommendations,
		FallbackSlots:   p.FallbackSlots,
	}
}
