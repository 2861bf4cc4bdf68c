// Package bidding converts a predicted-price series into a risk-adjusted
// bid portfolio: one bid per quarter-hour slot with an estimated win
// probability and expected profit.
package bidding

import (
	"fmt"
	"math"

	"power-bidding/internal/analysis"
	"power-bidding/internal/model"
	"power-bidding/internal/profile"
)

// marginalCostRatio approximates the generator's marginal cost as a fraction
// of the predicted clearing price when estimating profit.
const marginalCostRatio = 0.7

// Optimizer builds bid portfolios from predicted prices using the day
// segment table's capacity and price ratios.
type Optimizer struct {
	table profile.Table
	// enforceMinCapacity floors quantities up to the request's min capacity.
	// Kept behind a knob: the historical behavior accepted min_capacity but
	// never applied it.
	enforceMinCapacity bool
}

// New builds an optimizer over the given segment table.
func New(table profile.Table, enforceMinCapacity bool) *Optimizer {
	return &Optimizer{table: table, enforceMinCapacity: enforceMinCapacity}
}

// Optimize computes one bid per slot for a full trading day.
//
// predictedPrices ideally has 96 entries; shorter inputs have their missing
// slots filled with the arithmetic mean of the supplied values, and those
// slot indexes are reported in the portfolio's FallbackSlots. Entries beyond
// slot 95 are ignored.
func (o *Optimizer) Optimize(predictedPrices []float64, maxCapacity, minCapacity float64, risk model.RiskLevel) (*model.BidPortfolio, error) {
	if len(predictedPrices) == 0 {
		return nil, model.NewInvalidInput("predicted_prices", "at least one predicted price is required")
	}
	sum := 0.0
	for i, p := range predictedPrices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, model.NewInvalidInput("predicted_prices", "entry %d is not a finite number", i)
		}
		if p < 0 {
			return nil, model.NewInvalidInput("predicted_prices", "entry %d is negative (%.2f)", i, p)
		}
		sum += p
	}
	if maxCapacity <= 0 {
		return nil, model.NewInvalidInput("max_capacity", "must be > 0, got %.2f", maxCapacity)
	}
	if minCapacity < 0 || minCapacity > maxCapacity {
		return nil, model.NewInvalidInput("min_capacity", "must satisfy 0 <= min (%.2f) <= max (%.2f)", minCapacity, maxCapacity)
	}

	meanPrice := sum / float64(len(predictedPrices))
	riskFactor := risk.Factor()

	entries := make([]model.BidEntry, model.SlotsPerDay)
	var fallback []int
	for i := range entries {
		predicted := meanPrice
		if i < len(predictedPrices) {
			predicted = predictedPrices[i]
		} else {
			fallback = append(fallback, i)
		}

		seg := o.table.SegmentForSlot(i)

		quantity := math.Round(maxCapacity * seg.CapacityRatio)
		if o.enforceMinCapacity && quantity < minCapacity {
			quantity = math.Min(minCapacity, maxCapacity)
		}

		bidPrice := round2(predicted * seg.PriceRatio * riskFactor)
		winProb := clamp(0.95-(seg.PriceRatio-1)*0.5, 0.1, 0.95)
		profit := math.Round(quantity * (bidPrice - predicted*marginalCostRatio) * winProb)

		entries[i] = model.BidEntry{
			SlotIndex:      i,
			TimePeriod:     slotPeriod(i),
			BidPrice:       bidPrice,
			BidQuantity:    quantity,
			WinProbability: winProb,
			ExpectedProfit: profit,
			PredictedPrice: predicted,
		}
	}

	portfolio := &model.BidPortfolio{
		RiskLevel:     risk,
		Entries:       entries,
		FallbackSlots: fallback,
	}
	portfolio.Summary = analysis.Summarize(portfolio)
	return portfolio, nil
}

// slotPeriod formats slot i as its "HH:MM" start time.
func slotPeriod(i int) string {
	return fmt.Sprintf("%02d:%02d", i/4, (i%4)*15)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
