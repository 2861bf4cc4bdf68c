// Package analysis reduces portfolios and price series to headline numbers
// and turns threshold rules into human-readable recommendations.
package analysis

import (
	"fmt"
	"math"

	"power-bidding/internal/model"
	"power-bidding/internal/profile"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize reduces a portfolio to its headline statistics. It is a pure
// reduction: calling it twice on the same portfolio yields identical values.
func Summarize(p *model.BidPortfolio) model.Summary {
	if p == nil || len(p.Entries) == 0 {
		return model.Summary{}
	}

	quantities := make([]float64, len(p.Entries))
	winProbs := make([]float64, len(p.Entries))
	bidPrices := make([]float64, len(p.Entries))
	profits := make([]float64, len(p.Entries))
	for i, e := range p.Entries {
		quantities[i] = e.BidQuantity
		winProbs[i] = e.WinProbability
		bidPrices[i] = e.BidPrice
		profits[i] = e.ExpectedProfit
	}

	return model.Summary{
		TotalCapacity:         floats.Sum(quantities),
		AverageWinProbability: stat.Mean(winProbs, nil),
		ExpectedProfit:        math.Round(floats.Sum(profits)),
		AverageBidPrice:       stat.Mean(bidPrices, nil),
		TotalBids:             len(p.Entries),
	}
}

// SeriesStats are the headline numbers attached to a forecast response.
type SeriesStats struct {
	Count             int     `json:"count"`
	AveragePrice      float64 `json:"average_price"`
	AverageConfidence float64 `json:"average_confidence"`
	MinPrice          float64 `json:"min_price"`
	MaxPrice          float64 `json:"max_price"`
}

// SummarizeSeries reduces a price series to its headline statistics.
func SummarizeSeries(s model.PriceSeries) SeriesStats {
	if len(s.Slots) == 0 {
		return SeriesStats{}
	}
	prices := make([]float64, len(s.Slots))
	confs := make([]float64, len(s.Slots))
	for i, slot := range s.Slots {
		prices[i] = slot.Price
		confs[i] = slot.Confidence
	}
	return SeriesStats{
		Count:             len(s.Slots),
		AveragePrice:      stat.Mean(prices, nil),
		AverageConfidence: stat.Mean(confs, nil),
		MinPrice:          floats.Min(prices),
		MaxPrice:          floats.Max(prices),
	}
}

// Recommendations derives presentation strings from threshold rules over a
// summarized portfolio. They carry no control-affecting data.
func Recommendations(table profile.Table, p *model.BidPortfolio) []string {
	if p == nil || len(p.Entries) == 0 {
		return nil
	}
	summary := p.Summary

	var out []string

	var peakQty, offPeakQty, peakCount, offPeakCount float64
	var lossSlots int
	var predictedSum float64
	for _, e := range p.Entries {
		seg := table.SegmentForSlot(e.SlotIndex)
		if seg.Name == profile.MorningPeak || seg.Name == profile.EveningPeak {
			peakQty += e.BidQuantity
			peakCount++
		} else {
			offPeakQty += e.BidQuantity
			offPeakCount++
		}
		if e.ExpectedProfit < 0 {
			lossSlots++
		}
		predictedSum += e.PredictedPrice
	}
	avgPredicted := predictedSum / float64(len(p.Entries))

	if peakCount > 0 && offPeakCount > 0 && peakQty/peakCount > offPeakQty/offPeakCount {
		out = append(out, "Peak hours (07:00-08:45, 18:00-20:45) carry the highest clearing prices; bid more capacity there.")
	}

	out = append(out, fmt.Sprintf(
		"Average market price %.2f CNY/MWh vs suggested average bid price %.2f CNY/MWh at %s risk.",
		avgPredicted, summary.AverageBidPrice, p.RiskLevel))

	if summary.AverageWinProbability < 0.5 {
		out = append(out, fmt.Sprintf(
			"Average win probability is %.0f%%; consider lowering bid prices to stay competitive.",
			summary.AverageWinProbability*100))
	}

	if lossSlots > 0 {
		out = append(out, fmt.Sprintf(
			"%d slots carry negative expected profit; review bids in the night trough.", lossSlots))
	}

	if len(p.FallbackSlots) > 0 {
		out = append(out, fmt.Sprintf(
			"%d slots had no predicted price and were filled with the series mean; supply all 96 values for best results.",
			len(p.FallbackSlots)))
	}

	if summary.ExpectedProfit > 0 {
		out = append(out, fmt.Sprintf(
			"Total expected profit %.0f CNY across %d bids.", summary.ExpectedProfit, summary.TotalBids))
	}

	return out
}
