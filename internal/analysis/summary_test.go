package analysis

import (
	"strings"
	"testing"
	"time"

	"power-bidding/internal/model"
	"power-bidding/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPortfolio() *model.BidPortfolio {
	return &model.BidPortfolio{
		RiskLevel: model.RiskMedium,
		Entries: []model.BidEntry{
			{SlotIndex: 0, TimePeriod: "00:00", BidPrice: 425, BidQuantity: 300, WinProbability: 0.95, ExpectedProfit: 21000, PredictedPrice: 500},
			{SlotIndex: 28, TimePeriod: "07:00", BidPrice: 550, BidQuantity: 800, WinProbability: 0.90, ExpectedProfit: 144000, PredictedPrice: 500},
			{SlotIndex: 48, TimePeriod: "12:00", BidPrice: 500, BidQuantity: 500, WinProbability: 0.95, ExpectedProfit: 71250, PredictedPrice: 500},
			{SlotIndex: 72, TimePeriod: "18:00", BidPrice: 575, BidQuantity: 900, WinProbability: 0.875, ExpectedProfit: 177188, PredictedPrice: 500},
		},
	}
}

func TestSummarize(t *testing.T) {
	p := testPortfolio()
	s := Summarize(p)

	assert.Equal(t, 2500.0, s.TotalCapacity)
	assert.InDelta(t, 0.91875, s.AverageWinProbability, 1e-9)
	assert.Equal(t, 413438.0, s.ExpectedProfit)
	assert.InDelta(t, 512.5, s.AverageBidPrice, 1e-9)
	assert.Equal(t, 4, s.TotalBids)
}

func TestSummarize_Idempotent(t *testing.T) {
	p := testPortfolio()
	first := Summarize(p)
	second := Summarize(p)
	assert.Equal(t, first, second)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, model.Summary{}, Summarize(nil))
	assert.Equal(t, model.Summary{}, Summarize(&model.BidPortfolio{}))
}

func TestSummarize_TotalCapacityMatchesQuantitySum(t *testing.T) {
	p := testPortfolio()
	s := Summarize(p)

	var sum float64
	for _, e := range p.Entries {
		sum += e.BidQuantity
	}
	assert.Equal(t, sum, s.TotalCapacity)
}

func TestSummarizeSeries(t *testing.T) {
	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	series := model.PriceSeries{
		Date: date,
		Slots: []model.TimeSlot{
			{SlotIndex: 0, Timestamp: date, Price: 400, Confidence: 0.90, LowerBound: 360, UpperBound: 440},
			{SlotIndex: 1, Timestamp: date.Add(model.SlotDuration), Price: 600, Confidence: 0.86, LowerBound: 540, UpperBound: 660},
		},
	}

	s := SummarizeSeries(series)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 500.0, s.AveragePrice, 1e-9)
	assert.InDelta(t, 0.88, s.AverageConfidence, 1e-9)
	assert.Equal(t, 400.0, s.MinPrice)
	assert.Equal(t, 600.0, s.MaxPrice)
}

func TestSummarizeSeries_Empty(t *testing.T) {
	assert.Equal(t, SeriesStats{}, SummarizeSeries(model.PriceSeries{}))
}

func TestRecommendations(t *testing.T) {
	table := profile.DefaultTable()

	p := testPortfolio()
	p.Summary = Summarize(p)
	recs := Recommendations(table, p)
	require.NotEmpty(t, recs)

	// Peak slots carry more capacity than off-peak, so the peak hint leads.
	assert.Contains(t, recs[0], "Peak hours")
	// The market-vs-bid comparison is always present.
	assert.True(t, anyContains(recs, "market price"), "got %v", recs)
	assert.True(t, anyContains(recs, "bid price"), "got %v", recs)
}

func TestRecommendations_FallbackAndLosses(t *testing.T) {
	table := profile.DefaultTable()

	p := testPortfolio()
	p.Entries[0].ExpectedProfit = -500
	p.FallbackSlots = []int{90, 91}
	p.Summary = Summarize(p)

	recs := Recommendations(table, p)

	assert.True(t, anyContains(recs, "negative expected profit"), "got %v", recs)
	assert.True(t, anyContains(recs, "filled with the series mean"), "got %v", recs)
}

func TestRecommendations_Empty(t *testing.T) {
	assert.Nil(t, Recommendations(profile.DefaultTable(), nil))
	assert.Nil(t, Recommendations(profile.DefaultTable(), &model.BidPortfolio{}))
}

func anyContains(ss []string, sub string) bool {
	for _, s := range ss {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
