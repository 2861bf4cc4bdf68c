package forecast

import (
	"math"
	"math/rand"
	"time"

	"power-bidding/internal/model"
	"power-bidding/internal/profile"
)

// Info identifies the model that produced a forecast.
type Info struct {
	Name    string `json:"name"`
	Source  string `json:"source"`
	Version string `json:"version"`
}

// Model turns a calendar date into a full-day price series.
// Implementations must be pure given the supplied RNG so that a fixed seed
// reproduces the forecast exactly.
type Model interface {
	Info() Info
	Predict(date time.Time, rng *rand.Rand) (model.PriceSeries, error)
}

// SyntheticModel draws each slot's price uniformly from its day segment's
// base-price band. It is a parametrized generator, not a trained predictor.
type SyntheticModel struct {
	Table          profile.Table
	ConfidenceLow  float64
	ConfidenceHigh float64
	BoundMargin    float64
}

func (m SyntheticModel) Info() Info {
	return Info{
		Name:    "synthetic-profile",
		Source:  "day-segment bands",
		Version: "1.0",
	}
}

func (m SyntheticModel) Predict(date time.Time, rng *rand.Rand) (model.PriceSeries, error) {
	slots := make([]model.TimeSlot, model.SlotsPerDay)
	for i := range slots {
		seg := m.Table.SegmentForSlot(i)
		price := round2(seg.PriceLow + rng.Float64()*(seg.PriceHigh-seg.PriceLow))
		conf := m.ConfidenceLow + rng.Float64()*(m.ConfidenceHigh-m.ConfidenceLow)
		slots[i] = model.TimeSlot{
			SlotIndex:  i,
			Timestamp:  model.SlotTimestamp(date, i),
			Price:      price,
			Confidence: conf,
			LowerBound: round2(price * (1 - m.BoundMargin)),
			UpperBound: round2(price * (1 + m.BoundMargin)),
		}
	}
	return model.PriceSeries{Date: date, Slots: slots}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
