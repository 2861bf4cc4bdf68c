package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskLevelFactor(t *testing.T) {
	tests := []struct {
		level  RiskLevel
		factor float64
	}{
		{RiskLow, 0.9},
		{RiskMedium, 1.0},
		{RiskHigh, 1.1},
		{RiskLevel("yolo"), 1.0},
		{RiskLevel(""), 1.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.factor, tt.level.Factor(), "level %q", tt.level)
	}
}

func TestSlotTimestamp(t *testing.T) {
	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "00:00", SlotTimestamp(date, 0).Format("15:04"))
	assert.Equal(t, "07:15", SlotTimestamp(date, 29).Format("15:04"))
	assert.Equal(t, "23:45", SlotTimestamp(date, 95).Format("15:04"))

	// Slot timestamps ignore any time-of-day in the input date.
	noon := time.Date(2025, 6, 30, 12, 30, 0, 0, time.UTC)
	assert.True(t, SlotTimestamp(noon, 0).Equal(SlotTimestamp(date, 0)))
}

func validSeries() PriceSeries {
	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	slots := make([]TimeSlot, SlotsPerDay)
	for i := range slots {
		slots[i] = TimeSlot{
			SlotIndex:  i,
			Timestamp:  SlotTimestamp(date, i),
			Price:      500,
			Confidence: 0.9,
			LowerBound: 450,
			UpperBound: 550,
		}
	}
	return PriceSeries{Date: date, Slots: slots}
}

func TestPriceSeriesValidate(t *testing.T) {
	require.NoError(t, validSeries().Validate())

	short := validSeries()
	short.Slots = short.Slots[:95]
	assert.Error(t, short.Validate())

	misordered := validSeries()
	misordered.Slots[10].SlotIndex = 11
	assert.Error(t, misordered.Validate())

	negative := validSeries()
	negative.Slots[0].Price = -1
	negative.Slots[0].LowerBound = -2
	assert.Error(t, negative.Validate())

	badBounds := validSeries()
	badBounds.Slots[5].LowerBound = 600
	assert.Error(t, badBounds.Validate())

	badConfidence := validSeries()
	badConfidence.Slots[5].Confidence = 1.2
	assert.Error(t, badConfidence.Validate())
}

func TestTimeSlotHelpers(t *testing.T) {
	s := validSeries().Slots[30] // 07:30
	assert.Equal(t, "07:30", s.TimeOfDay())
	assert.Equal(t, 7, s.Hour())
}
