package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentFor_EveryHourMapsToOneSegment(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		hour    int
		segment string
	}{
		{0, NightTrough},
		{3, NightTrough},
		{5, NightTrough},
		{6, Normal},
		{7, MorningPeak},
		{8, MorningPeak},
		{9, Normal},
		{12, Normal},
		{17, Normal},
		{18, EveningPeak},
		{19, EveningPeak},
		{20, EveningPeak},
		{21, Normal},
		{23, Normal},
	}

	for _, tt := range tests {
		seg := table.SegmentFor(tt.hour)
		assert.Equal(t, tt.segment, seg.Name, "hour %d", tt.hour)
	}
}

func TestSegmentFor_Ratios(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, 0.8, table.SegmentFor(7).CapacityRatio)
	assert.Equal(t, 1.10, table.SegmentFor(7).PriceRatio)
	assert.Equal(t, 0.9, table.SegmentFor(19).CapacityRatio)
	assert.Equal(t, 1.15, table.SegmentFor(19).PriceRatio)
	assert.Equal(t, 0.3, table.SegmentFor(2).CapacityRatio)
	assert.Equal(t, 0.85, table.SegmentFor(2).PriceRatio)
	assert.Equal(t, 0.5, table.SegmentFor(12).CapacityRatio)
	assert.Equal(t, 1.00, table.SegmentFor(12).PriceRatio)
}

func TestSegmentFor_OutOfRangeHoursFold(t *testing.T) {
	table := DefaultTable()

	// 24 folds to 0 (night trough), -1 folds to 23 (normal).
	assert.Equal(t, NightTrough, table.SegmentFor(24).Name)
	assert.Equal(t, Normal, table.SegmentFor(-1).Name)
}

func TestSegmentForSlot(t *testing.T) {
	table := DefaultTable()

	// Slot 72 = 18:00, first evening-peak slot; slot 83 = 20:45, last one.
	assert.Equal(t, EveningPeak, table.SegmentForSlot(72).Name)
	assert.Equal(t, EveningPeak, table.SegmentForSlot(83).Name)
	assert.Equal(t, Normal, table.SegmentForSlot(84).Name)
	assert.Equal(t, NightTrough, table.SegmentForSlot(0).Name)
	assert.Equal(t, MorningPeak, table.SegmentForSlot(28).Name)
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultTable().Validate())

	bad := DefaultTable()
	bad.Normal.CapacityRatio = 0
	assert.Error(t, bad.Validate())

	bad = DefaultTable()
	bad.EveningPeak.PriceHigh = bad.EveningPeak.PriceLow - 1
	assert.Error(t, bad.Validate())

	bad = DefaultTable()
	bad.NightTrough.PriceRatio = -0.5
	assert.Error(t, bad.Validate())

	bad = DefaultTable()
	bad.MorningPeak.Name = ""
	assert.Error(t, bad.Validate())
}
