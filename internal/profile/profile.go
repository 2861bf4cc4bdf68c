// Package profile holds the time-of-day segmentation of the trading day.
// Both the forecast engine and the bid optimizer read from the same table,
// so the shape of a day (peaks, trough, base) only has to be stated once.
package profile

import "fmt"

// Segment is a named time-of-day bucket with its price band and bidding ratios.
// Units:
// - PriceLow/PriceHigh: CNY/MWh, the base-price band forecasts draw from
// - CapacityRatio: fraction (0,1] of max capacity bid in this segment
// - PriceRatio: multiplier >= 0 applied to the predicted price when bidding
type Segment struct {
	Name          string  `yaml:"name"`
	PriceLow      float64 `yaml:"price_low"`
	PriceHigh     float64 `yaml:"price_high"`
	CapacityRatio float64 `yaml:"capacity_ratio"`
	PriceRatio    float64 `yaml:"price_ratio"`
}

// Segment names. Stable; they appear in logs and recommendations.
const (
	MorningPeak = "morning-peak"
	EveningPeak = "evening-peak"
	NightTrough = "night-trough"
	Normal      = "normal"
)

// Table maps every hour of the day to exactly one segment. It is built once
// and treated as read-only afterwards; concurrent lookups need no locking.
type Table struct {
	MorningPeak Segment `yaml:"morning_peak"`
	EveningPeak Segment `yaml:"evening_peak"`
	NightTrough Segment `yaml:"night_trough"`
	Normal      Segment `yaml:"normal"`
}

// DefaultTable returns the fixed market policy:
//
//	morning-peak  hours 7-8    cap 0.8  price 1.10  band 550-650
//	evening-peak  hours 18-20  cap 0.9  price 1.15  band 600-750
//	night-trough  hours 0-5    cap 0.3  price 0.85  band 250-300
//	normal        other hours  cap 0.5  price 1.00  band 400-500
func DefaultTable() Table {
	return Table{
		MorningPeak: Segment{Name: MorningPeak, PriceLow: 550, PriceHigh: 650, CapacityRatio: 0.8, PriceRatio: 1.10},
		EveningPeak: Segment{Name: EveningPeak, PriceLow: 600, PriceHigh: 750, CapacityRatio: 0.9, PriceRatio: 1.15},
		NightTrough: Segment{Name: NightTrough, PriceLow: 250, PriceHigh: 300, CapacityRatio: 0.3, PriceRatio: 0.85},
		Normal:      Segment{Name: Normal, PriceLow: 400, PriceHigh: 500, CapacityRatio: 0.5, PriceRatio: 1.00},
	}
}

// SegmentFor maps an hour of day (0..23) to its segment. Every hour belongs
// to exactly one segment, so this cannot fail; out-of-range hours are folded
// into the day with modular arithmetic.
func (t Table) SegmentFor(hour int) Segment {
	h := ((hour % 24) + 24) % 24
	switch {
	case h >= 7 && h <= 8:
		return t.MorningPeak
	case h >= 18 && h <= 20:
		return t.EveningPeak
	case h <= 5:
		return t.NightTrough
	default:
		return t.Normal
	}
}

// SegmentForSlot maps a quarter-hour slot index (0..95) to its segment.
func (t Table) SegmentForSlot(slot int) Segment {
	return t.SegmentFor(slot / 4)
}

// Validate checks every segment carries a usable band and ratios.
func (t Table) Validate() error {
	for _, s := range []Segment{t.MorningPeak, t.EveningPeak, t.NightTrough, t.Normal} {
		if s.Name == "" {
			return fmt.Errorf("segment with band [%.0f, %.0f] has no name", s.PriceLow, s.PriceHigh)
		}
		if s.PriceLow < 0 || s.PriceHigh < s.PriceLow {
			return fmt.Errorf("segment %s: price band [%.2f, %.2f] invalid", s.Name, s.PriceLow, s.PriceHigh)
		}
		if s.CapacityRatio <= 0 || s.CapacityRatio > 1 {
			return fmt.Errorf("segment %s: capacity ratio %.2f must be in (0, 1]", s.Name, s.CapacityRatio)
		}
		if s.PriceRatio < 0 {
			return fmt.Errorf("segment %s: price ratio %.2f must be >= 0", s.Name, s.PriceRatio)
		}
	}
	return nil
}
