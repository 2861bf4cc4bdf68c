package model

import (
	"fmt"
	"time"
)

const (
	// SlotsPerDay is the number of 15-minute settlement intervals in one day.
	SlotsPerDay = 96

	// SlotDuration is the length of a single settlement interval.
	SlotDuration = 15 * time.Minute
)

// TimeSlot is one 15-minute pricing interval.
// Prices are CNY/MWh.
type TimeSlot struct {
	SlotIndex  int       `json:"slot_index"` // 0..95, chronological
	Timestamp  time.Time `json:"timestamp"`
	Price      float64   `json:"price"`
	Confidence float64   `json:"confidence"` // 0..1
	LowerBound float64   `json:"lower_bound"`
	UpperBound float64   `json:"upper_bound"`
}

// TimeOfDay returns the slot's wall-clock "HH:MM" label.
func (s TimeSlot) TimeOfDay() string {
	return s.Timestamp.Format("15:04")
}

// Hour returns the hour-of-day (0..23) the slot falls in.
func (s TimeSlot) Hour() int {
	return s.SlotIndex / 4
}

// SlotTimestamp derives the wall-clock start of slot i on the given date.
func SlotTimestamp(date time.Time, i int) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Add(time.Duration(i) * SlotDuration)
}

// PriceSeries is the full ordered set of 96 TimeSlots for one date.
// The date is fixed at construction and never changes.
type PriceSeries struct {
	Date  time.Time  `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

// Prices returns the slot prices in slot order.
func (p PriceSeries) Prices() []float64 {
	out := make([]float64, len(p.Slots))
	for i, s := range p.Slots {
		out[i] = s.Price
	}
	return out
}

// Validate checks the structural invariants: exactly 96 slots, indexes 0..95
// in order with no gaps, bounds bracketing the price.
func (p PriceSeries) Validate() error {
	if len(p.Slots) != SlotsPerDay {
		return fmt.Errorf("price series has %d slots, want %d", len(p.Slots), SlotsPerDay)
	}
	for i, s := range p.Slots {
		if s.SlotIndex != i {
			return fmt.Errorf("slot %d has index %d", i, s.SlotIndex)
		}
		if s.Price < 0 {
			return fmt.Errorf("slot %d has negative price %.2f", i, s.Price)
		}
		if s.LowerBound > s.Price || s.Price > s.UpperBound {
			return fmt.Errorf("slot %d bounds [%.2f, %.2f] do not bracket price %.2f",
				i, s.LowerBound, s.UpperBound, s.Price)
		}
		if s.Confidence < 0 || s.Confidence > 1 {
			return fmt.Errorf("slot %d confidence %.3f outside [0,1]", i, s.Confidence)
		}
	}
	return nil
}
