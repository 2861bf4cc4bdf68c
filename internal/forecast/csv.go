package forecast

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"power-bidding/internal/model"
)

// WriteSeriesCSV writes one row per forecast slot. The file round-trips into
// the optimize CLI subcommand via its predicted_price column.
func WriteSeriesCSV(path string, s model.PriceSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"slot_index",
		"timestamp",
		"predicted_price",
		"confidence",
		"lower_bound",
		"upper_bound",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, slot := range s.Slots {
		row := []string{
			strconv.Itoa(slot.SlotIndex),
			slot.Timestamp.Format(time.RFC3339),
			strconv.FormatFloat(slot.Price, 'f', 2, 64),
			strconv.FormatFloat(slot.Confidence, 'f', 4, 64),
			strconv.FormatFloat(slot.LowerBound, 'f', 2, 64),
			strconv.FormatFloat(slot.UpperBound, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// ReadPricesCSV loads predicted prices from a CSV written by WriteSeriesCSV
// (or any file whose header contains a predicted_price column).
func ReadPricesCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, model.NewInvalidInput("predicted_prices", "file %s is empty", path)
	}

	col := -1
	for i, name := range records[0] {
		if name == "predicted_price" || name == "price" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, model.NewInvalidInput("predicted_prices", "file %s has no predicted_price column", path)
	}

	prices := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			return nil, model.NewInvalidInput("predicted_prices", "row %d: %v", len(prices)+1, err)
		}
		prices = append(prices, v)
	}
	return prices, nil
}
