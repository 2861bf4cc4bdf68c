package bidding

import (
	"encoding/csv"
	"os"
	"strconv"

	"power-bidding/internal/model"
)

// WritePortfolioCSV writes one row per bid entry plus the portfolio summary
// fields callers usually want next to the curve.
func WritePortfolioCSV(path string, p *model.BidPortfolio) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"slot_index",
		"time_period",
		"predicted_price",
		"bid_price",
		"bid_quantity",
		"win_probability",
		"expected_profit",
		"risk_level",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range p.Entries {
		row := []string{
			strconv.Itoa(e.SlotIndex),
			e.TimePeriod,
			fmtFloat(e.PredictedPrice),
			fmtFloat(e.BidPrice),
			fmtFloat(e.BidQuantity),
			fmtFloat(e.WinProbability),
			fmtFloat(e.ExpectedProfit),
			string(p.RiskLevel),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
