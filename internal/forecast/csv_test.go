package forecast

import (
	"os"
	"path/filepath"
	"testing"

	"power-bidding/internal/config"
	"power-bidding/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesCSVRoundTrip(t *testing.T) {
	engine := New(profile.DefaultTable(), config.Default().Forecast, WithSeed(11))
	res, err := engine.Forecast(mustDate(t, "2025-06-30"), "")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "forecast.csv")
	require.NoError(t, WriteSeriesCSV(path, res.Series))

	prices, err := ReadPricesCSV(path)
	require.NoError(t, err)
	require.Len(t, prices, len(res.Series.Slots))
	for i, p := range prices {
		assert.Equal(t, res.Series.Slots[i].Price, p, "slot %d", i)
	}
}

func TestReadPricesCSV_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	_, err := ReadPricesCSV(path)
	assert.Error(t, err)
}

func TestReadPricesCSV_MissingFile(t *testing.T) {
	_, err := ReadPricesCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
