package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyReturns(t *testing.T) {
	months := monthlyReturns(42)
	require.Len(t, months, 12)

	assert.Equal(t, "Jan 24", months[0].Month)
	assert.Equal(t, "Dec 24", months[11].Month)

	for _, m := range months {
		assert.True(t, strings.HasSuffix(m.Month, " 24"))
		assert.GreaterOrEqual(t, m.Portfolio, -2.4)
		assert.LessOrEqual(t, m.Portfolio, 3.6)
		assert.GreaterOrEqual(t, m.Benchmark, -2.0)
		assert.LessOrEqual(t, m.Benchmark, 3.0)
	}
}

func TestReturnDistribution(t *testing.T) {
	bins := returnDistribution(42)
	require.Len(t, bins, 30)

	assert.Equal(t, "-3.0%", bins[0].Bin)
	assert.Equal(t, "0.0%", bins[15].Bin)
	assert.Equal(t, "2.8%", bins[29].Bin)

	var peak float64
	for _, b := range bins {
		assert.GreaterOrEqual(t, b.Frequency, 0.0)
		if b.Frequency > peak {
			peak = b.Frequency
		}
	}
	// The gaussian hump dominates the jitter.
	assert.GreaterOrEqual(t, peak, 35.0)
	assert.Greater(t, peak, bins[0].Frequency)
	assert.Greater(t, peak, bins[29].Frequency)
}

func TestDrawdownSeries(t *testing.T) {
	dates := []string{"2023-01-03", "2023-01-04", "2023-01-05", "2023-01-06", "2023-01-09"}
	values := []float64{100, 110, 99, 104.5, 121}

	dd := drawdownSeries(dates, values)
	require.Len(t, dd, 5)

	// Zero exactly on new highs, negative otherwise.
	assert.Equal(t, 0.0, dd[0].Drawdown)
	assert.Equal(t, 0.0, dd[1].Drawdown)
	assert.Equal(t, -10.0, dd[2].Drawdown)
	assert.Equal(t, -5.0, dd[3].Drawdown)
	assert.Equal(t, 0.0, dd[4].Drawdown)

	assert.Equal(t, 0.0, dd[0].CumReturn)
	assert.Equal(t, 10.0, dd[1].CumReturn)
	assert.Equal(t, 21.0, dd[4].CumReturn)

	for _, p := range dd {
		assert.LessOrEqual(t, p.Drawdown, 0.0)
	}
}

func TestRollingSeries(t *testing.T) {
	dates := tradingDates(504)

	vol := rollingVolatility(dates, 0.16, 0.18, 42)
	corr := rollingCorrelation(dates, 42)

	// Every fifth trading day: ceil(504/5) samples.
	require.Len(t, vol, 101)
	require.Len(t, corr, 101)

	assert.Equal(t, dates[0], vol[0].Date)
	assert.Equal(t, dates[5], vol[1].Date)
	assert.Equal(t, dates[500], vol[100].Date)

	for _, p := range vol {
		assert.Greater(t, p.Portfolio, 0.0)
		assert.Greater(t, p.Benchmark, 0.0)
	}
	for _, p := range corr {
		assert.GreaterOrEqual(t, p.Correlation, -1.0)
		assert.LessOrEqual(t, p.Correlation, 1.0)
	}
}
