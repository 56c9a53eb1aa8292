package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReturns(t *testing.T) {
	returns := dailyReturns(504, 0.12, 0.16, 42)
	require.Len(t, returns, 504)

	// Shock magnitude is bounded by 1.5 daily sigmas on each side of the
	// drift, so no single day can wipe out the path.
	drift := 0.12 / 252.0
	bound := 0.16 / 15.874507866387544 * 1.5 // sqrt(252) ~= 15.8745
	for i, r := range returns {
		assert.InDelta(t, drift, r, bound+1e-12, "day %d", i)
	}

	assert.Equal(t, returns, dailyReturns(504, 0.12, 0.16, 42))
}

func TestCumulativeValues(t *testing.T) {
	returns := []float64{0.1, -0.05, 0.02}
	values := cumulativeValues(returns, 1000)

	require.Len(t, values, 4)
	assert.Equal(t, 1000.0, values[0])
	assert.InDelta(t, 1100.0, values[1], 1e-9)
	assert.InDelta(t, 1045.0, values[2], 1e-9)
	assert.InDelta(t, 1065.9, values[3], 1e-9)
}

func TestPathStaysPositive(t *testing.T) {
	// Sweep the supported volatility range; compounding must never cross
	// zero.
	for _, vol := range []float64{0.08, 0.16, 0.28, 0.8, 1.5, 1.99} {
		for seed := 0; seed < 200; seed += 7 {
			values := cumulativeValues(dailyReturns(504, 0.1, vol, seed), 1_000_000)
			for i, v := range values {
				require.Greater(t, v, 0.0, "vol %v seed %d day %d", vol, seed, i)
			}
		}
	}

	// Broad seed sweep at the reference parameters.
	for seed := 0; seed < 10_000; seed++ {
		for i, v := range cumulativeValues(dailyReturns(504, 0.12, 0.16, seed), 1_000_000) {
			if v <= 0 {
				t.Fatalf("non-positive value %v at seed %d day %d", v, seed, i)
			}
		}
	}
}

func TestTradingDates(t *testing.T) {
	dates := tradingDates(504)
	require.Len(t, dates, 504)

	assert.Equal(t, "2023-01-03", dates[0])
	assert.Equal(t, "2023-01-04", dates[1])
	// Day 252 lands one (365-day-plus-leap-fraction) year after inception.
	assert.Equal(t, "2024-01-03", dates[252])

	for i := 1; i < len(dates); i++ {
		assert.LessOrEqual(t, dates[i-1], dates[i])
	}
}
