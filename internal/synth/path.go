package synth

import (
	"math"
	"time"
)

// DefaultTradingDays is the default simulation horizon: two years at 252
// trading days per year.
const DefaultTradingDays = 504

const tradingDaysPerYear = 252

// inceptionDate is day zero of every generated calendar.
var inceptionDate = time.Date(2023, time.January, 3, 0, 0, 0, 0, time.UTC)

// dailyReturns builds a daily return series from annualized parameters.
// Each shock is uniform-derived and widened ×3 to approximate a fatter
// tail than a plain uniform; the widening is part of the output contract,
// so swapping in a true Gaussian sampler would change every downstream
// figure for a given seed.
func dailyReturns(days int, annualReturn, annualVol float64, seed int) []float64 {
	drift := annualReturn / tradingDaysPerYear
	dailyVol := annualVol / math.Sqrt(tradingDaysPerYear)
	returns := make([]float64, days)
	for i := range returns {
		returns[i] = drift + dailyVol*(Rand(seed+i)-0.5)*3
	}
	return returns
}

// cumulativeValues compounds a return series into an index path. The
// result has len(returns)+1 entries; entry 0 is startValue.
func cumulativeValues(returns []float64, startValue float64) []float64 {
	values := make([]float64, 1, len(returns)+1)
	values[0] = startValue
	for _, r := range returns {
		values = append(values, values[len(values)-1]*(1+r))
	}
	return values
}

// tradingDates lays out the simulated calendar: trading day i falls
// floor(i*365.25/252) calendar days after inception.
func tradingDates(days int) []string {
	dates := make([]string, days)
	for i := range dates {
		offset := int(float64(i) * 365.25 / tradingDaysPerYear)
		dates[i] = inceptionDate.AddDate(0, 0, offset).Format("2006-01-02")
	}
	return dates
}
