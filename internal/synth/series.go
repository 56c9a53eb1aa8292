package synth

import (
	"fmt"
	"math"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
)

func formatPercent1(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthlyReturns synthesizes twelve months of portfolio vs benchmark
// returns. These are seeded independently of the daily path; the monthly
// figures are illustrative and intentionally not an aggregation of the
// daily series.
func monthlyReturns(seed int) []models.MonthlyReturn {
	out := make([]models.MonthlyReturn, len(monthNames))
	for i, m := range monthNames {
		out[i] = models.MonthlyReturn{
			Month:     m + " 24",
			Portfolio: round1((Rand(seed+i*3) - 0.4) * 6),
			Benchmark: round1((Rand(seed+i*3+100) - 0.4) * 5),
		}
	}
	return out
}

// returnDistribution builds a 30-bin histogram of daily returns with bin
// centers from -3.0% to +2.8% in 0.2% steps. Frequencies follow a
// gaussian-shaped count with seeded jitter, floored at zero.
func returnDistribution(seed int) []models.DistributionBin {
	bins := make([]models.DistributionBin, 30)
	for i := range bins {
		center := -3 + float64(i)*0.2
		freq := math.Round(math.Exp(-0.5*center*center/0.8)*40 + Rand(seed+i*7)*5)
		if freq < 0 {
			freq = 0
		}
		bins[i] = models.DistributionBin{
			Bin:       formatPercent1(center),
			Frequency: freq,
		}
	}
	return bins
}

// drawdownSeries computes, for each day, the percentage decline from the
// running peak alongside the cumulative return. Drawdown is zero exactly
// on days that set a new all-time high and negative otherwise.
func drawdownSeries(dates []string, values []float64) []models.DrawdownPoint {
	out := make([]models.DrawdownPoint, len(dates))
	peak := values[0]
	for i := range dates {
		if values[i] > peak {
			peak = values[i]
		}
		out[i] = models.DrawdownPoint{
			Date:      dates[i],
			Drawdown:  round2((values[i] - peak) / peak * 100),
			CumReturn: round2((values[i]/values[0] - 1) * 100),
		}
	}
	return out
}

// rollingVolatility samples an annualized rolling volatility estimate
// every fifth trading day, blending a slow oscillation around 70% of the
// headline volatility with seeded jitter.
func rollingVolatility(dates []string, annualVol, benchVol float64, seed int) []models.RollingVolPoint {
	vol := annualVol * 100
	bvol := benchVol * 100
	var out []models.RollingVolPoint
	for i, j := 0, 0; i < len(dates); i += 5 {
		out = append(out, models.RollingVolPoint{
			Date:      dates[i],
			Portfolio: vol*0.7 + math.Sin(float64(j)*0.15)*vol*0.3 + Rand(seed+j*23)*vol*0.15,
			Benchmark: bvol*0.8 + math.Sin(float64(j)*0.12+1)*bvol*0.2 + Rand(seed+j*31)*bvol*0.15,
		})
		j++
	}
	return out
}

// rollingCorrelation samples the portfolio/benchmark correlation every
// fifth trading day, oscillating around a 0.75 baseline. The raw formula
// can stray outside [-1, 1] for some seed/index pairs, so samples are
// clamped to stay representable as correlations.
func rollingCorrelation(dates []string, seed int) []models.RollingCorrPoint {
	var out []models.RollingCorrPoint
	for i, j := 0, 0; i < len(dates); i += 5 {
		c := 0.75 + math.Sin(float64(j)*0.1)*0.15 + (Rand(seed+j*17)-0.5)*0.08
		out = append(out, models.RollingCorrPoint{
			Date:        dates[i],
			Correlation: clamp(c, -1, 1),
		})
		j++
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
