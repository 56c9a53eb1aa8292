package synth

import (
	"math"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
)

// riskMetrics derives the full annualized risk panel from the headline
// return/volatility parameters with seeded jitter. Every ratio uses the
// same ret/vol pair that shaped the price path, so Sharpe, Calmar and the
// VaR family stay mutually consistent for a given configuration.
func riskMetrics(annualReturn, annualVol, benchReturn float64, seed int) models.RiskMetrics {
	ret := annualReturn * 100
	vol := annualVol * 100
	sharpe := ret / vol
	maxDD := -(vol*0.8 + Rand(seed+200)*5)

	return models.RiskMetrics{
		AnnualizedReturn:     round2(ret),
		AnnualizedVolatility: round2(vol),
		SharpeRatio:          round2(sharpe),
		SortinoRatio:         round2(sharpe*1.4 + Rand(seed+10)*0.3),
		CalmarRatio:          round2(math.Abs(ret / maxDD)),
		InformationRatio:     round2((ret - benchReturn*100) / (vol * 0.4)),
		MaxDrawdown:          round2(maxDD),
		MaxDrawdownDuration:  int(math.Round(30 + Rand(seed+20)*40)),
		Beta:                 round2(0.6 + Rand(seed+30)*0.6),
		Alpha:                round2((ret - benchReturn*100) * (0.5 + Rand(seed+40)*0.5)),
		TrackingError:        round2(4 + Rand(seed+50)*5),
		RSquared:             round2(0.7 + Rand(seed+60)*0.25),
		VaR95:                round2(-vol/7 - Rand(seed+70)*0.5),
		VaR99:                round2(-vol/5 - Rand(seed+80)*0.5),
		CVaR95:               round2(-vol/6 - Rand(seed+90)*0.8),
		CVaR99:               round2(-vol/4 - Rand(seed+91)*0.8),
		DownsideDeviation:    round2(vol * 0.7),
		Skewness:             round2(-0.1 - Rand(seed+92)*0.5),
		Kurtosis:             round2(3 + Rand(seed+93)*2),
		BestDay:              round2(vol/4 + Rand(seed+94)*1),
		WorstDay:             round2(-vol/3 - Rand(seed+95)*1),
		BestMonth:            round2(vol/3 + Rand(seed+96)*2),
		WorstMonth:           round2(-vol/2.5 - Rand(seed+97)*2),
		PositiveMonths:       math.Round(55 + Rand(seed+98)*20),
		WinRate:              round1(50 + Rand(seed+99)*15),
	}
}
