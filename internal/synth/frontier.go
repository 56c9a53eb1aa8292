package synth

import "github.com/quantfolio/portfolio-analytics/pkg/models"

const (
	frontierPoints    = 25
	maxWeightTableLen = 14
)

// efficientFrontier traces an illustrative concave frontier of 25
// (volatility, return) points. This is not a solved optimization; the
// curve exists so the frontier chart has a plausible shape around the
// reference points.
func efficientFrontier(seed int) []models.FrontierPoint {
	points := make([]models.FrontierPoint, frontierPoints)
	for i := range points {
		v := 8 + float64(i)*1.2
		r := 3 + v*0.55 - 0.008*v*v + Rand(seed+i*13)*1.5
		points[i] = models.FrontierPoint{Volatility: round2(v), Return: round2(r)}
	}
	return points
}

// frontierReferencePoints returns the current portfolio point (the actual
// annualized stats) plus seeded min-volatility and max-Sharpe targets.
func frontierReferencePoints(annualReturn, annualVol float64, seed int) (current, minVol, maxSharpe models.FrontierPoint) {
	current = models.FrontierPoint{
		Volatility: round2(annualVol * 100),
		Return:     round2(annualReturn * 100),
	}
	minVol = models.FrontierPoint{
		Volatility: round1(8 + Rand(seed+300)*2),
		Return:     round1(5 + Rand(seed+301)*3),
	}
	maxSharpe = models.FrontierPoint{
		Volatility: round1(11 + Rand(seed+302)*3),
		Return:     round1(10 + Rand(seed+303)*4),
	}
	return current, minVol, maxSharpe
}

// optimizedWeights builds the per-position weight-reallocation table and
// appends a synthetic Cash row whose current weight closes the table to
// 100%.
func optimizedWeights(positions []models.Position, seed int) []models.OptimizedWeight {
	n := len(positions)
	if n > maxWeightTableLen {
		n = maxWeightTableLen
	}

	weights := make([]models.OptimizedWeight, 0, n+1)
	for _, p := range positions[:n] {
		mv := round1(p.Weight * (0.4 + Rand(seed+p.ID*10)*1.2))
		ms := round1(p.Weight * (0.6 + Rand(seed+p.ID*11)*0.8))
		weights = append(weights, models.OptimizedWeight{
			Symbol:    p.Symbol,
			Current:   p.Weight,
			MinVol:    mv,
			MaxSharpe: ms,
			Diff:      round1(ms - p.Weight),
		})
	}

	var total float64
	for _, p := range positions {
		total += p.Weight
	}
	weights = append(weights, models.OptimizedWeight{
		Symbol:    "Cash",
		Current:   round1(100 - total),
		MinVol:    2.0,
		MaxSharpe: 4.0,
		Diff:      -6.0,
	})
	return weights
}
