package synth

import "github.com/quantfolio/portfolio-analytics/pkg/models"

const maxCorrelationSymbols = 10

// correlationMatrix builds a symmetric pairwise correlation matrix over
// the first ten position symbols. Only the upper triangle is sampled; the
// lower triangle mirrors it and the diagonal is fixed at 1.0, so symmetry
// holds by construction rather than by coincidence of seeds.
func correlationMatrix(positions []models.Position, seed int) models.CorrelationMatrix {
	n := len(positions)
	if n > maxCorrelationSymbols {
		n = maxCorrelationSymbols
	}

	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = positions[i].Symbol
	}

	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		data[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				data[i][j] = 1.0
			case j < i:
				data[i][j] = data[j][i]
			default:
				v := round2(Rand(seed+i*100+j)*1.6 - 0.4)
				data[i][j] = clamp(v, -1, 1)
			}
		}
	}

	return models.CorrelationMatrix{Labels: labels, Data: data}
}
