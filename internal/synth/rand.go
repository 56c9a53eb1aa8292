package synth

import "math"

// Rand maps an integer seed to a value in [0, 1). It is a pure function of
// its argument rather than a stateful generator: the same seed always
// yields the same value regardless of call order, which keeps generation
// reproducible even when sub-series are evaluated independently. Series
// derive their randomness as Rand(baseSeed + seriesOffset + index), with
// fixed offsets per series to keep unrelated series decorrelated.
func Rand(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
