package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandRange(t *testing.T) {
	for seed := -1000; seed <= 1000; seed++ {
		v := Rand(seed)
		require.GreaterOrEqual(t, v, 0.0, "seed %d", seed)
		require.Less(t, v, 1.0, "seed %d", seed)
	}
}

func TestRandDeterministic(t *testing.T) {
	for _, seed := range []int{0, 1, 42, 137, 256, -500, 1 << 20} {
		assert.Equal(t, Rand(seed), Rand(seed))
	}
}

func TestRandVaries(t *testing.T) {
	// Neighbouring seeds should not collapse to the same value.
	seen := make(map[float64]bool)
	for seed := 0; seed < 100; seed++ {
		seen[Rand(seed)] = true
	}
	assert.Greater(t, len(seen), 95)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 1.2, round1(1.24))
	assert.Equal(t, 1.3, round1(1.25))
	assert.Equal(t, -1.2, round1(-1.24))
	assert.Equal(t, 3.14, round2(3.14159))
	assert.Equal(t, 3.1416, round4(3.14159))
}
