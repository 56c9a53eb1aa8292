package synth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfolio/portfolio-analytics/pkg/utils/errors"
)

func referenceConfig() Config {
	return DefaultConfigs()[0]
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"reference config", func(c *Config) {}, true},
		{"zero volatility", func(c *Config) { c.AnnualVol = 0 }, false},
		{"negative volatility", func(c *Config) { c.AnnualVol = -0.1 }, false},
		{"volatility at cap", func(c *Config) { c.AnnualVol = 2.0 }, false},
		{"volatility below cap", func(c *Config) { c.AnnualVol = 1.99 }, true},
		{"zero benchmark volatility", func(c *Config) { c.BenchVol = 0 }, false},
		{"zero start value", func(c *Config) { c.StartValue = 0 }, false},
		{"negative start value", func(c *Config) { c.StartValue = -100 }, false},
		{"one trading day", func(c *Config) { c.TradingDays = 1 }, false},
		{"two trading days", func(c *Config) { c.TradingDays = 2 }, true},
		{"negative return is allowed", func(c *Config) { c.AnnualReturn = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := referenceConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidArgument))
			}
		})
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := referenceConfig()
	cfg.AnnualVol = 0
	p, err := Generate(cfg)
	assert.Nil(t, p)
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidArgument))
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := referenceConfig()

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	// Byte-for-byte identical records for identical configs.
	aJSON, err := json.Marshal(a)
	require.NoError(t, err)
	bJSON, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, aJSON, bJSON)

	cfg.Seed++
	c, err := Generate(cfg)
	require.NoError(t, err)
	cJSON, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotEqual(t, aJSON, cJSON)
}

func TestGenerateReferencePortfolio(t *testing.T) {
	p, err := Generate(referenceConfig())
	require.NoError(t, err)

	assert.Equal(t, "pf-1", p.ID)
	assert.Equal(t, "Global Multi-Asset Fund", p.Summary.Name)
	assert.Equal(t, "USD", p.Summary.Currency)
	assert.Equal(t, "2023-01-03", p.Summary.InceptionDate)
	assert.Equal(t, 16, p.Summary.PositionCount)

	t.Run("performance series", func(t *testing.T) {
		require.Len(t, p.PerformanceData, 504)
		first := p.PerformanceData[0]
		assert.Equal(t, "2023-01-03", first.Date)
		assert.Equal(t, 1_000_000.0, first.Portfolio)
		assert.Equal(t, 1_000_000.0, first.Benchmark)
		assert.Equal(t, 0.0, first.PortfolioReturn)
		for _, pt := range p.PerformanceData {
			assert.Greater(t, pt.Portfolio, 0.0)
			assert.Greater(t, pt.Benchmark, 0.0)
		}
	})

	t.Run("summary is consistent with the path", func(t *testing.T) {
		assert.Greater(t, p.Summary.TotalValue, 0.0)
		assert.Equal(t, p.Summary.TotalPnL, p.Summary.TotalValue-1_000_000)
		assert.InDelta(t, p.Summary.TotalPnL/1_000_000*100, p.Summary.TotalPnLPercent, 0.005)
		assert.Equal(t, float64(int(p.Summary.TotalValue)), p.Summary.TotalValue, "whole currency units")
	})

	t.Run("headline risk figures match the config", func(t *testing.T) {
		assert.Equal(t, 12.0, p.RiskMetrics.AnnualizedReturn)
		assert.Equal(t, 16.0, p.RiskMetrics.AnnualizedVolatility)
		assert.Equal(t, 0.75, p.RiskMetrics.SharpeRatio)
		assert.Equal(t, 16.0, p.CurrentPoint.Volatility)
		assert.Equal(t, 12.0, p.CurrentPoint.Return)
	})

	t.Run("derived series are complete", func(t *testing.T) {
		assert.Len(t, p.MonthlyReturns, 12)
		assert.Len(t, p.ReturnDistribution, 30)
		assert.Len(t, p.DrawdownData, 504)
		assert.Len(t, p.EfficientFrontier, 25)
		assert.Len(t, p.StressScenarios, 5)
		assert.Len(t, p.CorrelationMatrix.Labels, 10)
		assert.NotEmpty(t, p.RollingVolatility)
		assert.NotEmpty(t, p.RollingCorrelation)
		assert.NotEmpty(t, p.Transactions)
		assert.NotEmpty(t, p.RecentActivity)
	})

	t.Run("drawdown anchored at zero", func(t *testing.T) {
		assert.Equal(t, 0.0, p.DrawdownData[0].Drawdown)
		for _, d := range p.DrawdownData {
			assert.LessOrEqual(t, d.Drawdown, 0.0)
		}
	})
}

func TestGenerateCollaborators(t *testing.T) {
	configs := DefaultConfigs()

	flagship, err := Generate(configs[0]) // seed 42
	require.NoError(t, err)
	assert.Len(t, flagship.Collaborators, 3)

	private, err := Generate(configs[1]) // seed 137
	require.NoError(t, err)
	assert.Empty(t, private.Collaborators)

	shared, err := Generate(configs[2]) // seed 256
	require.NoError(t, err)
	require.Len(t, shared.Collaborators, 1)
	assert.Equal(t, "jsmith", shared.Collaborators[0].Username)
}

func TestGenerateCustomHorizon(t *testing.T) {
	cfg := referenceConfig()
	cfg.TradingDays = 60

	p, err := Generate(cfg)
	require.NoError(t, err)
	assert.Len(t, p.PerformanceData, 60)
	assert.Len(t, p.DrawdownData, 60)
	assert.Len(t, p.RollingVolatility, 12)
}

func TestDefaultConfigs(t *testing.T) {
	configs := DefaultConfigs()
	require.Len(t, configs, 3)

	seen := make(map[string]bool)
	for _, cfg := range configs {
		assert.NoError(t, cfg.Validate(), "%s", cfg.ID)
		assert.False(t, seen[cfg.ID])
		seen[cfg.ID] = true
		assert.NotEmpty(t, templatePositions(cfg.PositionSet), "%s", cfg.PositionSet)
	}
}
