package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfolio/portfolio-analytics/internal/store"
	"github.com/quantfolio/portfolio-analytics/pkg/metrics"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/logger"
)

func TestSeedDefaultPortfolios(t *testing.T) {
	portfolioStore := store.NewPortfolioStore()
	log := logger.GetLogger("main.test")

	require.NoError(t, seedDefaultPortfolios(portfolioStore, metrics.NewRecorder(), 60, log))

	list := portfolioStore.List()
	require.Len(t, list, 3)
	assert.Equal(t, "pf-1", list[0].ID)
	assert.Equal(t, "Global Multi-Asset Fund", list[0].Summary.Name)
	assert.Len(t, list[0].PerformanceData, 60)

	active, err := portfolioStore.Active()
	require.NoError(t, err)
	assert.Equal(t, "pf-1", active.ID)
}
