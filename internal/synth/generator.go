package synth

import (
	"fmt"
	"math"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/errors"
)

// Config parameterizes one generation. The seed fully determines every
// derived figure: two generations with equal configs produce identical
// portfolios.
type Config struct {
	ID           string
	Name         string
	Description  string
	Currency     string
	Benchmark    string
	Seed         int
	AnnualReturn float64
	AnnualVol    float64
	BenchReturn  float64
	BenchVol     float64
	StartValue   float64
	PositionSet  string
	// TradingDays defaults to DefaultTradingDays when zero.
	TradingDays int
}

// maxAnnualVol bounds the supported volatility range. Below it the widened
// daily shock's magnitude stays under 100%, so the compounded path can
// never cross zero.
const maxAnnualVol = 2.0

// Validate rejects configurations that would produce NaN or Infinity
// downstream instead of letting them poison the whole record.
func (c Config) Validate() error {
	if c.AnnualVol <= 0 {
		return errors.InvalidArgument(fmt.Sprintf("annual volatility must be positive, got %v", c.AnnualVol))
	}
	if c.AnnualVol >= maxAnnualVol {
		return errors.InvalidArgument(fmt.Sprintf("annual volatility must be below %v, got %v", maxAnnualVol, c.AnnualVol))
	}
	if c.BenchVol <= 0 {
		return errors.InvalidArgument(fmt.Sprintf("benchmark volatility must be positive, got %v", c.BenchVol))
	}
	if c.StartValue <= 0 {
		return errors.InvalidArgument(fmt.Sprintf("start value must be positive, got %v", c.StartValue))
	}
	if c.TradingDays != 0 && c.TradingDays < 2 {
		return errors.InvalidArgument(fmt.Sprintf("trading day count must be at least 2, got %d", c.TradingDays))
	}
	return nil
}

// Generate builds a complete, internally consistent portfolio record from
// the configuration. It is a pure function: no entropy beyond the seeded
// stream, no I/O, no shared state, so concurrent calls need no
// coordination. Generation either returns a full record or an invalid
// configuration error before producing anything.
func Generate(cfg Config) (*models.Portfolio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	days := cfg.TradingDays
	if days == 0 {
		days = DefaultTradingDays
	}

	dates := tradingDates(days)
	pReturns := dailyReturns(days, cfg.AnnualReturn, cfg.AnnualVol, cfg.Seed)
	bReturns := dailyReturns(days, cfg.BenchReturn, cfg.BenchVol, cfg.Seed+57)
	pValues := cumulativeValues(pReturns, cfg.StartValue)
	bValues := cumulativeValues(bReturns, cfg.StartValue)

	positions := templatePositions(cfg.PositionSet)
	allocs := templateAllocations(cfg.PositionSet)

	performance := make([]models.PricePoint, days)
	for i := range performance {
		performance[i] = models.PricePoint{
			Date:            dates[i],
			Portfolio:       math.Round(pValues[i]),
			Benchmark:       math.Round(bValues[i]),
			PortfolioReturn: (pValues[i]/pValues[0] - 1) * 100,
			BenchmarkReturn: (bValues[i]/bValues[0] - 1) * 100,
		}
	}

	current, minVol, maxSharpe := frontierReferencePoints(cfg.AnnualReturn, cfg.AnnualVol, cfg.Seed)

	finalValue := math.Round(pValues[len(pValues)-1])
	prevValue := pValues[len(pValues)-2]
	totalPnl := finalValue - cfg.StartValue

	return &models.Portfolio{
		ID:      cfg.ID,
		OwnerID: 1,
		Summary: models.Summary{
			Name:            cfg.Name,
			Description:     cfg.Description,
			Currency:        cfg.Currency,
			Benchmark:       cfg.Benchmark,
			TotalValue:      finalValue,
			DailyPnL:        math.Round(pValues[len(pValues)-1] - prevValue),
			DailyPnLPercent: round2((pValues[len(pValues)-1]/prevValue - 1) * 100),
			TotalPnL:        totalPnl,
			TotalPnLPercent: round2(totalPnl / cfg.StartValue * 100),
			PositionCount:   len(positions),
			CashBalance:     math.Round(finalValue * 0.1),
			InceptionDate:   dates[0],
		},
		Positions:           positions,
		Transactions:        transactionLedger(positions, cfg.StartValue, cfg.Currency, cfg.Seed),
		Collaborators:       defaultCollaborators(cfg.Seed),
		PerformanceData:     performance,
		MonthlyReturns:      monthlyReturns(cfg.Seed),
		ReturnDistribution:  returnDistribution(cfg.Seed),
		AllocationByClass:   allocs.byClass,
		AllocationBySector:  allocs.bySector,
		AllocationByCountry: allocs.byCountry,
		RiskMetrics:         riskMetrics(cfg.AnnualReturn, cfg.AnnualVol, cfg.BenchReturn, cfg.Seed),
		CorrelationMatrix:   correlationMatrix(positions, cfg.Seed),
		EfficientFrontier:   efficientFrontier(cfg.Seed),
		CurrentPoint:        current,
		MinVolPoint:         minVol,
		MaxSharpePoint:      maxSharpe,
		OptimizedWeights:    optimizedWeights(positions, cfg.Seed),
		StressScenarios:     stressScenarios(positions, cfg.Seed),
		StressContributions: stressContributions(positions, cfg.Seed),
		DrawdownData:        drawdownSeries(dates, pValues),
		RollingVolatility:   rollingVolatility(dates, cfg.AnnualVol, cfg.BenchVol, cfg.Seed),
		RollingCorrelation:  rollingCorrelation(dates, cfg.Seed),
		RecentActivity:      recentActivity(positions),
	}, nil
}

// defaultCollaborators mirrors the demo sharing setup: most portfolios are
// shared view-only with one user, the flagship one with three.
func defaultCollaborators(seed int) []models.Collaborator {
	var collaborators []models.Collaborator
	if seed != 137 {
		collaborators = append(collaborators, models.Collaborator{
			ID: 1, UserID: 2, Username: "jsmith", Email: "john.smith@example.com",
			Permission: "view", AddedDate: "2024-06-15", Avatar: "JS",
		})
	}
	if seed == 42 {
		collaborators = append(collaborators,
			models.Collaborator{ID: 2, UserID: 3, Username: "agarcia", Email: "ana.garcia@example.com", Permission: "edit", AddedDate: "2024-08-20", Avatar: "AG"},
			models.Collaborator{ID: 3, UserID: 5, Username: "lmueller", Email: "lisa.mueller@example.com", Permission: "view", AddedDate: "2024-10-01", Avatar: "LM"},
		)
	}
	return collaborators
}

func recentActivity(positions []models.Position) []models.ActivityEntry {
	marketPriced := 0
	for _, p := range positions {
		if p.PricingMode == models.PricingModeMarket {
			marketPriced++
		}
	}
	lastSymbol := "N/A"
	if len(positions) > 0 {
		lastSymbol = positions[len(positions)-1].Symbol
	}
	return []models.ActivityEntry{
		{Date: "2024-12-20", Action: "Price Update", Detail: fmt.Sprintf("Market prices updated for %d instruments", marketPriced)},
		{Date: "2024-12-19", Action: "Position Added", Detail: fmt.Sprintf("Added %s", lastSymbol)},
		{Date: "2024-12-18", Action: "Optimization Run", Detail: "Max Sharpe optimization completed"},
		{Date: "2024-12-17", Action: "Shared Access", Detail: "Portfolio shared with jsmith (view-only)"},
		{Date: "2024-12-16", Action: "Stress Test", Detail: "2008 Crisis scenario analysis completed"},
		{Date: "2024-12-15", Action: "Rebalance", Detail: "Portfolio rebalanced to target weights"},
	}
}

// DefaultConfigs returns the three reference portfolio configurations the
// service seeds itself with in demo mode.
func DefaultConfigs() []Config {
	return []Config{
		{
			ID: "pf-1", Name: "Global Multi-Asset Fund",
			Description: "Diversified portfolio across equities, bonds, and commodities with global exposure",
			Currency:    "USD", Benchmark: "S&P 500 (SPY)",
			Seed: 42, AnnualReturn: 0.12, AnnualVol: 0.16,
			BenchReturn: 0.10, BenchVol: 0.18,
			StartValue: 1000000, PositionSet: "global-multi-asset",
		},
		{
			ID: "pf-2", Name: "Tech Growth Alpha",
			Description: "Concentrated technology equity portfolio targeting high-growth companies",
			Currency:    "USD", Benchmark: "NASDAQ 100 (QQQ)",
			Seed: 137, AnnualReturn: 0.22, AnnualVol: 0.28,
			BenchReturn: 0.18, BenchVol: 0.24,
			StartValue: 500000, PositionSet: "tech-growth",
		},
		{
			ID: "pf-3", Name: "Conservative Income",
			Description: "Income-focused portfolio with heavy fixed income allocation and defensive equities",
			Currency:    "EUR", Benchmark: "Euro Stoxx 50 (SX5E)",
			Seed: 256, AnnualReturn: 0.05, AnnualVol: 0.08,
			BenchReturn: 0.07, BenchVol: 0.15,
			StartValue: 750000, PositionSet: "conservative-income",
		},
	}
}
