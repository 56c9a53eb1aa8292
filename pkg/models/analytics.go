package models

// PricePoint is one trading day on the cumulative performance curve.
// Portfolio and Benchmark are index values; the return fields are
// cumulative percentages relative to day zero.
type PricePoint struct {
	Date            string  `json:"date"`
	Portfolio       float64 `json:"portfolio"`
	Benchmark       float64 `json:"benchmark"`
	PortfolioReturn float64 `json:"portfolioReturn"`
	BenchmarkReturn float64 `json:"benchmarkReturn"`
}

// MonthlyReturn is one month of portfolio vs benchmark returns.
type MonthlyReturn struct {
	Month     string  `json:"month"`
	Portfolio float64 `json:"portfolio"`
	Benchmark float64 `json:"benchmark"`
}

// DistributionBin is one bucket of the daily-return histogram.
type DistributionBin struct {
	Bin       string  `json:"bin"`
	Frequency float64 `json:"frequency"`
}

// DrawdownPoint is one day of the drawdown series. Drawdown is the
// percentage decline from the running peak and is never positive.
type DrawdownPoint struct {
	Date      string  `json:"date"`
	Drawdown  float64 `json:"drawdown"`
	CumReturn float64 `json:"cumReturn"`
}

// RollingVolPoint is one sample of the rolling annualized volatility,
// taken every fifth trading day.
type RollingVolPoint struct {
	Date      string  `json:"date"`
	Portfolio float64 `json:"portfolio"`
	Benchmark float64 `json:"benchmark"`
}

// RollingCorrPoint is one sample of the rolling portfolio/benchmark
// correlation, clamped to [-1, 1].
type RollingCorrPoint struct {
	Date        string  `json:"date"`
	Correlation float64 `json:"correlation"`
}

// RiskMetrics is the full annualized risk-and-ratio panel. Every ratio is
// derived from the same annualized return and volatility that shaped the
// price path, so the panel stays internally consistent.
type RiskMetrics struct {
	AnnualizedReturn     float64 `json:"annualizedReturn"`
	AnnualizedVolatility float64 `json:"annualizedVolatility"`
	SharpeRatio          float64 `json:"sharpeRatio"`
	SortinoRatio         float64 `json:"sortinoRatio"`
	CalmarRatio          float64 `json:"calmarRatio"`
	InformationRatio     float64 `json:"informationRatio"`
	MaxDrawdown          float64 `json:"maxDrawdown"`
	MaxDrawdownDuration  int     `json:"maxDrawdownDuration"`
	Beta                 float64 `json:"beta"`
	Alpha                float64 `json:"alpha"`
	TrackingError        float64 `json:"trackingError"`
	RSquared             float64 `json:"rSquared"`
	VaR95                float64 `json:"var95"`
	VaR99                float64 `json:"var99"`
	CVaR95               float64 `json:"cvar95"`
	CVaR99               float64 `json:"cvar99"`
	DownsideDeviation    float64 `json:"downsideDeviation"`
	Skewness             float64 `json:"skewness"`
	Kurtosis             float64 `json:"kurtosis"`
	BestDay              float64 `json:"bestDay"`
	WorstDay             float64 `json:"worstDay"`
	BestMonth            float64 `json:"bestMonth"`
	WorstMonth           float64 `json:"worstMonth"`
	PositiveMonths       float64 `json:"positiveMonths"`
	WinRate              float64 `json:"winRate"`
}

// CorrelationMatrix pairs an ordered label list with a symmetric,
// unit-diagonal N×N matrix of pairwise correlations.
type CorrelationMatrix struct {
	Labels []string    `json:"labels"`
	Data   [][]float64 `json:"data"`
}

// FrontierPoint is one (volatility, return) pair on the efficient frontier.
type FrontierPoint struct {
	Volatility float64 `json:"volatility"`
	Return     float64 `json:"return"`
}

// OptimizedWeight is one row of the weight-reallocation table.
type OptimizedWeight struct {
	Symbol    string  `json:"symbol"`
	Current   float64 `json:"current"`
	MinVol    float64 `json:"minVol"`
	MaxSharpe float64 `json:"maxSharpe"`
	Diff      float64 `json:"diff"`
}

// ScenarioType distinguishes replayed historical episodes from parametric
// what-if shocks.
type ScenarioType string

const (
	ScenarioHistorical ScenarioType = "historical"
	ScenarioParametric ScenarioType = "parametric"
)

// StressScenario describes a market shock and its estimated effect on the
// portfolio.
type StressScenario struct {
	ID                  int          `json:"id"`
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	Type                ScenarioType `json:"type"`
	EquityShock         float64      `json:"equityShock"`
	BondShock           float64      `json:"bondShock"`
	CommodityShock      float64      `json:"commodityShock"`
	PortfolioImpact     float64      `json:"portfolioImpact"`
	WorstPosition       string       `json:"worstPosition"`
	WorstPositionImpact float64      `json:"worstPositionImpact"`
}

// StressContribution is a position's estimated loss under each of the
// three replayed historical scenarios.
type StressContribution struct {
	Symbol     string  `json:"symbol"`
	Crisis2008 float64 `json:"crisis2008"`
	Covid2020  float64 `json:"covid2020"`
	RateShock  float64 `json:"rateShock"`
}
