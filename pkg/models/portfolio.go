package models

// PricingMode determines whether a position's current price tracks the
// market or is set manually.
type PricingMode string

const (
	PricingModeMarket PricingMode = "market"
	PricingModeFixed  PricingMode = "fixed"
)

// TransactionType enumerates the supported ledger entry kinds.
type TransactionType string

const (
	TransactionBuy        TransactionType = "buy"
	TransactionSell       TransactionType = "sell"
	TransactionDividend   TransactionType = "dividend"
	TransactionFee        TransactionType = "fee"
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// Position represents a single holding within a portfolio.
type Position struct {
	ID           int         `json:"id"`
	Symbol       string      `json:"symbol"`
	Name         string      `json:"name"`
	AssetClass   string      `json:"assetClass"`
	Sector       string      `json:"sector"`
	Country      string      `json:"country"`
	Currency     string      `json:"currency"`
	Quantity     float64     `json:"quantity"`
	EntryPrice   float64     `json:"entryPrice"`
	CurrentPrice float64     `json:"currentPrice"`
	EntryDate    string      `json:"entryDate"`
	PricingMode  PricingMode `json:"pricingMode"`
	Weight       float64     `json:"weight"`
	PnL          float64     `json:"pnl"`
	PnLPercent   float64     `json:"pnlPercent"`
	DailyChange  float64     `json:"dailyChange"`
}

// Transaction is a single ledger entry. Total is signed: fees and
// withdrawals carry a negative total, all other types a non-negative one.
type Transaction struct {
	ID       int             `json:"id"`
	Date     string          `json:"date"`
	Type     TransactionType `json:"type"`
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Quantity float64         `json:"quantity"`
	Price    float64         `json:"price"`
	Total    float64         `json:"total"`
	Currency string          `json:"currency"`
	Notes    string          `json:"notes"`
}

// Collaborator is a user the portfolio has been shared with.
type Collaborator struct {
	ID         int    `json:"id"`
	UserID     int    `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Permission string `json:"permission"` // "view" or "edit"
	AddedDate  string `json:"addedDate"`
	Avatar     string `json:"avatar"`
}

// AllocationItem is one slice of an allocation breakdown.
type AllocationItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Summary holds the headline figures for a portfolio.
type Summary struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Currency        string  `json:"currency"`
	Benchmark       string  `json:"benchmark"`
	TotalValue      float64 `json:"totalValue"`
	DailyPnL        float64 `json:"dailyPnl"`
	DailyPnLPercent float64 `json:"dailyPnlPercent"`
	TotalPnL        float64 `json:"totalPnl"`
	TotalPnLPercent float64 `json:"totalPnlPercent"`
	PositionCount   int     `json:"positionCount"`
	CashBalance     float64 `json:"cashBalance"`
	InceptionDate   string  `json:"inceptionDate"`
}

// ActivityEntry is one line of the recent-activity feed.
type ActivityEntry struct {
	Date   string `json:"date"`
	Action string `json:"action"`
	Detail string `json:"detail"`
}

// Portfolio is the complete immutable aggregate produced per generation.
// Nested collections are owned exclusively by the record; nothing is
// shared across portfolios and nothing is mutated after assembly.
type Portfolio struct {
	ID                  string               `json:"id"`
	OwnerID             int                  `json:"ownerId"`
	Summary             Summary              `json:"summary"`
	Positions           []Position           `json:"positions"`
	Transactions        []Transaction        `json:"transactions"`
	Collaborators       []Collaborator       `json:"collaborators"`
	PerformanceData     []PricePoint         `json:"performanceData"`
	MonthlyReturns      []MonthlyReturn      `json:"monthlyReturns"`
	ReturnDistribution  []DistributionBin    `json:"returnDistribution"`
	AllocationByClass   []AllocationItem     `json:"allocationByClass"`
	AllocationBySector  []AllocationItem     `json:"allocationBySector"`
	AllocationByCountry []AllocationItem     `json:"allocationByCountry"`
	RiskMetrics         RiskMetrics          `json:"riskMetrics"`
	CorrelationMatrix   CorrelationMatrix    `json:"correlationMatrix"`
	EfficientFrontier   []FrontierPoint      `json:"efficientFrontierData"`
	CurrentPoint        FrontierPoint        `json:"currentPortfolioPoint"`
	MinVolPoint         FrontierPoint        `json:"minVolPoint"`
	MaxSharpePoint      FrontierPoint        `json:"maxSharpePoint"`
	OptimizedWeights    []OptimizedWeight    `json:"optimizedWeights"`
	StressScenarios     []StressScenario     `json:"stressScenarios"`
	StressContributions []StressContribution `json:"stressContributions"`
	DrawdownData        []DrawdownPoint      `json:"drawdownData"`
	RollingVolatility   []RollingVolPoint    `json:"rollingVolatility"`
	RollingCorrelation  []RollingCorrPoint   `json:"rollingCorrelation"`
	RecentActivity      []ActivityEntry      `json:"recentActivity"`
}
