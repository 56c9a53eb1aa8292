package synth

import "github.com/quantfolio/portfolio-analytics/pkg/models"

// DefaultPositionSet is used when a configuration names an unknown
// template.
const DefaultPositionSet = "global-multi-asset"

// allocationSet groups the three allocation breakdowns for a template.
type allocationSet struct {
	byClass   []models.AllocationItem
	bySector  []models.AllocationItem
	byCountry []models.AllocationItem
}

// positionSets holds the named position templates. Entries are copied on
// use; the templates themselves are never handed out.
var positionSets = map[string][]models.Position{
	"global-multi-asset": {
		{ID: 1, Symbol: "AAPL", Name: "Apple Inc.", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 500, EntryPrice: 142.50, CurrentPrice: 189.84, EntryDate: "2023-03-15", PricingMode: models.PricingModeMarket, Weight: 8.2, PnL: 23670, PnLPercent: 33.22, DailyChange: 1.24},
		{ID: 2, Symbol: "MSFT", Name: "Microsoft Corp.", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 350, EntryPrice: 248.30, CurrentPrice: 378.91, EntryDate: "2023-01-10", PricingMode: models.PricingModeMarket, Weight: 11.4, PnL: 45713.50, PnLPercent: 52.59, DailyChange: 0.87},
		{ID: 3, Symbol: "NVDA", Name: "NVIDIA Corp.", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 200, EntryPrice: 180.12, CurrentPrice: 495.22, EntryDate: "2023-02-20", PricingMode: models.PricingModeMarket, Weight: 8.5, PnL: 63020, PnLPercent: 175.0, DailyChange: 2.31},
		{ID: 4, Symbol: "JPM", Name: "JPMorgan Chase", AssetClass: "Equity", Sector: "Financials", Country: "US", Currency: "USD", Quantity: 400, EntryPrice: 131.80, CurrentPrice: 183.27, EntryDate: "2023-04-05", PricingMode: models.PricingModeMarket, Weight: 6.3, PnL: 20588, PnLPercent: 39.05, DailyChange: -0.45},
		{ID: 5, Symbol: "JNJ", Name: "Johnson & Johnson", AssetClass: "Equity", Sector: "Healthcare", Country: "US", Currency: "USD", Quantity: 300, EntryPrice: 162.40, CurrentPrice: 156.74, EntryDate: "2023-01-25", PricingMode: models.PricingModeMarket, Weight: 4.0, PnL: -1698, PnLPercent: -3.49, DailyChange: -0.12},
		{ID: 6, Symbol: "PG", Name: "Procter & Gamble", AssetClass: "Equity", Sector: "Consumer Staples", Country: "US", Currency: "USD", Quantity: 250, EntryPrice: 142.10, CurrentPrice: 157.83, EntryDate: "2023-05-10", PricingMode: models.PricingModeMarket, Weight: 3.4, PnL: 3932.50, PnLPercent: 11.07, DailyChange: 0.33},
		{ID: 7, Symbol: "XOM", Name: "Exxon Mobil", AssetClass: "Equity", Sector: "Energy", Country: "US", Currency: "USD", Quantity: 450, EntryPrice: 108.50, CurrentPrice: 104.21, EntryDate: "2023-03-01", PricingMode: models.PricingModeMarket, Weight: 4.0, PnL: -1930.50, PnLPercent: -3.95, DailyChange: -1.87},
		{ID: 8, Symbol: "LLY", Name: "Eli Lilly", AssetClass: "Equity", Sector: "Healthcare", Country: "US", Currency: "USD", Quantity: 120, EntryPrice: 340.20, CurrentPrice: 598.43, EntryDate: "2023-02-14", PricingMode: models.PricingModeMarket, Weight: 6.2, PnL: 30987.60, PnLPercent: 75.90, DailyChange: 1.56},
		{ID: 9, Symbol: "V", Name: "Visa Inc.", AssetClass: "Equity", Sector: "Financials", Country: "US", Currency: "USD", Quantity: 280, EntryPrice: 218.90, CurrentPrice: 264.51, EntryDate: "2023-06-01", PricingMode: models.PricingModeMarket, Weight: 6.4, PnL: 12770.80, PnLPercent: 20.84, DailyChange: 0.62},
		{ID: 10, Symbol: "SAP", Name: "SAP SE", AssetClass: "Equity", Sector: "Technology", Country: "DE", Currency: "EUR", Quantity: 200, EntryPrice: 112.30, CurrentPrice: 162.84, EntryDate: "2023-04-20", PricingMode: models.PricingModeMarket, Weight: 2.8, PnL: 10108, PnLPercent: 45.0, DailyChange: 0.94},
		{ID: 11, Symbol: "ASML", Name: "ASML Holding", AssetClass: "Equity", Sector: "Technology", Country: "NL", Currency: "EUR", Quantity: 50, EntryPrice: 580.40, CurrentPrice: 712.50, EntryDate: "2023-07-15", PricingMode: models.PricingModeMarket, Weight: 3.1, PnL: 6605, PnLPercent: 22.75, DailyChange: 1.12},
		{ID: 12, Symbol: "TLT", Name: "iShares 20+ Yr Treasury", AssetClass: "Bond ETF", Sector: "Fixed Income", Country: "US", Currency: "USD", Quantity: 800, EntryPrice: 102.30, CurrentPrice: 92.15, EntryDate: "2023-01-05", PricingMode: models.PricingModeMarket, Weight: 6.3, PnL: -8120, PnLPercent: -9.92, DailyChange: 0.18},
		{ID: 13, Symbol: "LQD", Name: "iShares IG Corporate Bond", AssetClass: "Bond ETF", Sector: "Fixed Income", Country: "US", Currency: "USD", Quantity: 600, EntryPrice: 108.90, CurrentPrice: 107.24, EntryDate: "2023-02-10", PricingMode: models.PricingModeMarket, Weight: 5.5, PnL: -996, PnLPercent: -1.52, DailyChange: 0.08},
		{ID: 14, Symbol: "GLD", Name: "SPDR Gold Shares", AssetClass: "Commodity ETF", Sector: "Commodities", Country: "US", Currency: "USD", Quantity: 300, EntryPrice: 175.40, CurrentPrice: 193.62, EntryDate: "2023-03-20", PricingMode: models.PricingModeMarket, Weight: 5.0, PnL: 5466, PnLPercent: 10.39, DailyChange: 0.41},
		{ID: 15, Symbol: "CORP-BOND-A", Name: "Corporate Bond Series A", AssetClass: "Bond", Sector: "Fixed Income", Country: "US", Currency: "USD", Quantity: 100, EntryPrice: 980.00, CurrentPrice: 995.50, EntryDate: "2023-05-01", PricingMode: models.PricingModeFixed, Weight: 8.6, PnL: 1550, PnLPercent: 1.58, DailyChange: 0.0},
		{ID: 16, Symbol: "SPY-PUT-4500", Name: "SPY Put 4500 Dec24", AssetClass: "Option", Sector: "Derivatives", Country: "US", Currency: "USD", Quantity: 20, EntryPrice: 42.50, CurrentPrice: 18.30, EntryDate: "2024-06-15", PricingMode: models.PricingModeMarket, Weight: 0.3, PnL: -484, PnLPercent: -56.94, DailyChange: -3.21},
	},
	"tech-growth": {
		{ID: 1, Symbol: "AAPL", Name: "Apple Inc.", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 800, EntryPrice: 150.20, CurrentPrice: 189.84, EntryDate: "2023-06-10", PricingMode: models.PricingModeMarket, Weight: 14.5, PnL: 31712, PnLPercent: 26.39, DailyChange: 1.24},
		{ID: 2, Symbol: "MSFT", Name: "Microsoft Corp.", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 500, EntryPrice: 280.00, CurrentPrice: 378.91, EntryDate: "2023-04-15", PricingMode: models.PricingModeMarket, Weight: 18.1, PnL: 49455, PnLPercent: 35.33, DailyChange: 0.87},
		{ID: 3, Symbol: "NVDA", Name: "NVIDIA Corp.", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 400, EntryPrice: 220.50, CurrentPrice: 495.22, EntryDate: "2023-05-01", PricingMode: models.PricingModeMarket, Weight: 18.9, PnL: 109888, PnLPercent: 124.57, DailyChange: 2.31},
		{ID: 4, Symbol: "GOOGL", Name: "Alphabet Inc.", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 600, EntryPrice: 108.40, CurrentPrice: 142.65, EntryDate: "2023-03-20", PricingMode: models.PricingModeMarket, Weight: 8.2, PnL: 20550, PnLPercent: 31.59, DailyChange: 0.95},
		{ID: 5, Symbol: "META", Name: "Meta Platforms", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 250, EntryPrice: 210.30, CurrentPrice: 358.42, EntryDate: "2023-02-10", PricingMode: models.PricingModeMarket, Weight: 8.6, PnL: 37030, PnLPercent: 70.38, DailyChange: 1.45},
		{ID: 6, Symbol: "AMD", Name: "Advanced Micro Devices", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 350, EntryPrice: 85.60, CurrentPrice: 145.80, EntryDate: "2023-07-01", PricingMode: models.PricingModeMarket, Weight: 4.9, PnL: 21070, PnLPercent: 70.33, DailyChange: 1.88},
		{ID: 7, Symbol: "CRM", Name: "Salesforce Inc.", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 200, EntryPrice: 195.20, CurrentPrice: 265.30, EntryDate: "2023-08-15", PricingMode: models.PricingModeMarket, Weight: 5.1, PnL: 14020, PnLPercent: 35.91, DailyChange: 0.72},
		{ID: 8, Symbol: "ADBE", Name: "Adobe Inc.", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 120, EntryPrice: 420.10, CurrentPrice: 542.80, EntryDate: "2023-04-05", PricingMode: models.PricingModeMarket, Weight: 6.2, PnL: 14724, PnLPercent: 29.22, DailyChange: 0.56},
		{ID: 9, Symbol: "NOW", Name: "ServiceNow", AssetClass: "Equity", Sector: "Technology", Country: "US", Currency: "USD", Quantity: 80, EntryPrice: 485.30, CurrentPrice: 712.40, EntryDate: "2023-05-20", PricingMode: models.PricingModeMarket, Weight: 5.4, PnL: 18168, PnLPercent: 46.82, DailyChange: 1.10},
		{ID: 10, Symbol: "ASML", Name: "ASML Holding", AssetClass: "Equity", Sector: "Technology", Country: "NL", Currency: "EUR", Quantity: 60, EntryPrice: 590.00, CurrentPrice: 712.50, EntryDate: "2023-06-01", PricingMode: models.PricingModeMarket, Weight: 4.1, PnL: 7350, PnLPercent: 20.76, DailyChange: 1.12},
		{ID: 11, Symbol: "QQQ-CALL-420", Name: "QQQ Call 420 Mar25", AssetClass: "Option", Sector: "Derivatives", Country: "US", Currency: "USD", Quantity: 50, EntryPrice: 28.40, CurrentPrice: 45.20, EntryDate: "2024-09-01", PricingMode: models.PricingModeMarket, Weight: 2.2, PnL: 840, PnLPercent: 59.15, DailyChange: 4.50},
		{ID: 12, Symbol: "TLT", Name: "iShares 20+ Yr Treasury", AssetClass: "Bond ETF", Sector: "Fixed Income", Country: "US", Currency: "USD", Quantity: 200, EntryPrice: 98.50, CurrentPrice: 92.15, EntryDate: "2024-01-10", PricingMode: models.PricingModeMarket, Weight: 1.8, PnL: -1270, PnLPercent: -6.45, DailyChange: 0.18},
	},
	"conservative-income": {
		{ID: 1, Symbol: "TLT", Name: "iShares 20+ Yr Treasury", AssetClass: "Bond ETF", Sector: "Fixed Income", Country: "US", Currency: "USD", Quantity: 2000, EntryPrice: 100.50, CurrentPrice: 92.15, EntryDate: "2023-01-05", PricingMode: models.PricingModeMarket, Weight: 15.2, PnL: -16700, PnLPercent: -8.31, DailyChange: 0.18},
		{ID: 2, Symbol: "LQD", Name: "iShares IG Corporate Bond", AssetClass: "Bond ETF", Sector: "Fixed Income", Country: "US", Currency: "USD", Quantity: 1500, EntryPrice: 110.20, CurrentPrice: 107.24, EntryDate: "2023-01-15", PricingMode: models.PricingModeMarket, Weight: 13.3, PnL: -4440, PnLPercent: -2.69, DailyChange: 0.08},
		{ID: 3, Symbol: "BND", Name: "Vanguard Total Bond Market", AssetClass: "Bond ETF", Sector: "Fixed Income", Country: "US", Currency: "USD", Quantity: 1800, EntryPrice: 73.80, CurrentPrice: 72.10, EntryDate: "2023-02-01", PricingMode: models.PricingModeMarket, Weight: 10.7, PnL: -3060, PnLPercent: -2.30, DailyChange: 0.05},
		{ID: 4, Symbol: "CORP-BOND-A", Name: "Corporate Bond Series A", AssetClass: "Bond", Sector: "Fixed Income", Country: "US", Currency: "USD", Quantity: 150, EntryPrice: 980.00, CurrentPrice: 995.50, EntryDate: "2023-03-01", PricingMode: models.PricingModeFixed, Weight: 12.3, PnL: 2325, PnLPercent: 1.58, DailyChange: 0.0},
		{ID: 5, Symbol: "CORP-BOND-B", Name: "Corporate Bond Series B", AssetClass: "Bond", Sector: "Fixed Income", Country: "US", Currency: "USD", Quantity: 100, EntryPrice: 1020.00, CurrentPrice: 1035.00, EntryDate: "2023-04-15", PricingMode: models.PricingModeFixed, Weight: 8.5, PnL: 1500, PnLPercent: 1.47, DailyChange: 0.0},
		{ID: 6, Symbol: "JNJ", Name: "Johnson & Johnson", AssetClass: "Equity", Sector: "Healthcare", Country: "US", Currency: "USD", Quantity: 400, EntryPrice: 158.30, CurrentPrice: 156.74, EntryDate: "2023-02-10", PricingMode: models.PricingModeMarket, Weight: 5.2, PnL: -624, PnLPercent: -0.99, DailyChange: -0.12},
		{ID: 7, Symbol: "PG", Name: "Procter & Gamble", AssetClass: "Equity", Sector: "Consumer Staples", Country: "US", Currency: "USD", Quantity: 350, EntryPrice: 145.60, CurrentPrice: 157.83, EntryDate: "2023-03-20", PricingMode: models.PricingModeMarket, Weight: 4.6, PnL: 4280.50, PnLPercent: 8.40, DailyChange: 0.33},
		{ID: 8, Symbol: "KO", Name: "Coca-Cola Co.", AssetClass: "Equity", Sector: "Consumer Staples", Country: "US", Currency: "USD", Quantity: 500, EntryPrice: 58.40, CurrentPrice: 61.25, EntryDate: "2023-01-20", PricingMode: models.PricingModeMarket, Weight: 2.5, PnL: 1425, PnLPercent: 4.88, DailyChange: 0.21},
		{ID: 9, Symbol: "VZ", Name: "Verizon Communications", AssetClass: "Equity", Sector: "Telecom", Country: "US", Currency: "USD", Quantity: 600, EntryPrice: 38.90, CurrentPrice: 42.15, EntryDate: "2023-05-01", PricingMode: models.PricingModeMarket, Weight: 2.1, PnL: 1950, PnLPercent: 8.35, DailyChange: -0.28},
		{ID: 10, Symbol: "GLD", Name: "SPDR Gold Shares", AssetClass: "Commodity ETF", Sector: "Commodities", Country: "US", Currency: "USD", Quantity: 500, EntryPrice: 178.20, CurrentPrice: 193.62, EntryDate: "2023-04-01", PricingMode: models.PricingModeMarket, Weight: 8.0, PnL: 7710, PnLPercent: 8.65, DailyChange: 0.41},
		{ID: 11, Symbol: "VNQ", Name: "Vanguard Real Estate ETF", AssetClass: "Equity", Sector: "Real Estate", Country: "US", Currency: "USD", Quantity: 400, EntryPrice: 82.50, CurrentPrice: 85.30, EntryDate: "2023-06-15", PricingMode: models.PricingModeMarket, Weight: 2.8, PnL: 1120, PnLPercent: 3.39, DailyChange: 0.15},
	},
}

var allocationSets = map[string]allocationSet{
	"global-multi-asset": {
		byClass: []models.AllocationItem{
			{Name: "Equity", Value: 64.3, Color: "#3b82f6"},
			{Name: "Bond ETF", Value: 11.8, Color: "#10b981"},
			{Name: "Bond", Value: 8.6, Color: "#6366f1"},
			{Name: "Commodity ETF", Value: 5.0, Color: "#f59e0b"},
			{Name: "Option", Value: 0.3, Color: "#ef4444"},
			{Name: "Cash", Value: 10.0, Color: "#94a3b8"},
		},
		bySector: []models.AllocationItem{
			{Name: "Technology", Value: 34.0, Color: "#3b82f6"},
			{Name: "Financials", Value: 12.7, Color: "#10b981"},
			{Name: "Healthcare", Value: 10.2, Color: "#8b5cf6"},
			{Name: "Fixed Income", Value: 20.4, Color: "#6366f1"},
			{Name: "Consumer Staples", Value: 3.4, Color: "#f59e0b"},
			{Name: "Energy", Value: 4.0, Color: "#ef4444"},
			{Name: "Commodities", Value: 5.0, Color: "#ec4899"},
			{Name: "Derivatives", Value: 0.3, Color: "#14b8a6"},
			{Name: "Cash", Value: 10.0, Color: "#94a3b8"},
		},
		byCountry: []models.AllocationItem{
			{Name: "United States", Value: 83.5, Color: "#3b82f6"},
			{Name: "Germany", Value: 2.8, Color: "#f59e0b"},
			{Name: "Netherlands", Value: 3.1, Color: "#ef4444"},
			{Name: "Cash/Other", Value: 10.6, Color: "#94a3b8"},
		},
	},
	"tech-growth": {
		byClass: []models.AllocationItem{
			{Name: "Equity", Value: 93.9, Color: "#3b82f6"},
			{Name: "Bond ETF", Value: 1.8, Color: "#10b981"},
			{Name: "Option", Value: 2.2, Color: "#ef4444"},
			{Name: "Cash", Value: 2.1, Color: "#94a3b8"},
		},
		bySector: []models.AllocationItem{
			{Name: "Technology", Value: 93.9, Color: "#3b82f6"},
			{Name: "Fixed Income", Value: 1.8, Color: "#6366f1"},
			{Name: "Derivatives", Value: 2.2, Color: "#14b8a6"},
			{Name: "Cash", Value: 2.1, Color: "#94a3b8"},
		},
		byCountry: []models.AllocationItem{
			{Name: "United States", Value: 91.8, Color: "#3b82f6"},
			{Name: "Netherlands", Value: 4.1, Color: "#ef4444"},
			{Name: "Cash/Other", Value: 4.1, Color: "#94a3b8"},
		},
	},
	"conservative-income": {
		byClass: []models.AllocationItem{
			{Name: "Equity", Value: 17.2, Color: "#3b82f6"},
			{Name: "Bond ETF", Value: 39.2, Color: "#10b981"},
			{Name: "Bond", Value: 20.8, Color: "#6366f1"},
			{Name: "Commodity ETF", Value: 8.0, Color: "#f59e0b"},
			{Name: "Cash", Value: 14.8, Color: "#94a3b8"},
		},
		bySector: []models.AllocationItem{
			{Name: "Fixed Income", Value: 60.0, Color: "#6366f1"},
			{Name: "Healthcare", Value: 5.2, Color: "#8b5cf6"},
			{Name: "Consumer Staples", Value: 7.1, Color: "#f59e0b"},
			{Name: "Telecom", Value: 2.1, Color: "#ec4899"},
			{Name: "Commodities", Value: 8.0, Color: "#f59e0b"},
			{Name: "Real Estate", Value: 2.8, Color: "#14b8a6"},
			{Name: "Cash", Value: 14.8, Color: "#94a3b8"},
		},
		byCountry: []models.AllocationItem{
			{Name: "United States", Value: 100.0, Color: "#3b82f6"},
		},
	},
}

// templatePositions returns a fresh copy of the named position set,
// falling back to the default template for unknown names.
func templatePositions(name string) []models.Position {
	set, ok := positionSets[name]
	if !ok {
		set = positionSets[DefaultPositionSet]
	}
	out := make([]models.Position, len(set))
	copy(out, set)
	return out
}

func templateAllocations(name string) allocationSet {
	set, ok := allocationSets[name]
	if !ok {
		set = allocationSets[DefaultPositionSet]
	}
	return allocationSet{
		byClass:   append([]models.AllocationItem(nil), set.byClass...),
		bySector:  append([]models.AllocationItem(nil), set.bySector...),
		byCountry: append([]models.AllocationItem(nil), set.byCountry...),
	}
}

// PositionSetNames lists the available templates.
func PositionSetNames() []string {
	names := make([]string, 0, len(positionSets))
	for name := range positionSets {
		names = append(names, name)
	}
	return names
}
