package synth

import (
	"strings"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
)

const maxContributionRows = 10

// stressScenarios produces the five baseline scenarios: three replayed
// historical episodes and two parametric shocks. Shock magnitudes are
// fixed per scenario; portfolio and worst-position impacts carry seeded
// variance. Rate-sensitive scenarios pin the worst position to the first
// bond-like holding when one exists.
func stressScenarios(positions []models.Position, seed int) []models.StressScenario {
	top := make([]string, 0, 5)
	for _, p := range positions {
		top = append(top, p.Symbol)
		if len(top) == 5 {
			break
		}
	}

	return []models.StressScenario{
		{
			ID: 1, Name: "2008 Financial Crisis",
			Description: "Replay of Sep-Nov 2008 market conditions",
			Type:        models.ScenarioHistorical,
			EquityShock: -38.5, BondShock: -5.2, CommodityShock: -25.0,
			PortfolioImpact:     round1(-20 - Rand(seed+400)*15),
			WorstPosition:       symbolAt(top, 2),
			WorstPositionImpact: round1(-40 - Rand(seed+401)*15),
		},
		{
			ID: 2, Name: "2020 COVID Crash",
			Description: "Replay of Feb-Mar 2020 pandemic sell-off",
			Type:        models.ScenarioHistorical,
			EquityShock: -33.9, BondShock: 8.5, CommodityShock: -12.4,
			PortfolioImpact:     round1(-15 - Rand(seed+410)*12),
			WorstPosition:       symbolAt(top, 3),
			WorstPositionImpact: round1(-35 - Rand(seed+411)*15),
		},
		{
			ID: 3, Name: "2022 Rate Shock",
			Description: "Replay of 2022 interest rate hiking cycle",
			Type:        models.ScenarioHistorical,
			EquityShock: -19.4, BondShock: -17.8, CommodityShock: 15.2,
			PortfolioImpact:     round1(-10 - Rand(seed+420)*10),
			WorstPosition:       firstBondSymbol(positions, symbolAt(top, 0)),
			WorstPositionImpact: round1(-25 - Rand(seed+421)*10),
		},
		{
			ID: 4, Name: "Equity Bear Market",
			Description: "Custom scenario: -30% equity decline",
			Type:        models.ScenarioParametric,
			EquityShock: -30.0, BondShock: 5.0, CommodityShock: -10.0,
			PortfolioImpact:     round1(-15 - Rand(seed+430)*8),
			WorstPosition:       symbolAt(top, 2),
			WorstPositionImpact: round1(-35 - Rand(seed+431)*10),
		},
		{
			ID: 5, Name: "Stagflation",
			Description: "Custom: rates up + equity down + commodities up",
			Type:        models.ScenarioParametric,
			EquityShock: -15.0, BondShock: -12.0, CommodityShock: 20.0,
			PortfolioImpact:     round1(-8 - Rand(seed+440)*8),
			WorstPosition:       firstBondSymbol(positions, symbolAt(top, 0)),
			WorstPositionImpact: round1(-20 - Rand(seed+441)*10),
		},
	}
}

// stressContributions estimates, per position, the loss under each of the
// three historical scenarios. Bond-like holdings get a +10 rate-shock
// bonus: the 2022 episode punished duration while commodities rallied.
func stressContributions(positions []models.Position, seed int) []models.StressContribution {
	n := len(positions)
	if n > maxContributionRows {
		n = maxContributionRows
	}
	out := make([]models.StressContribution, n)
	for i, p := range positions[:n] {
		bondBonus := 0.0
		if strings.Contains(p.AssetClass, "Bond") {
			bondBonus = 10
		}
		out[i] = models.StressContribution{
			Symbol:     p.Symbol,
			Crisis2008: round1(-15 - Rand(seed+p.ID*50)*40),
			Covid2020:  round1(-10 - Rand(seed+p.ID*51)*35),
			RateShock:  round1(-5 - Rand(seed+p.ID*52)*25 + bondBonus),
		}
	}
	return out
}

// ScenarioImpact computes the portfolio impact of a user-defined scenario
// as the allocation-weighted sum of class-level shocks. Equity and Option
// allocations take the equity shock; classes containing "Bond" or
// "Commodity" take their respective shocks.
func ScenarioImpact(allocationByClass []models.AllocationItem, equityShock, bondShock, commodityShock float64) float64 {
	var equityW, bondW, commodityW float64
	for _, a := range allocationByClass {
		switch {
		case a.Name == "Equity" || a.Name == "Option":
			equityW += a.Value
		case strings.Contains(a.Name, "Bond"):
			bondW += a.Value
		case strings.Contains(a.Name, "Commodity"):
			commodityW += a.Value
		}
	}
	return round1(equityW/100*equityShock + bondW/100*bondShock + commodityW/100*commodityShock)
}

// WorstPosition finds the position hit hardest by a user-defined scenario.
// Each position takes its class shock scaled by a per-position variance
// factor in [0.8, 1.4); classes outside the three shocked groups take half
// the equity shock.
func WorstPosition(positions []models.Position, equityShock, bondShock, commodityShock float64) (string, float64) {
	if len(positions) == 0 {
		return "N/A", 0
	}
	worstSymbol := positions[0].Symbol
	worstImpact := 0.0
	for _, p := range positions {
		var shock float64
		switch {
		case p.AssetClass == "Equity" || p.AssetClass == "Option":
			shock = equityShock
		case strings.Contains(p.AssetClass, "Bond"):
			shock = bondShock
		case strings.Contains(p.AssetClass, "Commodity"):
			shock = commodityShock
		default:
			shock = equityShock * 0.5
		}
		impact := shock * (0.8 + Rand(p.ID*73)*0.6)
		if impact < worstImpact {
			worstImpact = impact
			worstSymbol = p.Symbol
		}
	}
	return worstSymbol, round1(worstImpact)
}

func symbolAt(symbols []string, i int) string {
	if i < len(symbols) {
		return symbols[i]
	}
	return "N/A"
}

func firstBondSymbol(positions []models.Position, fallback string) string {
	for _, p := range positions {
		if strings.Contains(p.AssetClass, "Bond") {
			return p.Symbol
		}
	}
	return fallback
}
