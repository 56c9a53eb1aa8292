package synth

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
)

const maxDividendPositions = 4

// transactionLedger derives a transaction history consistent with the
// position set: one funding deposit, one buy per position at its entry
// date, quarterly dividends for up to four equity holdings, two management
// fees and, for larger portfolios, a partial trim of the fifth position.
// The ledger is returned sorted by date descending.
func transactionLedger(positions []models.Position, startValue float64, currency string, seed int) []models.Transaction {
	var transactions []models.Transaction
	id := 1
	next := func() int {
		n := id
		id++
		return n
	}

	transactions = append(transactions, models.Transaction{
		ID: next(), Date: "2023-01-02", Type: models.TransactionDeposit,
		Symbol: "—", Name: "Initial Deposit",
		Quantity: 1, Price: startValue, Total: startValue,
		Currency: currency, Notes: "Portfolio funding",
	})

	for _, p := range positions {
		transactions = append(transactions, models.Transaction{
			ID: next(), Date: p.EntryDate, Type: models.TransactionBuy,
			Symbol: p.Symbol, Name: p.Name,
			Quantity: p.Quantity, Price: p.EntryPrice,
			Total:    round2(p.Quantity * p.EntryPrice),
			Currency: p.Currency,
			Notes:    fmt.Sprintf("Acquired %v units of %s", p.Quantity, p.Symbol),
		})
	}

	dividendCount := 0
	for _, p := range positions {
		if p.AssetClass != "Equity" {
			continue
		}
		entry, err := time.Parse("2006-01-02", p.EntryDate)
		if err != nil {
			continue
		}
		amount := round2(p.Quantity * (0.5 + Rand(seed+p.ID*77)*1.5))
		transactions = append(transactions, models.Transaction{
			ID:   next(),
			Date: entry.AddDate(0, 3+dividendCount, 0).Format("2006-01-02"),
			Type: models.TransactionDividend, Symbol: p.Symbol, Name: p.Name,
			Quantity: p.Quantity, Price: round4(amount / p.Quantity), Total: amount,
			Currency: p.Currency, Notes: "Quarterly dividend",
		})
		dividendCount++
		if dividendCount == maxDividendPositions {
			break
		}
	}

	for _, fee := range []struct{ date, notes string }{
		{"2023-06-30", "H1 2023 management fee"},
		{"2023-12-31", "H2 2023 management fee"},
	} {
		transactions = append(transactions, models.Transaction{
			ID: next(), Date: fee.date, Type: models.TransactionFee,
			Symbol: "—", Name: "Management Fee",
			Quantity: 1, Price: 250, Total: -250,
			Currency: currency, Notes: fee.notes,
		})
	}

	if len(positions) > 5 {
		sold := positions[4]
		qty := math.Round(sold.Quantity * 0.3)
		transactions = append(transactions, models.Transaction{
			ID: next(), Date: "2024-03-15", Type: models.TransactionSell,
			Symbol: sold.Symbol, Name: sold.Name,
			Quantity: qty, Price: sold.CurrentPrice,
			Total:    round2(qty * sold.CurrentPrice),
			Currency: sold.Currency,
			Notes:    fmt.Sprintf("Partial trim of %s", sold.Symbol),
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})
	return transactions
}
