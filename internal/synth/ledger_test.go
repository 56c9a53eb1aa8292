package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
)

func TestTransactionLedger(t *testing.T) {
	positions := templatePositions("global-multi-asset")
	ledger := transactionLedger(positions, 1_000_000, "USD", 42)

	// One deposit, one buy per position, four dividends, two fees and one
	// partial sell.
	require.Len(t, ledger, 1+len(positions)+4+2+1)

	byType := make(map[models.TransactionType][]models.Transaction)
	for _, tx := range ledger {
		byType[tx.Type] = append(byType[tx.Type], tx)
	}

	t.Run("deposit funds the portfolio", func(t *testing.T) {
		require.Len(t, byType[models.TransactionDeposit], 1)
		dep := byType[models.TransactionDeposit][0]
		assert.Equal(t, "2023-01-02", dep.Date)
		assert.Equal(t, 1_000_000.0, dep.Total)
		assert.Equal(t, "—", dep.Symbol)
		// Funding precedes every trade, so it sorts last.
		assert.Equal(t, dep, ledger[len(ledger)-1])
	})

	t.Run("one buy per position", func(t *testing.T) {
		buys := byType[models.TransactionBuy]
		require.Len(t, buys, len(positions))
		bought := make(map[string]models.Transaction)
		for _, b := range buys {
			bought[b.Symbol] = b
		}
		for _, p := range positions {
			b, ok := bought[p.Symbol]
			require.True(t, ok, "missing buy for %s", p.Symbol)
			assert.Equal(t, p.EntryDate, b.Date)
			assert.Equal(t, p.Quantity, b.Quantity)
			assert.Equal(t, p.EntryPrice, b.Price)
			assert.Equal(t, round2(p.Quantity*p.EntryPrice), b.Total)
		}
	})

	t.Run("dividends for the first four equities", func(t *testing.T) {
		divs := byType[models.TransactionDividend]
		require.Len(t, divs, 4)
		symbols := make(map[string]bool)
		for _, d := range divs {
			symbols[d.Symbol] = true
			assert.Greater(t, d.Total, 0.0)
		}
		assert.Equal(t, map[string]bool{"AAPL": true, "MSFT": true, "NVDA": true, "JPM": true}, symbols)
	})

	t.Run("semiannual fees", func(t *testing.T) {
		fees := byType[models.TransactionFee]
		require.Len(t, fees, 2)
		assert.Equal(t, "2023-12-31", fees[0].Date)
		assert.Equal(t, "2023-06-30", fees[1].Date)
		for _, f := range fees {
			assert.Equal(t, -250.0, f.Total)
		}
	})

	t.Run("partial trim of the fifth position", func(t *testing.T) {
		sells := byType[models.TransactionSell]
		require.Len(t, sells, 1)
		sell := sells[0]
		assert.Equal(t, "JNJ", sell.Symbol)
		assert.Equal(t, "2024-03-15", sell.Date)
		assert.Equal(t, 90.0, sell.Quantity)
		assert.Equal(t, positions[4].CurrentPrice, sell.Price)
	})

	t.Run("sorted by date descending", func(t *testing.T) {
		for i := 1; i < len(ledger); i++ {
			assert.GreaterOrEqual(t, ledger[i-1].Date, ledger[i].Date)
		}
	})

	t.Run("unique ids", func(t *testing.T) {
		ids := make(map[int]bool)
		for _, tx := range ledger {
			assert.False(t, ids[tx.ID], "duplicate id %d", tx.ID)
			ids[tx.ID] = true
		}
	})
}

func TestTransactionLedgerSmallPortfolio(t *testing.T) {
	// Five or fewer positions: no partial sell.
	positions := templatePositions("global-multi-asset")[:5]
	ledger := transactionLedger(positions, 250_000, "USD", 7)

	for _, tx := range ledger {
		assert.NotEqual(t, models.TransactionSell, tx.Type)
	}
	// Deposit, five buys, four equity dividends, two fees.
	assert.Len(t, ledger, 12)
}
