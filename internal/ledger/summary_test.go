package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
)

func TestMonthlySpend(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(1, "2023-01-05", -100),
		tx(2, "2023-01-20", -50),
		tx(3, "2023-02-01", -25),
		tx(4, "2023-02-14", 300), // income, excluded
		tx(5, "bad-date", -999),  // unparseable, excluded
	}

	got := ledger.MonthlySpend(txs)

	require.Len(t, got, 2)
	assert.Equal(t, "2023-01", got[0].Month)
	assert.InDelta(t, 150, got[0].Spend, 1e-9)
	assert.Equal(t, "2023-02", got[1].Month)
	assert.InDelta(t, 25, got[1].Spend, 1e-9)
}

func TestMonthlySpend_SplitParentNotDoubleCounted(t *testing.T) {
	parent := &transaction.Transaction{ID: 10, Date: "2023-03-01", Amount: -100, HasSplit: true}

	txs := []*transaction.Transaction{
		parent,
		child(11, 10),
		child(12, 10),
	}
	txs[1].Date, txs[1].Amount = "2023-03-01", -60
	txs[2].Date, txs[2].Amount = "2023-03-01", -40

	got := ledger.MonthlySpend(txs)

	require.Len(t, got, 1)
	assert.InDelta(t, 100, got[0].Spend, 1e-9)
}

func TestMonthlySpend_Empty(t *testing.T) {
	assert.Empty(t, ledger.MonthlySpend(nil))
}
