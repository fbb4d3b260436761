package ledger

import (
	"sort"

	"github.com/mlcarter/housetab/internal/transaction"
)

// MonthSpend is the total spend (expenses only, as a positive figure) for
// one calendar month.
type MonthSpend struct {
	Month string // YYYY-MM
	Spend float64
}

// MonthlySpend buckets expenses by calendar month for the spend chart,
// oldest month first. Income and refunds (positive amounts) are excluded, as
// are transactions with unparseable dates. Split parents are skipped when
// their children are present so a split is not counted twice.
func MonthlySpend(txs []*transaction.Transaction) []MonthSpend {
	hasChildren := make(map[int64]bool)

	for _, tx := range txs {
		if tx.SplitFromID != nil {
			hasChildren[*tx.SplitFromID] = true
		}
	}

	buckets := make(map[string]float64)

	for _, tx := range txs {
		if tx.Amount >= 0 {
			continue
		}

		if tx.HasSplit && hasChildren[tx.ID] {
			continue
		}

		date, ok := NormalizeDate(tx.Date)
		if !ok {
			continue
		}

		buckets[date[:7]] += -tx.Amount
	}

	out := make([]MonthSpend, 0, len(buckets))
	for month, spend := range buckets {
		out = append(out, MonthSpend{Month: month, Spend: spend})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })

	return out
}
