package ledger

import (
	"github.com/mlcarter/housetab/internal/transaction"
	"github.com/mlcarter/housetab/internal/user"
)

// UserTotal sums one user's share across the given transactions. A
// transaction with allocations contributes that user's allocation amount (or
// nothing); a transaction without allocations falls back to the legacy label
// convention: the full amount when the label is the user's display name,
// half when the label is "Both" and at least two real users exist. The
// result is always a plain number, zero for a user with no activity.
func UserTotal(userID int64, txs []*transaction.Transaction, allocs transaction.Allocations, users []user.User) float64 {
	var displayName string

	realUsers := 0

	for _, u := range users {
		if u.ID == userID {
			displayName = u.DisplayName
		}

		if u.IsReal() {
			realUsers++
		}
	}

	var total float64

	for _, tx := range txs {
		if entries, ok := allocs[tx.ID]; ok {
			for _, a := range entries {
				if a.UserID == userID {
					total += a.Amount
				}
			}

			continue
		}

		switch {
		case displayName != "" && tx.Label == displayName:
			total += tx.Amount
		case tx.Label == transaction.LabelBoth && realUsers >= 2:
			total += tx.Amount / 2
		}
	}

	return total
}

// Totals computes every real, active user's total, keyed by display name.
// Partially loaded snapshots are fine: with no transactions or allocations
// yet, every present user maps to zero. The dashboard renders before all
// async data resolves, so this never panics on nil inputs.
func Totals(txs []*transaction.Transaction, users []user.User, allocs transaction.Allocations) map[string]float64 {
	totals := make(map[string]float64)

	for _, u := range users {
		if !u.IsReal() || !u.IsActive {
			continue
		}

		totals[u.DisplayName] = UserTotal(u.ID, txs, allocs, users)
	}

	return totals
}
