package ledger

import (
	"fmt"
	"math"

	"github.com/mlcarter/housetab/internal/transaction"
	"github.com/mlcarter/housetab/internal/user"
)

// Tolerances for detecting an even split from allocation data.
const (
	equalPercentTolerance = 0.1
	equalAmountTolerance  = 0.01
)

// SplitLabel derives the "who does this belong to" display string for a
// transaction. With allocations: the sole user's display name, "Both" for an
// even 2-way split, "All users" for an even 3+ way split, or "<name> +N" for
// an uneven one. Without allocations the legacy label is returned as-is, and
// the empty string means render blank.
//
// Equal-split detection is a best-effort display heuristic: allocations that
// happen to be equal are indistinguishable from an intentional even split.
// It is not a financial source of truth.
func SplitLabel(tx *transaction.Transaction, allocs transaction.Allocations, users []user.User) string {
	entries := allocs[tx.ID]

	if len(entries) == 0 {
		return tx.Label
	}

	if len(entries) == 1 {
		return displayName(users, entries[0].UserID)
	}

	if isEqualSplit(entries) {
		if len(entries) == 2 {
			return transaction.LabelBoth
		}

		return "All users"
	}

	return fmt.Sprintf("%s +%d", displayName(users, entries[0].UserID), len(entries)-1)
}

// isEqualSplit reports whether the allocations look like an even split:
// every entry tagged "equal", or matching percentages, or matching absolute
// amounts within tolerance.
func isEqualSplit(entries []transaction.Allocation) bool {
	allTagged := true

	for _, a := range entries {
		if a.SplitTypeCode != transaction.SplitTypeEqual {
			allTagged = false
			break
		}
	}

	if allTagged {
		return true
	}

	if first := entries[0].Percentage; first != nil {
		samePercent := true

		for _, a := range entries[1:] {
			if a.Percentage == nil || math.Abs(*a.Percentage-*first) > equalPercentTolerance {
				samePercent = false
				break
			}
		}

		if samePercent {
			return true
		}
	}

	first := math.Abs(entries[0].Amount)
	for _, a := range entries[1:] {
		if math.Abs(math.Abs(a.Amount)-first) > equalAmountTolerance {
			return false
		}
	}

	return true
}

func displayName(users []user.User, id int64) string {
	for _, u := range users {
		if u.ID == id {
			return u.DisplayName
		}
	}

	return ""
}
