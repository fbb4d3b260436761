package ledger

import (
	"github.com/mlcarter/housetab/internal/transaction"
)

// GroupSplits relocates the children of each split so they immediately
// follow their parent, keeping the surrounding sort order intact: children
// keep their relative order, everything else keeps its position relative to
// other non-relocated transactions. Clusters emit depth-first, so a child
// that is itself split brings its own children along. A child whose parent
// is not in the collection stays where it is. Every input transaction
// appears in the output exactly once.
func GroupSplits(txs []*transaction.Transaction) []*transaction.Transaction {
	parents := make(map[int64]bool, len(txs))

	for _, tx := range txs {
		if tx.HasSplit {
			parents[tx.ID] = true
		}
	}

	if len(parents) == 0 {
		return copyOf(txs)
	}

	// Collect children per present parent, in their incoming order.
	children := make(map[int64][]*transaction.Transaction)

	for _, tx := range txs {
		if tx.SplitFromID == nil {
			continue
		}

		if parent := *tx.SplitFromID; parents[parent] {
			children[parent] = append(children[parent], tx)
		}
	}

	out := make([]*transaction.Transaction, 0, len(txs))
	emitted := make(map[int64]bool, len(txs))

	var emit func(tx *transaction.Transaction)
	emit = func(tx *transaction.Transaction) {
		if emitted[tx.ID] {
			return
		}

		emitted[tx.ID] = true
		out = append(out, tx)

		for _, c := range children[tx.ID] {
			emit(c)
		}
	}

	for _, tx := range txs {
		if tx.SplitFromID != nil && parents[*tx.SplitFromID] {
			continue // emitted inside its parent's cluster
		}

		emit(tx)
	}

	// A parent reference loop has no root to start its cluster from; emit
	// anything left in incoming order rather than dropping it.
	for _, tx := range txs {
		emit(tx)
	}

	return out
}
