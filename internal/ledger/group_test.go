package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
)

func child(id, parentID int64) *transaction.Transaction {
	return &transaction.Transaction{ID: id, SplitFromID: &parentID}
}

func TestGroupSplits_ChildrenFollowParent(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 10, HasSplit: true},
		{ID: 5},
		child(11, 10),
		{ID: 7},
		child(12, 10),
	}

	got := ledger.GroupSplits(txs)

	assert.Equal(t, []int64{10, 11, 12, 5, 7}, ids(got))
}

func TestGroupSplits_NoSplitsIsIdentity(t *testing.T) {
	txs := []*transaction.Transaction{{ID: 3}, {ID: 1}, {ID: 2}}

	got := ledger.GroupSplits(txs)

	assert.Equal(t, []int64{3, 1, 2}, ids(got))
}

func TestGroupSplits_OrphanChildStaysPut(t *testing.T) {
	// Parent filtered out of the snapshot: the child keeps its position.
	txs := []*transaction.Transaction{
		{ID: 1},
		child(2, 99),
		{ID: 3},
	}

	got := ledger.GroupSplits(txs)

	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestGroupSplits_MultipleParentsKeepSortOrder(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 20, HasSplit: true},
		child(31, 30),
		{ID: 30, HasSplit: true},
		child(21, 20),
		{ID: 40},
	}

	got := ledger.GroupSplits(txs)

	assert.Equal(t, []int64{20, 21, 30, 31, 40}, ids(got))
}

func TestGroupSplits_NestedSplitKeepsGrandchildren(t *testing.T) {
	// A child that was split again: its own children follow it inside the
	// outer cluster, and no row is lost.
	mid := child(2, 1)
	mid.HasSplit = true

	txs := []*transaction.Transaction{
		{ID: 1, HasSplit: true},
		mid,
		child(3, 2),
		{ID: 4},
	}

	got := ledger.GroupSplits(txs)

	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))
}

func TestGroupSplits_ParentLoopDropsNothing(t *testing.T) {
	a := child(1, 2)
	a.HasSplit = true

	b := child(2, 1)
	b.HasSplit = true

	txs := []*transaction.Transaction{a, b, {ID: 3}}

	got := ledger.GroupSplits(txs)

	assert.ElementsMatch(t, []int64{1, 2, 3}, ids(got))
}

func TestGroupSplits_DoesNotMutateInput(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 10, HasSplit: true},
		{ID: 5},
		child(11, 10),
	}

	_ = ledger.GroupSplits(txs)

	assert.Equal(t, []int64{10, 5, 11}, ids(txs))
}
