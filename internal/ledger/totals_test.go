package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
	"github.com/mlcarter/housetab/internal/user"
)

var testUsers = []user.User{
	{ID: 1, Username: "ruby", DisplayName: "Ruby", IsActive: true},
	{ID: 2, Username: "jack", DisplayName: "Jack", IsActive: true},
	{ID: 3, Username: "default", DisplayName: "Default", IsActive: true},
}

func TestUserTotal_LegacyLabels(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Amount: -100, Label: "Ruby"},
		{ID: 2, Amount: -60, Label: "Both"},
		{ID: 3, Amount: -40, Label: "Jack"},
		{ID: 4, Amount: -25, Label: ""},
	}

	assert.InDelta(t, -130, ledger.UserTotal(1, txs, nil, testUsers), 1e-9)
	assert.InDelta(t, -70, ledger.UserTotal(2, txs, nil, testUsers), 1e-9)
}

func TestUserTotal_AllocationsWinOverLabel(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Amount: -90, Label: "Ruby"}, // label must be ignored
	}
	allocs := transaction.Allocations{
		1: {
			{TransactionID: 1, UserID: 1, Amount: -30},
			{TransactionID: 1, UserID: 2, Amount: -60},
		},
	}

	assert.InDelta(t, -30, ledger.UserTotal(1, txs, allocs, testUsers), 1e-9)
	assert.InDelta(t, -60, ledger.UserTotal(2, txs, allocs, testUsers), 1e-9)
}

func TestUserTotal_EmptyAllocationListBlocksLegacyFallback(t *testing.T) {
	// An allocation entry exists (even empty), so legacy label math is off.
	txs := []*transaction.Transaction{
		{ID: 1, Amount: -90, Label: "Ruby"},
	}
	allocs := transaction.Allocations{1: {}}

	assert.Zero(t, ledger.UserTotal(1, txs, allocs, testUsers))
}

func TestUserTotal_BothNeedsTwoRealUsers(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Amount: -80, Label: "Both"},
	}
	soloRoster := []user.User{
		{ID: 1, Username: "ruby", DisplayName: "Ruby", IsActive: true},
		{ID: 3, Username: "default", DisplayName: "Default", IsActive: true},
	}

	// Only one real user: "Both" assigns nothing.
	assert.Zero(t, ledger.UserTotal(1, txs, nil, soloRoster))
}

func TestUserTotal_UnknownUserIsZero(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Amount: -100, Label: "Ruby"},
	}

	assert.Zero(t, ledger.UserTotal(99, txs, nil, testUsers))
}

func TestTotals_BothSplitsEvenly(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Amount: -100, Label: "Both"},
	}

	got := ledger.Totals(txs, testUsers, nil)

	assert.InDelta(t, -50, got["Ruby"], 1e-9)
	assert.InDelta(t, -50, got["Jack"], 1e-9)
}

func TestTotals_ExcludesDefaultAndInactiveUsers(t *testing.T) {
	users := append([]user.User{}, testUsers...)
	users = append(users, user.User{ID: 4, Username: "old", DisplayName: "Old", IsActive: false})

	got := ledger.Totals(nil, users, nil)

	assert.Contains(t, got, "Ruby")
	assert.Contains(t, got, "Jack")
	assert.NotContains(t, got, "Default")
	assert.NotContains(t, got, "Old")
}

func TestTotals_PartiallyLoadedState(t *testing.T) {
	// The dashboard renders before all fetches resolve; nil inputs must not
	// panic and every present user must map to zero.
	assert.NotPanics(t, func() {
		got := ledger.Totals(nil, testUsers, nil)
		assert.Zero(t, got["Ruby"])
		assert.Zero(t, got["Jack"])
	})

	assert.Empty(t, ledger.Totals(nil, nil, nil))
}
