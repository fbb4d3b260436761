package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
	"github.com/mlcarter/housetab/internal/user"
)

func floatPtr(f float64) *float64 { return &f }

func TestSplitLabel(t *testing.T) {
	users := []user.User{
		{ID: 1, Username: "ruby", DisplayName: "Ruby", IsActive: true},
		{ID: 2, Username: "jack", DisplayName: "Jack", IsActive: true},
		{ID: 3, Username: "meg", DisplayName: "Meg", IsActive: true},
	}

	type testCase struct {
		name    string
		tx      *transaction.Transaction
		entries []transaction.Allocation
		want    string
	}

	tests := []testCase{
		{
			name: "NoAllocationsNoLabel",
			tx:   &transaction.Transaction{ID: 1},
			want: "",
		},
		{
			name: "NoAllocationsLegacyLabelPassesThrough",
			tx:   &transaction.Transaction{ID: 1, Label: "Ruby"},
			want: "Ruby",
		},
		{
			name:    "SingleAllocation",
			tx:      &transaction.Transaction{ID: 1},
			entries: []transaction.Allocation{{UserID: 2, Amount: -50}},
			want:    "Jack",
		},
		{
			name: "TwoTaggedEqual",
			tx:   &transaction.Transaction{ID: 1},
			entries: []transaction.Allocation{
				{UserID: 1, Amount: -33, SplitTypeCode: "equal"},
				{UserID: 2, Amount: -67, SplitTypeCode: "equal"},
			},
			want: "Both",
		},
		{
			name: "TwoEqualAmounts",
			tx:   &transaction.Transaction{ID: 1},
			entries: []transaction.Allocation{
				{UserID: 1, Amount: -50.004},
				{UserID: 2, Amount: -50.0},
			},
			want: "Both",
		},
		{
			name: "ThreeEqualAmounts",
			tx:   &transaction.Transaction{ID: 1},
			entries: []transaction.Allocation{
				{UserID: 1, Amount: -33.33},
				{UserID: 2, Amount: -33.34},
				{UserID: 3, Amount: -33.33},
			},
			want: "All users",
		},
		{
			name: "MatchingPercentages",
			tx:   &transaction.Transaction{ID: 1},
			entries: []transaction.Allocation{
				{UserID: 1, Amount: -20, Percentage: floatPtr(33.3)},
				{UserID: 2, Amount: -40, Percentage: floatPtr(33.35)},
				{UserID: 3, Amount: -40, Percentage: floatPtr(33.3)},
			},
			want: "All users",
		},
		{
			name: "UnevenTwoWay",
			tx:   &transaction.Transaction{ID: 1},
			entries: []transaction.Allocation{
				{UserID: 1, Amount: -70},
				{UserID: 2, Amount: -30},
			},
			want: "Ruby +1",
		},
		{
			name: "UnevenThreeWay",
			tx:   &transaction.Transaction{ID: 1},
			entries: []transaction.Allocation{
				{UserID: 2, Amount: -60},
				{UserID: 1, Amount: -25},
				{UserID: 3, Amount: -15},
			},
			want: "Jack +2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocs := transaction.Allocations{}
			if tt.entries != nil {
				allocs[tt.tx.ID] = tt.entries
			}

			assert.Equal(t, tt.want, ledger.SplitLabel(tt.tx, allocs, users))
		})
	}
}
