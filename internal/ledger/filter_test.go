package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
)

func tx(id int64, date string, amount float64) *transaction.Transaction {
	return &transaction.Transaction{ID: id, Date: date, Amount: amount}
}

func ids(txs []*transaction.Transaction) []int64 {
	out := make([]int64, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}

	return out
}

func TestFilterByDate(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(1, "2023-01-15", 100),
		tx(2, "2023-02-20", -200),
		tx(3, "2023-03-10", 300),
		tx(4, "garbled", 50),
	}

	type testCase struct {
		name  string
		rng   ledger.DateRange
		want  []int64
	}

	tests := []testCase{
		{name: "NoBounds", rng: ledger.DateRange{}, want: []int64{1, 2, 3, 4}},
		{name: "StartOnly", rng: ledger.DateRange{Start: "2023-02-01"}, want: []int64{2, 3}},
		{name: "EndOnly", rng: ledger.DateRange{End: "2023-02-20"}, want: []int64{1, 2}},
		{name: "BothBoundsInclusive", rng: ledger.DateRange{Start: "2023-01-15", End: "2023-03-10"}, want: []int64{1, 2, 3}},
		{name: "InvalidBoundIsOpen", rng: ledger.DateRange{Start: "bogus", End: "2023-01-31"}, want: []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.FilterByDate(txs, tt.rng)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterByValues_NullBucketUnification(t *testing.T) {
	// null, "" and whitespace-only bank categories are one bucket.
	txs := []*transaction.Transaction{
		{ID: 1, BankCategory: "Food"},
		{ID: 2, BankCategory: ""},
		{ID: 3, BankCategory: "   "},
		{ID: 4, BankCategory: "Transport"},
	}

	got := ledger.FilterByValues(txs, ledger.FieldBankCategory, []string{""})
	assert.Equal(t, []int64{2, 3}, ids(got))

	got = ledger.FilterByValues(txs, ledger.FieldBankCategory, []string{"Food", ""})
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestFilterByValues_EmptyListIsNoOp(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Label: "Ruby"},
		{ID: 2, Label: ""},
	}

	got := ledger.FilterByValues(txs, ledger.FieldLabel, nil)
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestApply_Idempotent(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(3, "2023-03-10", 300),
		tx(1, "2023-01-15", 100),
		tx(2, "2023-02-20", -200),
	}
	txs[0].BankCategory = "Entertainment"
	txs[1].BankCategory = "Food"

	cfg := ledger.Config{
		Date:           ledger.DateRange{Start: "2023-01-01"},
		BankCategories: []string{"Food", "Entertainment"},
		SortBy:         "amount-asc",
	}

	once := ledger.Apply(txs, cfg)
	twice := ledger.Apply(once, cfg)

	assert.Equal(t, ids(once), ids(twice))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(2, "2023-02-20", -200),
		tx(1, "2023-01-15", 100),
	}

	_ = ledger.Apply(txs, ledger.Config{SortBy: "date-asc"})

	assert.Equal(t, []int64{2, 1}, ids(txs))
}

func TestApply_EndToEnd(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Date: "2023-01-15", Amount: 100, BankCategory: "Food", Label: "Ruby"},
		{ID: 2, Date: "2023-02-20", Amount: -200, BankCategory: "Transport", Label: "Jack"},
		{ID: 3, Date: "2023-03-10", Amount: 300, BankCategory: "Entertainment", Label: "Both"},
	}

	got := ledger.Apply(txs, ledger.Config{
		Date:   ledger.DateRange{Start: "2023-02-01", End: "2023-04-30"},
		SortBy: "date-asc",
	})

	require.Len(t, got, 2)
	assert.Equal(t, []int64{2, 3}, ids(got))
}

func TestFilterByCategory(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Category: "Groceries"},
		{ID: 2, Category: ""},
		{ID: 3, Category: "Dining"},
	}

	got := ledger.FilterByCategory(txs, []string{"Dining", ""})
	assert.Equal(t, []int64{2, 3}, ids(got))
}
