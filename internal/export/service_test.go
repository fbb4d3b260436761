package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcarter/housetab/internal/category"
	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
)

// Mock Repository
type mockRepo struct {
	listTransactionsFunc func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

func (m *mockRepo) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (m *mockRepo) GetTransaction(ctx context.Context, id int64) (*transaction.Transaction, error) {
	return nil, nil
}

func (m *mockRepo) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (m *mockRepo) DeleteTransaction(ctx context.Context, id int64) error { return nil }

func (m *mockRepo) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	if m.listTransactionsFunc != nil {
		return m.listTransactionsFunc(ctx, filter)
	}

	return nil, nil
}

func (m *mockRepo) SetMark(ctx context.Context, id int64, mark bool) error    { return nil }
func (m *mockRepo) SetLabel(ctx context.Context, id int64, label string) error { return nil }

func (m *mockRepo) CreateSplit(ctx context.Context, parent *transaction.Transaction, children []*transaction.Transaction) error {
	return nil
}
func (m *mockRepo) RemoveSplit(ctx context.Context, parentID int64) error { return nil }

func (m *mockRepo) ReplaceAllocations(ctx context.Context, txID int64, allocs []transaction.Allocation) error {
	return nil
}
func (m *mockRepo) DeleteAllocations(ctx context.Context, txID int64) error { return nil }

func (m *mockRepo) ListAllocations(ctx context.Context) (transaction.Allocations, error) {
	return nil, nil
}

func (m *mockRepo) BeginImport(ctx context.Context, minDate, maxDate string) (transaction.ImportTx, error) {
	return nil, nil
}

type mockMappings struct {
	mappings map[string]string
}

func (m *mockMappings) ListMappings(ctx context.Context) (map[string]string, error) {
	return m.mappings, nil
}
func (m *mockMappings) SetMapping(ctx context.Context, bankCategory, cat string) error { return nil }
func (m *mockMappings) DeleteMapping(ctx context.Context, bankCategory string) error   { return nil }

func TestService_Export(t *testing.T) {
	parentID := int64(1)

	repo := &mockRepo{
		listTransactionsFunc: func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{ID: 3, Date: "2024-01-02", Description: "Rent", Amount: -900, BankCategory: "housing"},
				{ID: 1, Date: "2024-01-05", Description: "Groceries", Amount: -90, BankCategory: "groceries", HasSplit: true},
				{ID: 2, Date: "2024-01-01", Description: "Groceries", Amount: -60, SplitFromID: &parentID},
			}, nil
		},
	}

	svc := NewService(
		transaction.NewService(repo),
		category.NewService(&mockMappings{mappings: map[string]string{"groceries": "Food"}}),
	)

	var buf bytes.Buffer
	err := svc.Export(context.Background(), transaction.ListFilter{}, ledger.Config{}, &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "id,date,description,amount,bank_category,category,label,split_from", lines[0])

	// Default sort is date-desc, with the split child relocated after its parent.
	assert.True(t, strings.HasPrefix(lines[1], "1,2024-01-05,Groceries,-90.00,groceries,Food"))
	assert.True(t, strings.HasPrefix(lines[2], "2,2024-01-01,Groceries,-60.00"))
	assert.True(t, strings.HasSuffix(lines[2], ",1"))
	assert.True(t, strings.HasPrefix(lines[3], "3,2024-01-02,Rent,-900.00,housing"))
}

func TestService_Export_Empty(t *testing.T) {
	svc := NewService(
		transaction.NewService(&mockRepo{}),
		category.NewService(&mockMappings{}),
	)

	var buf bytes.Buffer
	err := svc.Export(context.Background(), transaction.ListFilter{}, ledger.Config{}, &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
}
