package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcarter/housetab/internal/category"
	"github.com/mlcarter/housetab/internal/transaction"
)

type mockRepo struct {
	mappings map[string]string
}

func (m *mockRepo) ListMappings(ctx context.Context) (map[string]string, error) {
	return m.mappings, nil
}

func (m *mockRepo) SetMapping(ctx context.Context, bankCategory, cat string) error {
	m.mappings[bankCategory] = cat
	return nil
}

func (m *mockRepo) DeleteMapping(ctx context.Context, bankCategory string) error {
	delete(m.mappings, bankCategory)
	return nil
}

func TestService_Derive(t *testing.T) {
	repo := &mockRepo{mappings: map[string]string{
		"groceries":    "Food",
		"restaurants":  "Food",
		"rent-payment": "Housing",
	}}
	svc := category.NewService(repo)

	txs := []*transaction.Transaction{
		{ID: 1, BankCategory: "groceries"},
		{ID: 2, BankCategory: "restaurants"},
		{ID: 3, BankCategory: "unmapped-thing"},
		{ID: 4, BankCategory: ""},
	}

	got, err := svc.Derive(context.Background(), txs)
	require.NoError(t, err)

	assert.Equal(t, "Food", got[0].Category)
	assert.Equal(t, "Food", got[1].Category)
	assert.Equal(t, "", got[2].Category)
	assert.Equal(t, "", got[3].Category)

	// In place: the input slice carries the derived categories.
	assert.Equal(t, "Housing", repo.mappings["rent-payment"])
	assert.Same(t, txs[0], got[0])
}

func TestService_SetAndDelete(t *testing.T) {
	repo := &mockRepo{mappings: map[string]string{}}
	svc := category.NewService(repo)

	require.NoError(t, svc.Set(context.Background(), "groceries", "Food"))

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"groceries": "Food"}, all)

	require.NoError(t, svc.Delete(context.Background(), "groceries"))
	assert.Empty(t, repo.mappings)
}
