package budget_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcarter/housetab/internal/budget"
)

type mockRepo struct {
	categories []budget.Category
	reordered  []int64
}

func (m *mockRepo) ListCategories(ctx context.Context) ([]budget.Category, error) {
	return m.categories, nil
}

func (m *mockRepo) GetCategory(ctx context.Context, id int64) (*budget.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return &c, nil
		}
	}

	return nil, budget.ErrNotFound
}

func (m *mockRepo) CreateCategory(ctx context.Context, c *budget.Category) error {
	c.ID = int64(len(m.categories) + 1)
	m.categories = append(m.categories, *c)
	return nil
}

func (m *mockRepo) UpdateCategory(ctx context.Context, c *budget.Category) error { return nil }
func (m *mockRepo) DeleteCategory(ctx context.Context, id int64) error           { return nil }

func (m *mockRepo) ReorderCategories(ctx context.Context, ids []int64) error {
	m.reordered = ids
	return nil
}

func TestService_Create(t *testing.T) {
	svc := budget.NewService(&mockRepo{})

	c, err := svc.Create(context.Background(), "  Groceries  ", 400)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", c.Name)
	assert.Equal(t, 400.0, c.MonthlyLimit)
	assert.NotZero(t, c.ID)

	_, err = svc.Create(context.Background(), "   ", 100)
	assert.Error(t, err)
}

func TestService_Update(t *testing.T) {
	repo := &mockRepo{categories: []budget.Category{{ID: 1, Name: "Rent", MonthlyLimit: 900}}}
	svc := budget.NewService(repo)

	limit := 950.0
	c, err := svc.Update(context.Background(), 1, budget.UpdateParams{MonthlyLimit: &limit})
	require.NoError(t, err)
	assert.Equal(t, "Rent", c.Name)
	assert.Equal(t, 950.0, c.MonthlyLimit)

	empty := " "
	_, err = svc.Update(context.Background(), 1, budget.UpdateParams{Name: &empty})
	assert.Error(t, err)

	_, err = svc.Update(context.Background(), 99, budget.UpdateParams{})
	assert.ErrorIs(t, err, budget.ErrNotFound)
}

func TestService_Reorder(t *testing.T) {
	categories := []budget.Category{
		{ID: 1, Name: "Rent"},
		{ID: 2, Name: "Groceries"},
		{ID: 3, Name: "Fun"},
	}

	tests := []struct {
		name    string
		ids     []int64
		wantErr bool
	}{
		{name: "ValidPermutation", ids: []int64{3, 1, 2}, wantErr: false},
		{name: "MissingCategory", ids: []int64{3, 1}, wantErr: true},
		{name: "UnknownCategory", ids: []int64{3, 1, 99}, wantErr: true},
		{name: "Duplicate", ids: []int64{3, 1, 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{categories: categories}
			svc := budget.NewService(repo)

			err := svc.Reorder(context.Background(), tt.ids)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, repo.reordered)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.ids, repo.reordered)
		})
	}
}
