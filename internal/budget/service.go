package budget

import (
	"context"
	"fmt"
	"strings"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id int64) error
	ReorderCategories(ctx context.Context, ids []int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) Create(ctx context.Context, name string, monthlyLimit float64) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	c := &Category{Name: name, MonthlyLimit: monthlyLimit}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

type UpdateParams struct {
	Name         *string
	MonthlyLimit *float64
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Category, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, fmt.Errorf("category name is required")
		}

		c.Name = name
	}

	if params.MonthlyLimit != nil {
		c.MonthlyLimit = *params.MonthlyLimit
	}

	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}

// Reorder persists the given ordering, which must mention every category
// exactly once.
func (s *Service) Reorder(ctx context.Context, ids []int64) error {
	existing, err := s.repo.ListCategories(ctx)
	if err != nil {
		return err
	}

	if len(ids) != len(existing) {
		return fmt.Errorf("reorder must list all %d categories, got %d", len(existing), len(ids))
	}

	known := make(map[int64]bool, len(existing))
	for _, c := range existing {
		known[c.ID] = true
	}

	seen := make(map[int64]bool, len(ids))

	for _, id := range ids {
		if !known[id] {
			return fmt.Errorf("unknown category id %d", id)
		}

		if seen[id] {
			return fmt.Errorf("duplicate category id %d", id)
		}

		seen[id] = true
	}

	return s.repo.ReorderCategories(ctx, ids)
}
