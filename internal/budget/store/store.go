package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlcarter/housetab/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListCategories(ctx context.Context) ([]budget.Category, error) {
	query := `SELECT id, name, monthly_limit, sort_order FROM budget_categories ORDER BY sort_order, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing budget categories: %w", err)
	}
	defer rows.Close()

	var cats []budget.Category

	for rows.Next() {
		var c budget.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.MonthlyLimit, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("scanning budget category: %w", err)
		}

		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget categories: %w", err)
	}

	return cats, nil
}

func (s *Store) GetCategory(ctx context.Context, id int64) (*budget.Category, error) {
	query := `SELECT id, name, monthly_limit, sort_order FROM budget_categories WHERE id = $1`

	var c budget.Category

	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.MonthlyLimit, &c.SortOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget category: %w", err)
	}

	return &c, nil
}

// CreateCategory appends the new category at the end of the ordering.
func (s *Store) CreateCategory(ctx context.Context, c *budget.Category) error {
	query := `
		INSERT INTO budget_categories (name, monthly_limit, sort_order)
		VALUES ($1, $2, COALESCE((SELECT MAX(sort_order) + 1 FROM budget_categories), 0))
		RETURNING id, sort_order
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.MonthlyLimit).Scan(&c.ID, &c.SortOrder)
	if err != nil {
		return fmt.Errorf("creating budget category: %w", err)
	}

	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *budget.Category) error {
	query := `UPDATE budget_categories SET name = $1, monthly_limit = $2 WHERE id = $3`

	_, err := s.db.ExecContext(ctx, query, c.Name, c.MonthlyLimit, c.ID)
	if err != nil {
		return fmt.Errorf("updating budget category: %w", err)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM budget_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting budget category: %w", err)
	}

	return nil
}

func (s *Store) ReorderCategories(ctx context.Context, ids []int64) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `UPDATE budget_categories SET sort_order = $1 WHERE id = $2`

	for i, id := range ids {
		if _, err := dbTx.ExecContext(ctx, query, i, id); err != nil {
			return fmt.Errorf("reordering category %d: %w", id, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing reorder: %w", err)
	}

	return nil
}
