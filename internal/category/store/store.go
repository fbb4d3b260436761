package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListMappings(ctx context.Context) (map[string]string, error) {
	query := `SELECT bank_category, category FROM category_mappings`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing mappings: %w", err)
	}
	defer rows.Close()

	mappings := make(map[string]string)

	for rows.Next() {
		var bankCategory, category string
		if err := rows.Scan(&bankCategory, &category); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}

		mappings[bankCategory] = category
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mappings: %w", err)
	}

	return mappings, nil
}

func (s *Store) SetMapping(ctx context.Context, bankCategory, category string) error {
	query := `
		INSERT INTO category_mappings (bank_category, category, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (bank_category) DO UPDATE SET category = EXCLUDED.category
	`

	_, err := s.db.ExecContext(ctx, query, bankCategory, category)
	if err != nil {
		return fmt.Errorf("setting mapping: %w", err)
	}

	return nil
}

func (s *Store) DeleteMapping(ctx context.Context, bankCategory string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM category_mappings WHERE bank_category = $1`, bankCategory)
	if err != nil {
		return fmt.Errorf("deleting mapping: %w", err)
	}

	return nil
}
