package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mlcarter/housetab/internal/feed"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// UpsertTransactions writes feed rows keyed on feed_id. Date and description
// always refresh from the API; bank_category takes the API value only when
// nothing is stored yet; amount, label, splits, and mark are never touched on
// conflict, since those carry the household's local edits.
func (s *Store) UpsertTransactions(ctx context.Context, params []feed.UpsertParams) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (feed_id, date, description, amount, bank_category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NOW(), NOW())
		ON CONFLICT (feed_id) DO UPDATE SET
			date = EXCLUDED.date,
			description = EXCLUDED.description,
			bank_category = COALESCE(transactions.bank_category, EXCLUDED.bank_category),
			updated_at = NOW()
		WHERE transactions.date IS DISTINCT FROM EXCLUDED.date
			OR transactions.description IS DISTINCT FROM EXCLUDED.description
			OR transactions.bank_category IS NULL AND EXCLUDED.bank_category IS NOT NULL
	`

	for _, p := range params {
		if _, err := dbTx.ExecContext(ctx, query, p.FeedID, p.Date, p.Description, p.Amount, p.BankCategory); err != nil {
			return fmt.Errorf("upserting feed transaction %s: %w", p.FeedID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing feed upsert: %w", err)
	}

	return nil
}

func (s *Store) FeedStats(ctx context.Context, feedIDs []string) (feed.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(bank_category) AS bank_categorized,
			COUNT(label) AS labeled,
			COUNT(CASE WHEN has_split THEN 1 END) AS split
		FROM transactions
		WHERE feed_id = ANY($1)
	`

	var stats feed.Stats

	err := s.db.QueryRowContext(ctx, query, feedIDs).
		Scan(&stats.Total, &stats.BankCategorized, &stats.Labeled, &stats.Split)
	if err != nil {
		return feed.Stats{}, fmt.Errorf("collecting feed stats: %w", err)
	}

	return stats, nil
}
