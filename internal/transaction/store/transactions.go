package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mlcarter/housetab/internal/transaction"
)

const selectTransactionColumns = `
	t.id, t.feed_id, t.date, t.description, t.amount, t.bank_category,
	t.label, t.has_split, t.split_from_id, t.mark, t.created_at, t.updated_at
`

// scanTransaction reads one transaction row. Nullable text columns come back
// as the empty string, matching the domain's "no value" convention.
// Expected column order matches selectTransactionColumns.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var feedID, desc, bankCat, label sql.NullString

	var date time.Time

	var splitFrom sql.NullInt64

	if err := s.Scan(
		&tx.ID, &feedID, &date, &desc, &tx.Amount, &bankCat,
		&label, &tx.HasSplit, &splitFrom, &tx.Mark, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.FeedID = feedID.String
	tx.Date = fmtDate(date)
	tx.Description = desc.String
	tx.BankCategory = bankCat.String
	tx.Label = label.String

	if splitFrom.Valid {
		id := splitFrom.Int64
		tx.SplitFromID = &id
	}

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (feed_id, date, description, amount, bank_category, label, split_from_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		nullable(tx.FeedID),
		tx.Date,
		tx.Description,
		tx.Amount,
		nullable(tx.BankCategory),
		nullable(tx.Label),
		tx.SplitFromID,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id int64) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions t WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions t WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY t.date DESC, t.id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET date = $1, description = $2, amount = $3, bank_category = $4, label = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.Date,
		tx.Description,
		tx.Amount,
		nullable(tx.BankCategory),
		nullable(tx.Label),
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

// DeleteTransaction removes a transaction along with its children and
// allocations (both cascade on the foreign keys).
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

func (s *Store) SetMark(ctx context.Context, id int64, mark bool) error {
	query := `UPDATE transactions SET mark = $1, updated_at = NOW() WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, mark, id)
	if err != nil {
		return fmt.Errorf("setting mark: %w", err)
	}

	return nil
}

func (s *Store) SetLabel(ctx context.Context, id int64, label string) error {
	query := `UPDATE transactions SET label = $1, updated_at = NOW() WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, nullable(label), id)
	if err != nil {
		return fmt.Errorf("setting label: %w", err)
	}

	return nil
}

// CreateSplit inserts the children and flags the parent in one database
// transaction so a failure cannot leave a half-built split.
func (s *Store) CreateSplit(ctx context.Context, parent *transaction.Transaction, children []*transaction.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	insert := `
		INSERT INTO transactions (date, description, amount, bank_category, label, split_from_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, c := range children {
		err := dbTx.QueryRowContext(ctx, insert,
			c.Date,
			c.Description,
			c.Amount,
			nullable(c.BankCategory),
			nullable(c.Label),
			c.SplitFromID,
		).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating split child: %w", err)
		}
	}

	flag := `UPDATE transactions SET has_split = TRUE, updated_at = NOW() WHERE id = $1`
	if _, err := dbTx.ExecContext(ctx, flag, parent.ID); err != nil {
		return fmt.Errorf("flagging split parent: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing split: %w", err)
	}

	return nil
}

func (s *Store) RemoveSplit(ctx context.Context, parentID int64) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions WHERE split_from_id = $1`, parentID); err != nil {
		return fmt.Errorf("deleting split children: %w", err)
	}

	unflag := `UPDATE transactions SET has_split = FALSE, updated_at = NOW() WHERE id = $1`
	if _, err := dbTx.ExecContext(ctx, unflag, parentID); err != nil {
		return fmt.Errorf("unflagging split parent: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing unsplit: %w", err)
	}

	return nil
}
