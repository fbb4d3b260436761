package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mlcarter/housetab/internal/transaction"
)

// ReplaceAllocations swaps a transaction's allocation list atomically:
// delete-then-insert inside one database transaction, preserving the order
// the caller supplied.
func (s *Store) ReplaceAllocations(ctx context.Context, txID int64, allocs []transaction.Allocation) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM split_allocations WHERE transaction_id = $1`, txID); err != nil {
		return fmt.Errorf("clearing allocations: %w", err)
	}

	insert := `
		INSERT INTO split_allocations (transaction_id, user_id, amount, split_type_code, percentage, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	for i := range allocs {
		a := &allocs[i]

		err := dbTx.QueryRowContext(ctx, insert,
			txID, a.UserID, a.Amount, nullable(a.SplitTypeCode), a.Percentage, i,
		).Scan(&a.ID)
		if err != nil {
			return fmt.Errorf("inserting allocation: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing allocations: %w", err)
	}

	return nil
}

func (s *Store) DeleteAllocations(ctx context.Context, txID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM split_allocations WHERE transaction_id = $1`, txID)
	if err != nil {
		return fmt.Errorf("deleting allocations: %w", err)
	}

	return nil
}

func (s *Store) ListAllocations(ctx context.Context) (transaction.Allocations, error) {
	query := `
		SELECT id, transaction_id, user_id, amount, split_type_code, percentage
		FROM split_allocations
		ORDER BY transaction_id, position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing allocations: %w", err)
	}
	defer rows.Close()

	allocs := make(transaction.Allocations)

	for rows.Next() {
		var a transaction.Allocation

		var code sql.NullString

		if err := rows.Scan(&a.ID, &a.TransactionID, &a.UserID, &a.Amount, &code, &a.Percentage); err != nil {
			return nil, fmt.Errorf("scanning allocation: %w", err)
		}

		a.SplitTypeCode = code.String

		allocs[a.TransactionID] = append(allocs[a.TransactionID], a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating allocations: %w", err)
	}

	return allocs, nil
}
