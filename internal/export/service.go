// Package export writes the current ledger view out as CSV.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mlcarter/housetab/internal/category"
	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
)

// Service handles the export of filtered transaction views.
type Service struct {
	transactions *transaction.Service
	categories   *category.Service
}

func NewService(txService *transaction.Service, catService *category.Service) *Service {
	return &Service{
		transactions: txService,
		categories:   catService,
	}
}

var header = []string{
	"id", "date", "description", "amount",
	"bank_category", "category", "label", "split_from",
}

// Export writes the transactions matching filter, shaped by the view config,
// as CSV rows to w. Split children follow their parent, exactly as the
// dashboard renders them.
func (s *Service) Export(ctx context.Context, filter transaction.ListFilter, cfg ledger.Config, w io.Writer) error {
	txs, err := s.transactions.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	if _, err := s.categories.Derive(ctx, txs); err != nil {
		return fmt.Errorf("deriving categories: %w", err)
	}

	view := ledger.GroupSplits(ledger.Apply(txs, cfg))

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, t := range view {
		splitFrom := ""
		if t.SplitFromID != nil {
			splitFrom = strconv.FormatInt(*t.SplitFromID, 10)
		}

		row := []string{
			strconv.FormatInt(t.ID, 10),
			t.Date,
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.BankCategory,
			t.Category,
			t.Label,
			splitFrom,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
