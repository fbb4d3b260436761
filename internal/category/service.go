// Package category maintains the bank-category to display-category mapping
// table, the upstream source of a transaction's Category field.
package category

import (
	"context"

	"github.com/mlcarter/housetab/internal/transaction"
)

type Repository interface {
	ListMappings(ctx context.Context) (map[string]string, error)
	SetMapping(ctx context.Context, bankCategory, category string) error
	DeleteMapping(ctx context.Context, bankCategory string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// All returns the full mapping, keyed by bank category.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	return s.repo.ListMappings(ctx)
}

// Set remembers (or replaces) the display category for a bank category.
func (s *Service) Set(ctx context.Context, bankCategory, category string) error {
	return s.repo.SetMapping(ctx, bankCategory, category)
}

func (s *Service) Delete(ctx context.Context, bankCategory string) error {
	return s.repo.DeleteMapping(ctx, bankCategory)
}

// Derive fills each transaction's Category from its bank category. Unmapped
// bank categories leave Category empty, which the view engine treats as the
// null bucket. The input is modified in place and returned for chaining.
func (s *Service) Derive(ctx context.Context, txs []*transaction.Transaction) ([]*transaction.Transaction, error) {
	mappings, err := s.repo.ListMappings(ctx)
	if err != nil {
		return nil, err
	}

	for _, tx := range txs {
		tx.Category = mappings[tx.BankCategory]
	}

	return txs, nil
}
