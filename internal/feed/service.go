package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Repository interface {
	UpsertTransactions(ctx context.Context, params []UpsertParams) error
	FeedStats(ctx context.Context, feedIDs []string) (Stats, error)
}

// Fetcher is implemented by Client; split out so tests can stub the API.
type Fetcher interface {
	FetchTransactions(ctx context.Context, accountID, startDate string) ([]UpsertParams, error)
}

type Service struct {
	fetcher     Fetcher
	repo        Repository
	accounts    []Account
	daysToFetch int
}

func NewService(fetcher Fetcher, repo Repository, accounts []Account, daysToFetch int) *Service {
	return &Service{
		fetcher:     fetcher,
		repo:        repo,
		accounts:    accounts,
		daysToFetch: daysToFetch,
	}
}

// SyncResult reports one refresh run across all configured accounts.
type SyncResult struct {
	RunID    uuid.UUID
	Accounts []AccountResult
}

// Sync refreshes every configured account concurrently. The run covers the
// configured trailing window of days ending today.
func (s *Service) Sync(ctx context.Context) (*SyncResult, error) {
	runID := uuid.New()
	startDate := time.Now().AddDate(0, 0, -s.daysToFetch).Format("2006-01-02")

	slog.Info("starting feed sync",
		"run_id", runID,
		"accounts", len(s.accounts),
		"start_date", startDate,
	)

	results := make([]AccountResult, len(s.accounts))

	g, gctx := errgroup.WithContext(ctx)

	for i, account := range s.accounts {
		g.Go(func() error {
			res, err := s.syncAccount(gctx, account, startDate)
			if err != nil {
				return fmt.Errorf("syncing account %q: %w", account.Name, err)
			}

			results[i] = *res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		slog.Info("account synced",
			"run_id", runID,
			"account", r.Account.Name,
			"fetched", r.Fetched,
			"bank_categorized", r.Stats.BankCategorized,
			"labeled", r.Stats.Labeled,
			"split", r.Stats.Split,
		)
	}

	return &SyncResult{RunID: runID, Accounts: results}, nil
}

func (s *Service) syncAccount(ctx context.Context, account Account, startDate string) (*AccountResult, error) {
	params, err := s.fetcher.FetchTransactions(ctx, account.ID, startDate)
	if err != nil {
		return nil, fmt.Errorf("fetching: %w", err)
	}

	result := &AccountResult{Account: account, Fetched: len(params)}

	if len(params) == 0 {
		return result, nil
	}

	if err := s.repo.UpsertTransactions(ctx, params); err != nil {
		return nil, fmt.Errorf("storing: %w", err)
	}

	feedIDs := make([]string, len(params))
	for i, p := range params {
		feedIDs[i] = p.FeedID
	}

	stats, err := s.repo.FeedStats(ctx, feedIDs)
	if err != nil {
		return nil, fmt.Errorf("collecting stats: %w", err)
	}

	result.Stats = stats

	return result, nil
}
