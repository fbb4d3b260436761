package feed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcarter/housetab/internal/feed"
)

type mockFetcher struct {
	byAccount map[string][]feed.UpsertParams
	err       error
}

func (m *mockFetcher) FetchTransactions(ctx context.Context, accountID, startDate string) ([]feed.UpsertParams, error) {
	if m.err != nil {
		return nil, m.err
	}

	return m.byAccount[accountID], nil
}

type mockRepo struct {
	upserted [][]feed.UpsertParams
}

func (m *mockRepo) UpsertTransactions(ctx context.Context, params []feed.UpsertParams) error {
	m.upserted = append(m.upserted, params)
	return nil
}

func (m *mockRepo) FeedStats(ctx context.Context, feedIDs []string) (feed.Stats, error) {
	return feed.Stats{Total: len(feedIDs), BankCategorized: 1}, nil
}

func TestService_Sync(t *testing.T) {
	fetcher := &mockFetcher{byAccount: map[string][]feed.UpsertParams{
		"acc-1": {
			{FeedID: "f1", Date: "2024-03-01", Description: "Coffee", Amount: -4.5},
			{FeedID: "f2", Date: "2024-03-02", Description: "Groceries", Amount: -80},
		},
		"acc-2": {},
	}}
	repo := &mockRepo{}

	svc := feed.NewService(fetcher, repo, []feed.Account{
		{ID: "acc-1", Name: "Spending"},
		{ID: "acc-2", Name: "Bills"},
	}, 30)

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, result.RunID.String(), "00000000-0000-0000-0000-000000000000")
	require.Len(t, result.Accounts, 2)

	assert.Equal(t, "Spending", result.Accounts[0].Account.Name)
	assert.Equal(t, 2, result.Accounts[0].Fetched)
	assert.Equal(t, 2, result.Accounts[0].Stats.Total)

	// Accounts with nothing fetched skip the write path entirely.
	assert.Equal(t, 0, result.Accounts[1].Fetched)
	require.Len(t, repo.upserted, 1)
	assert.Len(t, repo.upserted[0], 2)
}

func TestService_Sync_FetchError(t *testing.T) {
	fetcher := &mockFetcher{err: errors.New("api down")}
	svc := feed.NewService(fetcher, &mockRepo{}, []feed.Account{{ID: "acc-1", Name: "Spending"}}, 30)

	_, err := svc.Sync(context.Background())
	assert.Error(t, err)
}
