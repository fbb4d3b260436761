package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcarter/housetab/internal/feed"
)

func TestClient_FetchTransactions(t *testing.T) {
	pages := map[string]string{
		"1": `[
			{"id": 101, "date": "2024-03-01", "payee": "Coffee", "amount": -4.5, "category": {"title": "eating-out"}},
			{"id": "102", "date": "2024-03-02", "payee": "Groceries", "amount": "-80.00"}
		]`,
		"2": `[]`,
	}

	var gotKey string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Developer-Key")

		require.Equal(t, "/accounts/acc-1/transactions", r.URL.Path)
		require.Equal(t, "2024-02-01", r.URL.Query().Get("start_date"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(pages[r.URL.Query().Get("page")]))
	}))
	defer ts.Close()

	client := feed.NewClient(ts.URL, "secret-key")

	params, err := client.FetchTransactions(context.Background(), "acc-1", "2024-02-01")
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "secret-key", gotKey)

	assert.Equal(t, "101", params[0].FeedID)
	assert.Equal(t, "Coffee", params[0].Description)
	assert.Equal(t, -4.5, params[0].Amount)
	assert.Equal(t, "eating-out", params[0].BankCategory)

	// String IDs and string amounts both come through.
	assert.Equal(t, "102", params[1].FeedID)
	assert.Equal(t, -80.0, params[1].Amount)
	assert.Equal(t, "", params[1].BankCategory)
}

func TestClient_FetchTransactions_NotFoundEndsPagination(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			w.Write([]byte(`[{"id": 1, "date": "2024-03-01", "payee": "Coffee", "amount": -4.5}]`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := feed.NewClient(ts.URL, "k")

	params, err := client.FetchTransactions(context.Background(), "acc-1", "2024-02-01")
	require.NoError(t, err)
	assert.Len(t, params, 1)
}

func TestClient_FetchTransactions_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := feed.NewClient(ts.URL, "k")

	_, err := client.FetchTransactions(context.Background(), "acc-1", "2024-02-01")
	assert.Error(t, err)
}
