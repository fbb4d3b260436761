package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the provider's transactions API. Results are paginated;
// an empty page (or a 404 past the first page) marks the end.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// apiTransaction is the provider's wire shape. Amounts arrive as JSON
// numbers or numeric strings depending on the provider's mood.
type apiTransaction struct {
	ID       json.Number `json:"id"`
	Date     string      `json:"date"`
	Payee    string      `json:"payee"`
	Amount   json.Number `json:"amount"`
	Category *struct {
		Title string `json:"title"`
	} `json:"category"`
}

// FetchTransactions pages through every transaction on the account since
// startDate (inclusive, YYYY-MM-DD).
func (c *Client) FetchTransactions(ctx context.Context, accountID, startDate string) ([]UpsertParams, error) {
	var all []UpsertParams

	for page := 1; ; page++ {
		txs, err := c.fetchPage(ctx, accountID, startDate, page)
		if err != nil {
			return nil, err
		}

		if len(txs) == 0 {
			break
		}

		for _, tx := range txs {
			all = append(all, toUpsertParams(tx))
		}
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, accountID, startDate string, page int) ([]apiTransaction, error) {
	u := fmt.Sprintf("%s/accounts/%s/transactions", c.baseURL, url.PathEscape(accountID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	q := req.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("start_date", startDate)
	q.Set("end_date", time.Now().Format("2006-01-02"))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Developer-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}
	defer resp.Body.Close()

	// Some providers answer 404 instead of an empty page past the end.
	if resp.StatusCode == http.StatusNotFound && page > 1 {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching page %d: unexpected status %d", page, resp.StatusCode)
	}

	var txs []apiTransaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		return nil, fmt.Errorf("decoding page %d: %w", page, err)
	}

	return txs, nil
}

func toUpsertParams(tx apiTransaction) UpsertParams {
	amount, _ := tx.Amount.Float64()

	var category string
	if tx.Category != nil {
		category = tx.Category.Title
	}

	return UpsertParams{
		FeedID:       tx.ID.String(),
		Date:         tx.Date,
		Description:  tx.Payee,
		Amount:       amount,
		BankCategory: category,
	}
}
