// Package feed pulls transactions from the provider's bank-feed API into the
// local database. Dates and descriptions always refresh from the API; fields
// the household edits locally (bank category, label, splits, the paid-off
// mark) are preserved on conflict.
package feed

// Account identifies one upstream bank account to sync.
type Account struct {
	ID   string
	Name string
}

// UpsertParams is one feed transaction ready for storage.
type UpsertParams struct {
	FeedID       string
	Date         string // YYYY-MM-DD
	Description  string
	Amount       float64
	BankCategory string
}

// Stats summarizes the state of the synced rows, for the sync report.
type Stats struct {
	Total           int
	BankCategorized int
	Labeled         int
	Split           int
}

// AccountResult is the outcome of syncing a single account.
type AccountResult struct {
	Account Account
	Fetched int
	Stats   Stats
}
