package transaction

import (
	"bytes"
	"errors"
	"strconv"
	"time"
)

var (
	ErrNotFound = errors.New("transaction not found")
	ErrNotSplit = errors.New("transaction has no split")
)

// LabelBoth is the legacy label sentinel for an even two-way split.
// Superseded by split allocations but still read as a fallback.
const LabelBoth = "Both"

// Amount is a monetary value in whole currency units. Bank feeds and older
// clients deliver amounts as JSON strings, so decoding accepts both forms.
// Malformed values degrade to zero rather than failing the decode.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*a = 0
		return nil
	}

	*a = Amount(f)

	return nil
}

// Transaction is a single shared-account entry. Negative amounts are
// expenses, positive amounts income or refunds. BankCategory comes from the
// bank feed; Category is the display category derived from the mapping table.
// The empty string stands for "no value" on every nullable text field.
type Transaction struct {
	ID           int64
	FeedID       string // external feed identifier, empty for manual entries
	Date         string // YYYY-MM-DD
	Description  string
	Amount       float64
	BankCategory string
	Category     string
	Label        string
	HasSplit     bool
	SplitFromID  *int64
	Mark         bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Allocation is one user's share of one transaction. Shares need not be
// equal and are not reconciled against the transaction total here; violations
// are accepted data.
type Allocation struct {
	ID            int64
	TransactionID int64
	UserID        int64
	Amount        float64
	SplitTypeCode string // e.g. "equal", "custom"
	Percentage    *float64
}

// SplitTypeEqual tags allocations generated as an even split.
const SplitTypeEqual = "equal"

// Allocations maps a transaction ID to its ordered allocation list. A
// transaction with no entry is in legacy mode and its Label field governs.
type Allocations map[int64][]Allocation
