package transaction

import (
	"time"

	"github.com/mlcarter/housetab/internal/transaction"
)

type transactionResponse struct {
	ID           int64      `json:"id"`
	FeedID       string     `json:"feed_id,omitempty"`
	Date         string     `json:"date"`
	Description  string     `json:"description"`
	Amount       float64    `json:"amount"`
	BankCategory string     `json:"bank_category,omitempty"`
	Category     string     `json:"category,omitempty"`
	Label        string     `json:"label,omitempty"`
	HasSplit     bool       `json:"has_split"`
	SplitFromID  *int64     `json:"split_from_id,omitempty"`
	Mark         bool       `json:"mark"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		FeedID:       tx.FeedID,
		Date:         tx.Date,
		Description:  tx.Description,
		Amount:       tx.Amount,
		BankCategory: tx.BankCategory,
		Category:     tx.Category,
		Label:        tx.Label,
		HasSplit:     tx.HasSplit,
		SplitFromID:  tx.SplitFromID,
		Mark:         tx.Mark,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type allocationResponse struct {
	ID            int64    `json:"id"`
	TransactionID int64    `json:"transaction_id"`
	UserID        int64    `json:"user_id"`
	Amount        float64  `json:"amount"`
	SplitTypeCode string   `json:"split_type_code"`
	Percentage    *float64 `json:"percentage,omitempty"`
}

func toAllocationList(allocs []transaction.Allocation) []allocationResponse {
	resp := make([]allocationResponse, len(allocs))
	for i, a := range allocs {
		resp[i] = allocationResponse{
			ID:            a.ID,
			TransactionID: a.TransactionID,
			UserID:        a.UserID,
			Amount:        a.Amount,
			SplitTypeCode: a.SplitTypeCode,
			Percentage:    a.Percentage,
		}
	}

	return resp
}
