// Package dashboard serves the single snapshot the web UI boots from.
package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlcarter/housetab/internal/budget"
	"github.com/mlcarter/housetab/internal/category"
	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
	"github.com/mlcarter/housetab/internal/user"
)

type Handler struct {
	txSvc     *transaction.Service
	userSvc   *user.Service
	budgetSvc *budget.Service
	catSvc    *category.Service
}

func NewHandler(txSvc *transaction.Service, userSvc *user.Service, budgetSvc *budget.Service, catSvc *category.Service) *Handler {
	return &Handler{
		txSvc:     txSvc,
		userSvc:   userSvc,
		budgetSvc: budgetSvc,
		catSvc:    catSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/initial-data", h.initialData)
}

type transactionDTO struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	BankCategory string  `json:"bank_category,omitempty"`
	Category     string  `json:"category,omitempty"`
	Label        string  `json:"label,omitempty"`
	SplitLabel   string  `json:"split_label,omitempty"`
	HasSplit     bool    `json:"has_split"`
	SplitFromID  *int64  `json:"split_from_id,omitempty"`
	Mark         bool    `json:"mark"`
}

type userDTO struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	IsActive    bool   `json:"is_active"`
}

type allocationDTO struct {
	UserID        int64    `json:"user_id"`
	Amount        float64  `json:"amount"`
	SplitTypeCode string   `json:"split_type_code"`
	Percentage    *float64 `json:"percentage,omitempty"`
}

type budgetCategoryDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	MonthlyLimit float64 `json:"monthly_limit"`
	SortOrder    int     `json:"sort_order"`
}

type monthSpendDTO struct {
	Month string  `json:"month"`
	Spend float64 `json:"spend"`
}

type initialDataResponse struct {
	Transactions     []transactionDTO          `json:"transactions"`
	Users            []userDTO                 `json:"users"`
	Allocations      map[int64][]allocationDTO `json:"allocations"`
	BudgetCategories []budgetCategoryDTO       `json:"budget_categories"`
	CategoryMappings map[string]string         `json:"category_mappings"`
	Totals           map[string]float64        `json:"totals"`
	MonthlySpend     []monthSpendDTO           `json:"monthly_spend"`
}

func (h *Handler) initialData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := h.txSvc.List(ctx, transaction.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if _, err := h.catSvc.Derive(ctx, txs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	users, err := h.userSvc.List(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	allocs, err := h.txSvc.AllAllocations(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	budgets, err := h.budgetSvc.List(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	mappings, err := h.catSvc.All(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := initialDataResponse{
		Transactions:     make([]transactionDTO, len(txs)),
		Users:            make([]userDTO, len(users)),
		Allocations:      make(map[int64][]allocationDTO, len(allocs)),
		BudgetCategories: make([]budgetCategoryDTO, len(budgets)),
		CategoryMappings: mappings,
		Totals:           ledger.Totals(txs, users, allocs),
		MonthlySpend:     make([]monthSpendDTO, 0),
	}

	for i, tx := range txs {
		resp.Transactions[i] = transactionDTO{
			ID:           tx.ID,
			Date:         tx.Date,
			Description:  tx.Description,
			Amount:       tx.Amount,
			BankCategory: tx.BankCategory,
			Category:     tx.Category,
			Label:        tx.Label,
			SplitLabel:   ledger.SplitLabel(tx, allocs, users),
			HasSplit:     tx.HasSplit,
			SplitFromID:  tx.SplitFromID,
			Mark:         tx.Mark,
		}
	}

	for i, u := range users {
		resp.Users[i] = userDTO{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			IsActive:    u.IsActive,
		}
	}

	for txID, entries := range allocs {
		dtos := make([]allocationDTO, len(entries))
		for i, a := range entries {
			dtos[i] = allocationDTO{
				UserID:        a.UserID,
				Amount:        a.Amount,
				SplitTypeCode: a.SplitTypeCode,
				Percentage:    a.Percentage,
			}
		}

		resp.Allocations[txID] = dtos
	}

	for i, b := range budgets {
		resp.BudgetCategories[i] = budgetCategoryDTO{
			ID:           b.ID,
			Name:         b.Name,
			MonthlyLimit: b.MonthlyLimit,
			SortOrder:    b.SortOrder,
		}
	}

	for _, m := range ledger.MonthlySpend(txs) {
		resp.MonthlySpend = append(resp.MonthlySpend, monthSpendDTO(m))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
