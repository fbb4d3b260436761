package feed

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlcarter/housetab/internal/feed"
)

type Handler struct {
	svc *feed.Service
}

func NewHandler(svc *feed.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/refresh", h.refresh)
}

type accountResultDTO struct {
	Account         string `json:"account"`
	Fetched         int    `json:"fetched"`
	BankCategorized int    `json:"bank_categorized"`
	Labeled         int    `json:"labeled"`
	Split           int    `json:"split"`
}

type refreshResponse struct {
	RunID    string             `json:"run_id"`
	Accounts []accountResultDTO `json:"accounts"`
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Sync(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	resp := refreshResponse{
		RunID:    result.RunID.String(),
		Accounts: make([]accountResultDTO, len(result.Accounts)),
	}

	for i, a := range result.Accounts {
		resp.Accounts[i] = accountResultDTO{
			Account:         a.Account.Name,
			Fetched:         a.Fetched,
			BankCategorized: a.Stats.BankCategorized,
			Labeled:         a.Stats.Labeled,
			Split:           a.Stats.Split,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
