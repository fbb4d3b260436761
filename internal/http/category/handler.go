package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlcarter/housetab/internal/category"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Put("/", h.set)
	r.Delete("/{bankCategory}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.svc.All(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(mappings); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setMappingRequest struct {
	BankCategory string `json:"bank_category"`
	Category     string `json:"category"`
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	var req setMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.BankCategory == "" || req.Category == "" {
		http.Error(w, "bank_category and category are required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Set(r.Context(), req.BankCategory, req.Category); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	bankCategory := chi.URLParam(r, "bankCategory")
	if bankCategory == "" {
		http.Error(w, "bank category is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), bankCategory); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
