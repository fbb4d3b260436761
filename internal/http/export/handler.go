package export

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mlcarter/housetab/internal/export"
	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.export)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := transaction.ListFilter{}
	if s := q.Get("start_date"); s != "" {
		filter.StartDate = new(s)
	}

	if s := q.Get("end_date"); s != "" {
		filter.EndDate = new(s)
	}

	cfg := ledger.Config{
		Date:           ledger.DateRange{Start: q.Get("start_date"), End: q.Get("end_date")},
		BankCategories: q["bank_category"],
		Labels:         q["label"],
		SortBy:         q.Get("sort"),
	}

	filename := "housetab-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.svc.Export(r.Context(), filter, cfg, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
