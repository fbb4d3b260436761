package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mlcarter/housetab/internal/http/budget"
	"github.com/mlcarter/housetab/internal/http/category"
	"github.com/mlcarter/housetab/internal/http/dashboard"
	"github.com/mlcarter/housetab/internal/http/export"
	"github.com/mlcarter/housetab/internal/http/feed"
	"github.com/mlcarter/housetab/internal/http/importcsv"
	"github.com/mlcarter/housetab/internal/http/transaction"
	"github.com/mlcarter/housetab/internal/http/user"
)

func New(
	dashboardV1 *dashboard.Handler,
	transactionsV1 *transaction.Handler,
	usersV1 *user.Handler,
	budgetsV1 *budget.Handler,
	categoriesV1 *category.Handler,
	feedsV1 *feed.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		dashboardV1.Routes(r)

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/users", func(r chi.Router) {
			usersV1.Routes(r)
		})

		r.Route("/budget-categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/category-mappings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/feeds", func(r chi.Router) {
			feedsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/export", func(r chi.Router) {
			exportV1.Routes(r)
		})
	})

	return router
}
