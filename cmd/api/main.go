package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mlcarter/housetab/internal/budget"
	budgetStore "github.com/mlcarter/housetab/internal/budget/store"
	"github.com/mlcarter/housetab/internal/category"
	catStore "github.com/mlcarter/housetab/internal/category/store"
	"github.com/mlcarter/housetab/internal/config"
	"github.com/mlcarter/housetab/internal/database"
	"github.com/mlcarter/housetab/internal/export"
	"github.com/mlcarter/housetab/internal/feed"
	feedStore "github.com/mlcarter/housetab/internal/feed/store"
	housetabHttp "github.com/mlcarter/housetab/internal/http"
	budgetHandler "github.com/mlcarter/housetab/internal/http/budget"
	catHandler "github.com/mlcarter/housetab/internal/http/category"
	dashboardHandler "github.com/mlcarter/housetab/internal/http/dashboard"
	exportHandler "github.com/mlcarter/housetab/internal/http/export"
	feedHandler "github.com/mlcarter/housetab/internal/http/feed"
	importHandler "github.com/mlcarter/housetab/internal/http/importcsv"
	txHandler "github.com/mlcarter/housetab/internal/http/transaction"
	userHandler "github.com/mlcarter/housetab/internal/http/user"
	"github.com/mlcarter/housetab/internal/importer"
	"github.com/mlcarter/housetab/internal/transaction"
	txStore "github.com/mlcarter/housetab/internal/transaction/store"
	"github.com/mlcarter/housetab/internal/user"
	userStore "github.com/mlcarter/housetab/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns: cfg.DB.MaxOpenConns,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		ConnLifetime: cfg.DB.ConnLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	feedAccounts := make([]feed.Account, 0)
	for _, id := range cfg.FeedAccounts() {
		feedAccounts = append(feedAccounts, feed.Account{ID: id, Name: id})
	}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		userService        = user.NewService(userStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db))
		categoryService    = category.NewService(catStore.New(db))
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService, categoryService)
		feedService        = feed.NewService(
			feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.APIKey),
			feedStore.New(db),
			feedAccounts,
			cfg.Feed.DaysToFetch,
		)
	)

	var (
		dashboardH   = dashboardHandler.NewHandler(transactionService, userService, budgetService, categoryService)
		transactionH = txHandler.NewHandler(transactionService)
		userH        = userHandler.NewHandler(userService)
		budgetH      = budgetHandler.NewHandler(budgetService)
		categoryH    = catHandler.NewHandler(categoryService)
		feedH        = feedHandler.NewHandler(feedService)
		importH      = importHandler.NewHandler(importService, transactionService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := housetabHttp.New(dashboardH, transactionH, userH, budgetH, categoryH, feedH, importH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
