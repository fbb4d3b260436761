package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/mlcarter/housetab/cmd/tui/internal/view"
	"github.com/mlcarter/housetab/internal/budget"
	budgetStore "github.com/mlcarter/housetab/internal/budget/store"
	"github.com/mlcarter/housetab/internal/category"
	catStore "github.com/mlcarter/housetab/internal/category/store"
	"github.com/mlcarter/housetab/internal/config"
	"github.com/mlcarter/housetab/internal/database"
	"github.com/mlcarter/housetab/internal/feed"
	feedStore "github.com/mlcarter/housetab/internal/feed/store"
	"github.com/mlcarter/housetab/internal/importer"
	"github.com/mlcarter/housetab/internal/transaction"
	txStore "github.com/mlcarter/housetab/internal/transaction/store"
	"github.com/mlcarter/housetab/internal/user"
	userStore "github.com/mlcarter/housetab/internal/user/store"
)

type model struct {
	txService     *transaction.Service
	userService   *user.Service
	budgetService *budget.Service
	catService    *category.Service
	importService *importer.Service
	feedService   *feed.Service

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
	budgetsView      view.BudgetsModel
	importView       view.ImportModel
	syncView         view.SyncModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewTransactions View = 2
	ViewBudgets      View = 3
	ViewImport       View = 4
	ViewSync         View = 5
)

func initialModel() model {
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

	feedAccounts := make([]feed.Account, 0)
	for _, id := range cfg.FeedAccounts() {
		feedAccounts = append(feedAccounts, feed.Account{ID: id, Name: id})
	}

	txSvc := transaction.NewService(txStore.New(db))
	userSvc := user.NewService(userStore.New(db))
	budgetSvc := budget.NewService(budgetStore.New(db))
	catSvc := category.NewService(catStore.New(db))
	impSvc := importer.NewService()
	feedSvc := feed.NewService(
		feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.APIKey),
		feedStore.New(db),
		feedAccounts,
		cfg.Feed.DaysToFetch,
	)

	return model{
		txService:        txSvc,
		userService:      userSvc,
		budgetService:    budgetSvc,
		catService:       catSvc,
		importService:    impSvc,
		feedService:      feedSvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(txSvc, userSvc),
		transactionsView: view.NewTransactionsModel(txSvc, catSvc, userSvc),
		budgetsView:      view.NewBudgetsModel(budgetSvc, txSvc, catSvc),
		importView:       view.NewImportModel(txSvc, impSvc),
		syncView:         view.NewSyncModel(feedSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.txService, m.userService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService, m.catService, m.userService)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewBudgets
				m.budgetsView = view.NewBudgetsModel(m.budgetService, m.txService, m.catService)

				return m, m.budgetsView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.txService, m.importService)

				return m, m.importView.Init()
			case "5":
				m.currentView = ViewSync
				m.syncView = view.NewSyncModel(m.feedService)

				return m, m.syncView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewBudgets:
		var newModel tea.Model
		newModel, cmd = m.budgetsView.Update(msg)
		m.budgetsView = newModel.(view.BudgetsModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewSync:
		var newModel tea.Model
		newModel, cmd = m.syncView.Update(msg)
		m.syncView = newModel.(view.SyncModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Housetab TUI\n\n" +
				"1. Dashboard\n" +
				"2. Transactions\n" +
				"3. Budgets\n" +
				"4. Import Statement\n" +
				"5. Refresh Feeds\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewBudgets:
		return m.budgetsView.View()
	case ViewImport:
		return m.importView.View()
	case ViewSync:
		return m.syncView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
