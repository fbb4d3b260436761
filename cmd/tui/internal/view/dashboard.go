package view

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
	"github.com/mlcarter/housetab/internal/user"
)

const spendBarWidth = 40

type DashboardModel struct {
	CommonModel
	txService   *transaction.Service
	userService *user.Service

	totals  map[string]float64
	monthly []ledger.MonthSpend

	loading bool
	err     error
}

func NewDashboardModel(txSvc *transaction.Service, userSvc *user.Service) DashboardModel {
	return DashboardModel{
		txService:   txSvc,
		userService: userSvc,
		loading:     true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.totals = msg.totals
		m.monthly = msg.monthly

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return Notice("Loading dashboard...")
	}

	if m.err != nil {
		return Notice("Error: %v", m.err)
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("Per-user totals"))
	b.WriteString("\n\n")

	names := make([]string, 0, len(m.totals))
	for name := range m.totals {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		b.WriteString(fmt.Sprintf("  %-16s %12s\n", name, FormatAmount(m.totals[name])))
	}

	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Monthly spend"))
	b.WriteString("\n\n")

	maxSpend := 0.0
	for _, ms := range m.monthly {
		if ms.Spend > maxSpend {
			maxSpend = ms.Spend
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	for _, ms := range m.monthly {
		width := 0
		if maxSpend > 0 {
			width = int(ms.Spend / maxSpend * spendBarWidth)
		}

		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			ms.Month,
			barStyle.Render(strings.Repeat("█", width)),
			FormatAmount(ms.Spend),
		))
	}

	return PanelStyle.Render(b.String())
}

type dashboardLoadedMsg struct {
	totals  map[string]float64
	monthly []ledger.MonthSpend
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, transaction.ListFilter{})
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		allocs, err := m.txService.AllAllocations(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		users, err := m.userService.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{
			totals:  ledger.Totals(txs, users, allocs),
			monthly: ledger.MonthlySpend(txs),
		}
	}
}
