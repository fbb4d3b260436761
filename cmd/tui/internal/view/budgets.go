package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlcarter/housetab/internal/budget"
	"github.com/mlcarter/housetab/internal/category"
	"github.com/mlcarter/housetab/internal/transaction"
)

type BudgetsModel struct {
	CommonModel
	budgetService *budget.Service
	txService     *transaction.Service
	catService    *category.Service

	categories []budget.Category
	spent      map[string]float64
	month      string

	loading bool
	err     error
}

func NewBudgetsModel(budgetSvc *budget.Service, txSvc *transaction.Service, catSvc *category.Service) BudgetsModel {
	return BudgetsModel{
		budgetService: budgetSvc,
		txService:     txSvc,
		catService:    catSvc,
		loading:       true,
	}
}

func (m BudgetsModel) Title() string     { return "Budgets" }
func (m BudgetsModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m BudgetsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BudgetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case budgetsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.categories = msg.categories
		m.spent = msg.spent
		m.month = msg.month

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

func (m BudgetsModel) View() string {
	if m.loading {
		return Notice("Loading budgets...")
	}

	if m.err != nil {
		return Notice("Error: %v", m.err)
	}

	overStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	var b strings.Builder

	b.WriteString(TitleStyle.Render("Budgets for " + m.month))
	b.WriteString("\n\n")

	if len(m.categories) == 0 {
		b.WriteString("No budget categories configured.\n")
	}

	for _, c := range m.categories {
		spent := m.spent[c.Name]
		line := fmt.Sprintf("  %-20s %10s / %10s", c.Name, FormatAmount(spent), FormatAmount(c.MonthlyLimit))

		if c.MonthlyLimit > 0 && spent > c.MonthlyLimit {
			line = overStyle.Render(line + "  over budget")
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return PanelStyle.Render(b.String())
}

type budgetsLoadedMsg struct {
	categories []budget.Category
	spent      map[string]float64
	month      string
	err        error
}

func (m BudgetsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		categories, err := m.budgetService.List(ctx)
		if err != nil {
			return budgetsLoadedMsg{err: err}
		}

		month := time.Now().Format("2006-01")
		start := month + "-01"

		txs, err := m.txService.List(ctx, transaction.ListFilter{StartDate: &start})
		if err != nil {
			return budgetsLoadedMsg{err: err}
		}

		if _, err := m.catService.Derive(ctx, txs); err != nil {
			return budgetsLoadedMsg{err: err}
		}

		spent := make(map[string]float64)

		for _, tx := range txs {
			if tx.Amount >= 0 || tx.HasSplit {
				continue
			}

			spent[tx.Category] += math.Abs(tx.Amount)
		}

		return budgetsLoadedMsg{categories: categories, spent: spent, month: month}
	}
}
