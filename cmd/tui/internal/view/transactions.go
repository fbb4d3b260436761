package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlcarter/housetab/internal/category"
	"github.com/mlcarter/housetab/internal/ledger"
	"github.com/mlcarter/housetab/internal/transaction"
	"github.com/mlcarter/housetab/internal/user"
)

type transactionsState int

const (
	transactionsStateBrowse transactionsState = iota
	transactionsStateFilter
)

type TransactionsModel struct {
	CommonModel
	txService   *transaction.Service
	catService  *category.Service
	userService *user.Service

	state transactionsState
	table table.Model
	form  *huh.Form

	txs    []*transaction.Transaction
	view   []*transaction.Transaction
	allocs transaction.Allocations
	users  []user.User

	cfg     ledger.Config
	loading bool
	err     error
	status  string

	// Form bindings
	formStart    string
	formEnd      string
	formBankCats string
	formLabels   string
	formSort     string
}

func NewTransactionsModel(txSvc *transaction.Service, catSvc *category.Service, userSvc *user.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 36},
		{Title: "Amount", Width: 10},
		{Title: "Category", Width: 16},
		{Title: "Split", Width: 14},
		{Title: "Paid", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TransactionsModel{
		txService:   txSvc,
		catService:  catSvc,
		userService: userSvc,
		table:       t,
		cfg:         ledger.Config{SortBy: ledger.DefaultSort},
		formSort:    ledger.DefaultSort,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) ShortHelp() string {
	if m.state == transactionsStateFilter {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | f: filter | m: toggle paid mark | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transactionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.allocs = msg.allocs
		m.users = msg.users
		m.status = ""
		m.refreshTable()

		return m, nil

	case markToggledMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error updating mark: %v", msg.err)
			return m, nil
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case transactionsStateBrowse:
		return m.updateBrowse(msg)
	case transactionsStateFilter:
		return m.updateFilter(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "f":
			return m.enterFilterMode()
		case "m":
			return m, m.toggleMarkCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) enterFilterMode() (tea.Model, tea.Cmd) {
	m.formStart = m.cfg.Date.Start
	m.formEnd = m.cfg.Date.End
	m.formBankCats = strings.Join(m.cfg.BankCategories, ", ")
	m.formLabels = strings.Join(m.cfg.Labels, ", ")
	m.formSort = m.cfg.SortBy

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("start").
				Title("Start date (YYYY-MM-DD)").
				Value(&m.formStart),

			huh.NewInput().
				Key("end").
				Title("End date (YYYY-MM-DD)").
				Value(&m.formEnd),

			huh.NewInput().
				Key("bank_categories").
				Title("Bank categories (comma separated, blank entry for uncategorized)").
				Value(&m.formBankCats),

			huh.NewInput().
				Key("labels").
				Title("Labels (comma separated)").
				Value(&m.formLabels),

			huh.NewSelect[string]().
				Key("sort").
				Title("Sort").
				Options(
					huh.NewOption("Date, newest first", "date-desc"),
					huh.NewOption("Date, oldest first", "date-asc"),
					huh.NewOption("Amount, low to high", "amount-asc"),
					huh.NewOption("Amount, high to low", "amount-desc"),
					huh.NewOption("Description A-Z", "description-asc"),
					huh.NewOption("Description Z-A", "description-desc"),
				).
				Value(&m.formSort),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = transactionsStateFilter
	m.table.Blur()

	return m, m.form.Init()
}

func (m TransactionsModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = transactionsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.cfg = ledger.Config{
		Date: ledger.DateRange{
			Start: strings.TrimSpace(m.form.GetString("start")),
			End:   strings.TrimSpace(m.form.GetString("end")),
		},
		BankCategories: splitList(m.form.GetString("bank_categories")),
		Labels:         splitList(m.form.GetString("labels")),
		SortBy:         m.form.GetString("sort"),
	}

	m.state = transactionsStateBrowse
	m.form = nil
	m.table.Focus()
	m.refreshTable()

	return m, nil
}

// splitList splits a comma-separated entry list. Blank entries survive so the
// user can opt into the no-value bucket.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func (m TransactionsModel) View() string {
	if m.loading {
		return Notice("Loading transactions...")
	}

	if m.err != nil {
		return Notice("Error: %v", m.err)
	}

	header := fmt.Sprintf(
		"Showing %s of %s transactions | Sort: %s",
		activeStyle(fmt.Sprintf("%d", len(m.view))),
		activeStyle(fmt.Sprintf("%d", len(m.txs))),
		activeStyle(m.cfg.SortBy),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == transactionsStateFilter && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(64).
			Render("Filter View\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *TransactionsModel) refreshTable() {
	m.view = ledger.GroupSplits(ledger.Apply(m.txs, m.cfg))

	rows := make([]table.Row, 0, len(m.view))

	for _, tx := range m.view {
		desc := tx.Description
		if tx.SplitFromID != nil {
			desc = "  > " + desc
		}

		cat := tx.Category
		if cat == "" {
			cat = tx.BankCategory
		}

		mark := ""
		if tx.Mark {
			mark = "x"
		}

		rows = append(rows, table.Row{
			tx.Date,
			desc,
			FormatAmount(tx.Amount),
			cat,
			ledger.SplitLabel(tx, m.allocs, m.users),
			mark,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type transactionsLoadedMsg struct {
	txs    []*transaction.Transaction
	allocs transaction.Allocations
	users  []user.User
	err    error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, transaction.ListFilter{})
		if err != nil {
			return transactionsLoadedMsg{err: err}
		}

		if _, err := m.catService.Derive(ctx, txs); err != nil {
			return transactionsLoadedMsg{err: err}
		}

		allocs, err := m.txService.AllAllocations(ctx)
		if err != nil {
			return transactionsLoadedMsg{err: err}
		}

		users, err := m.userService.List(ctx)
		if err != nil {
			return transactionsLoadedMsg{err: err}
		}

		return transactionsLoadedMsg{txs: txs, allocs: allocs, users: users}
	}
}

type markToggledMsg struct {
	err error
}

func (m TransactionsModel) toggleMarkCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.view) {
		return nil
	}

	tx := m.view[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return markToggledMsg{err: m.txService.SetMark(ctx, tx.ID, !tx.Mark)}
	}
}
