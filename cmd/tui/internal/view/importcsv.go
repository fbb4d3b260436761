package view

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mlcarter/housetab/internal/importer"
	"github.com/mlcarter/housetab/internal/transaction"
)

type importState int

const (
	importStateForm importState = iota
	importStateDone
	importStateConflicts
)

type ImportModel struct {
	CommonModel
	txService     *transaction.Service
	importService *importer.Service

	state importState
	form  *huh.Form

	result *transaction.ImportResult
	status string
	err    error

	// Form bindings
	formPath string
}

func NewImportModel(txSvc *transaction.Service, importSvc *importer.Service) ImportModel {
	m := ImportModel{
		txService:     txSvc,
		importService: importSvc,
	}
	m.form = m.newForm()

	return m
}

func (m ImportModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Statement CSV path").
				Placeholder("/path/to/statement.csv").
				Value(&m.formPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m ImportModel) Title() string { return "Import Statement" }
func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStateConflicts:
		return "y: import non-conflicting rows | Esc: back"
	case importStateDone:
		return "Esc: back"
	}

	return "Enter: import | Esc: back"
}

func (m ImportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = importStateDone

			return m, nil
		}

		m.result = msg.result

		if len(msg.result.Conflicts) > 0 {
			m.state = importStateConflicts
		} else {
			m.state = importStateDone
			m.status = fmt.Sprintf("Imported %d transactions.", len(msg.result.Imported))
		}

		return m, nil

	case confirmDoneMsg:
		m.state = importStateDone
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.status = fmt.Sprintf("Imported %d transactions, skipped %d conflicts.", msg.imported, len(m.result.Conflicts))
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == importStateConflicts && msg.String() == "y" {
			return m, m.confirmCmd()
		}
	}

	if m.state != importStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	path := m.form.GetString("path")

	return m, m.importCmd(path)
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateConflicts:
		var b strings.Builder

		fmt.Fprintf(&b, "%d rows match existing transactions:\n\n", len(m.result.Conflicts))

		for _, c := range m.result.Conflicts {
			fmt.Fprintf(&b, "  %s  %-30s %10s\n", c.Incoming.Date, c.Incoming.Description, FormatAmount(c.Incoming.Amount))
		}

		fmt.Fprintf(&b, "\n%d rows are new. Import them? [y]", len(m.result.New))

		return PanelStyle.Render(b.String())

	case importStateDone:
		if m.err != nil {
			return PanelStyle.Render(fmt.Sprintf("Import failed: %v", m.err))
		}

		return PanelStyle.Render(m.status)
	}

	return PanelStyle.Render("Import Statement\n\n" + m.form.View())
}

type importDoneMsg struct {
	result *transaction.ImportResult
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		params, err := m.importService.Parse(f)
		if err != nil {
			return importDoneMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.txService.ImportBatch(ctx, params)

		return importDoneMsg{result: result, err: err}
	}
}

type confirmDoneMsg struct {
	imported int
	err      error
}

func (m ImportModel) confirmCmd() tea.Cmd {
	params := m.result.New

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.CreateBatch(ctx, params)

		return confirmDoneMsg{imported: len(txs), err: err}
	}
}
