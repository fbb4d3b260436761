package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View is one screen of the housetab TUI: dashboard, transactions, budgets,
// statement import, or feed sync.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct{}

// BackMsg returns control to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// Shared chrome so the five screens read as one program.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	PanelStyle = lipgloss.NewStyle().Padding(1, 2)
)

// Notice renders a full-screen transient message (loading states, errors).
func Notice(format string, args ...any) string {
	return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(format, args...))
}
