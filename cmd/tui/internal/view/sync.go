package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlcarter/housetab/internal/feed"
)

// Feed syncs talk to the provider API, so they get a longer leash than the
// database timeout.
const syncTimeout = 2 * time.Minute

type SyncModel struct {
	CommonModel
	feedService *feed.Service

	running bool
	result  *feed.SyncResult
	err     error
}

func NewSyncModel(feedSvc *feed.Service) SyncModel {
	return SyncModel{
		feedService: feedSvc,
		running:     true,
	}
}

func (m SyncModel) Title() string     { return "Refresh Feeds" }
func (m SyncModel) ShortHelp() string { return "Esc: back" }

func (m SyncModel) Init() tea.Cmd {
	return m.syncCmd()
}

func (m SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncDoneMsg:
		m.running = false
		m.result = msg.result
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m SyncModel) View() string {
	if m.running {
		return Notice("Syncing feeds...")
	}

	if m.err != nil {
		return Notice("Sync failed: %v", m.err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Sync run %s\n\n", m.result.RunID)

	for _, a := range m.result.Accounts {
		fmt.Fprintf(&b, "  %-16s fetched %d (categorized %d, labeled %d, split %d)\n",
			a.Account.Name, a.Fetched, a.Stats.BankCategorized, a.Stats.Labeled, a.Stats.Split)
	}

	return PanelStyle.Render(b.String())
}

type syncDoneMsg struct {
	result *feed.SyncResult
	err    error
}

func (m SyncModel) syncCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()

		result, err := m.feedService.Sync(ctx)

		return syncDoneMsg{result: result, err: err}
	}
}
