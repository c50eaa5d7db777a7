package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnumuthyalu/WorkLogger/internal/service"
	"github.com/vishnumuthyalu/WorkLogger/internal/store"
	"github.com/vishnumuthyalu/WorkLogger/internal/tui/ui"
)

// SavedModel is the model for the saved logs view
type SavedModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width    int
	height   int
	cursor   int
	logs     []store.WorkLog
	expanded bool
	loading  bool
	err      error
}

// NewSavedModel creates a new saved logs view model
func NewSavedModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) SavedModel {
	return SavedModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// logsLoadedMsg is sent when saved logs are loaded
type logsLoadedMsg struct {
	logs []store.WorkLog
	err  error
}

// Init implements tea.Model
func (m SavedModel) Init() tea.Cmd {
	return m.loadLogs()
}

// SetSize updates the view dimensions
func (m *SavedModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model
func (m SavedModel) Update(msg tea.Msg) (SavedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.expanded = false
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.logs)-1 {
				m.cursor++
				m.expanded = false
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if len(m.logs) > 0 {
				m.expanded = !m.expanded
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadLogs()
		}

	case logsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.logs = msg.logs
			if m.cursor >= len(m.logs) {
				m.cursor = max(0, len(m.logs)-1)
			}
		}
		return m, nil
	}

	return m, nil
}

// loadLogs fetches all saved logs from the store
func (m SavedModel) loadLogs() tea.Cmd {
	return func() tea.Msg {
		logs, err := m.services.Log.SavedLogs()
		return logsLoadedMsg{logs: logs, err: err}
	}
}

// View implements tea.Model
func (m SavedModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Saved Logs"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		return m.styles.Content.Render(b.String())
	}

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
		return m.styles.Content.Render(b.String())
	}

	if len(m.logs) == 0 {
		b.WriteString(m.styles.Muted.Render("No saved logs"))
		b.WriteString("\n")
		return m.styles.Content.Render(b.String())
	}

	for i, l := range m.logs {
		row := fmt.Sprintf("%s  %s",
			m.styles.HourTime.Render(l.LogDate),
			m.styles.Muted.Render("saved "+l.CreatedAt.Format("2006-01-02 15:04")))

		if i == m.cursor {
			b.WriteString(m.styles.HourSelected.Render("> " + row))
		} else {
			b.WriteString(m.styles.HourNormal.Render("  " + row))
		}
		b.WriteString("\n")

		if i == m.cursor && m.expanded {
			for _, line := range strings.Split(l.LogSummary, "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
	}

	return m.styles.Content.Render(b.String())
}
