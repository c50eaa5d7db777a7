// Package tui provides the interactive terminal interface for filling in,
// previewing, saving, and sending daily work logs.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vishnumuthyalu/WorkLogger/internal/service"
	"github.com/vishnumuthyalu/WorkLogger/internal/timeutil"
	"github.com/vishnumuthyalu/WorkLogger/internal/tui/ui"
	"github.com/vishnumuthyalu/WorkLogger/internal/tui/views"
	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

// Tab represents a view tab
type Tab int

const (
	TabForm Tab = iota
	TabPreview
	TabSaved
)

var tabNames = []string{"Form", "Preview", "Saved"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// Session state for the log being edited
	session *worklog.Session
	id      worklog.Identity
	date    time.Time

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	formView    views.FormModel
	previewView views.PreviewModel
	savedView   views.SavedModel

	styles ui.Styles
	keys   ui.KeyMap
}

// New creates a new TUI model editing the log for the given date with the
// given hour range.
func New(services *service.Services, date time.Time, hours worklog.HourRange) Model {
	styles := ui.DefaultStyles()
	keys := ui.DefaultKeyMap()

	labels := hours.Labels()
	id := worklog.NewIdentity(date, hours.Start, hours.End)
	session := worklog.NewSession()
	session.Initialize(id, labels)

	return Model{
		services:    services,
		session:     session,
		id:          id,
		date:        date,
		activeTab:   TabForm,
		styles:      styles,
		keys:        keys,
		formView:    views.NewFormModel(services, session, id, date, labels, styles, keys),
		previewView: views.NewPreviewModel(session, id, date, labels, styles),
		savedView:   views.NewSavedModel(services, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.formView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The form captures all keys while editing or composing an email
		modalInput := m.isModalInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit) && !modalInput:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !modalInput:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !modalInput:
			m.activeTab = TabForm
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !modalInput:
			m.activeTab = TabPreview
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !modalInput:
			m.activeTab = TabSaved
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.formView.SetSize(m.width, contentHeight)
		m.previewView.SetSize(m.width, contentHeight)
		m.savedView.SetSize(m.width, contentHeight)
		return m, nil
	}

	// Update the active view
	switch m.activeTab {
	case TabForm:
		m.formView, cmd = m.formView.Update(msg)
	case TabPreview:
		m.previewView, cmd = m.previewView.Update(msg)
	case TabSaved:
		m.savedView, cmd = m.savedView.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabForm:
		b.WriteString(m.formView.View())
	case TabPreview:
		b.WriteString(m.previewView.View())
	case TabSaved:
		b.WriteString(m.savedView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	header += m.styles.TabInactive.Render(timeutil.DisplayDate(m.date))
	return m.styles.TabBar.Render(header)
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isModalInputMode() {
		parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("Enter", "confirm"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabForm:
			parts = append(parts, m.renderKeyHelp("Enter", "edit hour"))
			parts = append(parts, m.renderKeyHelp("s", "save"))
			parts = append(parts, m.renderKeyHelp("d", "download"))
			parts = append(parts, m.renderKeyHelp("m", "email"))
		case TabSaved:
			parts = append(parts, m.renderKeyHelp("Enter", "expand"))
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		}

		parts = append(parts, m.renderKeyHelp("1-3", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode checks if the form view is capturing keyboard input
func (m Model) isModalInputMode() bool {
	return m.activeTab == TabForm && m.formView.IsInputMode()
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabForm:
		return m.formView.Init()
	case TabPreview:
		return m.previewView.Init()
	case TabSaved:
		return m.savedView.Init()
	}
	return nil
}

// renderHelpOverlay renders a help overlay on top of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.FieldLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabForm:
		help.WriteString(m.styles.FieldLabel.Render("Form:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate hours\n")
		help.WriteString("  Enter      Edit selected hour\n")
		help.WriteString("  s          Save log to database\n")
		help.WriteString("  d          Download CSV/DOCX/text exports\n")
		help.WriteString("  m          Email log with attachments\n")
	case TabSaved:
		help.WriteString(m.styles.FieldLabel.Render("Saved:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate logs\n")
		help.WriteString("  Enter      Expand/collapse summary\n")
		help.WriteString("  r          Refresh\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.FieldLabel.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())
	return m.styles.App.Render(helpBox)
}

// Run starts the TUI application for the given date
func Run(services *service.Services, date time.Time, hours worklog.HourRange) error {
	model := New(services, date, hours)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
