package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnumuthyalu/WorkLogger/internal/timeutil"
	"github.com/vishnumuthyalu/WorkLogger/internal/tui/ui"
	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

// PreviewModel renders the plain-text summary of the current session
// state, exactly as it would be stored or exported.
type PreviewModel struct {
	styles ui.Styles

	session *worklog.Session
	id      worklog.Identity
	date    time.Time
	labels  []string

	width  int
	height int
}

// NewPreviewModel creates a new preview view model
func NewPreviewModel(session *worklog.Session, id worklog.Identity, date time.Time, labels []string, styles ui.Styles) PreviewModel {
	return PreviewModel{
		styles:  styles,
		session: session,
		id:      id,
		date:    date,
		labels:  labels,
	}
}

// Init implements tea.Model
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (m *PreviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model
func (m PreviewModel) Update(msg tea.Msg) (PreviewModel, tea.Cmd) {
	return m, nil
}

// View implements tea.Model
func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Summary Preview - %s", timeutil.DisplayDate(m.date))))
	b.WriteString("\n")

	records := m.session.Project(m.id, m.labels)
	summary := worklog.SummaryText(records)
	if summary == worklog.NoDetailsSentinel {
		b.WriteString(m.styles.Muted.Render(summary))
	} else {
		b.WriteString(summary)
	}
	b.WriteString("\n")

	return m.styles.Content.Render(b.String())
}
