// Package views contains the individual view models composed by the root
// TUI model: the hour form, the summary preview, and the saved log list.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnumuthyalu/WorkLogger/internal/service"
	"github.com/vishnumuthyalu/WorkLogger/internal/timeutil"
	"github.com/vishnumuthyalu/WorkLogger/internal/tui/ui"
	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

// formMode represents the current mode of the form view
type formMode int

const (
	formModeNormal formMode = iota
	formModeEdit
	formModeSend
)

// FormModel is the model for the hour form view
type FormModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// Session state shared with the preview view
	session *worklog.Session
	id      worklog.Identity
	date    time.Time
	labels  []string

	// UI state
	width  int
	height int
	cursor int
	mode   formMode

	// Edit mode state
	meeting      bool
	infoInput    textinput.Model
	tasksInput   textinput.Model
	generalInput textinput.Model
	focusedInput int // 0 = meeting toggle, 1 = info, 2 = tasks, 3 = general

	// Send mode state
	toInput      textinput.Model
	ccInput      textinput.Model
	subjectInput textinput.Model
	focusedSend  int // 0 = to, 1 = cc, 2 = subject

	// Last action result shown under the hour list
	status    string
	statusErr bool
}

// NewFormModel creates a new form view model
func NewFormModel(services *service.Services, session *worklog.Session, id worklog.Identity, date time.Time, labels []string, styles ui.Styles, keys ui.KeyMap) FormModel {
	infoInput := textinput.New()
	infoInput.Placeholder = "Meeting details..."
	infoInput.CharLimit = 200
	infoInput.Width = 50

	tasksInput := textinput.New()
	tasksInput.Placeholder = "Tasks worked on..."
	tasksInput.CharLimit = 200
	tasksInput.Width = 50

	generalInput := textinput.New()
	generalInput.Placeholder = "General notes..."
	generalInput.CharLimit = 200
	generalInput.Width = 50

	toInput := textinput.New()
	toInput.Placeholder = "recipient@example.com"
	toInput.CharLimit = 200
	toInput.Width = 50

	ccInput := textinput.New()
	ccInput.Placeholder = "cc@example.com (optional)"
	ccInput.CharLimit = 200
	ccInput.Width = 50

	subjectInput := textinput.New()
	subjectInput.CharLimit = 200
	subjectInput.Width = 50

	return FormModel{
		services:     services,
		session:      session,
		id:           id,
		date:         date,
		labels:       labels,
		styles:       styles,
		keys:         keys,
		infoInput:    infoInput,
		tasksInput:   tasksInput,
		generalInput: generalInput,
		toInput:      toInput,
		ccInput:      ccInput,
		subjectInput: subjectInput,
	}
}

// actionResultMsg reports the outcome of a save, download, or send action
type actionResultMsg struct {
	message string
	isError bool
}

// Init implements tea.Model
func (m FormModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode reports whether the view is capturing keyboard input
func (m FormModel) IsInputMode() bool {
	return m.mode != formModeNormal
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case formModeEdit:
			return m.handleEditMode(msg)
		case formModeSend:
			return m.handleSendMode(msg)
		}

		// Normal mode key handling
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.labels)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			return m.enterEditMode(), textinput.Blink
		case key.Matches(msg, m.keys.Save):
			return m, m.saveDay()
		case key.Matches(msg, m.keys.Download):
			return m, m.downloadBundle()
		case key.Matches(msg, m.keys.Send):
			return m.enterSendMode(), textinput.Blink
		}

	case actionResultMsg:
		m.status = msg.message
		m.statusErr = msg.isError
		return m, nil
	}

	// Update the focused text input while editing
	if m.mode == formModeEdit {
		switch m.focusedInput {
		case 1:
			m.infoInput, cmd = m.infoInput.Update(msg)
		case 2:
			m.tasksInput, cmd = m.tasksInput.Update(msg)
		case 3:
			m.generalInput, cmd = m.generalInput.Update(msg)
		}
		return m, cmd
	}
	if m.mode == formModeSend {
		switch m.focusedSend {
		case 0:
			m.toInput, cmd = m.toInput.Update(msg)
		case 1:
			m.ccInput, cmd = m.ccInput.Update(msg)
		case 2:
			m.subjectInput, cmd = m.subjectInput.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// enterEditMode loads the selected hour's entry into the edit buffers
func (m FormModel) enterEditMode() FormModel {
	entry := m.session.Entry(m.id, m.labels[m.cursor])
	if entry == nil {
		return m
	}

	m.mode = formModeEdit
	m.meeting = entry.Meeting
	m.infoInput.SetValue(entry.MeetingInfo)
	m.tasksInput.SetValue(entry.Tasks)
	m.generalInput.SetValue(entry.General)
	m.focusedInput = 0
	m.infoInput.Blur()
	m.tasksInput.Blur()
	m.generalInput.Blur()
	return m
}

// handleEditMode handles key events while editing an hour slot
func (m FormModel) handleEditMode(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		entry := m.session.Entry(m.id, m.labels[m.cursor])
		if entry != nil {
			entry.Meeting = m.meeting
			entry.MeetingInfo = strings.TrimSpace(m.infoInput.Value())
			entry.Tasks = strings.TrimSpace(m.tasksInput.Value())
			entry.General = strings.TrimSpace(m.generalInput.Value())
		}
		m.mode = formModeNormal
		m.blurEditInputs()
		return m, nil

	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = formModeNormal
		m.blurEditInputs()
		return m, nil

	case key.Matches(msg, m.keys.NextField): // Tab
		m.focusedInput = (m.focusedInput + 1) % 4
		m.focusEditInput()
		return m, textinput.Blink
	}

	// The meeting toggle is a yes/no field, not a text input
	if m.focusedInput == 0 {
		switch msg.String() {
		case " ":
			m.meeting = !m.meeting
		case "y", "Y":
			m.meeting = true
		case "n", "N":
			m.meeting = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focusedInput {
	case 1:
		m.infoInput, cmd = m.infoInput.Update(msg)
	case 2:
		m.tasksInput, cmd = m.tasksInput.Update(msg)
	case 3:
		m.generalInput, cmd = m.generalInput.Update(msg)
	}
	return m, cmd
}

// focusEditInput focuses the text input matching focusedInput
func (m *FormModel) focusEditInput() {
	m.blurEditInputs()
	switch m.focusedInput {
	case 1:
		m.infoInput.Focus()
	case 2:
		m.tasksInput.Focus()
	case 3:
		m.generalInput.Focus()
	}
}

func (m *FormModel) blurEditInputs() {
	m.infoInput.Blur()
	m.tasksInput.Blur()
	m.generalInput.Blur()
}

// enterSendMode pre-fills the send form from the configured defaults
func (m FormModel) enterSendMode() FormModel {
	m.mode = formModeSend
	m.toInput.SetValue(m.services.Mail.DefaultTo())
	m.ccInput.SetValue(m.services.Mail.DefaultCC())
	m.subjectInput.SetValue(m.services.Mail.DefaultSubject(m.date))
	m.focusedSend = 0
	m.toInput.Focus()
	m.ccInput.Blur()
	m.subjectInput.Blur()
	return m
}

// handleSendMode handles key events in the send form
func (m FormModel) handleSendMode(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		to := strings.TrimSpace(m.toInput.Value())
		cc := strings.TrimSpace(m.ccInput.Value())
		subject := strings.TrimSpace(m.subjectInput.Value())
		m.mode = formModeNormal
		m.blurSendInputs()
		return m, m.sendDay(to, cc, subject)

	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = formModeNormal
		m.blurSendInputs()
		return m, nil

	case key.Matches(msg, m.keys.NextField): // Tab
		m.focusedSend = (m.focusedSend + 1) % 3
		m.blurSendInputs()
		switch m.focusedSend {
		case 0:
			m.toInput.Focus()
		case 1:
			m.ccInput.Focus()
		case 2:
			m.subjectInput.Focus()
		}
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	switch m.focusedSend {
	case 0:
		m.toInput, cmd = m.toInput.Update(msg)
	case 1:
		m.ccInput, cmd = m.ccInput.Update(msg)
	case 2:
		m.subjectInput, cmd = m.subjectInput.Update(msg)
	}
	return m, cmd
}

func (m *FormModel) blurSendInputs() {
	m.toInput.Blur()
	m.ccInput.Blur()
	m.subjectInput.Blur()
}

// saveDay persists the current session state for the log date
func (m FormModel) saveDay() tea.Cmd {
	records := m.session.Project(m.id, m.labels)
	return func() tea.Msg {
		if err := m.services.Log.SaveDay(m.date, records); err != nil {
			return actionResultMsg{message: fmt.Sprintf("Failed to save: %v", err), isError: true}
		}
		return actionResultMsg{message: fmt.Sprintf("Saved log for %s", timeutil.ISODate(m.date))}
	}
}

// downloadBundle writes the CSV, DOCX, and text exports to the current
// directory
func (m FormModel) downloadBundle() tea.Cmd {
	records := m.session.Project(m.id, m.labels)
	return func() tea.Msg {
		bundle, err := m.services.Log.Bundle(m.date, records)
		if err != nil {
			return actionResultMsg{message: fmt.Sprintf("Failed to build exports: %v", err), isError: true}
		}
		paths, err := m.services.Log.WriteBundle(".", bundle)
		if err != nil {
			return actionResultMsg{message: fmt.Sprintf("Failed to write exports: %v", err), isError: true}
		}
		return actionResultMsg{message: fmt.Sprintf("Wrote %d export files to the current directory", len(paths))}
	}
}

// sendDay emails the current session state with the exports attached
func (m FormModel) sendDay(to, cc, subject string) tea.Cmd {
	records := m.session.Project(m.id, m.labels)
	return func() tea.Msg {
		ok, message := m.services.Mail.SendDay(m.date, records, to, cc, subject, "")
		return actionResultMsg{message: message, isError: !ok}
	}
}

// View implements tea.Model
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Work Log - %s", timeutil.DisplayDate(m.date))))
	b.WriteString("\n")

	switch m.mode {
	case formModeEdit:
		b.WriteString(m.renderEditForm())
	case formModeSend:
		b.WriteString(m.renderSendForm())
	default:
		b.WriteString(m.renderHourList())
	}

	if m.status != "" && m.mode == formModeNormal {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
		b.WriteString("\n")
	}

	return m.styles.Content.Render(b.String())
}

// renderHourList renders one row per hour slot
func (m FormModel) renderHourList() string {
	var b strings.Builder

	for i, label := range m.labels {
		entry := m.session.Entry(m.id, label)
		if entry == nil {
			continue
		}

		meeting := "No"
		if entry.Meeting {
			meeting = "Yes"
		}

		detail := entry.Tasks
		if detail == "" {
			detail = entry.General
		}
		if detail == "" && entry.Meeting {
			detail = entry.MeetingInfo
		}
		if detail == "" {
			detail = m.styles.Muted.Render("(empty)")
		}

		row := fmt.Sprintf("%s %s %s",
			m.styles.HourTime.Render(label),
			m.styles.HourMeeting.Render(meeting),
			m.styles.HourDetail.Render(detail))

		if i == m.cursor {
			b.WriteString(m.styles.HourSelected.Render("> " + row))
		} else {
			b.WriteString(m.styles.HourNormal.Render("  " + row))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderEditForm renders the edit dialog for the selected hour
func (m FormModel) renderEditForm() string {
	var b strings.Builder

	b.WriteString(m.styles.DialogTitle.Render(fmt.Sprintf("Edit %s", m.labels[m.cursor])))
	b.WriteString("\n\n")

	meeting := "No"
	if m.meeting {
		meeting = "Yes"
	}
	toggle := fmt.Sprintf("%s %s", m.styles.FieldLabel.Render("Meeting:"), meeting)
	if m.focusedInput == 0 {
		toggle += m.styles.Muted.Render("  (space/y/n to toggle)")
	}
	b.WriteString(toggle)
	b.WriteString("\n\n")

	b.WriteString(m.renderInput("Meeting Info:", m.infoInput, m.focusedInput == 1))
	b.WriteString(m.renderInput("Tasks:", m.tasksInput, m.focusedInput == 2))
	b.WriteString(m.renderInput("General Info:", m.generalInput, m.focusedInput == 3))

	return m.styles.Dialog.Render(b.String())
}

// renderSendForm renders the email send dialog
func (m FormModel) renderSendForm() string {
	var b strings.Builder

	b.WriteString(m.styles.DialogTitle.Render("Send Work Log"))
	b.WriteString("\n\n")

	b.WriteString(m.renderInput("To:", m.toInput, m.focusedSend == 0))
	b.WriteString(m.renderInput("CC:", m.ccInput, m.focusedSend == 1))
	b.WriteString(m.renderInput("Subject:", m.subjectInput, m.focusedSend == 2))

	return m.styles.Dialog.Render(b.String())
}

// renderInput renders one labeled text input
func (m FormModel) renderInput(label string, input textinput.Model, focused bool) string {
	style := m.styles.Input
	if focused {
		style = m.styles.InputFocused
	}
	return fmt.Sprintf("%s\n%s\n", m.styles.FieldLabel.Render(label), style.Render(input.View()))
}
