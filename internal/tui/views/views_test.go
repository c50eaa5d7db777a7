package views

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnumuthyalu/WorkLogger/internal/config"
	"github.com/vishnumuthyalu/WorkLogger/internal/service"
	"github.com/vishnumuthyalu/WorkLogger/internal/tui/ui"
	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

var testDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()

	services, err := service.NewServicesWithPaths(
		filepath.Join(tmpDir, "work_logs.db"),
		filepath.Join(tmpDir, "config.toml"),
		config.DefaultConfig(),
	)
	if err != nil {
		t.Fatalf("failed to create services: %v", err)
	}
	t.Cleanup(func() { _ = services.Close() })
	if err := services.Init(); err != nil {
		t.Fatalf("failed to init services: %v", err)
	}
	return services
}

func testSession() (*worklog.Session, worklog.Identity, []string) {
	hours := worklog.HourRange{Start: 8, End: 10}
	labels := hours.Labels()
	id := worklog.NewIdentity(testDate, hours.Start, hours.End)
	session := worklog.NewSession()
	session.Initialize(id, labels)
	return session, id, labels
}

func testFormModel(t *testing.T) FormModel {
	t.Helper()
	services := setupTestServices(t)
	session, id, labels := testSession()
	return NewFormModel(services, session, id, testDate, labels, ui.DefaultStyles(), ui.DefaultKeyMap())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormModel_Navigation(t *testing.T) {
	m := testFormModel(t)

	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}

	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 1 {
		t.Errorf("expected cursor 1 after j, got %d", m.cursor)
	}

	m, _ = m.Update(keyRunes("k"))
	if m.cursor != 0 {
		t.Errorf("expected cursor 0 after k, got %d", m.cursor)
	}

	// Does not move past the last hour
	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 2 {
		t.Errorf("expected cursor clamped to 2, got %d", m.cursor)
	}
}

func TestFormModel_EditHour(t *testing.T) {
	m := testFormModel(t)

	// Enter edit mode for 8:00 AM
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsInputMode() {
		t.Fatal("expected input mode after enter")
	}

	// Toggle the meeting flag, then move to the meeting info field
	m, _ = m.Update(keyRunes("y"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(keyRunes("standup"))

	// Move to tasks
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(keyRunes("triage"))

	// Commit
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsInputMode() {
		t.Fatal("expected normal mode after commit")
	}

	entry := m.session.Entry(m.id, "8:00 AM")
	if entry == nil {
		t.Fatal("expected entry for 8:00 AM")
	}
	if !entry.Meeting {
		t.Error("expected meeting to be toggled on")
	}
	if entry.MeetingInfo != "standup" {
		t.Errorf("expected meeting info 'standup', got %q", entry.MeetingInfo)
	}
	if entry.Tasks != "triage" {
		t.Errorf("expected tasks 'triage', got %q", entry.Tasks)
	}
}

func TestFormModel_EditCancel(t *testing.T) {
	m := testFormModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(keyRunes("y"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.IsInputMode() {
		t.Fatal("expected normal mode after escape")
	}
	entry := m.session.Entry(m.id, "8:00 AM")
	if entry.Meeting {
		t.Error("expected cancelled edit to leave the entry unchanged")
	}
}

func TestFormModel_SaveDay(t *testing.T) {
	m := testFormModel(t)

	// Fill in one hour directly through the session
	entry := m.session.Entry(m.id, "8:00 AM")
	entry.Tasks = "triage"

	cmd := m.saveDay()
	msg := cmd()
	result, ok := msg.(actionResultMsg)
	if !ok {
		t.Fatalf("expected actionResultMsg, got %T", msg)
	}
	if result.isError {
		t.Fatalf("expected save to succeed, got %q", result.message)
	}

	logs, err := m.services.Log.SavedLogs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one saved log, got %d", len(logs))
	}
	if !strings.Contains(logs[0].LogSummary, "triage") {
		t.Errorf("expected summary to contain task text, got:\n%s", logs[0].LogSummary)
	}
}

func TestFormModel_SendModePrefillsDefaults(t *testing.T) {
	m := testFormModel(t)

	m, _ = m.Update(keyRunes("m"))
	if !m.IsInputMode() {
		t.Fatal("expected input mode after opening the send form")
	}
	if got := m.subjectInput.Value(); got != "Friday_March_14_2025 Daily Work Log" {
		t.Errorf("expected default subject, got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsInputMode() {
		t.Fatal("expected normal mode after escape")
	}
}

func TestFormModel_View(t *testing.T) {
	m := testFormModel(t)

	view := m.View()
	if !strings.Contains(view, "Friday, March 14, 2025") {
		t.Error("expected view to contain the log date")
	}
	if !strings.Contains(view, "8:00 AM") {
		t.Error("expected view to contain the first hour label")
	}
	if !strings.Contains(view, "10:00 AM") {
		t.Error("expected view to contain the last hour label")
	}
}

func TestPreviewModel_View(t *testing.T) {
	session, id, labels := testSession()
	m := NewPreviewModel(session, id, testDate, labels, ui.DefaultStyles())

	// All hours empty: the sentinel shows
	view := m.View()
	if !strings.Contains(view, worklog.NoDetailsSentinel) {
		t.Errorf("expected sentinel in preview, got:\n%s", view)
	}

	// Session edits show up without rebuilding the model
	session.Entry(id, "9:00 AM").Tasks = "triage"
	view = m.View()
	if !strings.Contains(view, "Tasks: triage") {
		t.Errorf("expected task line in preview, got:\n%s", view)
	}
	if strings.Contains(view, worklog.NoDetailsSentinel) {
		t.Errorf("expected sentinel to disappear, got:\n%s", view)
	}
}

func TestSavedModel_LoadAndView(t *testing.T) {
	services := setupTestServices(t)
	records := []worklog.FlatRecord{
		{Time: "8:00 AM", Meeting: "No", Tasks: "triage"},
	}
	if err := services.Log.SaveDay(testDate, records); err != nil {
		t.Fatalf("failed to save log: %v", err)
	}

	m := NewSavedModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())

	cmd := m.Init()
	msg := cmd()
	m, _ = m.Update(msg)

	if len(m.logs) != 1 {
		t.Fatalf("expected one loaded log, got %d", len(m.logs))
	}

	view := m.View()
	if !strings.Contains(view, "2025-03-14") {
		t.Errorf("expected log date in view, got:\n%s", view)
	}
	if strings.Contains(view, "Tasks: triage") {
		t.Errorf("expected summary collapsed by default, got:\n%s", view)
	}

	// Enter expands the selected summary
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view = m.View()
	if !strings.Contains(view, "Tasks: triage") {
		t.Errorf("expected expanded summary, got:\n%s", view)
	}
}

func TestSavedModel_Empty(t *testing.T) {
	services := setupTestServices(t)
	m := NewSavedModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())

	cmd := m.Init()
	m, _ = m.Update(cmd())

	if !strings.Contains(m.View(), "No saved logs") {
		t.Error("expected empty state message")
	}
}
