package handlers

import (
	"strings"
	"testing"
)

func TestListLogs_Empty(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ListLogs(deps, false)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "No saved logs") {
		t.Errorf("expected 'No saved logs' in output, got %q", stdout.String())
	}
}

func TestListLogs_Preview(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	saveTestLog(t, deps, "2025-03-14")

	ListLogs(deps, false)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	out := stdout.String()
	if !strings.Contains(out, "Saved logs (1 entry):") {
		t.Errorf("expected header in output, got %q", out)
	}
	if !strings.Contains(out, "2025-03-14") {
		t.Errorf("expected date in output, got %q", out)
	}
	// The preview is the first summary line, not the whole block.
	if strings.Contains(out, "Meeting Info:") {
		t.Errorf("expected truncated preview, got %q", out)
	}
}

func TestListLogs_Full(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	saveTestLog(t, deps, "2025-03-14")

	ListLogs(deps, true)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Meeting Info: standup") {
		t.Errorf("expected full summary in output, got %q", stdout.String())
	}
}

func TestShowLog(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	saveTestLog(t, deps, "2025-03-14")

	ShowLog(deps, "2025-03-14")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	out := stdout.String()
	if !strings.Contains(out, "Work log for Friday, March 14, 2025") {
		t.Errorf("expected heading in output, got %q", out)
	}
	if !strings.Contains(out, "Meeting Info: standup") {
		t.Errorf("expected summary in output, got %q", out)
	}
}

func TestShowLog_Missing(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowLog(deps, "2025-03-14")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "No saved log for 2025-03-14") {
		t.Errorf("expected missing-log message, got %q", stdout.String())
	}
}

func TestShowLog_InvalidDate(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	ShowLog(deps, "14/03/2025")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Invalid date") {
		t.Errorf("expected 'Invalid date' in stderr, got %q", stderr.String())
	}
}
