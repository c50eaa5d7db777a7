package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vishnumuthyalu/WorkLogger/internal/cli"
	"github.com/vishnumuthyalu/WorkLogger/internal/config"
	"github.com/vishnumuthyalu/WorkLogger/internal/service"
	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()

	services, err := service.NewServicesWithPaths(
		filepath.Join(tmpDir, "work_logs.db"),
		filepath.Join(tmpDir, "config.toml"),
		cfg,
	)
	if err != nil {
		t.Fatalf("failed to create services: %v", err)
	}
	t.Cleanup(func() { _ = services.Close() })
	if err := services.Init(); err != nil {
		t.Fatalf("failed to init services: %v", err)
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
		Config:   cfg,
	}

	return deps, stdout, stderr, &exitCode
}

// setupBrokenConfigDeps creates deps with a config path that's a directory (causes errors)
func setupBrokenConfigDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	deps, stdout, stderr, exitCode := setupTestDeps(t)

	badPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.MkdirAll(badPath, 0755); err != nil {
		t.Fatal(err)
	}
	deps.Services.Config = service.NewConfigService(badPath, config.DefaultConfig())

	return deps, stdout, stderr, exitCode
}

func saveTestLog(t *testing.T, deps *cli.Deps, dateStr string) {
	t.Helper()
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatal(err)
	}
	records := []worklog.FlatRecord{
		{Time: "8:00 AM", Meeting: "Yes", MeetingInfo: "standup", Tasks: "triage"},
	}
	if err := deps.Services.Log.SaveDay(date, records); err != nil {
		t.Fatalf("failed to save log: %v", err)
	}
}
