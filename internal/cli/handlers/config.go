package handlers

import (
	"fmt"
	"strings"

	"github.com/vishnumuthyalu/WorkLogger/internal/cli"
	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "start_hour: %s\n", worklog.HourLabel(cfg.StartHour))
	_, _ = fmt.Fprintf(deps.Stdout, "end_hour:   %s\n", worklog.HourLabel(cfg.EndHour))
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:   %s\n", cfg.Timezone)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "smtp server: %s:%d\n", cfg.Email.Server, cfg.Email.Port)
	_, _ = fmt.Fprintf(deps.Stdout, "smtp user:   %s\n", cfg.Email.User)
	if cfg.Email.IsConfigured() {
		_, _ = fmt.Fprintln(deps.Stdout, "credential:  configured")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "credential:  not configured (email sending disabled)")
	}
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
