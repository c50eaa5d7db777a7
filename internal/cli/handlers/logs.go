// Package handlers implements the CLI command handlers. Each handler
// renders service results onto the injected writers and reports failures
// through the injected exit function.
package handlers

import (
	"fmt"
	"strings"

	"github.com/vishnumuthyalu/WorkLogger/internal/cli"
	"github.com/vishnumuthyalu/WorkLogger/internal/timeutil"
)

// ListLogs displays all saved work logs, most recently saved first. With
// full set, the complete stored summary is printed for each log instead of
// a one-line preview.
func ListLogs(deps *cli.Deps, full bool) {
	logs, err := deps.Services.Log.SavedLogs()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read saved logs: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(logs) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No saved logs")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Saved logs (%d %s):\n", len(logs), cli.Pluralize("entry", len(logs)))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	for _, l := range logs {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  saved %s\n", l.LogDate, cli.FormatSavedAt(l.CreatedAt))
		if full {
			_, _ = fmt.Fprintln(deps.Stdout, cli.IndentBlock(l.LogSummary, "  "))
			_, _ = fmt.Fprintln(deps.Stdout)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", cli.SummaryPreview(l.LogSummary, 60))
		}
	}
}

// ShowLog displays the full stored summary for a single date given in
// YYYY-MM-DD form.
func ShowLog(deps *cli.Deps, dateStr string) {
	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'. Use YYYY-MM-DD\n", dateStr)
		deps.Exit(1)
		return
	}

	logs, err := deps.Services.Log.SavedLogs()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read saved logs: %v\n", err)
		deps.Exit(1)
		return
	}

	iso := timeutil.ISODate(date)
	for _, l := range logs {
		if l.LogDate == iso {
			_, _ = fmt.Fprintf(deps.Stdout, "Work log for %s (saved %s):\n", timeutil.DisplayDate(date), cli.FormatSavedAt(l.CreatedAt))
			_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
			_, _ = fmt.Fprintln(deps.Stdout, l.LogSummary)
			return
		}
	}

	_, _ = fmt.Fprintf(deps.Stdout, "No saved log for %s\n", iso)
}
