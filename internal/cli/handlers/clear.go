package handlers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vishnumuthyalu/WorkLogger/internal/cli"
)

// ClearLogs deletes every saved work log with optional confirmation.
func ClearLogs(deps *cli.Deps, skipConfirm bool) {
	logs, err := deps.Services.Log.SavedLogs()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read saved logs: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(logs) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No saved logs to clear")
		return
	}

	if !skipConfirm {
		if !promptConfirmation(deps.Stdout, deps.Stdin, len(logs)) {
			_, _ = fmt.Fprintln(deps.Stdout, "Clear cancelled")
			return
		}
	}

	if err := deps.Services.Log.ClearLogs(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to clear logs: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Cleared %d saved %s\n", len(logs), cli.Pluralize("log", len(logs)))
}

// promptConfirmation asks the user to confirm clearing all logs
func promptConfirmation(stdout io.Writer, stdin io.Reader, count int) bool {
	_, _ = fmt.Fprintf(stdout, "Delete all %d saved %s? This cannot be undone. [y/N]: ", count, cli.Pluralize("log", count))

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
