// Package cmd wires the cobra command tree for the worklog application.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vishnumuthyalu/WorkLogger/internal/cli"
	"github.com/vishnumuthyalu/WorkLogger/internal/timeutil"
	"github.com/vishnumuthyalu/WorkLogger/internal/tui"
)

var (
	dateFlag  string
	startFlag int
	endFlag   int
)

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "A daily work log application",
	Long: `worklog is a tool for logging daily work activities hour by hour.

Running it with no arguments opens the interactive form for today's log,
where each hour of the workday can be filled in with meeting details,
tasks, and general notes. Logs are saved to a local SQLite database and
can be exported as CSV, DOCX, and plain text, or emailed with the
exports attached.

Usage:
  worklog                       Open the form for today
  worklog --date 2025-03-14     Open the form for another date
  worklog --start 9 --end 18    Override the configured hour range
  worklog logs                  List saved logs
  worklog logs 2025-03-14       Show one saved log in full
  worklog clear                 Delete all saved logs (with confirmation)
  worklog config                Show the current configuration
  worklog config init           Create a sample config file`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.Flags().StringVar(&dateFlag, "date", "", "log date in YYYY-MM-DD form (default: today)")
	rootCmd.Flags().IntVar(&startFlag, "start", -1, "first hour of the log (0-23, default from config)")
	rootCmd.Flags().IntVar(&endFlag, "end", -1, "last hour of the log (0-23, inclusive, default from config)")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"worklog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runTUI resolves the log date and hour range, then starts the
// interactive form
func runTUI() {
	deps := cli.GetDeps()
	if deps.Services == nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to initialize services")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your config directory is accessible and config.toml is valid")
		deps.Exit(1)
		return
	}

	cfg := deps.Services.Config.Get()

	date := timeutil.NowIn(cfg.Timezone)
	if dateFlag != "" {
		parsed, err := timeutil.ParseDate(dateFlag)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'. Use YYYY-MM-DD\n", dateFlag)
			deps.Exit(1)
			return
		}
		date = parsed
	}

	hours := cfg.HourRange()
	if startFlag >= 0 {
		hours.Start = startFlag
	}
	if endFlag >= 0 {
		hours.End = endFlag
	}
	if err := hours.Validate(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Hours use the 24-hour clock and the start hour must be before the end hour")
		deps.Exit(1)
		return
	}

	if err := tui.Run(deps.Services, date, hours); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}
