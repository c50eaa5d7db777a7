package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vishnumuthyalu/WorkLogger/internal/cli"
	"github.com/vishnumuthyalu/WorkLogger/internal/cli/handlers"
)

var logsFullFlag bool

// logsCmd represents the logs command
var logsCmd = &cobra.Command{
	Use:   "logs [date]",
	Short: "List saved work logs",
	Long: `List all saved work logs, most recently saved first.

Without arguments, each log is shown as a one-line preview. With --full,
the complete stored summary is printed for every log. With a date
argument, the full summary for that single date is printed.

Examples:
  worklog logs                  List all saved logs
  worklog logs --full           List all saved logs with full summaries
  worklog logs 2025-03-14       Show the log for March 14, 2025`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			handlers.ShowLog(cli.GetDeps(), args[0])
			return
		}
		handlers.ListLogs(cli.GetDeps(), logsFullFlag)
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().BoolVar(&logsFullFlag, "full", false, "print the complete summary for every log")
}
