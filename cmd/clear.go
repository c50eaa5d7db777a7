package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vishnumuthyalu/WorkLogger/internal/cli"
	"github.com/vishnumuthyalu/WorkLogger/internal/cli/handlers"
)

var clearYesFlag bool

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved work logs",
	Long: `Delete every saved work log from the database.
This action cannot be undone. A confirmation prompt will be shown
unless --yes is specified.

Example:
  worklog clear
  worklog clear --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ClearLogs(cli.GetDeps(), clearYesFlag)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYesFlag, "yes", "y", false, "skip confirmation prompt")
}
