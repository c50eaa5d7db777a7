package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vishnumuthyalu/WorkLogger/internal/cli"
	"github.com/vishnumuthyalu/WorkLogger/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration for worklog.

Shows the configuration file location, whether it exists, the configured
hour range and timezone, and the SMTP relay settings. The SMTP password
itself is never printed.

By default, worklog works without any configuration file. All settings
have defaults:
  - start_hour: 8 (8:00 AM)
  - end_hour: 17 (5:00 PM)
  - timezone: Local (system timezone)
  - email: smtp.gmail.com:465, sending disabled until a password is set

Configuration file location:
  ~/.config/worklog/config.toml      Linux/macOS
  %APPDATA%\worklog\config.toml      Windows`,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(cli.GetDeps())
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Long: `Create a commented sample config file at the standard location.

Fails if a config file already exists. Edit the created file to set the
hour range, timezone, and SMTP credentials.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(cli.GetDeps())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
