package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for shiftbook.

Shows the configuration file location, whether it exists, and all current settings.
Configuration values are merged from the config file with sensible defaults, then
SHIFTBOOK_* environment variables (or a .env file) override the storage settings.

Examples:
  shiftbook config                              Show all current settings
  shiftbook config init                         Create a commented config file
  shiftbook config set annual_ceiling 1300000   Change one setting

Configuration file location:
  ~/.config/shiftbook/config.toml          Linux
  %APPDATA%\shiftbook\config.toml          Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withServices(handlers.ShowConfig)
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withServices(handlers.InitConfig)
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save the config file.

Keys: timezone, theme, backend, data_dir, database_path, feed_path,
annual_ceiling, warning_threshold, reset_clears_overrides,
recurring.enabled, recurring.start_time, recurring.end_time,
recurring.saturday_rate, recurring.sunday_rate`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(d *cli.Deps) {
			handlers.SetConfig(d, args[0], args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}
