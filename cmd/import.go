package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Install a scraper output file as the job feed",
	Long: `Validate a JSON file written by the schedule scraper and install it as the
job feed. The previous feed is replaced.

Example:
  shiftbook import ~/Downloads/jobs.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(d *cli.Deps) {
			handlers.ImportFeed(d, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
