package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
	"github.com/xolan/shiftbook/internal/timeutil"
)

// monthCmd represents the month command
var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "List the shifts of a month",
	Long: `List the shifts of a calendar month, grouped by day. Without an argument
the current month is shown. Use --summary for totals per kind instead.

Examples:
  shiftbook month
  shiftbook month 2026-07
  shiftbook month 2026-07 --summary`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showMonth(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(monthCmd)
	monthCmd.Flags().Bool("summary", false, "Show totals instead of the shift list")
}

func showMonth(cmd *cobra.Command, args []string) {
	summary, _ := cmd.Flags().GetBool("summary")

	withServices(func(d *cli.Deps) {
		now := d.Services.Shifts.Now()
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			var err error
			year, month, err = timeutil.ParseMonth(args[0])
			if err != nil {
				d.Fail("Invalid month", err, "Example: shiftbook month 2026-07")
				return
			}
		}

		if summary {
			handlers.ShowMonth(d, year, month)
			return
		}
		handlers.ListMonth(d, year, month)
	})
}
