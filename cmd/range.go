package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
	"github.com/xolan/shiftbook/internal/timeutil"
)

// rangeCmd represents the date range query command
var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "List shifts for a custom date range",
	Long: `List shifts for an inclusive date range.

A missing --from starts at the first day of the --to month; a missing --to
ends today. --last N covers the last N days including today.

Supported date formats:
  - YYYY-MM-DD (e.g., 2026-01-15)
  - DD/MM/YYYY (e.g., 15/01/2026)

Examples:
  shiftbook range --from 2026-06-01 --to 2026-06-30
  shiftbook range --last 14
  shiftbook range --from 2026-04-01 --summary`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showRange(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)
	addRangeFlags(rangeCmd)
	rangeCmd.Flags().Bool("summary", false, "Show totals instead of the shift list")
}

// addRangeFlags registers the --from, --to and --last flags shared by the
// range and export commands
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Start date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().String("to", "", "End date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().Int("last", 0, "Cover the last N days including today")
}

// resolveRange turns the range flags into date keys, failing through d
func resolveRange(cmd *cobra.Command, d *cli.Deps) (start, end string, ok bool) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	last, _ := cmd.Flags().GetInt("last")
	if last < 0 {
		d.Fail("--last must be a positive number of days", nil, "")
		return "", "", false
	}

	start, end, err := timeutil.ParseDateRangeFlags(from, to, last, d.Services.Shifts.Now())
	if err != nil {
		d.Fail("Invalid date range", err, "Use format YYYY-MM-DD or DD/MM/YYYY")
		return "", "", false
	}
	return start, end, true
}

func showRange(cmd *cobra.Command) {
	summary, _ := cmd.Flags().GetBool("summary")

	withServices(func(d *cli.Deps) {
		start, end, ok := resolveRange(cmd, d)
		if !ok {
			return
		}
		if summary {
			handlers.ShowRange(d, start, end)
			return
		}
		handlers.ListRange(d, start, end)
	})
}
