package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
	"github.com/xolan/shiftbook/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "shiftbook",
	Short: "A shift scheduling and wage estimation CLI",
	Long: `shiftbook merges scraped tutoring jobs, a recurring retail schedule and
hand-entered shifts into one calendar, prices every shift, and tracks the
year's earnings against an annual ceiling.

Usage:
  shiftbook                                     List this month's shifts
  shiftbook add --date 2026-06-10 --title Cafe --start 10:00 --end 12:00 --rate 1200
  shiftbook month 2026-07                       List a month
  shiftbook range --last 14                     List a date range
  shiftbook delete 2026-06-06 [n]               Delete or hide a shift
  shiftbook edit 2026-06-05 [n] --salary 7000   Correct a shift
  shiftbook wall                                Show the annual earnings wall
  shiftbook upcoming                            Show the next shifts
  shiftbook locations                           Show discovered work locations
  shiftbook import jobs.json                    Install a new scraper feed
  shiftbook restore                             Show hidden shifts and backups

Dates: YYYY-MM-DD or DD/MM/YYYY. Times: HH:MM (24h).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		withServices(func(d *cli.Deps) {
			now := d.Services.Shifts.Now()
			handlers.ListMonth(d, now.Year(), now.Month())
		})
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"shiftbook version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// parseShiftRef reads "<date> [n]" arguments. A missing number is 0, which
// selects the only shift of the date.
func parseShiftRef(args []string) (service.ShiftRef, bool) {
	ref := service.ShiftRef{Date: args[0]}
	if len(args) < 2 {
		return ref, true
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		usageError("Invalid shift number '"+args[1]+"'. It must be 1 or greater",
			"List the day's shifts with 'shiftbook month' to see the numbers")
		return ref, false
	}
	ref.Index = n
	return ref, true
}
