package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
)

// wallCmd represents the wall command
var wallCmd = &cobra.Command{
	Use:   "wall [year]",
	Short: "Show the year's earnings against the annual ceiling",
	Long: `Show the total salary of a calendar year against the configured annual
ceiling, with a progress bar and the monthly totals.

Examples:
  shiftbook wall
  shiftbook wall 2025`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showWall(args)
	},
}

func init() {
	rootCmd.AddCommand(wallCmd)
}

func showWall(args []string) {
	year := 0
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil || y < 1 {
			usageError("Invalid year '"+args[0]+"'", "Example: shiftbook wall 2026")
			return
		}
		year = y
	}

	withServices(func(d *cli.Deps) {
		if year == 0 {
			year = d.Services.Shifts.Now().Year()
		}
		handlers.ShowWall(d, year)
	})
}
