package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
	"github.com/xolan/shiftbook/internal/upcoming"
)

// upcomingCmd represents the upcoming command
var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show the next shifts",
	Long: `Show the shifts of the coming week that have not ended yet.

Examples:
  shiftbook upcoming
  shiftbook upcoming --limit 10
  shiftbook upcoming --days 30`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		days, _ := cmd.Flags().GetInt("days")
		limit, _ := cmd.Flags().GetInt("limit")
		withServices(func(d *cli.Deps) {
			handlers.ShowUpcoming(d, days, limit)
		})
	},
}

func init() {
	rootCmd.AddCommand(upcomingCmd)
	upcomingCmd.Flags().IntP("limit", "n", upcoming.DefaultLimit, "Maximum number of shifts (0 for all)")
	upcomingCmd.Flags().IntP("days", "d", upcoming.DefaultDays, "How many days ahead to look (0 for no limit)")
}
