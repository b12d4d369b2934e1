package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
	"github.com/xolan/shiftbook/internal/shift"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a shift by hand",
	Long: `Add a locally authored shift.

Other shifts are priced at --rate yen per hour. Tutoring shifts take a literal
--amount instead; without one they are priced like other shifts.

Examples:
  shiftbook add --date 2026-06-10 --title Cafe --start 10:00 --end 12:00 --rate 1200
  shiftbook add --date 2026-06-11 --title 新宿校 --kind tutor --start 14:00 --end 18:00 --amount 8000
  shiftbook add --date 2026-06-12 --title Cafe --start 22:00 --end 02:00 --rate 1300 --location Shibuya`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runAdd(cmd)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addShiftFlags(addCmd)
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("title")
}

func addShiftFlags(c *cobra.Command) {
	c.Flags().String("date", "", "Date of the shift (YYYY-MM-DD or DD/MM/YYYY)")
	c.Flags().String("title", "", "Title shown in lists")
	c.Flags().String("kind", string(shift.KindOther), "Kind of job (tutor, retail, other)")
	c.Flags().String("start", "", "Start time (HH:MM)")
	c.Flags().String("end", "", "End time (HH:MM, may be past midnight)")
	c.Flags().Int("rate", 0, "Hourly rate in yen")
	c.Flags().Int("amount", 0, "Literal salary in yen for tutoring shifts")
	c.Flags().String("location", "", "Work location")
}

func runAdd(cmd *cobra.Command) {
	kindStr, _ := cmd.Flags().GetString("kind")
	kind, err := shift.ParseKind(kindStr)
	if err != nil {
		usageError(err.Error(), "Use one of: tutor, retail, other")
		return
	}

	req := shift.CreateRequest{Kind: kind}
	req.Date, _ = cmd.Flags().GetString("date")
	req.Title, _ = cmd.Flags().GetString("title")
	req.StartTime, _ = cmd.Flags().GetString("start")
	req.EndTime, _ = cmd.Flags().GetString("end")
	req.HourlyRate, _ = cmd.Flags().GetInt("rate")
	req.Amount, _ = cmd.Flags().GetInt("amount")
	req.Location, _ = cmd.Flags().GetString("location")

	withServices(func(d *cli.Deps) {
		handlers.AddShift(d, req)
	})
}
