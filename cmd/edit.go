package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
	"github.com/xolan/shiftbook/internal/service"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <date> [n]",
	Short: "Edit an existing shift",
	Long: `Edit the salary or times of a shift.

Hand-entered shifts accept new times and are re-priced. Imported and
recurring shifts keep their times; --salary records an override for them.

Usage:
  shiftbook edit <date> [n] --salary 7000
  shiftbook edit <date> [n] --start 10:00 --end 14:00

At least one flag (--salary, --start or --end) is required.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		editShift(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	addEditFlags(editCmd)
}

func addEditFlags(c *cobra.Command) {
	c.Flags().Int("salary", 0, "New salary in yen")
	c.Flags().String("start", "", "New start time (HH:MM)")
	c.Flags().String("end", "", "New end time (HH:MM)")
}

func editShift(cmd *cobra.Command, args []string) {
	ref, ok := parseShiftRef(args)
	if !ok {
		return
	}

	var req service.EditRequest
	if cmd.Flags().Changed("salary") {
		salary, _ := cmd.Flags().GetInt("salary")
		req.Salary = &salary
	}
	req.StartTime, _ = cmd.Flags().GetString("start")
	req.EndTime, _ = cmd.Flags().GetString("end")

	withServices(func(d *cli.Deps) {
		handlers.EditShift(d, ref, req)
	})
}
