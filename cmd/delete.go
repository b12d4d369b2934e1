package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
)

var yesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <date> [n]",
	Short: "Delete a shift, or hide an imported one",
	Long: `Delete a shift by its date and, when the date has several shifts, its
number in the list output.

Hand-entered shifts are removed. Imported and recurring shifts are hidden
and can be brought back with 'shiftbook restore --date'.
A confirmation prompt will be shown unless --yes is specified.

Example:
  shiftbook delete 2026-06-06
  shiftbook delete 2026-06-05 2 --yes`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		deleteShift(args)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}

func deleteShift(args []string) {
	ref, ok := parseShiftRef(args)
	if !ok {
		return
	}
	withServices(func(d *cli.Deps) {
		handlers.DeleteShift(d, ref, yesFlag)
	})
}
