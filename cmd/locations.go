package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli/handlers"
)

// locationsCmd represents the locations command
var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the discovered work locations",
	Long: `List every work location found in the shifts with its visit count and
the date of the last visit. The list is refreshed from the current shifts.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withServices(handlers.ShowLocations)
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}
