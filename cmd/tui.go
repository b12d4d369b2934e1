package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for shiftbook.

Views available:
  - Month: Browse the shifts of a month, hide or restore them
  - Upcoming: The next shifts that have not ended yet
  - Wall: The year's earnings against the annual ceiling
  - Locations: Discovered work locations
  - Config: Settings and the theme selector

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-5: Jump to specific view
  - j/k or arrows: Navigate within lists
  - h/l: Previous or next month (year on the wall)
  - n/e/d/u: New shift, edit salary, delete or hide, unhide
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, err := deps.Services()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error initializing services: %v\n", err)
		deps.Exit(1)
		return
	}
	defer func() { _ = services.Close() }()

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
