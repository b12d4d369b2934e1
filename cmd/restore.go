package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Bring back hidden shifts or restore a backup",
	Long: `Without flags, list the hidden dates and shifts, the salary overrides and
the backups of the local shift file.

Examples:
  shiftbook restore                     Show what can be restored
  shiftbook restore --date 2026-06-06   Bring back the shifts hidden on a date
  shiftbook restore --all               Bring back every hidden shift
  shiftbook restore --backup 2          Restore the shift file from backup #2`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRestore(cmd)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	addRestoreFlags(restoreCmd)
}

func addRestoreFlags(c *cobra.Command) {
	c.Flags().String("date", "", "Restore the shifts hidden on this date")
	c.Flags().Bool("all", false, "Restore every hidden shift")
	c.Flags().Int("backup", 0, "Restore the shift file from backup N (1 is the most recent)")
	c.MarkFlagsMutuallyExclusive("date", "all", "backup")
}

func runRestore(cmd *cobra.Command) {
	date, _ := cmd.Flags().GetString("date")
	all, _ := cmd.Flags().GetBool("all")
	backup, _ := cmd.Flags().GetInt("backup")
	backupSet := cmd.Flags().Changed("backup")

	withServices(func(d *cli.Deps) {
		switch {
		case date != "":
			handlers.RestoreDate(d, date)
		case all:
			handlers.ResetAll(d)
		case backupSet:
			handlers.RestoreBackup(d, backup)
		default:
			handlers.ShowExclusions(d)
		}
	})
}
