package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/cli/handlers"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export shifts to various formats",
	Long: `Export the combined shifts for programmatic use, bookkeeping or backup.

Available formats:
  csv     Export shifts as CSV
  json    Export shifts as JSON with metadata
  xlsx    Export shifts as an Excel workbook (needs --output)

Date Filtering:
  Use --from and --to to filter by date range (default: this month)
  Use --last to filter by relative days

Examples:
  shiftbook export csv > june.csv
  shiftbook export json --from 2026-01-01 --to 2026-12-31
  shiftbook export xlsx --last 30 --output shifts.xlsx`,
}

func newExportFormatCmd(format, short string) *cobra.Command {
	c := &cobra.Command{
		Use:   format,
		Short: short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runExport(cmd, format)
		},
	}
	addRangeFlags(c)
	c.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	return c
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(newExportFormatCmd(handlers.FormatCSV, "Export shifts as CSV"))
	exportCmd.AddCommand(newExportFormatCmd(handlers.FormatJSON, "Export shifts as JSON"))
	exportCmd.AddCommand(newExportFormatCmd(handlers.FormatXLSX, "Export shifts as an Excel workbook"))
}

func runExport(cmd *cobra.Command, format string) {
	output, _ := cmd.Flags().GetString("output")

	withServices(func(d *cli.Deps) {
		start, end, ok := resolveRange(cmd, d)
		if !ok {
			return
		}
		handlers.ExportShifts(d, format, start, end, output)
	})
}
