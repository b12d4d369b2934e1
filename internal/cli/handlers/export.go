package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/export"
	"github.com/xolan/shiftbook/internal/shift"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// ExportShifts writes the combined shifts within [start, end] in format.
// An empty output path writes to stdout, except for xlsx which needs a file.
func ExportShifts(deps *cli.Deps, format, start, end, output string) {
	if format != FormatCSV && format != FormatJSON && format != FormatXLSX {
		deps.Fail(fmt.Sprintf("Unsupported export format '%s'", format), nil, "Supported formats: csv, json, xlsx")
		return
	}

	result, err := deps.Services.Shifts.Range(context.Background(), start, end)
	if err != nil {
		deps.Fail("Failed to load shifts", err, "")
		return
	}

	shifts := make([]shift.Shift, len(result.Shifts))
	for i, is := range result.Shifts {
		shifts[i] = is.Shift
	}

	if format == FormatXLSX && output == "" {
		deps.Fail("XLSX export needs an output file", nil, "Pass --output shifts.xlsx")
		return
	}

	var w io.Writer = deps.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			deps.Fail("Failed to create output file", err, "")
			return
		}
		defer func() { _ = file.Close() }()
		w = file
	}

	switch format {
	case FormatCSV:
		err = export.WriteCSV(w, shifts)
	case FormatJSON:
		criteria := map[string]string{"from": start, "to": end}
		err = export.WriteJSON(w, export.NewDocument(shifts, criteria, time.Now().UTC()))
	case FormatXLSX:
		err = export.WriteXLSX(w, shifts)
	}
	if err != nil {
		deps.Fail("Failed to write export", err, "")
		return
	}

	if output != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Exported %d %s to %s\n", len(shifts), cli.Pluralize("shift", len(shifts)), output)
	}
}
