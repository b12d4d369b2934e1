package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/shiftbook/internal/cli"
)

// ImportFeed validates a scraper output file and installs it as the feed
func ImportFeed(deps *cli.Deps, path string) {
	result, err := deps.Services.Shifts.Import(path)
	if err != nil {
		deps.Fail("Failed to import feed", err, "The file must be the JSON array written by the schedule scraper")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Imported %d %s (%d %s, %s)\n",
		result.Records, cli.Pluralize("record", result.Records),
		result.Shifts, cli.Pluralize("shift", result.Shifts),
		cli.FormatYen(result.Total))
	if skipped := result.Records - result.Shifts; skipped > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %d %s with unreadable dates skipped\n", skipped, cli.Pluralize("record", skipped))
	}
	syncLocations(context.Background(), deps)
}
