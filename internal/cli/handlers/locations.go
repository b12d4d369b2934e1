package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/stats"
)

// ShowLocations lists the discovered work locations, most visited first
func ShowLocations(deps *cli.Deps) {
	list, err := deps.Services.Locations.List(context.Background())
	if err != nil {
		deps.Fail("Failed to load locations", err, "")
		return
	}

	if len(list) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No locations discovered yet")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Locations (%d discovered):\n", stats.Discovered(list))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, l := range list {
		if l.Count == 0 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %-20s  -\n", l.Name)
			continue
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %-20s  %3d %s  last %s\n", l.Name, l.Count, cli.Pluralize("visit", l.Count), l.LastVisited)
	}
}
