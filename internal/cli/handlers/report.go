package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/upcoming"
)

// ShowRange shows totals and the per-kind breakdown for [start, end]
func ShowRange(deps *cli.Deps, start, end string) {
	result, err := deps.Services.Reports.Range(context.Background(), start, end)
	if err != nil {
		deps.Fail("Failed to build report", err, "")
		return
	}
	printSummary(deps, result)
}

// ShowMonth shows the summary of one calendar month
func ShowMonth(deps *cli.Deps, year int, month time.Month) {
	result, err := deps.Services.Reports.Month(context.Background(), year, month)
	if err != nil {
		deps.Fail("Failed to build report", err, "")
		return
	}
	printSummary(deps, result)
}

func printSummary(deps *cli.Deps, result *service.RangeResult) {
	_, _ = fmt.Fprintf(deps.Stdout, "Summary for %s:\n", result.Period)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total salary:  %s\n", cli.FormatYen(result.Summary.TotalSalary))
	_, _ = fmt.Fprintf(deps.Stdout, "Shifts:        %d\n", result.Summary.ShiftCount)
	_, _ = fmt.Fprintf(deps.Stdout, "Days worked:   %d\n", result.Summary.DaysWithShift)
	_, _ = fmt.Fprintf(deps.Stdout, "Time worked:   %s\n", cli.FormatDuration(result.Summary.TotalMinutes))

	if len(result.Kinds) == 0 {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, k := range result.Kinds {
		_, _ = fmt.Fprintf(deps.Stdout, "%-8s %10s  (%d %s)\n",
			k.Kind.Label(), cli.FormatYen(k.TotalSalary), k.ShiftCount, cli.Pluralize("shift", k.ShiftCount))
	}
}

// ShowWall shows the annual total against the earnings ceiling
func ShowWall(deps *cli.Deps, year int) {
	result, err := deps.Services.Reports.Wall(context.Background(), year)
	if err != nil {
		deps.Fail("Failed to build annual total", err, "")
		return
	}

	w := result.Wall
	_, _ = fmt.Fprintf(deps.Stdout, "Annual earnings for %d:\n", result.Year)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "%s %.1f%%\n", cli.ProgressBar(w.Fraction, 30), w.Percent)
	_, _ = fmt.Fprintf(deps.Stdout, "Total:     %s\n", cli.FormatYen(w.Total))
	_, _ = fmt.Fprintf(deps.Stdout, "Ceiling:   %s\n", cli.FormatYen(w.Ceiling))
	_, _ = fmt.Fprintf(deps.Stdout, "Remaining: %s\n", cli.FormatYen(w.Remaining))

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for i, total := range result.Months {
		if total == 0 {
			continue
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s %10s\n", time.Month(i+1).String()[:3], cli.FormatYen(total))
	}

	if w.Warning {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		if w.Remaining < 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "Warning: the annual ceiling has been exceeded")
		} else {
			_, _ = fmt.Fprintln(deps.Stdout, "Warning: approaching the annual ceiling")
		}
	}
}

// ShowUpcoming lists the next shifts that have not ended yet
func ShowUpcoming(deps *cli.Deps, days, limit int) {
	shifts, err := deps.Services.Reports.Upcoming(context.Background(), days, limit)
	if err != nil {
		deps.Fail("Failed to load shifts", err, "")
		return
	}

	if len(shifts) == 0 {
		if days > 0 {
			_, _ = fmt.Fprintf(deps.Stdout, "No upcoming shifts in the next %d %s\n", days, cli.Pluralize("day", days))
			return
		}
		_, _ = fmt.Fprintln(deps.Stdout, "No upcoming shifts")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Upcoming shifts:")
	for _, s := range shifts {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", upcoming.Line(s))
	}
}
