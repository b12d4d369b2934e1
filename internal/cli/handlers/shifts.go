package handlers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/normalize"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/timeutil"
	"github.com/xolan/shiftbook/internal/wage"
)

// ListMonth lists the combined shifts of a calendar month
func ListMonth(deps *cli.Deps, year int, month time.Month) {
	result, err := deps.Services.Shifts.Month(context.Background(), year, month)
	if err != nil {
		deps.Fail("Failed to load shifts", err, "")
		return
	}
	printShiftList(deps, result)
}

// ListRange lists the combined shifts within [start, end]
func ListRange(deps *cli.Deps, start, end string) {
	result, err := deps.Services.Shifts.Range(context.Background(), start, end)
	if err != nil {
		deps.Fail("Failed to load shifts", err, "")
		return
	}
	printShiftList(deps, result)
}

func printWarnings(deps *cli.Deps, result *service.ListResult) {
	if len(result.Warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d corrupted line(s) in storage file:\n", len(result.Warnings))
	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(warning))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}

func printShiftList(deps *cli.Deps, result *service.ListResult) {
	printWarnings(deps, result)

	if len(result.Shifts) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No shifts found for %s\n", result.Period)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Shifts for %s:\n", result.Period)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	lastDate := ""
	for _, is := range result.Shifts {
		if is.Shift.Date != lastDate {
			_, _ = fmt.Fprintln(deps.Stdout, cli.FormatDayHeader(is.Shift.Date))
			lastDate = is.Shift.Date
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", cli.FormatShift(is))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s (%d %s)\n",
		cli.FormatYen(result.Total), len(result.Shifts), cli.Pluralize("shift", len(result.Shifts)))
}

// AddShift validates, prices and stores a hand-entered shift
func AddShift(deps *cli.Deps, req shift.CreateRequest) {
	ctx := context.Background()
	added, err := deps.Services.Shifts.Add(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, normalize.ErrInvalidRate):
			deps.Fail("Hourly rate is required for other jobs", nil, "Pass --rate, e.g. --rate 1200")
		case errors.Is(err, normalize.ErrInvalidTime), errors.Is(err, normalize.ErrInvertedRange):
			deps.Fail("Invalid shift times", err, "Use 24-hour HH:MM with the end after the start, e.g. --start 09:00 --end 13:00")
		case errors.Is(err, normalize.ErrInvalidKind):
			deps.Fail("Invalid shift kind", err, "Valid kinds: tutor, retail, other")
		default:
			deps.Fail("Failed to add shift", err, "")
		}
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added: %s %s  %s (%s)\n",
		added.Date, cli.FormatTimes(added), added.Title, cli.FormatYen(added.Salary))
	if added.Kind == shift.KindRetail {
		if bands := bandSummary(deps.Config.Rates, added); bands != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "  Bands: %s\n", bands)
		}
	}
	syncLocations(ctx, deps)
}

// bandSummary lists the minutes a retail shift spends in each pay band
func bandSummary(rates wage.RateTable, s shift.Shift) string {
	start, err := timeutil.ParseClock(s.StartTime)
	if err != nil {
		return ""
	}
	end, err := timeutil.ParseClock(s.EndTime)
	if err != nil {
		return ""
	}

	minutes := rates.Breakdown(start, end)
	var parts []string
	for _, b := range rates.Bands(false) {
		if m := minutes[b.Name]; m > 0 {
			parts = append(parts, b.Name+" "+cli.FormatDuration(m))
		}
	}
	return strings.Join(parts, ", ")
}

// DeleteShift deletes a shift with optional confirmation
func DeleteShift(deps *cli.Deps, ref service.ShiftRef, skipConfirm bool) {
	ctx := context.Background()

	if !skipConfirm {
		_, _ = fmt.Fprintf(deps.Stdout, "Shift to delete: %s #%d\n", ref.Date, max(ref.Index, 1))
		if !promptConfirmation(deps.Stdout, deps.Stdin) {
			_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	result, err := deps.Services.Shifts.Delete(ctx, ref)
	if err != nil {
		failShiftRef(deps, "Failed to delete shift", err)
		return
	}

	s := result.Shift
	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s %s  %s (%s)\n", s.Date, cli.FormatTimes(s), s.Title, cli.FormatYen(s.Salary))
	if result.Excluded {
		_, _ = fmt.Fprintf(deps.Stdout, "Tip: Use 'shiftbook restore --date %s' to bring it back\n", s.Date)
	}
	syncLocations(ctx, deps)
}

// EditShift changes the salary or times of a shift
func EditShift(deps *cli.Deps, ref service.ShiftRef, req service.EditRequest) {
	ctx := context.Background()

	result, err := deps.Services.Shifts.Edit(ctx, ref, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoChanges):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag (--salary, --start or --end) is required")
			_, _ = fmt.Fprintln(deps.Stderr, "Usage:")
			_, _ = fmt.Fprintln(deps.Stderr, "  shiftbook edit <date> [n] --salary 6000")
			_, _ = fmt.Fprintln(deps.Stderr, "  shiftbook edit <date> [n] --start 10:00 --end 14:00")
			deps.Exit(1)
		case errors.Is(err, service.ErrTimesNotEditable):
			deps.Fail("Imported shifts keep their times", nil, "Use --salary to correct the amount instead")
		default:
			failShiftRef(deps, "Failed to edit shift", err)
		}
		return
	}

	s := result.Shift
	verb := "Updated"
	if result.Overridden {
		verb = "Overridden"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "%s: %s %s  %s (%s)\n", verb, s.Date, cli.FormatTimes(s), s.Title, cli.FormatYen(s.Salary))
	syncLocations(ctx, deps)
}

func failShiftRef(deps *cli.Deps, message string, err error) {
	switch {
	case errors.Is(err, service.ErrAmbiguousShift):
		deps.Fail(message, err, "List the date with 'shiftbook range --from <date> --to <date>' and pass the shift number")
	case errors.Is(err, service.ErrShiftNotFound):
		deps.Fail(message, err, "List shifts with 'shiftbook' to see dates and numbers")
	default:
		deps.Fail(message, err, "")
	}
}

// syncLocations refreshes the location collection after a change. A failure
// is reported as a warning since the change itself was saved.
func syncLocations(ctx context.Context, deps *cli.Deps) {
	if _, _, err := deps.Services.Locations.Sync(ctx); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Failed to update locations: %v\n", err)
	}
}

// promptConfirmation asks the user to confirm deletion
func promptConfirmation(stdout io.Writer, stdin io.Reader) bool {
	_, _ = fmt.Fprint(stdout, "Delete this shift? [y/N]: ")

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
