package timeutil

import (
	"fmt"
	"time"
)

// ParseDateRangeFlags parses date range flags and returns inclusive start/end date keys.
// If lastDays > 0, it takes precedence over from/to and ends today.
// A missing --from defaults to the first day of the month of --to;
// a missing --to defaults to today.
func ParseDateRangeFlags(fromStr, toStr string, lastDays int, now time.Time) (start, end string, err error) {
	if lastDays > 0 && (fromStr != "" || toStr != "") {
		return "", "", fmt.Errorf("cannot use --last with --from or --to")
	}

	if lastDays > 0 {
		return FormatDateKey(now.AddDate(0, 0, -(lastDays - 1))), FormatDateKey(now), nil
	}

	end = FormatDateKey(now)
	if toStr != "" {
		end, err = ParseDate(toStr)
		if err != nil {
			return "", "", fmt.Errorf("invalid --to date: %w", err)
		}
	}

	if fromStr != "" {
		start, err = ParseDate(fromStr)
		if err != nil {
			return "", "", fmt.Errorf("invalid --from date: %w", err)
		}
	} else {
		start = end[:len("2006-01")] + "-01"
	}

	if start > end {
		return "", "", fmt.Errorf("--from date (%s) is after --to date (%s)", start, end)
	}

	return start, end, nil
}
