package timeutil

import "time"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns the first day of the month at 00:00:00 in the same timezone
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of the last day of the month (23:59:59.999999999)
func EndOfMonth(t time.Time) time.Time {
	// First day of next month minus one nanosecond handles 28-31 day months
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last date keys of a month
func MonthBounds(year int, month time.Month) (first, last string) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return FormatDateKey(start), FormatDateKey(EndOfMonth(start))
}

// YearBounds returns the first and last date keys of a year
func YearBounds(year int) (first, last string) {
	return FormatDateKey(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)),
		FormatDateKey(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
}

// InKeyRange reports whether key lies in [start, end] inclusive.
// Zero-padded ISO date keys sort lexicographically in calendar order.
func InKeyRange(key, start, end string) bool {
	return key >= start && key <= end
}

// MonthPrefix returns the "YYYY-MM-" prefix shared by every date key of a month
func MonthPrefix(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(MonthLayout) + "-"
}

// ValidDateRange reports whether start and end are well-formed date keys
// with start not after end
func ValidDateRange(start, end string) bool {
	if _, err := ParseDateKey(start); err != nil {
		return false
	}
	if _, err := ParseDateKey(end); err != nil {
		return false
	}
	return start <= end
}
