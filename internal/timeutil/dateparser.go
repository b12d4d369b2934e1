package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the layout of a date key (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// MonthLayout is the layout of a month key (YYYY-MM)
const MonthLayout = "2006-01"

// FormatDateKey renders t as a YYYY-MM-DD date key in t's own location
func FormatDateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a strict YYYY-MM-DD key as a calendar date at UTC midnight
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateLayout, key)
}

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format and
// returns the canonical YYYY-MM-DD date key.
// For ambiguous dates (like 05/06/2024), ISO format (YYYY-MM-DD) is preferred.
func ParseDate(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2026-01-15 or 15/01/2026)")
	}

	if t, err := time.ParseInLocation(DateLayout, input, time.Local); err == nil {
		return FormatDateKey(t), nil
	}

	if t, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		return FormatDateKey(t), nil
	}

	return "", buildDateParseError(input)
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	isoPartialRe := regexp.MustCompile(`^\d{4}-\d{1,2}$`)          // YYYY-MM (missing day)
	yearOnlyRe := regexp.MustCompile(`^\d{4}$`)                    // YYYY (year only)
	isoPartialDayRe := regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)     // MM-DD or DD-MM (missing year)
	euroPartialRe := regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)       // DD/MM (missing year)
	tooManyPartsRe := regexp.MustCompile(`^\d+[-/]\d+[-/]\d+[-/]`) // Too many separators

	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2026-%s)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2026)", input, input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2026-01-15 or 15/01/2026)", input)
	}
}

// ParseMonth parses a YYYY-MM month key
func ParseMonth(input string) (year int, month time.Month, err error) {
	t, err := time.Parse(MonthLayout, input)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month '%s' (use YYYY-MM, e.g., 2026-06)", input)
	}
	return t.Year(), t.Month(), nil
}
