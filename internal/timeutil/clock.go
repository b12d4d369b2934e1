package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the exclusive upper bound of a minute-of-day value
const MinutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" wall-clock string into minutes since midnight.
// Hours 0-23 and minutes 0-59 are accepted; "24:00" is accepted as the end of day.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q (use HH:MM, e.g., 09:30)", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q (use HH:MM, e.g., 09:30)", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q (use HH:MM, e.g., 09:30)", s)
	}
	if h == 24 && m == 0 {
		return MinutesPerDay, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range (00:00-23:59)", s)
	}
	return h*60 + m, nil
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Callers are expected to validate with ParseClock first; malformed input yields 0.
func TimeToMinutes(s string) int {
	m, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return m
}

// FormatClock renders minutes since midnight as "HH:MM"
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockOf returns the "HH:MM" wall-clock time of t
func ClockOf(t time.Time) string {
	return t.Format("15:04")
}

// IsWeekend reports whether t falls on a Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekendDate reports whether the YYYY-MM-DD date key is a Saturday or Sunday.
// Malformed keys are not weekends.
func IsWeekendDate(key string) bool {
	t, err := ParseDateKey(key)
	if err != nil {
		return false
	}
	return IsWeekend(t)
}
