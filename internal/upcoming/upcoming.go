// Package upcoming selects the next shifts to show in the home-screen view.
package upcoming

import (
	"fmt"
	"sort"
	"time"

	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/timeutil"
)

const (
	// DefaultLimit is the number of shifts shown when no limit is given
	DefaultLimit = 5
	// DefaultDays is how many days ahead of today are looked at
	DefaultDays = 7
)

// Upcoming returns at most limit shifts that have not finished yet: any
// shift dated within the next days days, or dated today and ending after
// now. Shifts with malformed dates or times are skipped. The result is
// ordered by date then start time. A non-positive days looks arbitrarily far
// ahead and a non-positive limit returns every match.
func Upcoming(shifts []shift.Shift, now time.Time, days, limit int) []shift.Shift {
	today := timeutil.FormatDateKey(now)
	horizon := ""
	if days > 0 {
		horizon = timeutil.FormatDateKey(now.AddDate(0, 0, days))
	}
	nowMinutes := now.Hour()*60 + now.Minute()

	result := make([]shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		if _, err := timeutil.ParseDateKey(s.Date); err != nil {
			continue
		}
		switch {
		case s.Date > today:
			if horizon != "" && s.Date > horizon {
				continue
			}
			if s.StartTime != "" {
				if _, err := timeutil.ParseClock(s.StartTime); err != nil {
					continue
				}
			}
			result = append(result, s)
		case s.Date == today:
			end, err := timeutil.ParseClock(s.EndTime)
			if err != nil {
				continue
			}
			if end > nowMinutes {
				result = append(result, s)
			}
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return timeutil.TimeToMinutes(result[i].StartTime) < timeutil.TimeToMinutes(result[j].StartTime)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

var weekdaysJP = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatDateJP renders a date key as "M/D(曜)", e.g. "6/6(土)".
// Malformed keys are returned unchanged.
func FormatDateJP(key string) string {
	t, err := timeutil.ParseDateKey(key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%d/%d(%s)", int(t.Month()), t.Day(), weekdaysJP[t.Weekday()])
}

// Line renders one shift the way the upcoming view lists it
func Line(s shift.Shift) string {
	line := FormatDateJP(s.Date)
	if s.StartTime != "" {
		line += " " + s.StartTime
	}
	line += " : " + s.Title
	if s.LocationLabel != "" {
		line += " @" + s.LocationLabel
	}
	return line
}
