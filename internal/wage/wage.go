package wage

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/xolan/shiftbook/internal/timeutil"
)

var perDiemPattern = regexp.MustCompile(`日給[：:]\s*([0-9,]+)円`)

// Overlap returns the minutes shared by [start, end) and [bandStart, bandEnd), never negative
func Overlap(start, end, bandStart, bandEnd int) int {
	o := min(end, bandEnd) - max(start, bandStart)
	if o < 0 {
		return 0
	}
	return o
}

// TieredMinutes computes the tiered wage for a [start, end) interval given in
// minutes since midnight. The yen-minutes of every band are summed exactly and
// the total is truncated once.
func (r RateTable) TieredMinutes(weekend bool, start, end int) int {
	if end <= start {
		return 0
	}
	total := 0
	for _, b := range r.Bands(weekend) {
		total += Overlap(start, end, b.Start, b.End) * b.Rate
	}
	return total / 60
}

// Tiered computes the retail wage for a shift on the given date key.
// Malformed times yield 0.
func (r RateTable) Tiered(date, startTime, endTime string) int {
	start, err := timeutil.ParseClock(startTime)
	if err != nil {
		return 0
	}
	end, err := timeutil.ParseClock(endTime)
	if err != nil {
		return 0
	}
	return r.TieredMinutes(timeutil.IsWeekendDate(date), start, end)
}

// Breakdown returns the minutes of [start, end) falling in each band, keyed by band name
func (r RateTable) Breakdown(start, end int) map[string]int {
	out := make(map[string]int, 3)
	for _, b := range r.Bands(false) {
		if o := Overlap(start, end, b.Start, b.End); o > 0 {
			out[b.Name] = o
		}
	}
	return out
}

// Hourly computes floor(rate * minutes / 60) for a flat hourly job.
// Zero-length or inverted intervals and malformed times yield 0.
func Hourly(rate int, startTime, endTime string) int {
	start, err := timeutil.ParseClock(startTime)
	if err != nil {
		return 0
	}
	end, err := timeutil.ParseClock(endTime)
	if err != nil {
		return 0
	}
	return HourlyMinutes(rate, end-start)
}

// HourlyMinutes computes floor(rate * minutes / 60); non-positive durations yield 0
func HourlyMinutes(rate, minutes int) int {
	if minutes <= 0 || rate <= 0 {
		return 0
	}
	return rate * minutes / 60
}

// PerDiem extracts the daily wage from a description such as "日給：4,000円".
// Returns 0 when no amount is found.
func PerDiem(description string) int {
	m := perDiemPattern.FindStringSubmatch(description)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0
	}
	return n
}
