// Package wage computes shift wages: the tiered retail scale, flat hourly
// pay and per-diem amounts parsed from job descriptions.
package wage

import "fmt"

// Default retail rates in yen per hour
const (
	DefaultMorningRate      = 1330 // before 09:00
	DefaultDayRate          = 1240 // 09:00-22:00
	DefaultNightRate        = 1555 // 22:00 onward
	DefaultWeekendSurcharge = 50

	DefaultMorningEnd = 9 * 60  // 09:00
	DefaultNightStart = 22 * 60 // 22:00
)

// RateTable holds the tiered retail scale
type RateTable struct {
	MorningRate      int `toml:"morning"`
	DayRate          int `toml:"day"`
	NightRate        int `toml:"night"`
	WeekendSurcharge int `toml:"weekend_surcharge"`
	// MorningEnd and NightStart are minutes since midnight
	MorningEnd int `toml:"morning_end"`
	NightStart int `toml:"night_start"`
}

// DefaultRates returns the retail scale used when none is configured
func DefaultRates() RateTable {
	return RateTable{
		MorningRate:      DefaultMorningRate,
		DayRate:          DefaultDayRate,
		NightRate:        DefaultNightRate,
		WeekendSurcharge: DefaultWeekendSurcharge,
		MorningEnd:       DefaultMorningEnd,
		NightStart:       DefaultNightStart,
	}
}

// Validate checks that rates are non-negative and the bands are ordered
func (r RateTable) Validate() error {
	if r.MorningRate < 0 || r.DayRate < 0 || r.NightRate < 0 || r.WeekendSurcharge < 0 {
		return fmt.Errorf("rates must not be negative")
	}
	if r.MorningEnd < 0 || r.MorningEnd > r.NightStart || r.NightStart > 24*60 {
		return fmt.Errorf("invalid bands: morning_end (%d) must be <= night_start (%d) within 0-1440", r.MorningEnd, r.NightStart)
	}
	return nil
}

// Band is one time-of-day segment of the tiered scale
type Band struct {
	Name  string
	Start int // minutes since midnight, inclusive
	End   int // minutes since midnight, exclusive
	Rate  int // yen per hour including any weekend surcharge
}

// Bands returns the three bands for a weekday or weekend date
func (r RateTable) Bands(weekend bool) []Band {
	offset := 0
	if weekend {
		offset = r.WeekendSurcharge
	}
	return []Band{
		{Name: "morning", Start: 0, End: r.MorningEnd, Rate: r.MorningRate + offset},
		{Name: "day", Start: r.MorningEnd, End: r.NightStart, Rate: r.DayRate + offset},
		{Name: "night", Start: r.NightStart, End: 24 * 60, Rate: r.NightRate + offset},
	}
}
