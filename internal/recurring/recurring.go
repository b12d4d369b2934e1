// Package recurring generates the fixed weekend retail shifts of a month.
package recurring

import (
	"fmt"
	"time"

	"github.com/xolan/shiftbook/internal/normalize"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/timeutil"
	"github.com/xolan/shiftbook/internal/wage"
)

// Default weekend schedule
const (
	DefaultStartTime    = "09:00"
	DefaultEndTime      = "13:00"
	DefaultSaturdayRate = 1240
	DefaultSundayRate   = 1290
)

// Schedule configures the recurring weekend retail shift.
// A zero day rate prices that day on the tiered retail scale instead.
type Schedule struct {
	Enabled      bool   `toml:"enabled"`
	StartTime    string `toml:"start_time"`
	EndTime      string `toml:"end_time"`
	SaturdayRate int    `toml:"saturday_rate"`
	SundayRate   int    `toml:"sunday_rate"`
}

// DefaultSchedule returns the enabled Saturday and Sunday 09:00-13:00
// schedule paid 1240 and 1290 yen per hour.
func DefaultSchedule() Schedule {
	return Schedule{
		Enabled:      true,
		StartTime:    DefaultStartTime,
		EndTime:      DefaultEndTime,
		SaturdayRate: DefaultSaturdayRate,
		SundayRate:   DefaultSundayRate,
	}
}

// Salary prices one generated shift on date
func (s Schedule) Salary(d time.Time, rates wage.RateTable) int {
	rate := s.SundayRate
	if d.Weekday() == time.Saturday {
		rate = s.SaturdayRate
	}
	date := timeutil.FormatDateKey(d)
	if rate == 0 {
		return rates.Tiered(date, s.StartTime, s.EndTime)
	}
	return wage.Hourly(rate, s.StartTime, s.EndTime)
}

// Validate checks that both times parse and the range is not inverted
func (s Schedule) Validate() error {
	start, err := timeutil.ParseClock(s.StartTime)
	if err != nil {
		return fmt.Errorf("recurring start_time: %w", err)
	}
	end, err := timeutil.ParseClock(s.EndTime)
	if err != nil {
		return fmt.Errorf("recurring end_time: %w", err)
	}
	if end <= start {
		return fmt.Errorf("recurring end_time (%s) must be after start_time (%s)", s.EndTime, s.StartTime)
	}
	if s.SaturdayRate < 0 || s.SundayRate < 0 {
		return fmt.Errorf("recurring day rates must not be negative")
	}
	return nil
}

// RetailWeekends returns one retail shift for every Saturday and Sunday of
// the month. A disabled schedule yields nil.
func RetailWeekends(year int, month time.Month, sched Schedule, rates wage.RateTable) []shift.Shift {
	if !sched.Enabled {
		return nil
	}

	days := timeutil.DaysInMonth(year, month)
	shifts := make([]shift.Shift, 0, 10)
	for day := 1; day <= days; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if !timeutil.IsWeekend(d) {
			continue
		}
		date := timeutil.FormatDateKey(d)
		shifts = append(shifts, shift.Shift{
			Date:      date,
			Title:     normalize.RetailTitle,
			Salary:    sched.Salary(d, rates),
			Kind:      shift.KindRetail,
			StartTime: sched.StartTime,
			EndTime:   sched.EndTime,
		})
	}
	return shifts
}

// RetailWeekendsBetween generates the weekend shifts of every month touched
// by the inclusive date-key range. Shifts outside the range are dropped.
func RetailWeekendsBetween(start, end string, sched Schedule, rates wage.RateTable) []shift.Shift {
	from, err := timeutil.ParseDateKey(start)
	if err != nil {
		return nil
	}
	to, err := timeutil.ParseDateKey(end)
	if err != nil || to.Before(from) {
		return nil
	}

	var shifts []shift.Shift
	for m := timeutil.StartOfMonth(from); !m.After(to); m = m.AddDate(0, 1, 0) {
		for _, s := range RetailWeekends(m.Year(), m.Month(), sched, rates) {
			if timeutil.InKeyRange(s.Date, start, end) {
				shifts = append(shifts, s)
			}
		}
	}
	return shifts
}
