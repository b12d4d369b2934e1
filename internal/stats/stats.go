package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/timeutil"
)

// DefaultCeiling is the annual earnings ceiling in yen
const DefaultCeiling = 1030000

// DefaultWarningThreshold is the fraction of the ceiling above which the wall is shown as a warning
const DefaultWarningThreshold = 0.9

// Summary contains aggregated totals for a set of shifts
type Summary struct {
	TotalSalary   int
	ShiftCount    int
	DaysWithShift int
	TotalMinutes  int
}

// KindTotal contains totals for a single shift kind
type KindTotal struct {
	Kind        shift.Kind
	TotalSalary int
	ShiftCount  int
}

// RangeTotal sums the salary of shifts dated within [start, end] inclusive.
// Date keys are compared as strings, which matches calendar order for YYYY-MM-DD.
func RangeTotal(shifts []shift.Shift, start, end string) int {
	total := 0
	for _, s := range shifts {
		if timeutil.InKeyRange(s.Date, start, end) {
			total += s.Salary
		}
	}
	return total
}

// MonthlyTotal sums the salary of shifts in the given year and month
func MonthlyTotal(shifts []shift.Shift, year int, month time.Month) int {
	prefix := timeutil.MonthPrefix(year, month)
	total := 0
	for _, s := range shifts {
		if strings.HasPrefix(s.Date, prefix) {
			total += s.Salary
		}
	}
	return total
}

// AnnualTotal sums the salary of shifts in the given calendar year
func AnnualTotal(shifts []shift.Shift, year int) int {
	first, last := timeutil.YearBounds(year)
	return RangeTotal(shifts, first, last)
}

// MonthlyBreakdown returns the twelve monthly totals of a year, January first
func MonthlyBreakdown(shifts []shift.Shift, year int) [12]int {
	var months [12]int
	for m := time.January; m <= time.December; m++ {
		months[m-1] = MonthlyTotal(shifts, year, m)
	}
	return months
}

// Summarize computes totals for shifts within [start, end] inclusive
func Summarize(shifts []shift.Shift, start, end string) Summary {
	summary := Summary{}
	days := make(map[string]bool)

	for _, s := range shifts {
		if !timeutil.InKeyRange(s.Date, start, end) {
			continue
		}
		summary.TotalSalary += s.Salary
		summary.ShiftCount++
		days[s.Date] = true

		if from, err := timeutil.ParseClock(s.StartTime); err == nil {
			if to, err := timeutil.ParseClock(s.EndTime); err == nil && to > from {
				summary.TotalMinutes += to - from
			}
		}
	}

	summary.DaysWithShift = len(days)
	return summary
}

// KindBreakdown groups shifts by kind and returns the totals sorted by salary
func KindBreakdown(shifts []shift.Shift, start, end string) []KindTotal {
	kindMap := make(map[shift.Kind]*KindTotal)

	for _, s := range shifts {
		if !timeutil.InKeyRange(s.Date, start, end) {
			continue
		}
		if _, exists := kindMap[s.Kind]; !exists {
			kindMap[s.Kind] = &KindTotal{Kind: s.Kind}
		}
		kindMap[s.Kind].TotalSalary += s.Salary
		kindMap[s.Kind].ShiftCount++
	}

	breakdowns := make([]KindTotal, 0, len(kindMap))
	for _, b := range kindMap {
		breakdowns = append(breakdowns, *b)
	}

	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].TotalSalary != breakdowns[j].TotalSalary {
			return breakdowns[i].TotalSalary > breakdowns[j].TotalSalary
		}
		return breakdowns[i].Kind < breakdowns[j].Kind
	})

	return breakdowns
}
