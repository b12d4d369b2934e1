package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xolan/shiftbook/internal/config"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/stats"
	"github.com/xolan/shiftbook/internal/timeutil"
	"github.com/xolan/shiftbook/internal/upcoming"
)

// ReportService provides totals over the combined shifts
type ReportService struct {
	shifts *ShiftService
	config config.Config
}

// NewReportService creates a new ReportService
func NewReportService(shifts *ShiftService, cfg config.Config) *ReportService {
	return &ReportService{
		shifts: shifts,
		config: cfg,
	}
}

func plain(list []IndexedShift) []shift.Shift {
	out := make([]shift.Shift, len(list))
	for i, is := range list {
		out[i] = is.Shift
	}
	return out
}

// Range summarizes the shifts within [start, end]
func (s *ReportService) Range(ctx context.Context, start, end string) (*RangeResult, error) {
	list, err := s.shifts.Range(ctx, start, end)
	if err != nil {
		return nil, err
	}

	shifts := plain(list.Shifts)
	return &RangeResult{
		Summary: stats.Summarize(shifts, start, end),
		Kinds:   stats.KindBreakdown(shifts, start, end),
		Period:  list.Period,
		Start:   start,
		End:     end,
	}, nil
}

// Month summarizes one calendar month
func (s *ReportService) Month(ctx context.Context, year int, month time.Month) (*RangeResult, error) {
	first, last := timeutil.MonthBounds(year, month)
	result, err := s.Range(ctx, first, last)
	if err != nil {
		return nil, err
	}
	result.Period = fmt.Sprintf("%d-%02d", year, int(month))
	return result, nil
}

// Wall measures the annual total of year against the configured ceiling
func (s *ReportService) Wall(ctx context.Context, year int) (*WallResult, error) {
	first, last := timeutil.YearBounds(year)
	list, err := s.shifts.Range(ctx, first, last)
	if err != nil {
		return nil, err
	}

	shifts := plain(list.Shifts)
	total := stats.AnnualTotal(shifts, year)
	return &WallResult{
		Year:   year,
		Wall:   stats.Progress(total, s.config.AnnualCeiling, s.config.WarningThreshold),
		Months: stats.MonthlyBreakdown(shifts, year),
	}, nil
}

// Upcoming returns the next limit shifts within days days that have not
// ended yet. Zero or less for either means no bound.
func (s *ReportService) Upcoming(ctx context.Context, days, limit int) ([]shift.Shift, error) {
	now := s.shifts.Now()
	_, last := timeutil.YearBounds(now.Year() + 1)
	if days > 0 {
		last = timeutil.FormatDateKey(now.AddDate(0, 0, days))
	}
	list, err := s.shifts.Range(ctx, timeutil.FormatDateKey(now), last)
	if err != nil {
		return nil, err
	}
	return upcoming.Upcoming(plain(list.Shifts), now, days, limit), nil
}
