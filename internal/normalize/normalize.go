// Package normalize converts scraper records, creation requests and table
// rows into the canonical shift.Shift.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/timeutil"
	"github.com/xolan/shiftbook/internal/wage"
)

const (
	// RetailTitle is the fixed title of retail shifts
	RetailTitle = "まいばす"
	// TutorTitle is the fallback title of tutoring shifts without a workplace
	TutorTitle = "家庭教師"
	// ManualDescription marks shifts entered by hand
	ManualDescription = "手動追加"

	workplacePrefix  = "勤務地："
	segmentSeparator = " / "
)

// Validation errors for creation requests
var (
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrInvalidKind   = errors.New("invalid shift kind")
	ErrInvalidTime   = errors.New("invalid time")
	ErrInvertedRange = errors.New("end time must be after start time")
	ErrInvalidRate   = errors.New("hourly rate must be a positive number")
	ErrInvalidAmount = errors.New("amount must not be negative")
)

// Workplace returns the "勤務地：" segment of a scraped detail blob, or "" if absent
func Workplace(details string) string {
	for _, part := range strings.Split(details, segmentSeparator) {
		if strings.HasPrefix(part, workplacePrefix) {
			return strings.TrimSpace(strings.TrimPrefix(part, workplacePrefix))
		}
	}
	return ""
}

// FromExternal converts scraper records into shifts. Dates and wall-clock
// times are taken in loc; records with unparseable instants are skipped.
func FromExternal(records []shift.RawExternalRecord, loc *time.Location) []shift.Shift {
	if loc == nil {
		loc = time.Local
	}
	shifts := make([]shift.Shift, 0, len(records))
	for _, rec := range records {
		s, err := FromRecord(rec, loc)
		if err != nil {
			continue
		}
		shifts = append(shifts, s)
	}
	return shifts
}

// FromRecord converts one scraper record into a shift
func FromRecord(rec shift.RawExternalRecord, loc *time.Location) (shift.Shift, error) {
	start, err := parseInstant(rec.StartDate, loc)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("invalid startDate %q: %w", rec.StartDate, err)
	}
	end, err := parseInstant(rec.EndDate, loc)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("invalid endDate %q: %w", rec.EndDate, err)
	}

	kind := shift.KindTutor
	title := TutorTitle
	if rec.IsRetail() {
		kind = shift.KindRetail
		title = RetailTitle
	} else if w := Workplace(rec.Details); w != "" {
		title = w
	}

	salary := 0
	if rec.Salary != nil {
		salary = max(*rec.Salary, 0)
	} else {
		salary = wage.PerDiem(rec.Details)
	}

	return shift.Shift{
		Date:          timeutil.FormatDateKey(start),
		Title:         title,
		Description:   rec.Details,
		Salary:        salary,
		Kind:          kind,
		StartTime:     timeutil.ClockOf(start),
		EndTime:       timeutil.ClockOf(end),
		LocationLabel: rec.Location,
	}, nil
}

// parseInstant parses an ISO-8601 instant and converts it to loc.
// Instants without a zone offset are read as wall-clock times in loc.
func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, loc)
}

// FromRequest validates a locally authored shift and computes its salary
// with the calculator matching its kind. Tutoring shifts take the literal
// amount; retail shifts always carry RetailTitle.
func FromRequest(req shift.CreateRequest, rates wage.RateTable) (shift.Shift, error) {
	if !req.Kind.Valid() {
		return shift.Shift{}, fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}
	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return shift.Shift{}, err
	}
	start, err := timeutil.ParseClock(req.StartTime)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	end, err := timeutil.ParseClock(req.EndTime)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if end <= start {
		return shift.Shift{}, ErrInvertedRange
	}

	s := shift.Shift{
		Date:          date,
		Title:         strings.TrimSpace(req.Title),
		Description:   ManualDescription,
		Kind:          req.Kind,
		StartTime:     timeutil.FormatClock(start),
		EndTime:       timeutil.FormatClock(end),
		LocationLabel: strings.TrimSpace(req.Location),
	}

	switch req.Kind {
	case shift.KindRetail:
		s.Title = RetailTitle
		s.Salary = rates.TieredMinutes(timeutil.IsWeekendDate(date), start, end)
	case shift.KindOther:
		if req.HourlyRate <= 0 {
			return shift.Shift{}, ErrInvalidRate
		}
		s.HourlyRate = req.HourlyRate
		s.Salary = wage.HourlyMinutes(req.HourlyRate, end-start)
	case shift.KindTutor:
		if req.Amount < 0 {
			return shift.Shift{}, ErrInvalidAmount
		}
		s.Salary = req.Amount
	}

	if s.Title == "" {
		return shift.Shift{}, ErrEmptyTitle
	}
	return s, nil
}

// Recompute re-derives the salary of a time-priced shift after its times
// changed. Tutoring shifts keep their salary.
func Recompute(s shift.Shift, rates wage.RateTable) shift.Shift {
	switch s.Kind {
	case shift.KindRetail:
		s.Salary = rates.Tiered(s.Date, s.StartTime, s.EndTime)
	case shift.KindOther:
		s.Salary = wage.Hourly(s.HourlyRate, s.StartTime, s.EndTime)
	}
	return s
}
