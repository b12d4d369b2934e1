package recurring

import (
	"testing"
	"time"

	"github.com/xolan/shiftbook/internal/normalize"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/timeutil"
	"github.com/xolan/shiftbook/internal/wage"
)

func TestRetailWeekends_June2026(t *testing.T) {
	shifts := RetailWeekends(2026, time.June, DefaultSchedule(), wage.DefaultRates())

	// June 2026: Saturdays 6, 13, 20, 27 and Sundays 7, 14, 21, 28
	if len(shifts) != 8 {
		t.Fatalf("RetailWeekends() returned %d shifts, expected 8", len(shifts))
	}
	if shifts[0].Date != "2026-06-06" || shifts[7].Date != "2026-06-28" {
		t.Errorf("first/last dates = %s/%s, expected 2026-06-06/2026-06-28", shifts[0].Date, shifts[7].Date)
	}

	for _, s := range shifts {
		if !timeutil.IsWeekendDate(s.Date) {
			t.Errorf("shift on %s is not on a weekend", s.Date)
		}
		if s.Kind != shift.KindRetail || s.Title != normalize.RetailTitle {
			t.Errorf("shift %+v is not a retail shift", s)
		}
		if s.StartTime != "09:00" || s.EndTime != "13:00" {
			t.Errorf("shift times = %s-%s, expected 09:00-13:00", s.StartTime, s.EndTime)
		}
		// 4h at 1240 on Saturday, 4h at 1290 on Sunday
		expected := 5160
		if d, _ := timeutil.ParseDateKey(s.Date); d.Weekday() == time.Saturday {
			expected = 4960
		}
		if s.Salary != expected {
			t.Errorf("salary on %s = %d, expected %d", s.Date, s.Salary, expected)
		}
	}
	if shifts[0].Salary != 4960 || shifts[1].Salary != 5160 {
		t.Errorf("first weekend salaries = %d/%d, expected 4960/5160", shifts[0].Salary, shifts[1].Salary)
	}
}

func TestSchedule_Salary(t *testing.T) {
	sat := time.Date(2026, time.June, 6, 0, 0, 0, 0, time.UTC)
	sun := sat.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		sched    Schedule
		day      time.Time
		expected int
	}{
		{"saturday default", DefaultSchedule(), sat, 4960},
		{"sunday default", DefaultSchedule(), sun, 5160},
		{"custom rate", Schedule{StartTime: "09:00", EndTime: "11:30", SaturdayRate: 1200}, sat, 3000},
		// 09:00-13:00 on a weekend: 240 min at 1290
		{"zero rate uses tiered scale", Schedule{StartTime: "09:00", EndTime: "13:00"}, sat, 5160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sched.Salary(tt.day, wage.DefaultRates()); got != tt.expected {
				t.Errorf("Salary() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestRetailWeekends_Disabled(t *testing.T) {
	sched := DefaultSchedule()
	sched.Enabled = false
	if got := RetailWeekends(2026, time.June, sched, wage.DefaultRates()); got != nil {
		t.Errorf("RetailWeekends() with disabled schedule = %v, expected nil", got)
	}
}

func TestRetailWeekends_CustomTimes(t *testing.T) {
	sched := Schedule{Enabled: true, StartTime: "08:00", EndTime: "10:00"}
	// No day rates: priced on the tiered scale
	shifts := RetailWeekends(2026, time.February, sched, wage.DefaultRates())

	if len(shifts) != 8 {
		t.Fatalf("RetailWeekends() returned %d shifts, expected 8", len(shifts))
	}
	// 60 min at 1380 + 60 min at 1290
	if shifts[0].Salary != 2670 {
		t.Errorf("salary = %d, expected 2670", shifts[0].Salary)
	}
}

func TestRetailWeekendsBetween(t *testing.T) {
	shifts := RetailWeekendsBetween("2026-05-30", "2026-06-07", DefaultSchedule(), wage.DefaultRates())

	expected := []string{"2026-05-30", "2026-05-31", "2026-06-06", "2026-06-07"}
	if len(shifts) != len(expected) {
		t.Fatalf("RetailWeekendsBetween() returned %d shifts, expected %d", len(shifts), len(expected))
	}
	for i, date := range expected {
		if shifts[i].Date != date {
			t.Errorf("shifts[%d].Date = %s, expected %s", i, shifts[i].Date, date)
		}
	}

	if got := RetailWeekendsBetween("2026-06-07", "2026-05-30", DefaultSchedule(), wage.DefaultRates()); got != nil {
		t.Errorf("inverted range returned %v, expected nil", got)
	}
}

func TestSchedule_Validate(t *testing.T) {
	if err := DefaultSchedule().Validate(); err != nil {
		t.Errorf("DefaultSchedule().Validate() unexpected error: %v", err)
	}
	if err := (Schedule{StartTime: "13:00", EndTime: "09:00"}).Validate(); err == nil {
		t.Error("Validate() expected error for inverted schedule")
	}
	if err := (Schedule{StartTime: "9am", EndTime: "13:00"}).Validate(); err == nil {
		t.Error("Validate() expected error for malformed start_time")
	}
	if err := (Schedule{StartTime: "09:00", EndTime: "13:00", SundayRate: -1}).Validate(); err == nil {
		t.Error("Validate() expected error for a negative day rate")
	}
}
