package handlers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/storage"
)

func TestAddShift(t *testing.T) {
	s := setupTestDeps(t)

	AddShift(s.deps, cafeRequest("2026-06-10"))

	if *s.exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *s.exitCode)
	}
	assertContains(t, s.stdout.String(), "Added: 2026-06-10 10:00-12:00  Cafe (¥2,400)")
}

func TestAddShift_RetailBands(t *testing.T) {
	s := setupTestDeps(t)

	AddShift(s.deps, shift.CreateRequest{Date: "2026-06-06", Kind: shift.KindRetail, StartTime: "08:30", EndTime: "10:30"})

	if *s.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", *s.exitCode, s.stderr.String())
	}
	out := s.stdout.String()
	assertContains(t, out, "Added: 2026-06-06 08:30-10:30  まいばす (¥2,625)")
	assertContains(t, out, "Bands: morning 30m, day 1h 30m")
}

func TestAddShift_Errors(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		start    string
		end      string
		rate     int
		wantText string
	}{
		{"missing rate", "Cafe", "10:00", "12:00", 0, "Hourly rate is required"},
		{"inverted times", "Cafe", "12:00", "10:00", 1200, "Invalid shift times"},
		{"empty title", "", "10:00", "12:00", 1200, "Failed to add shift"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestDeps(t)
			req := cafeRequest("2026-06-10")
			req.Title = tt.title
			req.StartTime = tt.start
			req.EndTime = tt.end
			req.HourlyRate = tt.rate

			AddShift(s.deps, req)

			if *s.exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *s.exitCode)
			}
			assertContains(t, s.stderr.String(), tt.wantText)
		})
	}
}

func TestListMonth(t *testing.T) {
	s := setupTestDeps(t)
	s.writeFeed(t)
	AddShift(s.deps, cafeRequest("2026-06-05"))
	s.reset()

	ListMonth(s.deps, 2026, 6)

	out := s.stdout.String()
	assertContains(t, out, "Shifts for 2026-06:")
	assertContains(t, out, "2026-06-05  6/5(金)")
	assertContains(t, out, "[1] 10:00-12:00  Cafe <Other> ¥2,400 (manual)")
	assertContains(t, out, "[2] 14:00-18:00  新宿校 <Tutor> ¥8,000 (feed)")
	assertContains(t, out, "Total: ¥15,560 (3 shifts)")
	if strings.Count(out, "2026-06-05  ") != 1 {
		t.Errorf("expected one day header for 2026-06-05, got %q", out)
	}
}

func TestListMonth_Empty(t *testing.T) {
	s := setupTestDeps(t)

	ListMonth(s.deps, 2026, 7)

	if *s.exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *s.exitCode)
	}
	assertContains(t, s.stdout.String(), "No shifts found for 2026-07")
}

func TestListRange(t *testing.T) {
	s := setupTestDeps(t)
	s.writeFeed(t)

	ListRange(s.deps, "2026-06-06", "2026-06-06")
	assertContains(t, s.stdout.String(), "Shifts for 2026-06-06 to 2026-06-06:")
	assertContains(t, s.stdout.String(), "Total: ¥5,160 (1 shift)")

	s.reset()
	ListRange(s.deps, "2026-06-30", "2026-06-01")
	if *s.exitCode != 1 {
		t.Errorf("expected exit code 1 for an inverted range, got %d", *s.exitCode)
	}
}

func TestListMonth_CorruptedLines(t *testing.T) {
	s := setupTestDeps(t)
	AddShift(s.deps, cafeRequest("2026-06-10"))
	s.reset()

	path := filepath.Join(s.dir, "data", storage.ShiftsFile)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("failed to open shift file: %v", err)
	}
	if _, err := file.WriteString("{not json\n"); err != nil {
		t.Fatalf("failed to append line: %v", err)
	}
	_ = file.Close()

	ListMonth(s.deps, 2026, 6)

	assertContains(t, s.stderr.String(), "Warning: Found 1 corrupted line(s)")
	assertContains(t, s.stdout.String(), "Cafe")
}

func TestDeleteShift_Confirmation(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDeleted bool
	}{
		{"declined", "n\n", false},
		{"empty answer", "", false},
		{"accepted", "y\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestDeps(t)
			AddShift(s.deps, cafeRequest("2026-06-10"))
			s.reset()
			s.deps.Stdin = strings.NewReader(tt.input)

			DeleteShift(s.deps, service.ShiftRef{Date: "2026-06-10"}, false)

			out := s.stdout.String()
			if tt.wantDeleted {
				assertContains(t, out, "Deleted: 2026-06-10 10:00-12:00  Cafe (¥2,400)")
			} else {
				assertContains(t, out, "Deletion cancelled")
			}
		})
	}
}

func TestDeleteShift_Generated(t *testing.T) {
	s := setupTestDeps(t)
	s.writeFeed(t)

	DeleteShift(s.deps, service.ShiftRef{Date: "2026-06-06"}, true)

	if *s.exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *s.exitCode)
	}
	assertContains(t, s.stdout.String(), "restore --date 2026-06-06")
}

func TestDeleteShift_Errors(t *testing.T) {
	s := setupTestDeps(t)
	s.writeFeed(t)
	AddShift(s.deps, cafeRequest("2026-06-05"))

	tests := []struct {
		name     string
		ref      service.ShiftRef
		wantHint string
	}{
		{"missing", service.ShiftRef{Date: "2026-06-09"}, "Hint: List shifts with 'shiftbook'"},
		{"ambiguous", service.ShiftRef{Date: "2026-06-05"}, "pass the shift number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.reset()
			DeleteShift(s.deps, tt.ref, true)

			if *s.exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *s.exitCode)
			}
			assertContains(t, s.stderr.String(), tt.wantHint)
		})
	}
}

func TestEditShift(t *testing.T) {
	s := setupTestDeps(t)
	s.writeFeed(t)
	AddShift(s.deps, cafeRequest("2026-06-10"))
	salary := 9000

	s.reset()
	EditShift(s.deps, service.ShiftRef{Date: "2026-06-05"}, service.EditRequest{Salary: &salary})
	assertContains(t, s.stdout.String(), "Overridden: 2026-06-05 14:00-18:00  新宿校 (¥9,000)")

	s.reset()
	EditShift(s.deps, service.ShiftRef{Date: "2026-06-10"}, service.EditRequest{EndTime: "13:00"})
	assertContains(t, s.stdout.String(), "Updated: 2026-06-10 10:00-13:00  Cafe (¥3,600)")

	s.reset()
	EditShift(s.deps, service.ShiftRef{Date: "2026-06-05"}, service.EditRequest{StartTime: "15:00"})
	if *s.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *s.exitCode)
	}
	assertContains(t, s.stderr.String(), "Imported shifts keep their times")

	s.reset()
	EditShift(s.deps, service.ShiftRef{Date: "2026-06-10"}, service.EditRequest{})
	if *s.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *s.exitCode)
	}
	assertContains(t, s.stderr.String(), "At least one flag")
}
