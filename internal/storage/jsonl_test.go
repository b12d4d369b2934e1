package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/shiftbook/internal/shift"
)

// Helper to create a temporary test file
func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test_shifts.jsonl")
	if content != "" {
		if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}
	}
	return tmpFile
}

func readShifts(path string) ([]shift.Shift, error) {
	result, err := ReadShiftsWithWarnings(path)
	return result.Shifts, err
}

func sampleShifts() []shift.Shift {
	return []shift.Shift{
		{Date: "2026-06-03", Title: "南会館", Salary: 8000, Kind: shift.KindTutor, StartTime: "10:00", EndTime: "16:00"},
		{Date: "2026-06-04", Title: "イベント設営", Salary: 3000, Kind: shift.KindOther, StartTime: "09:00", EndTime: "12:00", HourlyRate: 1000},
		{Date: "2026-06-06", Title: "まいばす", Salary: 5160, Kind: shift.KindRetail, StartTime: "09:00", EndTime: "13:00"},
	}
}

func TestReadShifts_Missing(t *testing.T) {
	shifts, err := readShifts(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("ReadShiftsWithWarnings() unexpected error: %v", err)
	}
	if len(shifts) != 0 {
		t.Errorf("ReadShiftsWithWarnings() returned %d shifts, expected 0", len(shifts))
	}
}

func TestReadShiftsWithWarnings(t *testing.T) {
	content := `{"date":"2026-06-03","title":"A","salary":100,"kind":"tutor"}
not json at all

{"date":"2026-06-04","title":"B","salary":200,"kind":"bogus"}
{"date":"2026-06-05","title":"C","salary":300,"kind":"other","hourlyRate":1000}
`
	path := createTempFile(t, content)

	result, err := ReadShiftsWithWarnings(path)
	if err != nil {
		t.Fatalf("ReadShiftsWithWarnings() unexpected error: %v", err)
	}
	if len(result.Shifts) != 2 {
		t.Errorf("parsed %d shifts, expected 2", len(result.Shifts))
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("got %d warnings, expected 2", len(result.Warnings))
	}
	if result.Warnings[0].LineNumber != 2 || result.Warnings[0].Content != "not json at all" {
		t.Errorf("warnings[0] = %+v, expected line 2", result.Warnings[0])
	}
	if result.Warnings[1].LineNumber != 4 || !strings.Contains(result.Warnings[1].Error, "bogus") {
		t.Errorf("warnings[1] = %+v, expected unknown kind on line 4", result.Warnings[1])
	}
}

func TestWriteShifts_Overwrites(t *testing.T) {
	path := createTempFile(t, "garbage\n")

	if err := WriteShifts(path, sampleShifts()[:1]); err != nil {
		t.Fatalf("WriteShifts() unexpected error: %v", err)
	}

	result, err := ReadShiftsWithWarnings(path)
	if err != nil {
		t.Fatalf("ReadShiftsWithWarnings() unexpected error: %v", err)
	}
	if len(result.Shifts) != 1 || len(result.Warnings) != 0 {
		t.Errorf("after overwrite got %d shifts and %d warnings, expected 1 and 0", len(result.Shifts), len(result.Warnings))
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file was left behind")
	}
}

func TestWriteShifts_EmptySlice(t *testing.T) {
	path := createTempFile(t, "")
	if err := WriteShifts(path, nil); err != nil {
		t.Fatalf("WriteShifts() unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("file content = %q, expected empty", data)
	}
}

func TestReadShifts_UnicodeContent(t *testing.T) {
	path := createTempFile(t, "")
	s := shift.Shift{Date: "2026-06-03", Title: "R7年度_中央ふれあい館（川口市）", Description: "日給：8,000円", Salary: 8000, Kind: shift.KindTutor}
	if err := WriteShifts(path, []shift.Shift{s}); err != nil {
		t.Fatalf("WriteShifts() unexpected error: %v", err)
	}
	shifts, _ := readShifts(path)
	if len(shifts) != 1 || shifts[0] != s {
		t.Errorf("ReadShiftsWithWarnings() = %+v, expected %+v", shifts, s)
	}
}
