package handlers

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportShifts_CSV(t *testing.T) {
	s := setupTestDeps(t)
	s.writeFeed(t)

	ExportShifts(s.deps, FormatCSV, "2026-06-01", "2026-06-30", "")

	if *s.exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *s.exitCode)
	}
	lines := strings.Split(strings.TrimSpace(s.stdout.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d CSV lines, expected 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "date,") {
		t.Errorf("expected header row, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2026-06-05,14:00,18:00,新宿校") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestExportShifts_JSON(t *testing.T) {
	s := setupTestDeps(t)
	s.writeFeed(t)

	ExportShifts(s.deps, FormatJSON, "2026-06-06", "2026-06-06", "")

	var doc struct {
		Metadata struct {
			TotalShifts    int               `json:"total_shifts"`
			TotalSalary    int               `json:"total_salary"`
			FilterCriteria map[string]string `json:"filter_criteria"`
		} `json:"metadata"`
		Shifts []struct {
			Date string `json:"date"`
		} `json:"shifts"`
	}
	if err := json.Unmarshal(s.stdout.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode export: %v", err)
	}
	if doc.Metadata.TotalShifts != 1 || doc.Metadata.TotalSalary != 5160 {
		t.Errorf("metadata = %+v, expected 1 shift / 5160", doc.Metadata)
	}
	if doc.Metadata.FilterCriteria["from"] != "2026-06-06" {
		t.Errorf("filter_criteria = %v, expected from 2026-06-06", doc.Metadata.FilterCriteria)
	}
}

func TestExportShifts_XLSX(t *testing.T) {
	s := setupTestDeps(t)
	s.writeFeed(t)
	output := filepath.Join(s.dir, "shifts.xlsx")

	ExportShifts(s.deps, FormatXLSX, "2026-06-01", "2026-06-30", output)

	if *s.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", *s.exitCode, s.stderr.String())
	}
	assertContains(t, s.stderr.String(), "Exported 2 shifts to "+output)

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	title, err := f.GetCellValue("Shifts", "D2")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if title != "新宿校" {
		t.Errorf("D2 = %q, expected %q", title, "新宿校")
	}
}

func TestExportShifts_Errors(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		output   string
		wantText string
	}{
		{"unknown format", "pdf", "", "Unsupported export format 'pdf'"},
		{"xlsx to stdout", FormatXLSX, "", "XLSX export needs an output file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestDeps(t)

			ExportShifts(s.deps, tt.format, "2026-06-01", "2026-06-30", tt.output)

			if *s.exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *s.exitCode)
			}
			assertContains(t, s.stderr.String(), tt.wantText)
		})
	}
}
