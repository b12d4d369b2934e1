// Package export writes shifts as CSV, JSON or XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/xolan/shiftbook/internal/shift"
)

// Headers are the column names shared by the CSV and XLSX exports
var Headers = []string{"date", "start_time", "end_time", "title", "kind", "salary", "hourly_rate", "location", "description"}

// Row renders one shift as export cells
func Row(s shift.Shift) []string {
	rate := ""
	if s.HourlyRate > 0 {
		rate = strconv.Itoa(s.HourlyRate)
	}
	return []string{
		s.Date,
		s.StartTime,
		s.EndTime,
		s.Title,
		string(s.Kind),
		strconv.Itoa(s.Salary),
		rate,
		s.LocationLabel,
		s.Description,
	}
}

// WriteCSV writes a header row followed by one row per shift
func WriteCSV(w io.Writer, shifts []shift.Shift) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Headers); err != nil {
		return err
	}
	for _, s := range shifts {
		if err := writer.Write(Row(s)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Metadata describes a JSON export
type Metadata struct {
	ExportTimestamp time.Time         `json:"export_timestamp"`
	TotalShifts     int               `json:"total_shifts"`
	TotalSalary     int               `json:"total_salary"`
	FilterCriteria  map[string]string `json:"filter_criteria"`
}

// Document is the top-level JSON export object
type Document struct {
	Metadata Metadata      `json:"metadata"`
	Shifts   []shift.Shift `json:"shifts"`
}

// NewDocument builds the export document for shifts
func NewDocument(shifts []shift.Shift, criteria map[string]string, now time.Time) Document {
	if shifts == nil {
		shifts = []shift.Shift{}
	}
	if criteria == nil {
		criteria = map[string]string{}
	}

	total := 0
	for _, s := range shifts {
		total += s.Salary
	}

	return Document{
		Metadata: Metadata{
			ExportTimestamp: now,
			TotalShifts:     len(shifts),
			TotalSalary:     total,
			FilterCriteria:  criteria,
		},
		Shifts: shifts,
	}
}

// WriteJSON encodes doc with two-space indentation
func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
