package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xolan/shiftbook/internal/shift"
)

// ShiftsFile is the name of the JSON Lines file of locally authored shifts
const ShiftsFile = "shifts.jsonl"

// ParseWarning represents a warning about a corrupted or malformed line
type ParseWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the corrupted line
	Error      string // Description of the parsing error
}

// ReadResult contains the shifts read from storage together with warnings
// about any corrupted or malformed lines.
type ReadResult struct {
	Shifts   []shift.Shift
	Warnings []ParseWarning
}

// ReadShiftsWithWarnings reads all shifts from the JSON Lines file and
// returns both the parsed shifts and warnings about corrupted lines.
// A missing file yields an empty result.
func ReadShiftsWithWarnings(path string) (ReadResult, error) {
	result := ReadResult{
		Shifts:   []shift.Shift{},
		Warnings: []ParseWarning{},
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		lineContent := scanner.Text()
		if lineContent == "" {
			continue
		}

		var s shift.Shift
		if err := json.Unmarshal([]byte(lineContent), &s); err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: lineNumber,
				Content:    lineContent,
				Error:      err.Error(),
			})
			continue
		}
		if !s.Kind.Valid() {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: lineNumber,
				Content:    lineContent,
				Error:      fmt.Sprintf("unknown shift kind %q", s.Kind),
			})
			continue
		}
		result.Shifts = append(result.Shifts, s)
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// WriteShifts replaces the JSON Lines file with the given shifts.
// Writes to a temporary file first and renames it over the original.
func WriteShifts(path string, shifts []shift.Shift) error {
	tmpFile := path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	for _, s := range shifts {
		line, err := json.Marshal(s)
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
		if _, err := file.WriteString(string(line) + "\n"); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}
