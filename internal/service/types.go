// Package service provides the business logic layer for shiftbook.
// It runs the load, combine, mutate and save sequence over the stores and
// exposes one API for both the CLI and the TUI.
package service

import (
	"errors"

	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/stats"
	"github.com/xolan/shiftbook/internal/storage"
)

// Common errors for the shift services
var (
	ErrInvalidRange     = errors.New("invalid date range")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrAmbiguousShift   = errors.New("more than one shift on that date; pass its number")
	ErrInvalidSalary    = errors.New("salary must not be negative")
	ErrNoChanges        = errors.New("at least one change must be specified")
	ErrTimesNotEditable = errors.New("times of imported shifts cannot be edited; only the salary can be overridden")
)

// Source tells where a combined shift came from. It decides how a delete or
// an edit is carried out.
type Source int

const (
	// SourceFeed shifts come from the scraper feed
	SourceFeed Source = iota
	// SourceRecurring shifts are the generated weekend retail shifts
	SourceRecurring
	// SourceManual shifts are hand-entered and kept in the local shift file
	SourceManual
	// SourceTable shifts are hand-entered and kept in the SQLite table
	SourceTable
)

// String returns a short label for the source
func (s Source) String() string {
	switch s {
	case SourceFeed:
		return "feed"
	case SourceRecurring:
		return "recurring"
	case SourceManual:
		return "manual"
	case SourceTable:
		return "table"
	}
	return "unknown"
}

// Generated reports whether the shift is regenerated on every load, so that
// removing or correcting it has to go through the exclusion ledger
func (s Source) Generated() bool {
	return s == SourceFeed || s == SourceRecurring
}

// IndexedShift is a combined shift with its origin and display position
type IndexedShift struct {
	Shift  shift.Shift
	Source Source
	// Index is the 1-based position among the shifts of the same date
	Index int
}

// ListResult contains the combined shifts of a date range
type ListResult struct {
	Shifts   []IndexedShift
	Warnings []storage.ParseWarning
	Period   string // Human-readable period description
	Start    string // First date key of the range
	End      string // Last date key of the range
	Total    int    // Total salary in yen
}

// RangeResult contains totals for a date range
type RangeResult struct {
	Summary stats.Summary
	Kinds   []stats.KindTotal
	Period  string
	Start   string
	End     string
}

// WallResult contains the annual total measured against the ceiling
type WallResult struct {
	Year   int
	Wall   stats.Wall
	Months [12]int
}

// ShiftRef identifies one combined shift by date and 1-based index
type ShiftRef struct {
	Date  string
	Index int
}

// EditRequest describes changes to an existing shift. Nil or empty fields
// are left unchanged.
type EditRequest struct {
	Salary    *int
	StartTime string
	EndTime   string
}

// ImportResult reports the outcome of replacing the feed
type ImportResult struct {
	Records int
	Shifts  int
	Total   int
}

// ChangeResult reports a single delete or edit
type ChangeResult struct {
	Shift  shift.Shift
	Source Source
	// Excluded is set when the shift was hidden through the exclusion ledger
	Excluded bool
	// Overridden is set when the salary change was stored as an override
	Overridden bool
}
