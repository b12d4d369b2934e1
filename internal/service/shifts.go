package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/xolan/shiftbook/internal/config"
	"github.com/xolan/shiftbook/internal/feed"
	"github.com/xolan/shiftbook/internal/ledger"
	"github.com/xolan/shiftbook/internal/normalize"
	"github.com/xolan/shiftbook/internal/recurring"
	"github.com/xolan/shiftbook/internal/remote"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/storage"
	"github.com/xolan/shiftbook/internal/timeutil"
)

// ShiftService combines every shift source and routes changes back to the
// store that owns each shift
type ShiftService struct {
	store    storage.Store
	table    remote.ShiftTable
	feedPath string
	config   config.Config
	now      func() time.Time
}

// NewShiftService creates a new ShiftService. table may be nil, in which
// case hand-entered shifts are kept in the local store.
func NewShiftService(store storage.Store, table remote.ShiftTable, feedPath string, cfg config.Config, now func() time.Time) *ShiftService {
	if now == nil {
		now = time.Now
	}
	return &ShiftService{
		store:    store,
		table:    table,
		feedPath: feedPath,
		config:   cfg,
		now:      now,
	}
}

// Now returns the current time in the configured zone
func (s *ShiftService) Now() time.Time {
	return s.now().In(s.config.Location())
}

type snapshot struct {
	shifts   []IndexedShift
	ledger   ledger.Ledger
	manual   []shift.Shift
	warnings []storage.ParseWarning
}

// load reads every source and combines them. Recurring shifts are generated
// for [recurStart, recurEnd]; the other sources are returned whole.
func (s *ShiftService) load(ctx context.Context, recurStart, recurEnd string) (*snapshot, error) {
	records, err := feed.Load(s.feedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	l, err := s.store.LoadLedger()
	if err != nil {
		return nil, fmt.Errorf("failed to read exclusions: %w", err)
	}

	snap := &snapshot{ledger: l}

	fromFeed := normalize.FromExternal(records, s.config.Location())
	seen := make(map[string]bool, len(fromFeed))
	for _, sh := range fromFeed {
		seen[sh.IdentityKey()] = true
	}

	var generated []IndexedShift
	for _, sh := range ledger.Apply(l, fromFeed) {
		generated = append(generated, IndexedShift{Shift: sh, Source: SourceFeed})
	}
	weekends := recurring.RetailWeekendsBetween(recurStart, recurEnd, s.config.Recurring, s.config.Rates)
	for _, sh := range ledger.Apply(l, weekends) {
		if seen[sh.IdentityKey()] {
			continue
		}
		generated = append(generated, IndexedShift{Shift: sh, Source: SourceRecurring})
	}
	snap.shifts = generated

	result, err := s.store.LoadManual()
	if err != nil {
		return nil, fmt.Errorf("failed to read shifts: %w", err)
	}
	snap.manual = result.Shifts
	snap.warnings = result.Warnings
	for _, sh := range result.Shifts {
		snap.shifts = append(snap.shifts, IndexedShift{Shift: sh, Source: SourceManual})
	}

	if s.table != nil {
		rows, err := s.table.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read shift table: %w", err)
		}
		for _, sh := range rows {
			snap.shifts = append(snap.shifts, IndexedShift{Shift: sh, Source: SourceTable})
		}
	}

	sortAndIndex(snap.shifts)
	return snap, nil
}

// sortAndIndex orders shifts by date then start time and numbers them
// within each date
func sortAndIndex(shifts []IndexedShift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		a, b := shifts[i].Shift, shifts[j].Shift
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return timeutil.TimeToMinutes(a.StartTime) < timeutil.TimeToMinutes(b.StartTime)
	})

	for i := range shifts {
		if i > 0 && shifts[i-1].Shift.Date == shifts[i].Shift.Date {
			shifts[i].Index = shifts[i-1].Index + 1
		} else {
			shifts[i].Index = 1
		}
	}
}

// All returns every combined shift, with recurring shifts generated for the
// current year
func (s *ShiftService) All(ctx context.Context) ([]IndexedShift, []storage.ParseWarning, error) {
	first, last := timeutil.YearBounds(s.Now().Year())
	snap, err := s.load(ctx, first, last)
	if err != nil {
		return nil, nil, err
	}
	return snap.shifts, snap.warnings, nil
}

// Range returns the combined shifts dated within [start, end]
func (s *ShiftService) Range(ctx context.Context, start, end string) (*ListResult, error) {
	if !timeutil.ValidDateRange(start, end) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidRange, start, end)
	}

	snap, err := s.load(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := &ListResult{
		Shifts:   []IndexedShift{},
		Warnings: snap.warnings,
		Period:   fmt.Sprintf("%s to %s", start, end),
		Start:    start,
		End:      end,
	}
	for _, is := range snap.shifts {
		if timeutil.InKeyRange(is.Shift.Date, start, end) {
			result.Shifts = append(result.Shifts, is)
			result.Total += is.Shift.Salary
		}
	}
	return result, nil
}

// Month returns the combined shifts of a calendar month
func (s *ShiftService) Month(ctx context.Context, year int, month time.Month) (*ListResult, error) {
	first, last := timeutil.MonthBounds(year, month)
	result, err := s.Range(ctx, first, last)
	if err != nil {
		return nil, err
	}
	result.Period = fmt.Sprintf("%d-%02d", year, int(month))
	return result, nil
}

// Add validates a creation request, prices it and stores it with the
// backend that keeps hand-entered shifts
func (s *ShiftService) Add(ctx context.Context, req shift.CreateRequest) (shift.Shift, error) {
	sh, err := normalize.FromRequest(req, s.config.Rates)
	if err != nil {
		return shift.Shift{}, err
	}

	if s.table != nil {
		id, err := s.table.Insert(ctx, sh)
		if err != nil {
			return shift.Shift{}, err
		}
		sh.SourceID = id
		return sh, nil
	}

	result, err := s.store.LoadManual()
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to read shifts: %w", err)
	}
	if err := s.store.SaveManual(append(result.Shifts, sh)); err != nil {
		return shift.Shift{}, fmt.Errorf("failed to save shift: %w", err)
	}
	return sh, nil
}

// resolve finds the shift a reference points at. A zero index is accepted
// when the date has exactly one shift.
func (s *ShiftService) resolve(ctx context.Context, ref ShiftRef) (*snapshot, IndexedShift, error) {
	date, err := timeutil.ParseDate(ref.Date)
	if err != nil {
		return nil, IndexedShift{}, err
	}

	snap, err := s.load(ctx, date, date)
	if err != nil {
		return nil, IndexedShift{}, err
	}

	var onDate []IndexedShift
	for _, is := range snap.shifts {
		if is.Shift.Date == date {
			onDate = append(onDate, is)
		}
	}

	switch {
	case len(onDate) == 0:
		return nil, IndexedShift{}, fmt.Errorf("%w on %s", ErrShiftNotFound, date)
	case ref.Index == 0 && len(onDate) == 1:
		return snap, onDate[0], nil
	case ref.Index == 0:
		return nil, IndexedShift{}, ErrAmbiguousShift
	case ref.Index < 0 || ref.Index > len(onDate):
		return nil, IndexedShift{}, fmt.Errorf("%w: %s has %d shift(s), got #%d", ErrShiftNotFound, date, len(onDate), ref.Index)
	}
	return snap, onDate[ref.Index-1], nil
}

// Delete removes a shift. Table rows are deleted by identifier, local
// hand-entered shifts are dropped from the shift file, and generated shifts
// are hidden through the exclusion ledger: retail by date, others by identity.
func (s *ShiftService) Delete(ctx context.Context, ref ShiftRef) (*ChangeResult, error) {
	snap, target, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	result := &ChangeResult{Shift: target.Shift, Source: target.Source}

	switch target.Source {
	case SourceTable:
		if err := s.table.Delete(ctx, target.Shift.SourceID); err != nil {
			return nil, mapTableError(err)
		}
	case SourceManual:
		kept := make([]shift.Shift, 0, len(snap.manual))
		for _, m := range snap.manual {
			if !m.SameIdentity(target.Shift) {
				kept = append(kept, m)
			}
		}
		if err := s.store.SaveManual(kept); err != nil {
			return nil, fmt.Errorf("failed to save shifts: %w", err)
		}
	default:
		var l ledger.Ledger
		if target.Shift.Kind == shift.KindRetail {
			l = ledger.ExcludeByDate(snap.ledger, target.Shift.Date)
		} else {
			l = ledger.ExcludeByIdentity(snap.ledger, target.Shift.IdentityKey())
		}
		if err := s.store.SaveLedger(l); err != nil {
			return nil, err
		}
		result.Excluded = true
	}
	return result, nil
}

// Edit changes a shift's salary or times. Generated shifts only accept a
// salary, which is stored as an override. Changing the times of a
// time-priced hand-entered shift re-prices it unless a salary is also given.
func (s *ShiftService) Edit(ctx context.Context, ref ShiftRef, req EditRequest) (*ChangeResult, error) {
	if req.Salary == nil && req.StartTime == "" && req.EndTime == "" {
		return nil, ErrNoChanges
	}
	if req.Salary != nil && *req.Salary < 0 {
		return nil, ErrInvalidSalary
	}

	snap, target, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	if target.Source.Generated() {
		if req.StartTime != "" || req.EndTime != "" {
			return nil, ErrTimesNotEditable
		}
		l := ledger.SetOverride(snap.ledger, target.Shift.IdentityKey(), *req.Salary)
		if err := s.store.SaveLedger(l); err != nil {
			return nil, err
		}
		updated := target.Shift
		updated.Salary = *req.Salary
		return &ChangeResult{Shift: updated, Source: target.Source, Overridden: true}, nil
	}

	updated, err := applyEdit(target.Shift, req, s.config)
	if err != nil {
		return nil, err
	}

	switch target.Source {
	case SourceTable:
		if err := s.table.Update(ctx, target.Shift.SourceID, updated); err != nil {
			return nil, mapTableError(err)
		}
	case SourceManual:
		manual := make([]shift.Shift, len(snap.manual))
		copy(manual, snap.manual)
		found := false
		for i := range manual {
			if manual[i].SameIdentity(target.Shift) {
				manual[i] = updated
				found = true
				break
			}
		}
		if !found {
			return nil, ErrShiftNotFound
		}
		if err := s.store.SaveManual(manual); err != nil {
			return nil, fmt.Errorf("failed to save shifts: %w", err)
		}
	}
	return &ChangeResult{Shift: updated, Source: target.Source}, nil
}

func applyEdit(sh shift.Shift, req EditRequest, cfg config.Config) (shift.Shift, error) {
	timesChanged := false
	if req.StartTime != "" {
		sh.StartTime = req.StartTime
		timesChanged = true
	}
	if req.EndTime != "" {
		sh.EndTime = req.EndTime
		timesChanged = true
	}

	if timesChanged {
		start, err := timeutil.ParseClock(sh.StartTime)
		if err != nil {
			return shift.Shift{}, fmt.Errorf("%w: %v", normalize.ErrInvalidTime, err)
		}
		end, err := timeutil.ParseClock(sh.EndTime)
		if err != nil {
			return shift.Shift{}, fmt.Errorf("%w: %v", normalize.ErrInvalidTime, err)
		}
		if end <= start {
			return shift.Shift{}, normalize.ErrInvertedRange
		}
		sh.StartTime = timeutil.FormatClock(start)
		sh.EndTime = timeutil.FormatClock(end)
		sh = normalize.Recompute(sh, cfg.Rates)
	}

	if req.Salary != nil {
		sh.Salary = *req.Salary
	}
	return sh, nil
}

func mapTableError(err error) error {
	if errors.Is(err, remote.ErrNotFound) {
		return ErrShiftNotFound
	}
	return err
}

// Exclusions returns the current exclusion ledger
func (s *ShiftService) Exclusions() (ledger.Ledger, error) {
	return s.store.LoadLedger()
}

// RestoreDate brings back every generated shift hidden on date, removing the
// date exclusion and all identity exclusions of that date. It reports the
// number of ledger entries removed.
func (s *ShiftService) RestoreDate(date string) (int, error) {
	key, err := timeutil.ParseDate(date)
	if err != nil {
		return 0, err
	}

	l, err := s.store.LoadLedger()
	if err != nil {
		return 0, err
	}

	before := l.Len()
	l = ledger.RestoreDate(l, key)
	for _, id := range l.ExcludedIdentities {
		if len(id) > len(key) && id[:len(key)+1] == key+"_" {
			l = ledger.RestoreIdentity(l, id)
		}
	}

	removed := before - l.Len()
	if removed == 0 {
		return 0, nil
	}
	if err := s.store.SaveLedger(l); err != nil {
		return 0, err
	}
	return removed, nil
}

// ResetAll clears every exclusion. Salary overrides survive unless the
// config asks for them to be cleared as well.
func (s *ShiftService) ResetAll() (ledger.Ledger, error) {
	l, err := s.store.LoadLedger()
	if err != nil {
		return ledger.Ledger{}, err
	}

	policy := ledger.ResetExclusions
	if s.config.ResetClearsOverrides {
		policy = ledger.ResetEverything
	}
	l = ledger.ResetAll(l, policy)

	if err := s.store.SaveLedger(l); err != nil {
		return ledger.Ledger{}, err
	}
	return l, nil
}

// Import validates a scraper output file and installs it as the feed
func (s *ShiftService) Import(path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	records, err := feed.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if err := storage.WriteFileAtomic(s.feedPath, data); err != nil {
		return nil, fmt.Errorf("failed to install feed: %w", err)
	}

	shifts := normalize.FromExternal(records, s.config.Location())
	result := &ImportResult{Records: len(records), Shifts: len(shifts)}
	for _, sh := range shifts {
		result.Total += sh.Salary
	}
	return result, nil
}

// ErrNoBackups is returned when the store keeps no shift file backups
var ErrNoBackups = errors.New("backups are only kept for the local shift file")

// Backups lists the backups of the local shift file, most recent first
func (s *ShiftService) Backups() ([]storage.BackupInfo, error) {
	local, ok := s.store.(*storage.LocalStore)
	if !ok {
		return nil, ErrNoBackups
	}
	return storage.ListBackups(local.ShiftsPath())
}

// RestoreBackup replaces the local shift file with backup n
func (s *ShiftService) RestoreBackup(n int) error {
	local, ok := s.store.(*storage.LocalStore)
	if !ok {
		return ErrNoBackups
	}
	return storage.RestoreBackup(local.ShiftsPath(), n)
}
