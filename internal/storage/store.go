package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xolan/shiftbook/internal/ledger"
	"github.com/xolan/shiftbook/internal/shift"
)

// Store persists the host state as whole collections. Every Save replaces
// the previous collection.
type Store interface {
	LoadManual() (ReadResult, error)
	SaveManual(shifts []shift.Shift) error
	LoadLedger() (ledger.Ledger, error)
	SaveLedger(l ledger.Ledger) error
	LoadLocations() ([]shift.LocationStat, error)
	SaveLocations(stats []shift.LocationStat) error
}

// LocalStore keeps every collection as a file in one directory
type LocalStore struct {
	Dir string
}

// NewLocalStore returns a store rooted at dir, creating it if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &LocalStore{Dir: dir}, nil
}

// Path returns the full path of a file in the store directory
func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// ShiftsPath returns the path of the manual shifts file
func (s *LocalStore) ShiftsPath() string {
	return s.Path(ShiftsFile)
}

// LoadManual reads the locally authored shifts
func (s *LocalStore) LoadManual() (ReadResult, error) {
	return ReadShiftsWithWarnings(s.ShiftsPath())
}

// SaveManual backs up and replaces the locally authored shifts
func (s *LocalStore) SaveManual(shifts []shift.Shift) error {
	if err := CreateBackup(s.ShiftsPath()); err != nil {
		return fmt.Errorf("failed to back up shifts: %w", err)
	}
	return WriteShifts(s.ShiftsPath(), shifts)
}

// LoadLedger reads the three ledger blobs. Missing blobs are empty.
func (s *LocalStore) LoadLedger() (ledger.Ledger, error) {
	l := ledger.New()

	if _, err := ReadJSON(s.Path(ExcludedDatesFile), &l.ExcludedDates); err != nil {
		return ledger.Ledger{}, err
	}
	if _, err := ReadJSON(s.Path(ExcludedIdentitiesFile), &l.ExcludedIdentities); err != nil {
		return ledger.Ledger{}, err
	}
	if _, err := ReadJSON(s.Path(OverridesFile), &l.Overrides); err != nil {
		return ledger.Ledger{}, err
	}

	if l.ExcludedDates == nil {
		l.ExcludedDates = []string{}
	}
	if l.ExcludedIdentities == nil {
		l.ExcludedIdentities = []string{}
	}
	if l.Overrides == nil {
		l.Overrides = map[string]int{}
	}
	return l, nil
}

// SaveLedger writes the three ledger blobs
func (s *LocalStore) SaveLedger(l ledger.Ledger) error {
	if err := WriteJSON(s.Path(ExcludedDatesFile), nonNil(l.ExcludedDates)); err != nil {
		return fmt.Errorf("failed to save excluded dates: %w", err)
	}
	if err := WriteJSON(s.Path(ExcludedIdentitiesFile), nonNil(l.ExcludedIdentities)); err != nil {
		return fmt.Errorf("failed to save excluded shifts: %w", err)
	}
	overrides := l.Overrides
	if overrides == nil {
		overrides = map[string]int{}
	}
	if err := WriteJSON(s.Path(OverridesFile), overrides); err != nil {
		return fmt.Errorf("failed to save salary overrides: %w", err)
	}
	return nil
}

// LoadLocations reads the discovered location stats
func (s *LocalStore) LoadLocations() ([]shift.LocationStat, error) {
	stats := []shift.LocationStat{}
	if _, err := ReadJSON(s.Path(LocationsFile), &stats); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []shift.LocationStat{}
	}
	return stats, nil
}

// SaveLocations writes the discovered location stats
func (s *LocalStore) SaveLocations(stats []shift.LocationStat) error {
	if stats == nil {
		stats = []shift.LocationStat{}
	}
	if err := WriteJSON(s.Path(LocationsFile), stats); err != nil {
		return fmt.Errorf("failed to save locations: %w", err)
	}
	return nil
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
