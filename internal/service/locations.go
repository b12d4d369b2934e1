package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/stats"
	"github.com/xolan/shiftbook/internal/storage"
	"github.com/xolan/shiftbook/internal/timeutil"
)

// LocationService keeps the discovered work locations in step with the
// combined shifts
type LocationService struct {
	shifts *ShiftService
	store  storage.Store
}

// NewLocationService creates a new LocationService
func NewLocationService(shifts *ShiftService, store storage.Store) *LocationService {
	return &LocationService{
		shifts: shifts,
		store:  store,
	}
}

// Sync recomputes the location stats from the shifts dated up to today and
// saves them when they changed
func (s *LocationService) Sync(ctx context.Context) ([]shift.LocationStat, bool, error) {
	prev, err := s.store.LoadLocations()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read locations: %w", err)
	}

	all, _, err := s.shifts.All(ctx)
	if err != nil {
		return nil, false, err
	}

	next, changed := stats.RecomputeLocationStats(prev, visited(all, timeutil.FormatDateKey(s.shifts.Now())))
	if !changed {
		return prev, false, nil
	}
	if err := s.store.SaveLocations(next); err != nil {
		return nil, false, fmt.Errorf("failed to save locations: %w", err)
	}
	return next, true, nil
}

// visited keeps the shifts dated on or before today
func visited(list []IndexedShift, today string) []shift.Shift {
	out := make([]shift.Shift, 0, len(list))
	for _, is := range list {
		if is.Shift.Date <= today {
			out = append(out, is.Shift)
		}
	}
	return out
}

// List returns the synced location stats, most visited first
func (s *LocationService) List(ctx context.Context) ([]shift.LocationStat, error) {
	list, _, err := s.Sync(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]shift.LocationStat, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted, nil
}
