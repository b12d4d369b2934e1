package handlers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/storage"
)

// ShowExclusions lists the hidden dates and shifts, the salary overrides and
// the available backups
func ShowExclusions(deps *cli.Deps) {
	l, err := deps.Services.Shifts.Exclusions()
	if err != nil {
		deps.Fail("Failed to read exclusions", err, "")
		return
	}

	if l.IsEmpty() {
		_, _ = fmt.Fprintln(deps.Stdout, "No hidden shifts or salary overrides")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Hidden and corrected shifts:")
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		for _, date := range l.ExcludedDates {
			_, _ = fmt.Fprintf(deps.Stdout, "  date      %s\n", date)
		}
		for _, key := range l.ExcludedIdentities {
			_, _ = fmt.Fprintf(deps.Stdout, "  shift     %s\n", key)
		}
		keys := make([]string, 0, len(l.Overrides))
		for key := range l.Overrides {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			_, _ = fmt.Fprintf(deps.Stdout, "  override  %s = %s\n", key, cli.FormatYen(l.Overrides[key]))
		}
	}

	backups, err := deps.Services.Shifts.Backups()
	if err != nil {
		if errors.Is(err, service.ErrNoBackups) {
			return
		}
		deps.Fail("Failed to list backups", err, "")
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout)
	printBackups(deps, backups)
}

func printBackups(deps *cli.Deps, backups []storage.BackupInfo) {
	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
}

// RestoreDate brings back the generated shifts hidden on a date
func RestoreDate(deps *cli.Deps, date string) {
	removed, err := deps.Services.Shifts.RestoreDate(date)
	if err != nil {
		deps.Fail("Failed to restore date", err, "")
		return
	}

	if removed == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Nothing hidden on %s\n", date)
		return
	}
	noun := "entries"
	if removed == 1 {
		noun = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Restored %d hidden %s on %s\n", removed, noun, date)
	syncLocations(context.Background(), deps)
}

// ResetAll clears every exclusion
func ResetAll(deps *cli.Deps) {
	l, err := deps.Services.Shifts.ResetAll()
	if err != nil {
		deps.Fail("Failed to reset exclusions", err, "")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "All hidden shifts restored")
	if n := len(l.Overrides); n > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Kept %d salary %s (set reset_clears_overrides to drop them)\n", n, cli.Pluralize("override", n))
	}
	syncLocations(context.Background(), deps)
}

// RestoreBackup restores the local shift file from backup n
func RestoreBackup(deps *cli.Deps, n int) {
	backups, err := deps.Services.Shifts.Backups()
	if err != nil {
		deps.Fail("Failed to list backups", err, "")
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}
	printBackups(deps, backups)
	_, _ = fmt.Fprintln(deps.Stdout)

	if n < 1 || n > storage.MaxBackupCount {
		deps.Fail(fmt.Sprintf("Backup number must be between 1 and %d (got %d)", storage.MaxBackupCount, n), nil, "")
		return
	}

	if err := deps.Services.Shifts.RestoreBackup(n); err != nil {
		deps.Fail("Failed to restore backup", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d\n", n)
	syncLocations(context.Background(), deps)
}
