package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/recurring"
	"github.com/xolan/shiftbook/internal/remote"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for shiftbook")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:               %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:                  %s\n", orDefault(cfg.Theme))
	_, _ = fmt.Fprintf(deps.Stdout, "backend:                %s\n", cfg.Backend)
	_, _ = fmt.Fprintf(deps.Stdout, "data_dir:               %s\n", orDefault(cfg.DataDir))
	_, _ = fmt.Fprintf(deps.Stdout, "database_path:          %s\n", orDefault(cfg.DatabasePath))
	_, _ = fmt.Fprintf(deps.Stdout, "feed_path:              %s\n", orDefault(cfg.FeedPath))
	_, _ = fmt.Fprintf(deps.Stdout, "annual_ceiling:         %s\n", cli.FormatYen(cfg.AnnualCeiling))
	_, _ = fmt.Fprintf(deps.Stdout, "warning_threshold:      %g\n", cfg.WarningThreshold)
	_, _ = fmt.Fprintf(deps.Stdout, "reset_clears_overrides: %t\n", cfg.ResetClearsOverrides)
	_, _ = fmt.Fprintf(deps.Stdout, "recurring:              %t (%s-%s, %s)\n", cfg.Recurring.Enabled, cfg.Recurring.StartTime, cfg.Recurring.EndTime, recurringRates(cfg.Recurring))
	_, _ = fmt.Fprintf(deps.Stdout, "rates:                  morning %d / day %d / night %d / weekend +%d\n",
		cfg.Rates.MorningRate, cfg.Rates.DayRate, cfg.Rates.NightRate, cfg.Rates.WeekendSurcharge)

	status, err := deps.Services.SchemaStatus()
	switch {
	case err != nil:
		_, _ = fmt.Fprintf(deps.Stdout, "schema:                 unknown (%v)\n", err)
	case status != nil:
		_, _ = fmt.Fprintf(deps.Stdout, "schema:                 %s\n", schemaLine(status))
	}

	if !deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'shiftbook config init' to create a commented config file.")
	}
}

func schemaLine(status *remote.MigrationStatus) string {
	switch {
	case status.Dirty:
		return fmt.Sprintf("v%d (dirty, a migration failed)", status.CurrentVersion)
	case status.Pending:
		return fmt.Sprintf("v%d of v%d (migrations pending)", status.CurrentVersion, status.LatestVersion)
	}
	return fmt.Sprintf("v%d (up to date)", status.CurrentVersion)
}

func orDefault(value string) string {
	if value == "" {
		return "(default)"
	}
	return value
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}

// SetConfig changes one setting and saves the config file
func SetConfig(deps *cli.Deps, key, value string) {
	if err := deps.Services.Config.Set(key, value); err != nil {
		deps.Fail(fmt.Sprintf("Failed to set %s", key), err, "Run 'shiftbook config' to see the available keys")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Set %s = %s\n", key, value)
}

func recurringRates(sched recurring.Schedule) string {
	day := func(rate int) string {
		if rate == 0 {
			return "tiered"
		}
		return cli.FormatYen(rate) + "/h"
	}
	return fmt.Sprintf("Sat %s, Sun %s", day(sched.SaturdayRate), day(sched.SundayRate))
}
