package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/xolan/shiftbook/internal/app"
	"github.com/xolan/shiftbook/internal/osutil"
	"github.com/xolan/shiftbook/internal/recurring"
	"github.com/xolan/shiftbook/internal/stats"
	"github.com/xolan/shiftbook/internal/wage"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DatabaseFile is the default SQLite file name inside the data directory
	DatabaseFile = "shiftbook.db"
	// FeedFile is the default scraper output file name inside the data directory
	FeedFile = "jobs.json"
)

// Storage backends
const (
	BackendLocal  = "local"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration
type Config struct {
	// Timezone is the IANA zone used to read scraper instants and to decide "today"
	Timezone string `toml:"timezone"`
	// Theme is a bubbletint theme ID for the TUI
	Theme string `toml:"theme"`
	// Backend selects where hand-entered shifts live: "local" or "sqlite"
	Backend string `toml:"backend"`
	// DataDir holds the ledger blobs and the local shift file; empty means the config directory
	DataDir string `toml:"data_dir"`
	// DatabasePath is the SQLite file; empty means <data_dir>/shiftbook.db
	DatabasePath string `toml:"database_path"`
	// FeedPath is the scraper's JSON output; empty means <data_dir>/jobs.json
	FeedPath string `toml:"feed_path"`
	// AnnualCeiling is the yearly earnings limit in yen
	AnnualCeiling int `toml:"annual_ceiling"`
	// WarningThreshold is the fraction of the ceiling above which the wall warns
	WarningThreshold float64 `toml:"warning_threshold"`
	// ResetClearsOverrides makes "restore --all" drop salary overrides too
	ResetClearsOverrides bool `toml:"reset_clears_overrides"`

	Rates     wage.RateTable     `toml:"rates"`
	Recurring recurring.Schedule `toml:"recurring"`
}

// DefaultConfig returns a Config with the defaults used when no file exists
func DefaultConfig() Config {
	return Config{
		Timezone:         "Local",
		Theme:            "",
		Backend:          BackendLocal,
		AnnualCeiling:    stats.DefaultCeiling,
		WarningThreshold: stats.DefaultWarningThreshold,
		Rates:            wage.DefaultRates(),
		Recurring:        recurring.DefaultSchedule(),
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := osutil.AppDir(app.Name)
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads the config file at path. Keys missing from the file keep their
// default values. The result is normalized and validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, returning defaults when it doesn't exist.
// Any other read or parse error is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Normalize trims and lower-cases enumerated values in place
func (c *Config) Normalize() {
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	c.Theme = strings.TrimSpace(c.Theme)
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = BackendLocal
	}
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.DatabasePath = strings.TrimSpace(c.DatabasePath)
	c.FeedPath = strings.TrimSpace(c.FeedPath)
}

// Validate normalizes the config in place and checks every value
func (c *Config) Validate() error {
	c.Normalize()

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.Backend != BackendLocal && c.Backend != BackendSQLite {
		return fmt.Errorf("invalid backend %q: must be %q or %q", c.Backend, BackendLocal, BackendSQLite)
	}
	if c.AnnualCeiling <= 0 {
		return fmt.Errorf("annual_ceiling must be positive, got %d", c.AnnualCeiling)
	}
	if c.WarningThreshold <= 0 || c.WarningThreshold > 1 {
		return fmt.Errorf("warning_threshold must be in (0, 1], got %g", c.WarningThreshold)
	}
	if err := c.Rates.Validate(); err != nil {
		return fmt.Errorf("invalid rates: %w", err)
	}
	if err := c.Recurring.Validate(); err != nil {
		return err
	}
	return nil
}

// Location returns the configured time zone, falling back to time.Local
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ResolveDataDir returns DataDir or, when unset, the config directory
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return expandHome(c.DataDir), nil
	}
	return osutil.AppDir(app.Name)
}

// ResolveDatabasePath returns DatabasePath or the default file in the data directory
func (c Config) ResolveDatabasePath() (string, error) {
	if c.DatabasePath != "" {
		return expandHome(c.DatabasePath), nil
	}
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DatabaseFile), nil
}

// ResolveFeedPath returns FeedPath or the default file in the data directory
func (c Config) ResolveFeedPath() (string, error) {
	if c.FeedPath != "" {
		return expandHome(c.FeedPath), nil
	}
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FeedFile), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Save writes cfg to path as TOML
func Save(path string, cfg Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return file.Close()
}
