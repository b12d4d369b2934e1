package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvBackend      = "SHIFTBOOK_BACKEND"
	EnvDataDir      = "SHIFTBOOK_DATA_DIR"
	EnvDatabasePath = "SHIFTBOOK_DATABASE_PATH"
	EnvFeedPath     = "SHIFTBOOK_FEED_PATH"
	EnvTimezone     = "SHIFTBOOK_TIMEZONE"
	EnvCeiling      = "SHIFTBOOK_ANNUAL_CEILING"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped and variables that are already set
// win over the file.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv overrides cfg with any SHIFTBOOK_* variables found by lookup,
// then re-validates it.
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvBackend); ok && v != "" {
		cfg.Backend = v
	}
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := lookup(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(EnvFeedPath); ok && v != "" {
		cfg.FeedPath = v
	}
	if v, ok := lookup(EnvTimezone); ok && v != "" {
		cfg.Timezone = v
	}
	if v, ok := lookup(EnvCeiling); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.New(EnvCeiling + " must be an integer")
		}
		cfg.AnnualCeiling = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
