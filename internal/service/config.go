package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xolan/shiftbook/internal/config"
)

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update validates cfg, writes it to the config file and keeps it in memory
func (s *ConfigService) Update(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.Save(s.configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg
	return nil
}

// Set changes one top-level setting by its TOML key and saves the result
func (s *ConfigService) Set(key, value string) error {
	cfg := s.config
	switch strings.ToLower(key) {
	case "timezone":
		cfg.Timezone = value
	case "theme":
		cfg.Theme = value
	case "backend":
		cfg.Backend = value
	case "data_dir":
		cfg.DataDir = value
	case "database_path":
		cfg.DatabasePath = value
	case "feed_path":
		cfg.FeedPath = value
	case "annual_ceiling":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("annual_ceiling must be a whole number of yen: %w", err)
		}
		cfg.AnnualCeiling = n
	case "warning_threshold":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("warning_threshold must be a number: %w", err)
		}
		cfg.WarningThreshold = f
	case "reset_clears_overrides":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("reset_clears_overrides must be true or false: %w", err)
		}
		cfg.ResetClearsOverrides = b
	case "recurring.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("recurring.enabled must be true or false: %w", err)
		}
		cfg.Recurring.Enabled = b
	case "recurring.start_time":
		cfg.Recurring.StartTime = value
	case "recurring.end_time":
		cfg.Recurring.EndTime = value
	case "recurring.saturday_rate", "recurring.sunday_rate":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a whole number of yen: %w", key, err)
		}
		if strings.HasSuffix(strings.ToLower(key), "saturday_rate") {
			cfg.Recurring.SaturdayRate = n
		} else {
			cfg.Recurring.SundayRate = n
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return s.Update(cfg)
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	return nil
}
