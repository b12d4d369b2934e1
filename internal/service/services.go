package service

import (
	"database/sql"
	"os"
	"time"

	"github.com/xolan/shiftbook/internal/config"
	"github.com/xolan/shiftbook/internal/remote"
	"github.com/xolan/shiftbook/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Shifts    *ShiftService
	Reports   *ReportService
	Locations *LocationService
	Config    *ConfigService

	db *sql.DB
}

// NewServices creates a new Services instance from the user's config file,
// an optional .env file and the process environment
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	cfg, err = config.ApplyEnv(cfg, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return NewServicesFromConfig(configPath, cfg)
}

// NewServicesFromConfig opens the stores cfg points at
func NewServicesFromConfig(configPath string, cfg config.Config) (*Services, error) {
	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewLocalStore(dataDir)
	if err != nil {
		return nil, err
	}

	feedPath, err := cfg.ResolveFeedPath()
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	var table remote.ShiftTable
	if cfg.Backend == config.BackendSQLite {
		dbPath, err := cfg.ResolveDatabasePath()
		if err != nil {
			return nil, err
		}
		db, err = remote.OpenAndMigrate(dbPath)
		if err != nil {
			return nil, err
		}
		table = remote.NewSQLiteTable(db)
	}

	s := NewServicesWith(store, table, feedPath, configPath, cfg, time.Now)
	s.db = db
	return s, nil
}

// NewServicesWith wires the services over the given stores (useful for testing)
func NewServicesWith(store storage.Store, table remote.ShiftTable, feedPath, configPath string, cfg config.Config, now func() time.Time) *Services {
	shiftService := NewShiftService(store, table, feedPath, cfg, now)
	reportService := NewReportService(shiftService, cfg)
	locationService := NewLocationService(shiftService, store)
	configService := NewConfigService(configPath, cfg)

	return &Services{
		Shifts:    shiftService,
		Reports:   reportService,
		Locations: locationService,
		Config:    configService,
	}
}

// SchemaStatus reports the migration state of the SQLite table store.
// It returns nil without error when no database is open.
func (s *Services) SchemaStatus() (*remote.MigrationStatus, error) {
	if s.db == nil {
		return nil, nil
	}
	return remote.GetMigrationStatus(s.db)
}

// Close releases the database handle, if one was opened
func (s *Services) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
