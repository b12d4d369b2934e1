package config

import (
	"os"
	"path/filepath"
	"testing"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg, err := ApplyEnv(DefaultConfig(), lookupFrom(map[string]string{
		EnvBackend:      "sqlite",
		EnvDataDir:      "/env/data",
		EnvDatabasePath: "/env/db.sqlite",
		EnvFeedPath:     "/env/jobs.json",
		EnvTimezone:     "Asia/Tokyo",
		EnvCeiling:      "1600000",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() unexpected error: %v", err)
	}

	if cfg.Backend != BackendSQLite || cfg.DataDir != "/env/data" || cfg.DatabasePath != "/env/db.sqlite" {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}
	if cfg.FeedPath != "/env/jobs.json" || cfg.Timezone != "Asia/Tokyo" || cfg.AnnualCeiling != 1600000 {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	cfg, err := ApplyEnv(DefaultConfig(), lookupFrom(map[string]string{EnvBackend: ""}))
	if err != nil {
		t.Fatalf("ApplyEnv() unexpected error: %v", err)
	}
	if cfg.Backend != BackendLocal {
		t.Errorf("Backend = %q, expected %q", cfg.Backend, BackendLocal)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	if _, err := ApplyEnv(DefaultConfig(), lookupFrom(map[string]string{EnvBackend: "mysql"})); err == nil {
		t.Error("ApplyEnv() expected error for invalid backend")
	}
	if _, err := ApplyEnv(DefaultConfig(), lookupFrom(map[string]string{EnvCeiling: "a lot"})); err == nil {
		t.Error("ApplyEnv() expected error for non-numeric ceiling")
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "SHIFTBOOK_TEST_DOTENV"
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv() unexpected error: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("%s = %q, expected from-file", key, got)
	}
}

func TestLoadDotEnv_ExistingEnvWins(t *testing.T) {
	const key = "SHIFTBOOK_TEST_DOTENV_SET"
	t.Setenv(key, "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() unexpected error: %v", err)
	}
	if got := os.Getenv(key); got != "from-env" {
		t.Errorf("%s = %q, expected from-env", key, got)
	}
}
