package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/config"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/storage"
)

// testNow is Wednesday 2026-06-03 10:00 UTC
var testNow = time.Date(2026, 6, 3, 10, 0, 0, 0, time.UTC)

const sampleFeed = `[
  {"details": "勤務地：新宿校 / 日給：8,000円", "startDate": "2026-06-05T14:00:00Z", "endDate": "2026-06-05T18:00:00Z", "type": "tutor"},
  {"details": "まいばすけっと", "startDate": "2026-06-06T09:00:00Z", "endDate": "2026-06-06T13:00:00Z", "type": "retail", "salary": 5160}
]`

type testSetup struct {
	deps     *cli.Deps
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exitCode *int
	dir      string
	feedPath string
}

func setupTestDeps(t *testing.T) *testSetup {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.Recurring.Enabled = false
	cfg.AnnualCeiling = 20000

	store, err := storage.NewLocalStore(filepath.Join(tmpDir, "data"))
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}
	feedPath := filepath.Join(tmpDir, "jobs.json")
	services := service.NewServicesWith(store, nil, feedPath, filepath.Join(tmpDir, "config.toml"), cfg,
		func() time.Time { return testNow })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
		Config:   cfg,
	}

	return &testSetup{
		deps:     deps,
		stdout:   stdout,
		stderr:   stderr,
		exitCode: &exitCode,
		dir:      tmpDir,
		feedPath: feedPath,
	}
}

func (s *testSetup) writeFeed(t *testing.T) {
	t.Helper()
	if err := os.WriteFile(s.feedPath, []byte(sampleFeed), 0644); err != nil {
		t.Fatalf("failed to write feed: %v", err)
	}
}

func (s *testSetup) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	*s.exitCode = 0
}

func cafeRequest(date string) shift.CreateRequest {
	return shift.CreateRequest{
		Date:       date,
		Title:      "Cafe",
		Kind:       shift.KindOther,
		StartTime:  "10:00",
		EndTime:    "12:00",
		HourlyRate: 1200,
	}
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("expected %q in output, got %q", want, output)
	}
}
