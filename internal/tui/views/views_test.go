package views

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/shiftbook/internal/config"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/storage"
	"github.com/xolan/shiftbook/internal/tui/ui"
)

// testNow is Wednesday 2026-06-03 10:00 UTC
var testNow = time.Date(2026, 6, 3, 10, 0, 0, 0, time.UTC)

const sampleFeed = `[
  {"details": "勤務地：新宿校 / 日給：8,000円", "startDate": "2026-06-05T14:00:00Z", "endDate": "2026-06-05T18:00:00Z", "type": "tutor"},
  {"details": "まいばすけっと", "startDate": "2026-06-06T09:00:00Z", "endDate": "2026-06-06T13:00:00Z", "type": "retail", "salary": 5160}
]`

func setupServices(t *testing.T, withFeed bool) *service.Services {
	t.Helper()
	dir := t.TempDir()
	feedPath := filepath.Join(dir, "jobs.json")
	if withFeed {
		if err := os.WriteFile(feedPath, []byte(sampleFeed), 0644); err != nil {
			t.Fatalf("failed to write feed: %v", err)
		}
	}

	store, err := storage.NewLocalStore(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.Recurring.Enabled = false
	return service.NewServicesWith(store, nil, feedPath, filepath.Join(dir, "config.toml"), cfg,
		func() time.Time { return testNow })
}

func testStyles() ui.Styles {
	return ui.NewThemeProvider("").Styles()
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and returns its message, failing when there is none
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("expected output to contain %q, got:\n%s", want, got)
	}
}

func loadedMonth(t *testing.T, services *service.Services) MonthModel {
	t.Helper()
	m := NewMonthModel(services, testStyles(), ui.DefaultKeyMap())
	m.SetSize(100, 40)
	m, _ = m.Update(run(t, m.Init()))
	return m
}

func TestMonthModel_View(t *testing.T) {
	m := loadedMonth(t, setupServices(t, true))

	view := m.View()
	assertContains(t, view, "Shifts for 2026-06")
	assertContains(t, view, "新宿校")
	assertContains(t, view, "¥8,000")
	assertContains(t, view, "Total: ¥13,160 (2 shifts)")
}

func TestMonthModel_Navigation(t *testing.T) {
	m := loadedMonth(t, setupServices(t, true))

	var cmd tea.Cmd
	m, cmd = m.Update(runes("l"))
	if year, month := m.Period(); year != 2026 || month != time.July {
		t.Errorf("Period() = %d-%02d, want 2026-07", year, int(month))
	}
	m, _ = m.Update(run(t, cmd))
	assertContains(t, m.View(), "No shifts this month")

	m, _ = m.Update(runes("h"))
	m, _ = m.Update(runes("h"))
	if year, month := m.Period(); year != 2026 || month != time.May {
		t.Errorf("Period() = %d-%02d, want 2026-05", year, int(month))
	}

	m, _ = m.Update(runes("t"))
	if year, month := m.Period(); year != 2026 || month != time.June {
		t.Errorf("Period() = %d-%02d, want 2026-06", year, int(month))
	}
}

func TestMonthModel_Navigation_YearBoundary(t *testing.T) {
	m := loadedMonth(t, setupServices(t, false))
	for range 6 {
		m, _ = m.Update(runes("h"))
	}
	if year, month := m.Period(); year != 2025 || month != time.December {
		t.Errorf("Period() = %d-%02d, want 2025-12", year, int(month))
	}
}

func TestMonthModel_AddShift(t *testing.T) {
	m := loadedMonth(t, setupServices(t, false))

	m, _ = m.Update(runes("n"))
	if !m.IsInputMode() {
		t.Fatal("expected input mode after 'n'")
	}
	if got := m.inputs[fieldDate].Value(); got != "2026-06-03" {
		t.Errorf("date field = %q, want today's date", got)
	}

	m.inputs[fieldTitle].SetValue("Cafe")
	m.inputs[fieldStart].SetValue("10:00")
	m.inputs[fieldEnd].SetValue("14:00")
	m.inputs[fieldRate].SetValue("1200")

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = m.Update(run(t, cmd))
	if m.IsInputMode() {
		t.Error("expected the form to close after saving")
	}
	m, _ = m.Update(run(t, cmd))

	view := m.View()
	assertContains(t, view, "Added 2026-06-03 Cafe (¥4,800)")
	assertContains(t, view, "Total: ¥4,800 (1 shift)")
}

func TestMonthModel_AddShift_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		rate    string
		wantErr string
	}{
		{"missing title", "", "1200", "title is required"},
		{"bad rate", "Cafe", "abc", "hourly rate must be a number of yen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadedMonth(t, setupServices(t, false))
			m, _ = m.Update(runes("n"))
			m.inputs[fieldTitle].SetValue(tt.title)
			m.inputs[fieldRate].SetValue(tt.rate)

			m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd != nil {
				t.Error("expected no command for an invalid form")
			}
			if !m.IsInputMode() {
				t.Error("expected the form to stay open")
			}
			assertContains(t, m.View(), tt.wantErr)
		})
	}
}

func TestMonthModel_CancelForm(t *testing.T) {
	m := loadedMonth(t, setupServices(t, false))
	m, _ = m.Update(runes("n"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsInputMode() {
		t.Error("expected Esc to close the form")
	}
}

func TestMonthModel_EditSalary(t *testing.T) {
	m := loadedMonth(t, setupServices(t, true))

	m, _ = m.Update(runes("e"))
	if !m.IsInputMode() {
		t.Fatal("expected input mode after 'e'")
	}
	if got := m.salaryInput.Value(); got != "8000" {
		t.Errorf("salary field = %q, want 8000", got)
	}
	assertContains(t, m.View(), "kept as an override")

	m.salaryInput.SetValue("7000")
	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = m.Update(run(t, cmd))
	m, _ = m.Update(run(t, cmd))

	view := m.View()
	assertContains(t, view, "set to ¥7,000")
	assertContains(t, view, "Total: ¥12,160 (2 shifts)")
}

func TestMonthModel_HideAndUnhide(t *testing.T) {
	m := loadedMonth(t, setupServices(t, true))

	m, _ = m.Update(runes("d"))
	assertContains(t, m.View(), "Hide this imported shift?")

	var cmd tea.Cmd
	m, cmd = m.Update(runes("y"))
	m, cmd = m.Update(run(t, cmd))
	m, _ = m.Update(run(t, cmd))

	view := m.View()
	assertContains(t, view, "Hid 2026-06-05 新宿校")
	assertContains(t, view, "Total: ¥5,160 (1 shift)")

	m, cmd = m.Update(runes("u"))
	m, cmd = m.Update(run(t, cmd))
	m, _ = m.Update(run(t, cmd))

	view = m.View()
	assertContains(t, view, "Restored 1 hidden shift on 2026-06-05")
	assertContains(t, view, "Total: ¥13,160 (2 shifts)")
}

func TestMonthModel_DeleteCancelled(t *testing.T) {
	m := loadedMonth(t, setupServices(t, true))

	m, _ = m.Update(runes("d"))
	m, cmd := m.Update(runes("n"))
	if cmd != nil {
		t.Error("expected no command when the delete is cancelled")
	}
	assertContains(t, m.View(), "Total: ¥13,160 (2 shifts)")
}

func TestMonthModel_CursorBounds(t *testing.T) {
	m := loadedMonth(t, setupServices(t, true))

	m, _ = m.Update(runes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up from the top, want 0", m.cursor)
	}
	for range 5 {
		m, _ = m.Update(runes("j"))
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d after moving past the end, want 1", m.cursor)
	}
}

func TestUpcomingModel(t *testing.T) {
	tests := []struct {
		name     string
		withFeed bool
		want     []string
	}{
		{"with shifts", true, []string{"Upcoming Shifts", "6/5(金) 14:00", "¥8,000", "6/6(土) 09:00"}},
		{"empty", false, []string{"No upcoming shifts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewUpcomingModel(setupServices(t, tt.withFeed), testStyles(), ui.DefaultKeyMap())
			m, _ = m.Update(run(t, m.Init()))
			view := m.View()
			for _, want := range tt.want {
				assertContains(t, view, want)
			}
		})
	}
}

func TestWallModel(t *testing.T) {
	m := NewWallModel(setupServices(t, true), testStyles(), ui.DefaultKeyMap())
	m.SetSize(100, 40)
	m, _ = m.Update(run(t, m.Init()))

	view := m.View()
	assertContains(t, view, "Annual Earnings 2026")
	assertContains(t, view, "¥13,160")
	assertContains(t, view, "Ceiling:")
	assertContains(t, view, "By Month")
	assertContains(t, view, "Jun")

	var cmd tea.Cmd
	m, cmd = m.Update(runes("h"))
	if m.Year() != 2025 {
		t.Errorf("Year() = %d, want 2025", m.Year())
	}
	m, _ = m.Update(run(t, cmd))
	view = m.View()
	assertContains(t, view, "Annual Earnings 2025")
	assertContains(t, view, "¥0")

	m, _ = m.Update(runes("t"))
	if m.Year() != 2026 {
		t.Errorf("Year() = %d after 't', want 2026", m.Year())
	}
}

func TestWallModel_IgnoresStaleLoad(t *testing.T) {
	m := NewWallModel(setupServices(t, true), testStyles(), ui.DefaultKeyMap())
	stale := run(t, m.Init())

	m, _ = m.Update(runes("l"))
	m, _ = m.Update(stale)
	if m.result != nil {
		t.Error("expected a result for another year to be ignored")
	}
}

func TestLocationsModel(t *testing.T) {
	tests := []struct {
		name     string
		withFeed bool
		past     []string
		want     []string
	}{
		{"past shift", true, []string{"2026-06-01"}, []string{"Locations (1 discovered)", "Cafe", "1 visit"}},
		{"only upcoming shifts", true, nil, []string{"Locations (0 discovered)", "No locations discovered yet"}},
		{"empty", false, nil, []string{"Locations (0 discovered)", "No locations discovered yet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := setupServices(t, tt.withFeed)
			for _, date := range tt.past {
				req := shift.CreateRequest{Date: date, Title: "Cafe", Kind: shift.KindOther, StartTime: "10:00", EndTime: "14:00", HourlyRate: 1200}
				if _, err := services.Shifts.Add(context.Background(), req); err != nil {
					t.Fatalf("Add() error = %v", err)
				}
			}
			m := NewLocationsModel(services, testStyles(), ui.DefaultKeyMap())
			m, _ = m.Update(run(t, m.Init()))
			view := m.View()
			for _, want := range tt.want {
				assertContains(t, view, want)
			}
		})
	}
}

func TestConfigModel(t *testing.T) {
	services := setupServices(t, false)
	provider := ui.NewThemeProvider("")
	m := NewConfigModel(services, provider, provider.Styles(), ui.DefaultKeyMap())
	m.SetSize(100, 40)
	m, _ = m.Update(run(t, m.Init()))

	view := m.View()
	assertContains(t, view, "Using defaults (no config file)")
	assertContains(t, view, "timezone:")
	assertContains(t, view, "UTC")
	assertContains(t, view, "annual_ceiling:")
	assertContains(t, view, "warning_threshold:")
	assertContains(t, view, "90%")
	assertContains(t, view, "recurring:")
	assertContains(t, view, "off")
	assertContains(t, view, "theme:")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assertContains(t, m.View(), "Select a theme")

	m, _ = m.Update(runes("j"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := run(t, cmd).(ui.ThemeChangeRequestMsg)
	if !ok {
		t.Fatal("expected a ThemeChangeRequestMsg")
	}
	if msg.ThemeName == ui.DefaultTheme {
		t.Errorf("expected a theme other than %q after moving the cursor", ui.DefaultTheme)
	}
}

func TestConfigModel_Reload(t *testing.T) {
	services := setupServices(t, false)
	provider := ui.NewThemeProvider("")
	m := NewConfigModel(services, provider, provider.Styles(), ui.DefaultKeyMap())
	m, _ = m.Update(run(t, m.Init()))

	path := services.Config.GetPath()
	if err := os.WriteFile(path, []byte("annual_ceiling = 500000\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	m, _ = m.Update(run(t, m.reloadConfig()))
	view := m.View()
	assertContains(t, view, "¥500,000")
	assertContains(t, view, "File exists")

	if err := os.WriteFile(path, []byte("annual_ceiling = -1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	m, cmd := m.Update(runes("r"))
	m, _ = m.Update(run(t, cmd))
	assertContains(t, m.View(), "annual_ceiling must be positive")
}

func TestConfigModel_CancelSelector(t *testing.T) {
	provider := ui.NewThemeProvider("")
	m := NewConfigModel(setupServices(t, false), provider, provider.Styles(), ui.DefaultKeyMap())
	m, _ = m.Update(run(t, m.Init()))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(runes("j"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("expected no command when the selector is cancelled")
	}
	if m.selectingTheme {
		t.Error("expected Esc to close the selector")
	}
	if m.themes[m.themeCursor] != ui.DefaultTheme {
		t.Errorf("cursor on %q after cancel, want %q", m.themes[m.themeCursor], ui.DefaultTheme)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Cafe", 10, "Cafe"},
		{"ascii", "Convenience store", 8, "Conveni…"},
		{"wide runes", "新宿校舎本館", 7, "新宿校…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
