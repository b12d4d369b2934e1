package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/tui/ui"
	"github.com/xolan/shiftbook/internal/upcoming"
)

// upcomingLimit is the number of shifts the upcoming view lists
const upcomingLimit = 10

// UpcomingModel lists the next shifts that have not ended yet
type UpcomingModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int
	shifts []shift.Shift
	err    error
}

// NewUpcomingModel creates the upcoming view
func NewUpcomingModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) UpcomingModel {
	return UpcomingModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

type upcomingLoadedMsg struct {
	shifts []shift.Shift
	err    error
}

// Init implements tea.Model
func (m UpcomingModel) Init() tea.Cmd {
	return m.loadUpcoming()
}

// Update implements tea.Model
func (m UpcomingModel) Update(msg tea.Msg) (UpcomingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadUpcoming()
		}

	case upcomingLoadedMsg:
		m.err = msg.err
		m.shifts = msg.shifts

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}
	return m, nil
}

// View implements tea.Model
func (m UpcomingModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Upcoming Shifts"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if len(m.shifts) == 0 {
		b.WriteString(m.styles.Hint.Render("No upcoming shifts"))
		return b.String()
	}

	for _, s := range m.shifts {
		b.WriteString(m.styles.Kind(s.Kind).Render("● "))
		b.WriteString(m.styles.ShiftTitle.Render(upcoming.Line(s)))
		b.WriteString("  ")
		b.WriteString(m.styles.ShiftSalary.Render(cli.FormatYen(s.Salary)))
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize sets the view dimensions
func (m *UpcomingModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m UpcomingModel) loadUpcoming() tea.Cmd {
	return func() tea.Msg {
		shifts, err := m.services.Reports.Upcoming(context.Background(), upcoming.DefaultDays, upcomingLimit)
		return upcomingLoadedMsg{shifts: shifts, err: err}
	}
}
