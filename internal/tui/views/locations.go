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
	"github.com/xolan/shiftbook/internal/stats"
	"github.com/xolan/shiftbook/internal/tui/ui"
)

// LocationsModel shows the collection of discovered work locations
type LocationsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width     int
	height    int
	locations []shift.LocationStat
	err       error
}

// NewLocationsModel creates the locations view
func NewLocationsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) LocationsModel {
	return LocationsModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

type locationsLoadedMsg struct {
	locations []shift.LocationStat
	err       error
}

// Init implements tea.Model
func (m LocationsModel) Init() tea.Cmd {
	return m.loadLocations()
}

// Update implements tea.Model
func (m LocationsModel) Update(msg tea.Msg) (LocationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadLocations()
		}

	case locationsLoadedMsg:
		m.err = msg.err
		m.locations = msg.locations

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}
	return m, nil
}

// View implements tea.Model
func (m LocationsModel) View() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(m.styles.ViewTitle.Render("Locations"))
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Locations (%d discovered)", stats.Discovered(m.locations))))
	b.WriteString("\n")
	if len(m.locations) == 0 {
		b.WriteString(m.styles.Hint.Render("No locations discovered yet"))
		return b.String()
	}

	for _, l := range m.locations {
		if l.Count == 0 {
			b.WriteString(m.styles.Hint.Render("  " + l.Name))
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.styles.Success.Render("★ "))
		b.WriteString(m.styles.ShiftTitle.Render(truncate(l.Name, 24)))
		b.WriteString(strings.Repeat(" ", max(24-len([]rune(truncate(l.Name, 24))), 1)))
		b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%3d %s", l.Count, cli.Pluralize("visit", l.Count))))
		b.WriteString(m.styles.Hint.Render("  last " + l.LastVisited))
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize sets the view dimensions
func (m *LocationsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m LocationsModel) loadLocations() tea.Cmd {
	return func() tea.Msg {
		locations, err := m.services.Locations.List(context.Background())
		return locationsLoadedMsg{locations: locations, err: err}
	}
}
