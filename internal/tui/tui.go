// Package tui provides the Terminal User Interface for the shiftbook application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/tui/ui"
	"github.com/xolan/shiftbook/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabMonth Tab = iota
	TabUpcoming
	TabWall
	TabLocations
	TabConfig
)

var tabNames = []string{"Month", "Upcoming", "Wall", "Locations", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	width     int
	height    int
	showHelp  bool

	monthView     views.MonthModel
	upcomingView  views.UpcomingModel
	wallView      views.WallModel
	locationsView views.LocationsModel
	configView    views.ConfigModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabMonth,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		monthView:     views.NewMonthModel(services, styles, keys),
		upcomingView:  views.NewUpcomingModel(services, styles, keys),
		wallView:      views.NewWallModel(services, styles, keys),
		locationsView: views.NewLocationsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.monthView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Forms in the month view take every key, including tab for field focus
		if !m.isInputMode() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit

			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				return m, nil

			case key.Matches(msg, m.keys.NextTab):
				return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))

			case key.Matches(msg, m.keys.PrevTab):
				return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

			case key.Matches(msg, m.keys.Tab1):
				return m.switchTab(TabMonth)

			case key.Matches(msg, m.keys.Tab2):
				return m.switchTab(TabUpcoming)

			case key.Matches(msg, m.keys.Tab3):
				return m.switchTab(TabWall)

			case key.Matches(msg, m.keys.Tab4):
				return m.switchTab(TabLocations)

			case key.Matches(msg, m.keys.Tab5):
				return m.switchTab(TabConfig)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.monthView.SetSize(m.width, contentHeight)
		m.upcomingView.SetSize(m.width, contentHeight)
		m.wallView.SetSize(m.width, contentHeight)
		m.locationsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.monthView, _ = m.monthView.Update(themeMsg)
		m.upcomingView, _ = m.upcomingView.Update(themeMsg)
		m.wallView, _ = m.wallView.Update(themeMsg)
		m.locationsView, _ = m.locationsView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	switch m.activeTab {
	case TabMonth:
		m.monthView, cmd = m.monthView.Update(msg)
	case TabUpcoming:
		m.upcomingView, cmd = m.upcomingView.Update(msg)
	case TabWall:
		m.wallView, cmd = m.wallView.Update(msg)
	case TabLocations:
		m.locationsView, cmd = m.locationsView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}
	return m, cmd
}

func (m Model) switchTab(tab Tab) (Model, tea.Cmd) {
	m.activeTab = tab
	return m, m.initCurrentView()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabMonth:
		b.WriteString(m.monthView.View())
	case TabUpcoming:
		b.WriteString(m.upcomingView.View())
	case TabWall:
		b.WriteString(m.wallView.View())
	case TabLocations:
		b.WriteString(m.locationsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.styles.App.Render(b.String())
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderStatusBar() string {
	var parts []string

	if m.isInputMode() {
		parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("Enter", "save"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabMonth:
			parts = append(parts, m.renderKeyHelp("h/l", "month"))
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("e", "salary"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("u", "unhide"))
		case TabWall:
			parts = append(parts, m.renderKeyHelp("h/l", "year"))
			parts = append(parts, m.renderKeyHelp("t", "this year"))
		case TabUpcoming, TabLocations:
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("Enter", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("1-5", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isInputMode reports whether the active view owns the keyboard
func (m Model) isInputMode() bool {
	return m.activeTab == TabMonth && m.monthView.IsInputMode()
}

// initCurrentView reloads the active view after a tab switch
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabMonth:
		return m.monthView.Init()
	case TabUpcoming:
		return m.upcomingView.Init()
	case TabWall:
		return m.wallView.Init()
	case TabLocations:
		return m.locationsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-5    Switch views\n")
	help.WriteString("  r          Refresh\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabMonth:
		help.WriteString(m.styles.StatLabel.Render("Month:"))
		help.WriteString("\n")
		help.WriteString("  h/l        Previous/next month\n")
		help.WriteString("  t          This month\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  n          New shift\n")
		help.WriteString("  e          Edit salary\n")
		help.WriteString("  d          Delete or hide shift\n")
		help.WriteString("  u          Unhide the last hidden day\n")
	case TabUpcoming:
		help.WriteString(m.styles.StatLabel.Render("Upcoming:"))
		help.WriteString("\n")
		help.WriteString("  Lists the next shifts that have not ended\n")
	case TabWall:
		help.WriteString(m.styles.StatLabel.Render("Wall:"))
		help.WriteString("\n")
		help.WriteString("  h/l        Previous/next year\n")
		help.WriteString("  t          This year\n")
	case TabLocations:
		help.WriteString(m.styles.StatLabel.Render("Locations:"))
		help.WriteString("\n")
		help.WriteString("  Lists every work location seen so far\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  Enter      Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.Hint.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
