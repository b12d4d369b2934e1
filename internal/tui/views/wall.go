package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/tui/ui"
)

// WallModel shows the earnings of a year against the annual ceiling
type WallModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int
	year   int
	result *service.WallResult
	err    error
	bar    progress.Model
}

// NewWallModel creates the wall view showing the current year
func NewWallModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) WallModel {
	return WallModel{
		services: services,
		styles:   styles,
		keys:     keys,
		year:     services.Shifts.Now().Year(),
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

type wallLoadedMsg struct {
	year   int
	result *service.WallResult
	err    error
}

// Init implements tea.Model
func (m WallModel) Init() tea.Cmd {
	return m.loadWall()
}

// Update implements tea.Model
func (m WallModel) Update(msg tea.Msg) (WallModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.year--
			return m, m.loadWall()
		case key.Matches(msg, m.keys.Right):
			m.year++
			return m, m.loadWall()
		case key.Matches(msg, m.keys.ThisPeriod):
			m.year = m.services.Shifts.Now().Year()
			return m, m.loadWall()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadWall()
		}

	case wallLoadedMsg:
		if msg.year == m.year {
			m.err = msg.err
			m.result = msg.result
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}
	return m, nil
}

// View implements tea.Model
func (m WallModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Annual Earnings %d", m.year)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.result == nil {
		b.WriteString("No data")
		return b.String()
	}

	w := m.result.Wall
	b.WriteString(m.bar.ViewAs(w.Fraction))
	b.WriteString(fmt.Sprintf(" %.1f%%\n\n", w.Percent))
	b.WriteString(renderStatLine(m.styles, "Total:", cli.FormatYen(w.Total)))
	b.WriteString(renderStatLine(m.styles, "Ceiling:", cli.FormatYen(w.Ceiling)))

	remaining := m.styles.StatValue.Render(cli.FormatYen(w.Remaining))
	if w.Warning {
		remaining = m.styles.Warning.Render(cli.FormatYen(w.Remaining))
	}
	b.WriteString(m.styles.StatLabel.Render("Remaining:") + " " + remaining + "\n")

	if w.Warning {
		b.WriteString("\n")
		if w.Remaining < 0 {
			b.WriteString(m.styles.Error.Render("The annual ceiling has been exceeded"))
		} else {
			b.WriteString(m.styles.Warning.Render("Approaching the annual ceiling"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.ViewTitle.Render("By Month"))
	b.WriteString("\n")
	peak := 0
	for _, total := range m.result.Months {
		peak = max(peak, total)
	}
	for i, total := range m.result.Months {
		fraction := 0.0
		if peak > 0 {
			fraction = float64(total) / float64(peak)
		}
		b.WriteString(fmt.Sprintf("  %s %s %10s\n",
			time.Month(i+1).String()[:3], cli.ProgressBar(fraction, 20), cli.FormatYen(total)))
	}
	return b.String()
}

// SetSize sets the view dimensions
func (m *WallModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = min(max(width-20, 10), 60)
}

// Year returns the year shown
func (m WallModel) Year() int {
	return m.year
}

func (m WallModel) loadWall() tea.Cmd {
	year := m.year
	return func() tea.Msg {
		result, err := m.services.Reports.Wall(context.Background(), year)
		return wallLoadedMsg{year: year, result: result, err: err}
	}
}
