package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
	"github.com/xolan/shiftbook/internal/shift"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ViewTitle lipgloss.Style
	DayHeader lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Shift list
	ShiftSelected lipgloss.Style
	ShiftNormal   lipgloss.Style
	ShiftIndex    lipgloss.Style
	ShiftTime     lipgloss.Style
	ShiftTitle    lipgloss.Style
	ShiftSalary   lipgloss.Style
	ShiftSource   lipgloss.Style

	// Kinds
	KindTutor  lipgloss.Style
	KindRetail lipgloss.Style
	KindOther  lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Hint      lipgloss.Style

	Dialog lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// Kind returns the style used to tag shifts of kind k
func (s Styles) Kind(k shift.Kind) lipgloss.Style {
	switch k {
	case shift.KindTutor:
		return s.KindTutor
	case shift.KindRetail:
		return s.KindRetail
	}
	return s.KindOther
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// Purple marks tabs and titles, cyan marks times and keys, bright purple marks
// salaries and bright black marks inactive elements and labels.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		DayHeader: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		ShiftSelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		ShiftNormal: lipgloss.NewStyle(),
		ShiftIndex: lipgloss.NewStyle().
			Foreground(muted).
			Width(5),
		ShiftTime: lipgloss.NewStyle().
			Foreground(secondary).
			Width(12),
		ShiftTitle: lipgloss.NewStyle().
			Foreground(fg),
		ShiftSalary: lipgloss.NewStyle().
			Foreground(accent).
			Width(10).
			Align(lipgloss.Right),
		ShiftSource: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		KindTutor: lipgloss.NewStyle().
			Foreground(secondary),
		KindRetail: lipgloss.NewStyle().
			Foreground(success),
		KindOther: lipgloss.NewStyle().
			Foreground(warning),

		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(muted),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
