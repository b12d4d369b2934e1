package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/tui/ui"
)

// ShiftRenderOptions configures how shift lists are rendered
type ShiftRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected shift (-1 for none)
}

// RenderShiftList renders shifts grouped under day headers with aligned
// columns. Shifts must already be sorted by date.
func RenderShiftList(shifts []service.IndexedShift, styles ui.Styles, opts ShiftRenderOptions) string {
	if len(shifts) == 0 {
		return ""
	}

	maxTitleWidth := 0
	for _, is := range shifts {
		maxTitleWidth = max(maxTitleWidth, lipgloss.Width(is.Shift.Title))
	}
	maxTitleWidth = min(maxTitleWidth, max(opts.Width-45, 20))

	var b strings.Builder
	date := ""
	for i, is := range shifts {
		s := is.Shift
		if s.Date != date {
			if date != "" {
				b.WriteString("\n")
			}
			date = s.Date
			b.WriteString(styles.DayHeader.Render(cli.FormatDayHeader(date)))
			b.WriteString("\n")
		}

		title := truncate(s.Title, maxTitleWidth)
		pad := strings.Repeat(" ", max(maxTitleWidth-lipgloss.Width(title), 0))

		line := fmt.Sprintf("%s %s %s%s %s %s %s",
			styles.ShiftIndex.Render(fmt.Sprintf("[%d]", is.Index)),
			styles.ShiftTime.Render(cli.FormatTimes(s)),
			styles.ShiftTitle.Render(title), pad,
			styles.Kind(s.Kind).Render(fmt.Sprintf("%-6s", s.Kind.Label())),
			styles.ShiftSalary.Render(cli.FormatYen(s.Salary)),
			styles.ShiftSource.Render(is.Source.String()))

		style := styles.ShiftNormal
		if i == opts.Cursor {
			style = styles.ShiftSelected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// truncate shortens s to width display cells, ending in an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}
