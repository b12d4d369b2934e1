// Package cli provides the CLI presentation layer for shiftbook.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/storage"
	"github.com/xolan/shiftbook/internal/upcoming"
)

// FormatYen formats an amount of yen with thousands separators.
// Examples: "¥0", "¥5,160", "-¥1,200"
func FormatYen(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "¥" + b.String()
}

// FormatDuration formats minutes as a human-readable string
// Examples: "30m", "2h", "1h 30m"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTimes returns "HH:MM-HH:MM", or "all day" for shifts without times
func FormatTimes(s shift.Shift) string {
	if s.StartTime == "" && s.EndTime == "" {
		return "all day"
	}
	return s.StartTime + "-" + s.EndTime
}

// FormatShift formats one combined shift for list output:
// "[2] 14:00-18:00  新宿校 <Tutor> ¥8,000 (feed)"
func FormatShift(is service.IndexedShift) string {
	s := is.Shift
	return fmt.Sprintf("[%d] %s  %s <%s> %s (%s)",
		is.Index,
		FormatTimes(s),
		s.Title,
		s.Kind.Label(),
		FormatYen(s.Salary),
		is.Source)
}

// FormatDayHeader formats the heading printed above the shifts of a date
func FormatDayHeader(date string) string {
	return fmt.Sprintf("%s  %s", date, upcoming.FormatDateJP(date))
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
func FormatCorruptionWarning(warning storage.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", warning.LineNumber, content, warning.Error)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// ProgressBar draws fraction (clamped to [0, 1]) as a fixed-width text bar
// Example: ProgressBar(0.5, 10) = "[#####-----]"
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return "[]"
	}
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
