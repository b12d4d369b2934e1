package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/service"
	"github.com/xolan/shiftbook/internal/shift"
	"github.com/xolan/shiftbook/internal/timeutil"
	"github.com/xolan/shiftbook/internal/tui/ui"
)

type monthMode int

const (
	monthModeNormal monthMode = iota
	monthModeAdd
	monthModeEdit
	monthModeDelete
)

// Add form fields, in focus order
const (
	fieldDate = iota
	fieldTitle
	fieldStart
	fieldEnd
	fieldRate
	fieldCount
)

var fieldLabels = [fieldCount]string{"Date:", "Title:", "Start:", "End:", "Hourly rate:"}

// MonthModel lists the combined shifts of one month and edits them
type MonthModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width    int
	height   int
	cursor   int
	year     int
	month    time.Month
	shifts   []service.IndexedShift
	total    int
	warnings int
	err      error
	status   string

	// Date whose generated shifts were hidden last, for undo
	hiddenDate string

	// Input mode state
	mode        monthMode
	inputs      [fieldCount]textinput.Model
	focused     int
	salaryInput textinput.Model
}

// NewMonthModel creates the month view showing the current month
func NewMonthModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) MonthModel {
	var inputs [fieldCount]textinput.Model
	placeholders := [fieldCount]string{"2026-06-10", "Cafe", "10:00", "14:00", "1200"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 40
		inputs[i].Width = 30
	}

	salaryInput := textinput.New()
	salaryInput.Placeholder = "Salary in yen"
	salaryInput.CharLimit = 9
	salaryInput.Width = 12

	now := services.Shifts.Now()
	return MonthModel{
		services:    services,
		styles:      styles,
		keys:        keys,
		year:        now.Year(),
		month:       now.Month(),
		inputs:      inputs,
		salaryInput: salaryInput,
	}
}

// monthLoadedMsg is sent when the shifts of a month are loaded
type monthLoadedMsg struct {
	year   int
	month  time.Month
	result *service.ListResult
	err    error
}

// shiftChangedMsg is sent after an add, edit, delete or restore
type shiftChangedMsg struct {
	status     string
	hiddenDate string
	err        error
}

// Init implements tea.Model
func (m MonthModel) Init() tea.Cmd {
	return m.loadMonth()
}

// Update implements tea.Model
func (m MonthModel) Update(msg tea.Msg) (MonthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case monthModeAdd:
			return m.handleAddMode(msg)
		case monthModeEdit:
			return m.handleEditMode(msg)
		case monthModeDelete:
			return m.handleDeleteMode(msg)
		}
		return m.handleNormalMode(msg)

	case monthLoadedMsg:
		m.err = msg.err
		if msg.err == nil && msg.year == m.year && msg.month == m.month {
			m.shifts = msg.result.Shifts
			m.total = msg.result.Total
			m.warnings = len(msg.result.Warnings)
			if m.cursor >= len(m.shifts) {
				m.cursor = max(0, len(m.shifts)-1)
			}
		}

	case shiftChangedMsg:
		m.mode = monthModeNormal
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = msg.status
		m.hiddenDate = msg.hiddenDate
		return m, m.loadMonth()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

func (m MonthModel) handleNormalMode(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.shifts)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		return m.shiftMonth(-1)
	case key.Matches(msg, m.keys.Right):
		return m.shiftMonth(1)
	case key.Matches(msg, m.keys.ThisPeriod):
		now := m.services.Shifts.Now()
		m.year, m.month = now.Year(), now.Month()
		m.cursor = 0
		return m, m.loadMonth()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadMonth()
	case key.Matches(msg, m.keys.New):
		return m.openAddForm()
	case key.Matches(msg, m.keys.Edit):
		if sel, ok := m.selected(); ok {
			m.mode = monthModeEdit
			m.salaryInput.SetValue(strconv.Itoa(sel.Shift.Salary))
			m.salaryInput.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.mode = monthModeDelete
		}
	case key.Matches(msg, m.keys.Restore):
		if m.hiddenDate != "" {
			return m, m.restoreDate(m.hiddenDate)
		}
	}
	return m, nil
}

func (m MonthModel) shiftMonth(delta int) (MonthModel, tea.Cmd) {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.year, m.month = first.Year(), first.Month()
	m.cursor = 0
	m.status = ""
	return m, m.loadMonth()
}

func (m MonthModel) openAddForm() (MonthModel, tea.Cmd) {
	m.mode = monthModeAdd
	date := timeutil.MonthPrefix(m.year, m.month) + "01"
	if now := m.services.Shifts.Now(); now.Year() == m.year && now.Month() == m.month {
		date = timeutil.FormatDateKey(now)
	}
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[fieldDate].SetValue(date)
	m.focused = fieldTitle
	m.inputs[m.focused].Focus()
	return m, textinput.Blink
}

func (m MonthModel) handleAddMode(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		req, err := m.createRequest()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.inputs[m.focused].Blur()
		return m, m.addShift(req)
	case key.Matches(msg, m.keys.Back):
		m.mode = monthModeNormal
		m.inputs[m.focused].Blur()
		m.err = nil
		return m, nil
	case msg.String() == "tab", msg.String() == "shift+tab":
		m.inputs[m.focused].Blur()
		step := 1
		if msg.String() == "shift+tab" {
			step = fieldCount - 1
		}
		m.focused = (m.focused + step) % fieldCount
		m.inputs[m.focused].Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m MonthModel) createRequest() (shift.CreateRequest, error) {
	value := func(field int) string { return strings.TrimSpace(m.inputs[field].Value()) }

	date, err := timeutil.ParseDate(value(fieldDate))
	if err != nil {
		return shift.CreateRequest{}, err
	}
	if value(fieldTitle) == "" {
		return shift.CreateRequest{}, fmt.Errorf("title is required")
	}
	rate, err := strconv.Atoi(value(fieldRate))
	if err != nil {
		return shift.CreateRequest{}, fmt.Errorf("hourly rate must be a number of yen")
	}

	return shift.CreateRequest{
		Date:       date,
		Title:      value(fieldTitle),
		Kind:       shift.KindOther,
		StartTime:  value(fieldStart),
		EndTime:    value(fieldEnd),
		HourlyRate: rate,
	}, nil
}

func (m MonthModel) handleEditMode(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		salary, err := strconv.Atoi(strings.TrimSpace(m.salaryInput.Value()))
		if err != nil {
			m.err = fmt.Errorf("salary must be a number of yen")
			return m, nil
		}
		sel, ok := m.selected()
		if !ok {
			m.mode = monthModeNormal
			return m, nil
		}
		m.salaryInput.Blur()
		return m, m.editSalary(sel, salary)
	case key.Matches(msg, m.keys.Back):
		m.mode = monthModeNormal
		m.salaryInput.Blur()
		m.err = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.salaryInput, cmd = m.salaryInput.Update(msg)
	return m, cmd
}

func (m MonthModel) handleDeleteMode(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if sel, ok := m.selected(); ok {
			return m, m.deleteShift(sel)
		}
		m.mode = monthModeNormal
	case "n", "N", "esc":
		m.mode = monthModeNormal
	}
	return m, nil
}

func (m MonthModel) selected() (service.IndexedShift, bool) {
	if m.cursor < 0 || m.cursor >= len(m.shifts) {
		return service.IndexedShift{}, false
	}
	return m.shifts[m.cursor], true
}

// View implements tea.Model
func (m MonthModel) View() string {
	switch m.mode {
	case monthModeAdd:
		return m.renderAddForm()
	case monthModeEdit:
		return m.renderEditForm()
	case monthModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Shifts for %04d-%02d", m.year, int(m.month))))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	if m.warnings > 0 {
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("Skipped %d corrupted %s in the shift file", m.warnings, cli.Pluralize("line", m.warnings))))
		b.WriteString("\n\n")
	}

	if len(m.shifts) == 0 {
		b.WriteString(m.styles.Hint.Render("No shifts this month"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Hint.Render("Press 'n' to add a shift, h/l to change month"))
		return b.String()
	}

	b.WriteString(RenderShiftList(m.shifts, m.styles, ShiftRenderOptions{Width: m.width, Cursor: m.cursor}))
	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %s (%d %s)", cli.FormatYen(m.total), len(m.shifts), cli.Pluralize("shift", len(m.shifts))))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Success.Render(m.status))
	}
	return b.String()
}

func (m MonthModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("New Shift"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		label := fieldLabels[i]
		if i == m.focused {
			label = "▸ " + label
		}
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

func (m MonthModel) renderEditForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Edit Salary"))
	b.WriteString("\n\n")
	if sel, ok := m.selected(); ok {
		b.WriteString(renderStatLine(m.styles, "Shift:", fmt.Sprintf("%s %s  %s", sel.Shift.Date, cli.FormatTimes(sel.Shift), sel.Shift.Title)))
		if sel.Source.Generated() {
			b.WriteString(m.styles.Warning.Render("Imported shift: the new salary is kept as an override"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.salaryInput.View())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Hint.Render("Enter to save, Esc to cancel"))
	return b.String()
}

func (m MonthModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Shift"))
	b.WriteString("\n\n")

	if sel, ok := m.selected(); ok {
		s := sel.Shift
		if sel.Source.Generated() {
			b.WriteString(m.styles.Warning.Render("Hide this imported shift?"))
		} else {
			b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this shift?"))
		}
		b.WriteString("\n\n")
		b.WriteString(renderStatLine(m.styles, "Date:", s.Date))
		b.WriteString(renderStatLine(m.styles, "Time:", cli.FormatTimes(s)))
		b.WriteString(renderStatLine(m.styles, "Title:", s.Title))
		b.WriteString(renderStatLine(m.styles, "Salary:", cli.FormatYen(s.Salary)))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Hint.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *MonthModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Period returns the year and month shown
func (m MonthModel) Period() (int, time.Month) {
	return m.year, m.month
}

// IsInputMode returns true when the view is capturing keyboard input
func (m MonthModel) IsInputMode() bool {
	return m.mode == monthModeAdd || m.mode == monthModeEdit
}

func (m MonthModel) loadMonth() tea.Cmd {
	year, month := m.year, m.month
	return func() tea.Msg {
		result, err := m.services.Shifts.Month(context.Background(), year, month)
		return monthLoadedMsg{year: year, month: month, result: result, err: err}
	}
}

// afterChange refreshes the location collection once a change is saved
func (m MonthModel) afterChange(ctx context.Context, msg shiftChangedMsg) tea.Msg {
	if _, _, err := m.services.Locations.Sync(ctx); err != nil {
		msg.status += fmt.Sprintf(" (locations not updated: %v)", err)
	}
	return msg
}

func (m MonthModel) addShift(req shift.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		added, err := m.services.Shifts.Add(ctx, req)
		if err != nil {
			return shiftChangedMsg{err: err}
		}
		return m.afterChange(ctx, shiftChangedMsg{
			status: fmt.Sprintf("Added %s %s (%s)", added.Date, added.Title, cli.FormatYen(added.Salary)),
		})
	}
}

func (m MonthModel) editSalary(sel service.IndexedShift, salary int) tea.Cmd {
	ref := service.ShiftRef{Date: sel.Shift.Date, Index: sel.Index}
	return func() tea.Msg {
		ctx := context.Background()
		result, err := m.services.Shifts.Edit(ctx, ref, service.EditRequest{Salary: &salary})
		if err != nil {
			return shiftChangedMsg{err: err}
		}
		return m.afterChange(ctx, shiftChangedMsg{
			status: fmt.Sprintf("Salary of %s %s set to %s", result.Shift.Date, result.Shift.Title, cli.FormatYen(result.Shift.Salary)),
		})
	}
}

func (m MonthModel) deleteShift(sel service.IndexedShift) tea.Cmd {
	ref := service.ShiftRef{Date: sel.Shift.Date, Index: sel.Index}
	return func() tea.Msg {
		ctx := context.Background()
		result, err := m.services.Shifts.Delete(ctx, ref)
		if err != nil {
			return shiftChangedMsg{err: err}
		}
		msg := shiftChangedMsg{status: fmt.Sprintf("Deleted %s %s", result.Shift.Date, result.Shift.Title)}
		if result.Excluded {
			msg.status = fmt.Sprintf("Hid %s %s (u to undo)", result.Shift.Date, result.Shift.Title)
			msg.hiddenDate = result.Shift.Date
		}
		return m.afterChange(ctx, msg)
	}
}

func (m MonthModel) restoreDate(date string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		removed, err := m.services.Shifts.RestoreDate(date)
		if err != nil {
			return shiftChangedMsg{err: err}
		}
		return m.afterChange(ctx, shiftChangedMsg{
			status: fmt.Sprintf("Restored %d hidden %s on %s", removed, cli.Pluralize("shift", removed), date),
		})
	}
}
