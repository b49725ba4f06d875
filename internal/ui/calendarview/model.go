package calendarview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/inspion/internal/calendar"
	"github.com/nhle/inspion/internal/keys"
	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/theme"
)

// ChipTitleRunes is the longest task title shown in a month cell before
// it is cut and suffixed with "...".
const ChipTitleRunes = 15

// chipsPerCell is the number of task chips drawn in one month cell.
const chipsPerCell = 2

// NavigateMsg moves the calendar by Step months or days.
type NavigateMsg struct {
	Step int
}

// ModeMsg switches between month and day layouts.
type ModeMsg struct {
	Mode calendar.Mode
}

// TodayMsg moves the calendar to the current day.
type TodayMsg struct{}

// OpenDayMsg opens the day layout for Date.
type OpenDayMsg struct {
	Date time.Time
}

// SelectedTaskMsg is sent when a task in the day layout is opened.
type SelectedTaskMsg struct {
	TaskID string
}

// Data is everything the view draws, read from the planner.
type Data struct {
	Mode      calendar.Mode
	Date      time.Time
	Today     time.Time
	WeekStart time.Weekday
	Month     calendar.Month
	Timeline  []calendar.HourBucket
}

// entry is one selectable slot line in the day layout.
type entry struct {
	taskID string
	line   int
}

// Model is the calendar view component.
type Model struct {
	keys     *keys.KeyMap
	locale   model.Locale
	data     Data
	cursor   int // day of month selected in the month layout
	entries  []entry
	selected int // index into entries in the day layout
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new calendar view model.
func New(k *keys.KeyMap, locale model.Locale, width, height int) Model {
	vp := viewport.New(width, height-2)
	return Model{
		keys:     k,
		locale:   locale,
		cursor:   1,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetData refreshes the view. The month cursor follows the calendar date
// when the shown month changes.
func (m *Model) SetData(d Data) {
	prev := m.data
	m.data = d

	if prev.Month.First.IsZero() || !prev.Month.First.Equal(d.Month.First) || prev.Date.Day() != d.Date.Day() {
		m.cursor = d.Date.Day()
	}
	m.cursor = min(max(m.cursor, 1), max(len(d.Month.Days), 1))

	if d.Mode == calendar.ModeDay {
		if !prev.Date.Equal(d.Date) || prev.Mode != d.Mode {
			m.selected = 0
			m.viewport.GotoTop()
		}
		_, m.entries = m.renderTimeline()
		m.selected = min(m.selected, max(len(m.entries)-1, 0))
		content, _ := m.renderTimeline()
		m.viewport.SetContent(content)
		m.scrollToSelected()
	}
}

// Update handles messages for the calendar view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Prev):
		return m, emit(NavigateMsg{Step: -1})
	case key.Matches(keyMsg, m.keys.Next):
		return m, emit(NavigateMsg{Step: 1})
	case key.Matches(keyMsg, m.keys.ToggleMode):
		return m, emit(ModeMsg{Mode: m.data.Mode.Toggle()})
	case key.Matches(keyMsg, m.keys.Today):
		return m, emit(TodayMsg{})
	}

	if m.data.Mode == calendar.ModeDay {
		return m.updateDay(keyMsg)
	}
	return m.updateMonth(keyMsg)
}

func (m Model) updateMonth(msg tea.KeyMsg) (Model, tea.Cmd) {
	n := len(m.data.Month.Days)
	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = max(m.cursor-1, 1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = min(m.cursor+1, n)
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-7, 1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+7, n)
	case key.Matches(msg, m.keys.Select):
		if cell, ok := m.data.Month.Cell(m.cursor); ok {
			return m, emit(OpenDayMsg{Date: cell.Date})
		}
	}
	return m, nil
}

func (m Model) updateDay(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		return m, emit(NavigateMsg{Step: -1})
	case key.Matches(msg, m.keys.Right):
		return m, emit(NavigateMsg{Step: 1})
	case key.Matches(msg, m.keys.Back):
		return m, emit(ModeMsg{Mode: calendar.ModeMonth})
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Select):
		if m.selected < len(m.entries) {
			return m, emit(SelectedTaskMsg{TaskID: m.entries[m.selected].taskID})
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	content, _ := m.renderTimeline()
	m.viewport.SetContent(content)
	m.scrollToSelected()
	return m, nil
}

func (m *Model) scrollToSelected() {
	if m.selected >= len(m.entries) {
		return
	}
	line := m.entries[m.selected].line
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View renders the calendar view.
func (m Model) View() string {
	if m.data.Mode == calendar.ModeDay {
		title := theme.HeaderStyle.Render(calendar.DayTitle(m.data.Date, m.locale))
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.viewport.View())
	}
	return m.renderMonth()
}

func (m Model) cellWidth() int {
	return max((m.width-2)/7, 10)
}

func (m Model) renderMonth() string {
	w := m.cellWidth()
	title := theme.HeaderStyle.Render(calendar.MonthTitle(m.data.Month.First, m.locale))

	headStyle := lipgloss.NewStyle().Width(w).Bold(true).Foreground(theme.ColorGray)
	heads := make([]string, 0, 7)
	for _, h := range calendar.WeekdayHeaders(m.data.WeekStart, m.locale) {
		heads = append(heads, headStyle.Render(h))
	}

	rows := []string{title, "", lipgloss.JoinHorizontal(lipgloss.Top, heads...)}
	for _, week := range m.data.Month.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, m.renderCell(c, w))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	rows = append(rows, "", m.renderLegend())

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(c *calendar.DayCell, w int) string {
	style := lipgloss.NewStyle().Width(w).Height(chipsPerCell + 2)
	if c == nil {
		return style.Render("")
	}
	style = style.Inherit(theme.IntensityStyle(c.Intensity))

	day := fmt.Sprintf("%2d", c.Date.Day())
	if calendar.SameDay(c.Date, m.data.Today, c.Date.Location()) {
		day += " •"
	}
	if c.Date.Day() == m.cursor {
		day = theme.ActiveTabStyle.Render(day)
	}

	lines := []string{day}
	for i, t := range c.Tasks {
		if i == chipsPerCell {
			lines = append(lines, fmt.Sprintf("+%d", len(c.Tasks)-chipsPerCell))
			break
		}
		lines = append(lines, m.renderChip(t, w))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderChip(t model.Task, w int) string {
	bullet := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.PriorityColor())).
		Render("●")
	return bullet + " " + Fit(Truncate(t.Title, ChipTitleRunes), w-3)
}

func (m Model) renderLegend() string {
	levels := []calendar.Intensity{
		calendar.IntensityNone, calendar.IntensityLow,
		calendar.IntensityMedium, calendar.IntensityHigh,
	}
	parts := make([]string, 0, len(levels))
	for _, i := range levels {
		parts = append(parts, theme.IntensityStyle(i).Padding(0, 1).Render(i.Label(m.locale)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderTimeline draws all hour buckets and records the line of every slot.
func (m Model) renderTimeline() (string, []entry) {
	hourStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue).Width(7)
	idleStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)

	dayStart := calendar.StartOfDay(m.data.Date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var (
		lines   []string
		entries []entry
	)
	for _, b := range m.data.Timeline {
		label := hourStyle.Render(fmt.Sprintf("%02d:00", b.Hour))
		if len(b.Slots) == 0 {
			lines = append(lines, label+idleStyle.Render("·"))
			continue
		}
		lines = append(lines, label)
		for _, s := range b.Slots {
			line := "       " + m.renderSlot(s.Task, dayStart, dayEnd)
			if len(entries) == m.selected {
				line = theme.SelectedItemStyle.Render(line)
			}
			entries = append(entries, entry{taskID: s.Task.ID, line: len(lines)})
			lines = append(lines, line)
		}
	}
	if len(entries) == 0 {
		lines = append([]string{theme.HelpStyle.Render("No scheduled tasks on this day"), ""}, lines...)
	}
	return strings.Join(lines, "\n"), entries
}

func (m Model) renderSlot(t model.Task, dayStart, dayEnd time.Time) string {
	from, to := SlotRange(t, dayStart, dayEnd)
	title := t.Title
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("%s  %s %s  %s",
		theme.PriorityStyle(t.TotalPriority).Render(TimeRange(from, to)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(t.PriorityColor())).Render("●"),
		title,
		theme.StatusStyle(t.Status).Render(model.StatusLabel(t.Status, m.locale)),
	)
}

// SetSize updates the calendar dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
}

// SlotRange is the part of a timed task inside [dayStart, dayEnd).
func SlotRange(t model.Task, dayStart, dayEnd time.Time) (time.Time, time.Time) {
	from, to := *t.StartDate, *t.EndDate
	if from.Before(dayStart) {
		from = dayStart
	}
	if to.After(dayEnd) {
		to = dayEnd
	}
	return from, to
}

// TimeRange formats "HH:MM - HH:MM" in the location of from.
func TimeRange(from, to time.Time) string {
	to = to.In(from.Location())
	end := to.Format("15:04")
	if to.Hour() == 0 && to.Minute() == 0 && !calendar.SameDay(from, to, from.Location()) {
		end = "24:00"
	}
	return from.Format("15:04") + " - " + end
}

// Truncate cuts s to n runes and appends "..." when it was longer.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Fit hard-cuts s to at most w runes so a chip never wraps its cell.
func Fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}
