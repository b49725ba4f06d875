package workload

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/stats"
	"github.com/nhle/inspion/internal/theme"
)

// barWidth is the length of the bar drawn for the largest group.
const barWidth = 30

// Row is one rendered line of a workload table.
type Row struct {
	Label   string
	Color   lipgloss.TerminalColor
	Count   int
	Average string
}

// Model is the workload summary view.
type Model struct {
	summary stats.Summary
	locale  model.Locale
	width   int
	height  int
}

// New creates a new workload view model.
func New(locale model.Locale, width, height int) Model {
	return Model{
		locale: locale,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSummary replaces the aggregated data.
func (m *Model) SetSummary(s stats.Summary) {
	m.summary = s
}

// Update handles messages for the workload view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// StatusRows converts the status groups into table rows.
func StatusRows(s stats.Summary, locale model.Locale) []Row {
	rows := make([]Row, 0, len(s.ByStatus))
	for _, g := range s.ByStatus {
		rows = append(rows, Row{
			Label:   model.StatusLabel(g.Key, locale),
			Color:   theme.StatusStyle(g.Key).GetForeground(),
			Count:   g.Count,
			Average: model.FormatDuration(g.AverageDuration, locale),
		})
	}
	return rows
}

// PriorityRows converts the priority groups into table rows.
func PriorityRows(s stats.Summary, locale model.Locale) []Row {
	rows := make([]Row, 0, len(s.ByPriority))
	for _, g := range s.ByPriority {
		rows = append(rows, Row{
			Label:   model.PriorityLabel(g.Key, locale),
			Color:   lipgloss.Color(g.Key.Color()),
			Count:   g.Count,
			Average: model.FormatDuration(g.AverageDuration, locale),
		})
	}
	return rows
}

// View renders the workload view.
func (m Model) View() string {
	if m.summary.IsEmpty() {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No data")
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	overall := fmt.Sprintf("%d tasks · average duration %s",
		m.summary.Total, model.FormatDuration(m.summary.OverallAverage, m.locale))

	statusTable := m.renderTable("By status", StatusRows(m.summary, m.locale))
	priorityTable := m.renderTable("By priority", PriorityRows(m.summary, m.locale))

	var tables string
	if m.width >= 2*lipgloss.Width(statusTable)+4 {
		tables = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().MarginRight(4).Render(statusTable),
			priorityTable,
		)
	} else {
		tables = lipgloss.JoinVertical(lipgloss.Left, statusTable, "", priorityTable)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header.Render("Workload"),
			theme.HelpStyle.Render(overall),
			"",
			tables,
		),
	)
}

func (m Model) renderTable(title string, rows []Row) string {
	maxCount := 0
	labelWidth := 0
	for _, r := range rows {
		maxCount = max(maxCount, r.Count)
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue).MarginBottom(1)
	lines := []string{titleStyle.Render(title)}
	for _, r := range rows {
		label := lipgloss.NewStyle().Width(labelWidth + 2).Render(r.Label)
		bar := lipgloss.NewStyle().
			Foreground(r.Color).
			Width(barWidth + 1).
			Render(strings.Repeat("█", Bar(r.Count, maxCount, barWidth)))
		lines = append(lines, fmt.Sprintf("%s%s%3d  avg %s", label, bar, r.Count, r.Average))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Bar scales count against the largest group. Any non-empty group gets at
// least one cell.
func Bar(count, maxCount, width int) int {
	if count <= 0 || maxCount <= 0 {
		return 0
	}
	return max(count*width/maxCount, 1)
}

// SetSize updates the workload view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
