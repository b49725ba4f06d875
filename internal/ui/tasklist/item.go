package tasklist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// ItemDelegate implements list.ItemDelegate for rendering list items.
type ItemDelegate struct {
	locale model.Locale
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 2 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused for now).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a task as a title line and a details line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}
	t := ti.Task

	badge := theme.PriorityBadgeStyle(t.TotalPriority).Render(PriorityBadge(t, d.locale))
	status := theme.StatusStyle(t.Status).Render(model.StatusLabel(t.Status, d.locale))
	title := t.Title
	if title == "" {
		title = "(untitled)"
	}

	first := fmt.Sprintf("%s %s %s", badge, title, status)
	second := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		PaddingLeft(2).
		Render(Details(t, d.locale))

	line := lipgloss.JoinVertical(lipgloss.Left, first, second)
	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// PriorityBadge renders "Label (n)" for the task's total priority.
func PriorityBadge(t model.Task, locale model.Locale) string {
	return fmt.Sprintf("%s (%d)", model.PriorityLabel(t.PriorityLevel(), locale), t.TotalPriority)
}

// Details renders schedule, duration and completion on one line.
func Details(t model.Task, locale model.Locale) string {
	return fmt.Sprintf("%s → %s · %s · %d%%",
		model.FormatDate(t.StartDate), model.FormatDate(t.EndDate),
		model.FormatDuration(t.Duration, locale),
		t.CompletionPercentage,
	)
}
