package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/inspion/internal/keys"
	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/theme"
)

// BackMsg signals the parent to navigate back to the previous view.
type BackMsg struct{}

// Action names carried by ActionMsg.
const (
	ActionEdit   = "edit"
	ActionCopy   = "copy"
	ActionDelete = "delete"
)

// ActionMsg signals the parent to execute an action on the current task.
type ActionMsg struct {
	Action string
	TaskID string
}

// Model is the task card view component.
type Model struct {
	task     *model.Task
	viewport viewport.Model
	keys     *keys.KeyMap
	locale   model.Locale
	width    int
	height   int
}

// New creates a new detail view model.
func New(keys *keys.KeyMap, locale model.Locale, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     keys,
		locale:   locale,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Edit):
			return m, m.action(ActionEdit)

		case key.Matches(msg, m.keys.Copy):
			return m, m.action(ActionCopy)

		case key.Matches(msg, m.keys.Delete):
			return m, m.action(ActionDelete)
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) action(name string) tea.Cmd {
	if m.task == nil {
		return nil
	}
	id := m.task.ID
	return func() tea.Msg {
		return ActionMsg{Action: name, TaskID: id}
	}
}

// View renders the detail view.
func (m Model) View() string {
	if m.task == nil {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No task selected")
	}

	return m.viewport.View()
}

// renderContent builds the full card content string for the viewport.
func (m Model) renderContent() string {
	if m.task == nil {
		return ""
	}

	task := m.task
	loc := m.locale
	var sections []string

	title := task.Title
	if title == "" {
		title = "(untitled)"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sections = append(sections, titleStyle.Render(title))

	// Badges line: status + priority
	statusBadge := theme.StatusStyle(task.Status).Render(model.StatusLabel(task.Status, loc))
	priBadge := theme.PriorityBadgeStyle(task.TotalPriority).Render(
		fmt.Sprintf("%s (%d)", model.PriorityLabel(task.PriorityLevel(), loc), task.TotalPriority),
	)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, statusBadge, "  ", priBadge))
	sections = append(sections, "")

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray).Width(14)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)
	row := func(label, value string) {
		if value == "" {
			return
		}
		sections = append(sections, metaStyle.Render(label+":")+valStyle.Render(value))
	}

	row("Author", task.Author)
	row("Start", model.FormatDate(task.StartDate))
	row("End", model.FormatDate(task.EndDate))
	row("Duration", model.FormatDuration(task.Duration, loc))
	row("Importance", model.LevelLabel(task.Importance, loc))
	row("Urgency", model.LevelLabel(task.Urgency, loc))
	row("Frequency", model.FrequencyLabel(task.Frequency, loc))
	if task.Frequency == model.FrequencyPeriodic {
		row("Period", task.Period)
	}
	row("Completion", fmt.Sprintf("%d%%", task.CompletionPercentage))
	if !task.CreatedAt.IsZero() {
		row("Created", task.CreatedAt.Local().Format(model.DateTimeLayout))
	}
	if !task.UpdatedAt.IsZero() {
		row("Updated", task.UpdatedAt.Local().Format(model.DateTimeLayout))
	}

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", max(min(m.width-4, 80), 0)))
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)
	emptyStyle := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		Italic(true)

	text := func(header, body, placeholder string) {
		sections = append(sections, "", separator, "", headerStyle.Render(header))
		if strings.TrimSpace(body) == "" {
			body = emptyStyle.Render(placeholder)
		}
		sections = append(sections, body)
	}
	text("Description", task.Description, "No description")
	text("Comment", task.Comment, "No comment")

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetTask updates the task being displayed and re-renders the content.
func (m *Model) SetTask(task model.Task) {
	m.task = &task
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Clear drops the shown task, e.g. after it was deleted.
func (m *Model) Clear() {
	m.task = nil
	m.viewport.SetContent("")
}

// TaskID returns the id of the shown task, or "".
func (m Model) TaskID() string {
	if m.task == nil {
		return ""
	}
	return m.task.ID
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	if m.task != nil {
		m.viewport.SetContent(m.renderContent())
	}
}
