package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/inspion/internal/theme"
)

// ResultMsg reports the user's answer for the pending deletion.
type ResultMsg struct {
	TaskID    string
	Confirmed bool
}

// Model is a yes/no prompt shown before a task is deleted.
type Model struct {
	form   *huh.Form
	answer *bool
	taskID string
	width  int
	height int
}

// New creates a new confirmation model.
func New(width, height int) Model {
	return Model{
		answer: new(bool),
		width:  width,
		height: height,
	}
}

// Start asks whether the task titled title should be deleted.
func (m *Model) Start(taskID, title string) tea.Cmd {
	m.taskID = taskID
	*m.answer = false
	if title == "" {
		title = "(untitled)"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", title)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(m.answer),
		),
	).WithWidth(min(max(m.width-8, 30), 70))
	return m.form.Init()
}

// Update handles messages for the prompt.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		res := ResultMsg{TaskID: m.taskID, Confirmed: *m.answer}
		return m, func() tea.Msg { return res }
	case huh.StateAborted:
		res := ResultMsg{TaskID: m.taskID}
		return m, func() tea.Msg { return res }
	}
	return m, cmd
}

// View renders the prompt.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	panel := theme.DetailPanelStyle.
		BorderForeground(theme.ColorRed).
		Render(m.form.View())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// SetSize updates the prompt dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
