package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/inspion/internal/keys"
	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/query"
	"github.com/nhle/inspion/internal/theme"
)

// SelectedTaskMsg is sent when a user selects a task to view details.
type SelectedTaskMsg struct {
	TaskID string
}

// EditTaskMsg asks to open the form for a task.
type EditTaskMsg struct {
	TaskID string
}

// CopyTaskMsg asks to duplicate a task.
type CopyTaskMsg struct {
	TaskID string
}

// DeleteTaskMsg asks to delete a task after confirmation.
type DeleteTaskMsg struct {
	TaskID string
}

// SearchMsg carries a new title search.
type SearchMsg struct {
	Query string
}

// SortMsg carries a new list order.
type SortMsg struct {
	Sort query.Sort
}

// FolderMsg selects a folder tab.
type FolderMsg struct {
	Folder query.Folder
}

// ClearFilterMsg resets all filters except the folder.
type ClearFilterMsg struct{}

// Model is the main task list view component.
type Model struct {
	list        list.Model
	keys        *keys.KeyMap
	locale      model.Locale
	filter      query.Filter
	sort        query.Sort
	total       int
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// headerLines is the space taken by folder tabs and the filter summary.
const headerLines = 2

// New creates a new task list model.
func New(k *keys.KeyMap, locale model.Locale, width, height int) Model {
	delegate := ItemDelegate{locale: locale}
	l := list.New([]list.Item{}, delegate, width, height-headerLines)
	l.SetShowTitle(false)
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("task", "tasks")

	si := textinput.New()
	si.Placeholder = "search titles..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		keys:        k,
		locale:      locale,
		sort:        query.DefaultSort(),
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// Init has nothing to load; the parent pushes tasks with SetTasks.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetTasks replaces the shown tasks with the planner's visible list.
// total is the size of the whole collection, used for empty states.
func (m *Model) SetTasks(tasks []model.Task, filter query.Filter, sort query.Sort, total int) tea.Cmd {
	m.filter = filter
	m.sort = sort
	m.total = total

	items := make([]list.Item, len(tasks))
	for i, task := range tasks {
		items[i] = TaskItem{Task: task}
	}
	return m.list.SetItems(items)
}

// Selected returns the highlighted task.
func (m Model) Selected() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	// Delegate to list model for other messages
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		q := strings.TrimSpace(m.searchInput.Value())
		return m, emit(SearchMsg{Query: q})

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		return m, emit(SearchMsg{})
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	selected, hasSelection := m.Selected()

	switch {
	case key.Matches(msg, m.keys.Select):
		if !hasSelection {
			return m, nil
		}
		return m, emit(SelectedTaskMsg{TaskID: selected.ID})

	case key.Matches(msg, m.keys.Edit):
		if !hasSelection {
			return m, nil
		}
		return m, emit(EditTaskMsg{TaskID: selected.ID})

	case key.Matches(msg, m.keys.Copy):
		if !hasSelection {
			return m, nil
		}
		return m, emit(CopyTaskMsg{TaskID: selected.ID})

	case key.Matches(msg, m.keys.Delete):
		if !hasSelection {
			return m, nil
		}
		return m, emit(DeleteTaskMsg{TaskID: selected.ID})

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.SetValue(m.filter.Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.CycleSort):
		next := m.sort
		next.Key = next.Key.Next()
		return m, emit(SortMsg{Sort: next})

	case key.Matches(msg, m.keys.ToggleOrder):
		next := m.sort
		next.Direction = next.Direction.Toggle()
		return m, emit(SortMsg{Sort: next})

	case key.Matches(msg, m.keys.NextFolder):
		return m, emit(FolderMsg{Folder: nextFolder(m.filter.Folder)})

	case key.Matches(msg, m.keys.ClearFilter):
		m.searchInput.Reset()
		return m, emit(ClearFilterMsg{})
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func nextFolder(f query.Folder) query.Folder {
	folders := query.Folders()
	for i, v := range folders {
		if v == f {
			return folders[(i+1)%len(folders)]
		}
	}
	return query.FolderAll
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View renders the task list view.
func (m Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), m.renderSummary())

	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, header, searchBar, m.list.View())
	}

	if len(m.list.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.renderEmptyState())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View())
}

// renderTabs draws the folder tabs with the active one highlighted.
func (m Model) renderTabs() string {
	active := m.filter.Folder
	if active == "" {
		active = query.FolderAll
	}

	tabs := make([]string, 0, len(query.Folders()))
	for _, f := range query.Folders() {
		style := theme.TabStyle
		if f == active {
			style = theme.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(f.Label(m.locale)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSummary describes the active sort and filters on one line.
func (m Model) renderSummary() string {
	parts := []string{
		fmt.Sprintf("sort: %s %s", m.sort.Key.Label(m.locale), m.sort.Direction.Arrow()),
	}
	f := m.filter
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", f.Search))
	}
	if f.Importance != nil {
		parts = append(parts, "importance: "+model.LevelLabel(*f.Importance, m.locale))
	}
	if f.Urgency != nil {
		parts = append(parts, "urgency: "+model.LevelLabel(*f.Urgency, m.locale))
	}
	if f.Priority != nil {
		parts = append(parts, "priority: "+model.PriorityLabel(*f.Priority, m.locale))
	}
	if f.Status != nil {
		parts = append(parts, "status: "+model.StatusLabel(*f.Status, m.locale))
	}
	return theme.HelpStyle.Render(strings.Join(parts, "  ·  "))
}

// renderEmptyState shows guidance text when no tasks are visible.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height-headerLines).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.total > 0 {
		return style.Render("No matching tasks.\nTry adjusting your filters or press x to clear them.")
	}

	return style.Render(
		"No tasks yet.\n\n" +
			"Press n to create one, or : then type 'import' to load a snapshot.",
	)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-headerLines)
	m.searchInput.Width = width - 4
}
