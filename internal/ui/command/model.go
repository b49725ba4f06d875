package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/inspion/internal/theme"
)

// Command names understood by the palette.
const (
	Export   = "export"
	Import   = "import"
	List     = "list"
	Calendar = "calendar"
	Workload = "workload"
	Folder   = "folder"
	Filter   = "filter"
	Sort     = "sort"
	Clear    = "clear"
	Today    = "today"
	Settings = "settings"
	Quit     = "quit"
)

// arity is the number of arguments each command takes.
var arity = map[string]int{
	Export:   0,
	Import:   0,
	List:     0,
	Calendar: 0,
	Workload: 0,
	Folder:   1,
	Filter:   2,
	Sort:     1,
	Clear:    0,
	Today:    0,
	Settings: 0,
	Quit:     0,
}

// Names returns every command name, used for suggestions.
func Names() []string {
	return []string{Export, Import, List, Calendar, Workload, Folder, Filter, Sort, Clear, Today, Settings, Quit}
}

// Command is a parsed palette entry.
type Command struct {
	Name string
	Args []string
}

// Arg returns the i-th argument or "".
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// Parse splits a palette line into a known command and its arguments.
// "q" is accepted for quit.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	name := strings.ToLower(fields[0])
	if name == "q" {
		name = Quit
	}
	want, ok := arity[name]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}

	args := fields[1:]
	if len(args) != want {
		return Command{}, fmt.Errorf("%s takes %d argument(s), got %d", name, want, len(args))
	}
	return Command{Name: name, Args: args}, nil
}

// CommandMsg is emitted when the user executes a valid command.
type CommandMsg Command

// ErrorMsg is emitted when the palette line does not parse.
type ErrorMsg struct {
	Err error
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Prompt = ": "
	ti.ShowSuggestions = true
	ti.SetSuggestions(Names())
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			c, err := Parse(line)
			if err != nil {
				return m, func() tea.Msg { return ErrorMsg{Err: err} }
			}
			return m, func() tea.Msg { return CommandMsg(c) }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Command Palette")
	input := m.input.View()
	hint := theme.HelpStyle.Render(strings.Join(Names(), " · "))

	content := lipgloss.JoinVertical(lipgloss.Left, title, input, "", hint)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Render(content)
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
