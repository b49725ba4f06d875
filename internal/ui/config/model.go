package config

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/inspion/internal/keys"
	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/query"
	"github.com/nhle/inspion/internal/theme"
)

// ConfigMode represents the current state of the settings view.
type ConfigMode int

const (
	ModeIdle   ConfigMode = iota // Nothing open
	ModeForm                     // Editing display preferences
	ModeSaving                   // Writing the config file
)

// ConfigDoneMsg signals the settings view closed without saving.
type ConfigDoneMsg struct{}

// SavedMsg carries display preferences after they were written to disk.
type SavedMsg struct {
	Display model.DisplayConfig
}

// configSavedInternalMsg is sent after the config file is written.
type configSavedInternalMsg struct {
	cfg model.AppConfig
	err error
}

// Model edits the display section of the config file.
type Model struct {
	mode ConfigMode
	path string
	cfg  model.AppConfig
	form *huh.Form

	// Form field values (huh binds to these)
	formLocale    string
	formWeekStart string
	formSort      string
	formSortDesc  bool
	formFolder    string

	spinner   spinner.Model
	statusMsg string

	keys          *keys.KeyMap
	width, height int
}

// New creates a new settings view model.
func New(k *keys.KeyMap, width, height int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		keys:    k,
		spinner: sp,
		width:   width,
		height:  height,
	}
}

// Start opens the form prefilled from cfg. The file is written to path;
// an empty path skips the write.
func (m *Model) Start(cfg model.AppConfig, path string) tea.Cmd {
	m.cfg = cfg
	m.path = path
	m.statusMsg = ""
	m.loadBindings(cfg.Display)
	m.form = m.buildForm()
	m.mode = ModeForm
	return m.form.Init()
}

// Mode reports what the view is doing.
func (m Model) Mode() ConfigMode {
	return m.mode
}

func (m *Model) loadBindings(d model.DisplayConfig) {
	m.formLocale = string(model.ParseLocale(d.Locale))
	m.formWeekStart = "monday"
	if d.WeekStart == "sunday" {
		m.formWeekStart = "sunday"
	}
	m.formSort = string(query.DefaultSort().Key)
	if k, err := query.ParseSortKey(d.DefaultSort); err == nil {
		m.formSort = string(k)
	}
	m.formSortDesc = d.DefaultSortDesc
	m.formFolder = string(query.FolderAll)
	if f, err := query.ParseFolder(d.DefaultFolder); err == nil {
		m.formFolder = string(f)
	}
}

// Display returns the preferences currently entered in the form.
func (m Model) Display() model.DisplayConfig {
	return model.DisplayConfig{
		Locale:          m.formLocale,
		WeekStart:       m.formWeekStart,
		DefaultSort:     m.formSort,
		DefaultSortDesc: m.formSortDesc,
		DefaultFolder:   m.formFolder,
	}
}

func (m *Model) buildForm() *huh.Form {
	loc := model.ParseLocale(m.formLocale)

	sorts := make([]huh.Option[string], 0, len(query.SortKeys()))
	for _, k := range query.SortKeys() {
		sorts = append(sorts, huh.NewOption(k.Label(loc), string(k)))
	}
	folders := make([]huh.Option[string], 0, len(query.Folders()))
	for _, f := range query.Folders() {
		folders = append(folders, huh.NewOption(f.Label(loc), string(f)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("English", string(model.LocaleEN)),
					huh.NewOption("Русский", string(model.LocaleRU)),
				).
				Value(&m.formLocale),
			huh.NewSelect[string]().
				Title("Week starts on").
				Options(
					huh.NewOption("Monday", "monday"),
					huh.NewOption("Sunday", "sunday"),
				).
				Value(&m.formWeekStart),
		).Title("Display"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sort by").
				Options(sorts...).
				Value(&m.formSort),
			huh.NewConfirm().
				Title("Descending").
				Affirmative("Yes").
				Negative("No").
				Value(&m.formSortDesc),
			huh.NewSelect[string]().
				Title("Folder").
				Description("Tab shown at startup").
				Options(folders...).
				Value(&m.formFolder),
		).Title("List defaults"),
	).WithWidth(m.formWidth())
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 30), 80)
}

// Init is a no-op; the form starts with Start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configSavedInternalMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			m.form = m.buildForm()
			m.mode = ModeForm
			return m, m.form.Init()
		}
		m.cfg = msg.cfg
		m.mode = ModeIdle
		d := msg.cfg.Display
		return m, func() tea.Msg { return SavedMsg{Display: d} }

	case spinner.TickMsg:
		if m.mode != ModeSaving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode == ModeSaving {
			return m, nil
		}
		if m.mode == ModeForm && key.Matches(msg, m.keys.Back) {
			m.mode = ModeIdle
			return m, func() tea.Msg { return ConfigDoneMsg{} }
		}
	}

	if m.mode != ModeForm || m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.save()
	case huh.StateAborted:
		m.mode = ModeIdle
		return m, func() tea.Msg { return ConfigDoneMsg{} }
	}
	return m, cmd
}

func (m Model) save() (Model, tea.Cmd) {
	cfg := m.cfg
	cfg.Display = m.Display()
	path := m.path
	m.mode = ModeSaving

	write := func() tea.Msg {
		if path == "" {
			return configSavedInternalMsg{cfg: cfg}
		}
		if err := model.SaveConfig(path, &cfg); err != nil {
			return configSavedInternalMsg{err: err}
		}
		return configSavedInternalMsg{cfg: cfg}
	}
	return m, tea.Batch(m.spinner.Tick, write)
}

// View renders the settings view.
func (m Model) View() string {
	title := theme.HeaderStyle.Render("Settings")

	var body string
	switch m.mode {
	case ModeSaving:
		body = m.spinner.View() + " Saving " + m.path
	case ModeForm:
		body = m.form.View()
	default:
		body = theme.HelpStyle.Render("Nothing to edit")
	}

	parts := []string{title}
	if m.statusMsg != "" {
		parts = append(parts, theme.ErrorStyle.Render(m.statusMsg))
	}
	if m.path != "" && m.mode == ModeForm {
		parts = append(parts, theme.HelpStyle.Render(m.path))
	}
	parts = append(parts, "", body)

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth())
	}
}
