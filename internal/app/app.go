package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/inspion/internal/calendar"
	"github.com/nhle/inspion/internal/keys"
	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/planner"
	"github.com/nhle/inspion/internal/query"
	"github.com/nhle/inspion/internal/store"
	"github.com/nhle/inspion/internal/ui"
	"github.com/nhle/inspion/internal/ui/calendarview"
	"github.com/nhle/inspion/internal/ui/command"
	configview "github.com/nhle/inspion/internal/ui/config"
	"github.com/nhle/inspion/internal/ui/confirm"
	"github.com/nhle/inspion/internal/ui/detail"
	helpview "github.com/nhle/inspion/internal/ui/help"
	"github.com/nhle/inspion/internal/ui/taskform"
	"github.com/nhle/inspion/internal/ui/tasklist"
	"github.com/nhle/inspion/internal/ui/workload"
)

// Overlay is a screen drawn instead of the main view. The task form and
// delete confirmation are not overlays; they follow the planner state.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayDetail
	OverlayHelp
	OverlayCommand
	OverlaySettings
)

// Model is the root Bubble Tea model. It turns view messages into planner
// actions and pushes the planner's read models back into the views.
type Model struct {
	planner   *planner.Planner
	snapshots store.Snapshotter
	logger    *zap.Logger
	locale    model.Locale
	keys      *keys.KeyMap

	config     model.AppConfig
	configPath string
	layout     ui.Layout

	overlay         Overlay
	previousOverlay Overlay

	taskList     tasklist.Model
	calendarView calendarview.Model
	workloadView workload.Model
	detail       detail.Model
	taskForm     taskform.Model
	confirmView  confirm.Model
	helpView     helpview.Model
	commandView  command.Model
	settingsView configview.Model

	lastSnapshot *store.SnapshotInfo
	status       string
	statusErr    bool
	ready        bool
}

// New creates the root model. snapshots may be nil, in which case export
// and import report an error.
func New(p *planner.Planner, snapshots store.Snapshotter, locale model.Locale, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	k := keys.DefaultKeyMap()

	m := Model{
		planner:      p,
		snapshots:    snapshots,
		logger:       logger,
		locale:       locale,
		keys:         k,
		taskList:     tasklist.New(k, locale, 80, 24),
		calendarView: calendarview.New(k, locale, 80, 24),
		workloadView: workload.New(locale, 80, 24),
		detail:       detail.New(k, locale, 80, 24),
		taskForm:     taskform.New(locale, 80, 24),
		confirmView:  confirm.New(80, 24),
		helpView:     helpview.New(k, 80, 24),
		commandView:  command.New(80, 24),
		settingsView: configview.New(k, 80, 24),
		config:       *model.DefaultAppConfig(),
	}
	m.refresh()
	return m
}

// WithConfig sets the configuration edited by the settings view. Saved
// settings are written to path; an empty path keeps them in memory.
func (m Model) WithConfig(cfg model.AppConfig, path string) Model {
	m.config = cfg
	m.configPath = path
	return m
}

// Init loads the last snapshot info for the header.
func (m Model) Init() tea.Cmd {
	return m.loadSnapshotInfo()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.taskList.SetSize(w, h)
		m.calendarView.SetSize(w, h)
		m.workloadView.SetSize(w, h)
		m.detail.SetSize(w, h)
		m.taskForm.SetSize(w, h)
		m.confirmView.SetSize(w, h)
		m.helpView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		m.settingsView.SetSize(w, h)
		m.refresh()
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case snapshotInfoMsg:
		if msg.ok {
			m.lastSnapshot = &msg.info
		}
		return m, nil

	case snapshotSavedMsg:
		if msg.err != nil {
			m.logger.Error("export failed", zap.Error(msg.err))
			m.flashError(msg.err)
			return m, nil
		}
		m.lastSnapshot = &msg.info
		m.logger.Info("tasks exported", zap.Int("count", msg.info.TaskCount))
		m.flash(fmt.Sprintf("exported %d tasks", msg.info.TaskCount))
		return m, nil

	case snapshotLoadedMsg:
		if msg.err != nil {
			m.logger.Error("import failed", zap.Error(msg.err))
			m.flashError(msg.err)
			return m, nil
		}
		m.overlay = OverlayNone
		cmd := m.dispatch(planner.ImportTasks{Tasks: msg.tasks})
		m.flash(fmt.Sprintf("imported %d tasks", len(m.planner.Tasks())))
		return m, cmd

	// Task list intents.
	case tasklist.SelectedTaskMsg:
		return m, m.openDetail(msg.TaskID)
	case tasklist.EditTaskMsg:
		return m, m.openEditForm(msg.TaskID)
	case tasklist.CopyTaskMsg:
		return m, m.dispatch(planner.CopyTask{ID: msg.TaskID})
	case tasklist.DeleteTaskMsg:
		return m, m.requestDelete(msg.TaskID)
	case tasklist.SearchMsg:
		f := m.planner.State().Filter
		f.Search = msg.Query
		return m, m.dispatch(planner.SetFilter{Filter: f})
	case tasklist.SortMsg:
		return m, m.dispatch(planner.SetSort{Sort: msg.Sort})
	case tasklist.FolderMsg:
		return m, m.dispatch(planner.SetFolder{Folder: msg.Folder})
	case tasklist.ClearFilterMsg:
		return m, m.dispatch(planner.ClearFilter{})

	// Calendar intents.
	case calendarview.NavigateMsg:
		return m, m.dispatch(planner.NavigateCalendar{Step: msg.Step})
	case calendarview.ModeMsg:
		return m, m.dispatch(planner.SetCalendarMode{Mode: msg.Mode})
	case calendarview.TodayMsg:
		return m, m.dispatch(planner.GoToToday{})
	case calendarview.OpenDayMsg:
		return m, m.dispatch(planner.OpenDay{Date: msg.Date})
	case calendarview.SelectedTaskMsg:
		return m, m.openDetail(msg.TaskID)

	// Detail intents.
	case detail.BackMsg:
		m.overlay = OverlayNone
		return m, nil
	case detail.ActionMsg:
		switch msg.Action {
		case detail.ActionEdit:
			return m, m.openEditForm(msg.TaskID)
		case detail.ActionCopy:
			return m, m.dispatch(planner.CopyTask{ID: msg.TaskID})
		case detail.ActionDelete:
			return m, m.requestDelete(msg.TaskID)
		}
		return m, nil

	// Form and confirmation results.
	case taskform.SubmitMsg:
		err := m.planner.Dispatch(planner.SubmitForm{Input: msg.Input})
		if err != nil {
			m.refresh()
			return m, m.taskForm.Resume(err)
		}
		m.refresh()
		m.flash("task saved")
		return m, nil
	case taskform.CancelMsg:
		return m, m.dispatch(planner.CloseForm{})
	case confirm.ResultMsg:
		if !msg.Confirmed {
			return m, m.dispatch(planner.CancelDelete{})
		}
		err := m.planner.Dispatch(planner.ConfirmDelete{})
		cmd := m.refresh()
		if err != nil {
			m.flashError(err)
			return m, cmd
		}
		if m.detail.TaskID() == msg.TaskID {
			m.detail.Clear()
			m.overlay = OverlayNone
		}
		m.flash("task deleted")
		return m, cmd

	case configview.SavedMsg:
		m.overlay = OverlayNone
		cmd := m.applyDisplay(msg.Display)
		m.logger.Info("settings saved", zap.String("path", m.configPath))
		m.flash("settings saved")
		return m, cmd
	case configview.ConfigDoneMsg:
		m.overlay = OverlayNone
		return m, nil

	case command.CommandMsg:
		m.overlay = m.previousOverlay
		return m, m.executeCommand(command.Command(msg))
	case command.ErrorMsg:
		m.overlay = m.previousOverlay
		m.flashError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that work across views. It reports false
// when the key belongs to the active view.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}

	// Forms, prompts and text inputs own every other key.
	state := m.planner.State()
	if state.Form.Open() || state.PendingDelete != "" || m.overlay == OverlayCommand || m.overlay == OverlaySettings || m.taskList.Searching() {
		if m.overlay == OverlayCommand && key.Matches(msg, m.keys.Back) {
			m.overlay = m.previousOverlay
			return nil, true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		if m.overlay == OverlayHelp {
			m.overlay = m.previousOverlay
			return nil, true
		}
		m.previousOverlay = m.overlay
		m.overlay = OverlayHelp
		return nil, true

	case key.Matches(msg, m.keys.Command):
		m.previousOverlay = m.overlay
		m.overlay = OverlayCommand
		return m.commandView.Focus(), true
	}

	if m.overlay == OverlayHelp {
		if key.Matches(msg, m.keys.Back) {
			m.overlay = m.previousOverlay
		}
		return nil, true
	}
	if m.overlay != OverlayNone {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.ViewList):
		return m.dispatch(planner.SwitchView{View: planner.ViewList}), true
	case key.Matches(msg, m.keys.ViewCalendar):
		return m.dispatch(planner.SwitchView{View: planner.ViewCalendar}), true
	case key.Matches(msg, m.keys.ViewWorkload):
		return m.dispatch(planner.SwitchView{View: planner.ViewWorkload}), true
	case key.Matches(msg, m.keys.New):
		return m.openCreateForm(), true
	}
	return nil, false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	state := m.planner.State()

	switch {
	case state.Form.Open():
		m.taskForm, cmd = m.taskForm.Update(msg)
	case state.PendingDelete != "":
		m.confirmView, cmd = m.confirmView.Update(msg)
	case m.overlay == OverlayCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case m.overlay == OverlaySettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case m.overlay == OverlayHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case m.overlay == OverlayDetail:
		m.detail, cmd = m.detail.Update(msg)
	case state.View == planner.ViewCalendar:
		m.calendarView, cmd = m.calendarView.Update(msg)
	case state.View == planner.ViewWorkload:
		m.workloadView, cmd = m.workloadView.Update(msg)
	default:
		m.taskList, cmd = m.taskList.Update(msg)
	}

	return m, cmd
}

// dispatch applies a planner action, refreshes every view and reports a
// rejected action in the status bar.
func (m *Model) dispatch(a planner.Action) tea.Cmd {
	err := m.planner.Dispatch(a)
	if err != nil {
		m.flashError(err)
	}
	return m.refresh()
}

// refresh pushes the planner's read models into the views.
func (m *Model) refresh() tea.Cmd {
	p := m.planner
	state := p.State()

	cmd := m.taskList.SetTasks(p.VisibleTasks(), state.Filter, state.Sort, len(p.Tasks()))

	m.calendarView.SetData(calendarview.Data{
		Mode:      state.CalendarMode,
		Date:      state.CalendarDate,
		Today:     calendar.StartOfDay(p.Now()),
		WeekStart: p.WeekStart(),
		Month:     p.MonthGrid(),
		Timeline:  p.DayTimeline(),
	})
	m.workloadView.SetSummary(p.Summary())

	if id := m.detail.TaskID(); id != "" {
		if task, ok := p.Task(id); ok {
			m.detail.SetTask(task)
		} else {
			m.detail.Clear()
			if m.overlay == OverlayDetail {
				m.overlay = OverlayNone
			}
		}
	}
	return cmd
}

func (m *Model) openDetail(id string) tea.Cmd {
	task, ok := m.planner.Task(id)
	if !ok {
		m.flashError(fmt.Errorf("opening task %s: %w", id, planner.ErrTaskNotFound))
		return nil
	}
	m.detail.SetTask(task)
	m.overlay = OverlayDetail
	return nil
}

func (m *Model) openCreateForm() tea.Cmd {
	if err := m.planner.Dispatch(planner.OpenCreateForm{}); err != nil {
		m.flashError(err)
		return nil
	}
	return m.taskForm.StartCreate()
}

func (m *Model) openEditForm(id string) tea.Cmd {
	if err := m.planner.Dispatch(planner.OpenEditForm{ID: id}); err != nil {
		m.flashError(err)
		return nil
	}
	task, _ := m.planner.Task(id)
	return m.taskForm.StartEdit(task)
}

func (m *Model) requestDelete(id string) tea.Cmd {
	task, ok := m.planner.Task(id)
	if !ok {
		return nil
	}
	if err := m.planner.Dispatch(planner.RequestDelete{ID: id}); err != nil {
		m.flashError(err)
		return nil
	}
	return m.confirmView.Start(id, task.Title)
}

func (m *Model) openSettings() tea.Cmd {
	m.overlay = OverlaySettings
	return m.settingsView.Start(m.config, m.configPath)
}

// applyDisplay adopts saved display preferences without a restart.
func (m *Model) applyDisplay(d model.DisplayConfig) tea.Cmd {
	m.config.Display = d

	if loc := model.ParseLocale(d.Locale); loc != m.locale {
		m.setLocale(loc)
	}
	if err := m.planner.Dispatch(planner.SetWeekStart{Day: calendar.ParseWeekStart(d.WeekStart)}); err != nil {
		m.flashError(err)
	}
	if k, err := query.ParseSortKey(d.DefaultSort); err == nil {
		s := query.Sort{Key: k, Direction: query.Asc}
		if d.DefaultSortDesc {
			s.Direction = query.Desc
		}
		_ = m.planner.Dispatch(planner.SetSort{Sort: s})
	}
	if f, err := query.ParseFolder(d.DefaultFolder); err == nil {
		_ = m.planner.Dispatch(planner.SetFolder{Folder: f})
	}
	return m.refresh()
}

// setLocale rebuilds the localized views.
func (m *Model) setLocale(loc model.Locale) {
	m.locale = loc
	w, h := 80, 24
	if m.ready {
		w, h = m.layout.ContentWidth(), m.layout.ContentHeight()
	}
	m.taskList = tasklist.New(m.keys, loc, w, h)
	m.calendarView = calendarview.New(m.keys, loc, w, h)
	m.workloadView = workload.New(loc, w, h)
	m.detail = detail.New(m.keys, loc, w, h)
	m.taskForm = taskform.New(loc, w, h)
}

func (m *Model) flash(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) flashError(err error) {
	m.statusErr = true
	switch {
	case errors.Is(err, model.ErrEndBeforeStart):
		m.status = "end date is before start date"
	default:
		m.status = err.Error()
	}
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	state := m.planner.State()
	tabs := []string{"1 Tasks", "2 Calendar", "3 Workload"}
	active := 0
	for i, v := range planner.Views() {
		if v == state.View {
			active = i
		}
	}

	header := m.layout.RenderHeader(tabs, active, m.headerStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	state := m.planner.State()
	switch {
	case state.Form.Open():
		return m.taskForm.View()
	case state.PendingDelete != "":
		return m.confirmView.View()
	case m.overlay == OverlayCommand:
		return m.commandView.View()
	case m.overlay == OverlaySettings:
		return m.settingsView.View()
	case m.overlay == OverlayHelp:
		return m.helpView.View()
	case m.overlay == OverlayDetail:
		return m.detail.View()
	case state.View == planner.ViewCalendar:
		return m.calendarView.View()
	case state.View == planner.ViewWorkload:
		return m.workloadView.View()
	default:
		return m.taskList.View()
	}
}

// headerStatus shows the task count and the last export time.
func (m Model) headerStatus() string {
	s := fmt.Sprintf("%d tasks", len(m.planner.Tasks()))
	if m.lastSnapshot != nil {
		s += " · exported " + m.lastSnapshot.SavedAt.Local().Format(model.DateTimeLayout)
	}
	return s
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.status != "" {
		if m.statusErr {
			return "error: " + m.status
		}
		return m.status
	}

	state := m.planner.State()
	switch {
	case state.Form.Open():
		return "enter next | shift+tab back | esc cancel"
	case state.PendingDelete != "":
		return "←/→ choose | enter confirm | esc cancel"
	case m.overlay == OverlayHelp:
		return "? close help | esc back"
	case m.overlay == OverlayCommand:
		return "enter execute | tab complete | esc back"
	case m.overlay == OverlaySettings:
		return "enter next | shift+tab back | esc cancel"
	case m.overlay == OverlayDetail:
		return "esc back | e edit | c copy | d delete | j/k scroll"
	case state.View == planner.ViewCalendar && state.CalendarMode == calendar.ModeDay:
		return "h/l day | j/k task | enter open | m month | t today | esc month"
	case state.View == planner.ViewCalendar:
		return "arrows move | enter open day | [/] month | m day view | t today"
	case state.View == planner.ViewWorkload:
		return "1 tasks | 2 calendar | : command | q quit"
	default:
		return "q quit | ? help | n new | / search | s sort | o order | tab folder | x clear"
	}
}
