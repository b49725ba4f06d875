package planner

import (
	"time"

	"github.com/nhle/inspion/internal/calendar"
	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/query"
)

// Action is a single user intent applied by Planner.Dispatch.
type Action interface {
	name() string
}

type (
	// OpenCreateForm opens an empty task form.
	OpenCreateForm struct{}

	// OpenEditForm opens the form for an existing task.
	OpenEditForm struct{ ID string }

	// CloseForm dismisses the form without saving.
	CloseForm struct{}

	// SubmitForm saves the open form. It creates a task in FormCreate and
	// updates the edited task in FormEdit.
	SubmitForm struct{ Input model.TaskInput }

	// RequestDelete marks a task for deletion pending confirmation.
	RequestDelete struct{ ID string }

	// ConfirmDelete removes the pending task.
	ConfirmDelete struct{}

	// CancelDelete drops the pending deletion.
	CancelDelete struct{}

	// CopyTask appends a copy of a task with a fresh id.
	CopyTask struct{ ID string }

	// SwitchView changes the main screen.
	SwitchView struct{ View View }

	// SetFilter replaces the list filter. The selected folder is kept.
	SetFilter struct{ Filter query.Filter }

	// ClearFilter resets every filter field except the folder.
	ClearFilter struct{}

	// SetSort changes the list order.
	SetSort struct{ Sort query.Sort }

	// SetFolder selects a folder tab.
	SetFolder struct{ Folder query.Folder }

	// SetCalendarMode switches between month and day layouts.
	SetCalendarMode struct{ Mode calendar.Mode }

	// NavigateCalendar moves the calendar by Step days or months.
	NavigateCalendar struct{ Step int }

	// OpenDay shows the day layout for Date.
	OpenDay struct{ Date time.Time }

	// GoToToday moves the calendar to the current day, keeping the mode.
	GoToToday struct{}

	// ImportTasks replaces the collection, e.g. from a snapshot.
	ImportTasks struct{ Tasks []model.Task }

	// SetWeekStart changes the first column of the month grid.
	SetWeekStart struct{ Day time.Weekday }
)

func (OpenCreateForm) name() string   { return "open_create_form" }
func (OpenEditForm) name() string     { return "open_edit_form" }
func (CloseForm) name() string        { return "close_form" }
func (SubmitForm) name() string       { return "submit_form" }
func (RequestDelete) name() string    { return "request_delete" }
func (ConfirmDelete) name() string    { return "confirm_delete" }
func (CancelDelete) name() string     { return "cancel_delete" }
func (CopyTask) name() string         { return "copy_task" }
func (SwitchView) name() string       { return "switch_view" }
func (SetFilter) name() string        { return "set_filter" }
func (ClearFilter) name() string      { return "clear_filter" }
func (SetSort) name() string          { return "set_sort" }
func (SetFolder) name() string        { return "set_folder" }
func (SetCalendarMode) name() string  { return "set_calendar_mode" }
func (NavigateCalendar) name() string { return "navigate_calendar" }
func (OpenDay) name() string          { return "open_day" }
func (GoToToday) name() string        { return "go_to_today" }
func (ImportTasks) name() string      { return "import_tasks" }
func (SetWeekStart) name() string     { return "set_week_start" }
