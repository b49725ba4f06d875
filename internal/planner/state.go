// Package planner owns the task collection and the application state and
// applies user actions to them one at a time.
package planner

import (
	"errors"
	"time"

	"github.com/nhle/inspion/internal/calendar"
	"github.com/nhle/inspion/internal/query"
)

var (
	// ErrTaskNotFound is returned when an action names an unknown task.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoPendingDelete is returned by ConfirmDelete when no delete was
	// requested.
	ErrNoPendingDelete = errors.New("no delete pending")

	// ErrFormClosed is returned by SubmitForm when no form is open.
	ErrFormClosed = errors.New("task form is not open")

	// ErrInvalidWeekday is returned by SetWeekStart for a day outside
	// Sunday..Saturday.
	ErrInvalidWeekday = errors.New("invalid weekday")
)

// View is the main screen.
type View string

// Views.
const (
	ViewList     View = "list"
	ViewCalendar View = "calendar"
	ViewWorkload View = "workload"
)

// Views returns every view in tab order.
func Views() []View {
	return []View{ViewList, ViewCalendar, ViewWorkload}
}

// FormMode says whether the task form is open and for what.
type FormMode int

// Form modes.
const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

// FormState is the task form's state. TaskID is set in FormEdit.
type FormState struct {
	Mode   FormMode
	TaskID string
}

// Open reports whether the form is showing.
func (f FormState) Open() bool {
	return f.Mode != FormClosed
}

// State is everything the UI shows besides the tasks themselves.
type State struct {
	View View
	Form FormState

	// PendingDelete is the id awaiting confirmation, or empty.
	PendingDelete string

	CalendarMode calendar.Mode
	CalendarDate time.Time

	// Filter.Folder is the selected folder tab.
	Filter query.Filter
	Sort   query.Sort
}

// DefaultState is the state of a freshly started planner.
func DefaultState(now time.Time) State {
	return State{
		View:         ViewList,
		CalendarMode: calendar.ModeMonth,
		CalendarDate: calendar.StartOfDay(now),
		Filter:       query.Filter{Folder: query.FolderAll},
		Sort:         query.DefaultSort(),
	}
}
