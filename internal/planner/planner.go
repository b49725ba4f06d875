package planner

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nhle/inspion/internal/calendar"
	"github.com/nhle/inspion/internal/logging"
	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/query"
	"github.com/nhle/inspion/internal/stats"
	"github.com/nhle/inspion/internal/store"
)

// Planner is the single owner of the task collection and UI state. Every
// change goes through Dispatch. It is not safe for concurrent use.
type Planner struct {
	tasks     *store.TaskCollection
	state     State
	now       func() time.Time
	logger    *zap.Logger
	weekStart time.Weekday
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) { p.logger = l }
}

// WithWeekStart sets the first column of the month grid.
func WithWeekStart(d time.Weekday) Option {
	return func(p *Planner) { p.weekStart = d }
}

// WithTasks seeds the collection.
func WithTasks(tasks []model.Task) Option {
	return func(p *Planner) { p.tasks.Reset(tasks) }
}

// WithSort sets the initial list order.
func WithSort(s query.Sort) Option {
	return func(p *Planner) { p.state.Sort = s }
}

// WithFolder sets the initial folder tab.
func WithFolder(f query.Folder) Option {
	return func(p *Planner) { p.state.Filter.Folder = f }
}

// New returns a planner with an empty collection.
func New(opts ...Option) *Planner {
	p := &Planner{
		tasks:     store.NewTaskCollection(),
		now:       time.Now,
		logger:    zap.NewNop(),
		weekStart: time.Monday,
	}
	p.state = DefaultState(p.now())
	for _, opt := range opts {
		opt(p)
	}
	p.state.CalendarDate = calendar.StartOfDay(p.now())
	return p
}

// State returns a copy of the current state.
func (p *Planner) State() State {
	return p.state
}

// Tasks returns every task in insertion order.
func (p *Planner) Tasks() []model.Task {
	return p.tasks.All()
}

// Task returns the task with the given id.
func (p *Planner) Task(id string) (model.Task, bool) {
	return p.tasks.Get(id)
}

// Now returns the planner's clock reading.
func (p *Planner) Now() time.Time {
	return p.now()
}

// WeekStart returns the first column of the month grid.
func (p *Planner) WeekStart() time.Weekday {
	return p.weekStart
}

// Dispatch applies a. A rejected action leaves tasks and state unchanged.
func (p *Planner) Dispatch(a Action) error {
	err := p.apply(a)
	if err != nil {
		p.logger.Warn("action rejected", zap.String("action", a.name()), zap.Error(err))
		return err
	}
	p.logger.Debug("action applied",
		zap.String("action", a.name()),
		zap.String("view", string(p.state.View)),
		zap.Int("tasks", p.tasks.Len()),
	)
	return nil
}

func (p *Planner) apply(a Action) error {
	switch a := a.(type) {
	case OpenCreateForm:
		p.state.Form = FormState{Mode: FormCreate}

	case OpenEditForm:
		if _, ok := p.tasks.Get(a.ID); !ok {
			return fmt.Errorf("editing task %s: %w", a.ID, ErrTaskNotFound)
		}
		p.state.Form = FormState{Mode: FormEdit, TaskID: a.ID}

	case CloseForm:
		p.state.Form = FormState{}

	case SubmitForm:
		return p.submit(a.Input)

	case RequestDelete:
		if _, ok := p.tasks.Get(a.ID); !ok {
			return nil
		}
		p.state.PendingDelete = a.ID

	case ConfirmDelete:
		id := p.state.PendingDelete
		if id == "" {
			return ErrNoPendingDelete
		}
		p.tasks.Remove(id)
		p.state.PendingDelete = ""
		if p.state.Form.TaskID == id {
			p.state.Form = FormState{}
		}
		p.logger.Info("task deleted", zap.String("task_id", id))

	case CancelDelete:
		p.state.PendingDelete = ""

	case CopyTask:
		orig, ok := p.tasks.Get(a.ID)
		if !ok {
			return fmt.Errorf("copying task %s: %w", a.ID, ErrTaskNotFound)
		}
		cp := model.CopyTask(orig, p.now())
		p.tasks.Add(cp)
		p.logger.Info("task copied", append(logging.Task(cp), zap.String("source_id", orig.ID))...)

	case SwitchView:
		p.state.View = a.View

	case SetFilter:
		folder := p.state.Filter.Folder
		p.state.Filter = a.Filter
		p.state.Filter.Folder = folder

	case ClearFilter:
		p.state.Filter = query.Filter{Folder: p.state.Filter.Folder}

	case SetSort:
		p.state.Sort = a.Sort

	case SetFolder:
		p.state.Filter.Folder = a.Folder

	case SetCalendarMode:
		p.state.CalendarMode = a.Mode

	case NavigateCalendar:
		p.state.CalendarDate = calendar.Navigate(p.state.CalendarDate, p.state.CalendarMode, a.Step)

	case OpenDay:
		p.state.View = ViewCalendar
		p.state.CalendarMode = calendar.ModeDay
		p.state.CalendarDate = calendar.StartOfDay(a.Date)

	case GoToToday:
		p.state.CalendarDate = calendar.StartOfDay(p.now())

	case ImportTasks:
		p.tasks.Reset(a.Tasks)
		p.state.Form = FormState{}
		p.state.PendingDelete = ""
		p.logger.Info("tasks imported", zap.Int("count", p.tasks.Len()))

	case SetWeekStart:
		if a.Day < time.Sunday || a.Day > time.Saturday {
			return fmt.Errorf("week start %d: %w", a.Day, ErrInvalidWeekday)
		}
		p.weekStart = a.Day

	default:
		return fmt.Errorf("unknown action %T", a)
	}
	return nil
}

// submit validates the schedule before touching the collection so a
// rejected save changes nothing.
func (p *Planner) submit(in model.TaskInput) error {
	form := p.state.Form
	if !form.Open() {
		return ErrFormClosed
	}

	if err := model.ValidateSchedule(in.Schedule()); err != nil {
		return fmt.Errorf("saving task: %w", err)
	}

	now := p.now()
	switch form.Mode {
	case FormCreate:
		task := model.CreateTask(in, now)
		p.tasks.Add(task)
		p.logger.Info("task created", logging.Task(task)...)

	case FormEdit:
		existing, ok := p.tasks.Get(form.TaskID)
		if !ok {
			return fmt.Errorf("saving task %s: %w", form.TaskID, ErrTaskNotFound)
		}
		updated := model.UpdateTask(existing, in.AsUpdate(), now)
		p.tasks.Replace(existing.ID, updated)
		p.logger.Info("task updated", logging.Task(updated)...)
	}

	p.state.Form = FormState{}
	return nil
}

// VisibleTasks returns the list view's tasks: filtered, then sorted.
func (p *Planner) VisibleTasks() []model.Task {
	return query.Apply(p.tasks.All(), p.state.Filter, p.state.Sort)
}

// MonthGrid returns the month around the calendar date.
func (p *Planner) MonthGrid() calendar.Month {
	return calendar.MonthGrid(p.state.CalendarDate, p.tasks.All(), p.weekStart)
}

// DayTimeline returns the hourly buckets of the calendar date.
func (p *Planner) DayTimeline() []calendar.HourBucket {
	return calendar.DayTimeline(p.tasks.All(), p.state.CalendarDate)
}

// Summary aggregates the whole collection, ignoring list filters.
func (p *Planner) Summary() stats.Summary {
	return stats.Summarize(p.tasks.All())
}
