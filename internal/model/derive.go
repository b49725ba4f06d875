package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

var (
	// ErrInvalidStatus is returned by ParseStatus for unknown values.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrEndBeforeStart is returned by ValidateSchedule when the end date
	// precedes the start date.
	ErrEndBeforeStart = errors.New("end date is before start date")
)

// dateLayouts are tried in order when parsing a date string. Layouts
// without a zone are read in local time.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// TaskInput is raw form input for a new task. Date fields accept a string,
// a time.Time, a *time.Time or nil. Importance, Urgency and
// CompletionPercentage accept numbers or numeric strings.
type TaskInput struct {
	Title       string
	Description string
	Author      string
	Comment     string
	Status      Status

	StartDate any
	EndDate   any

	Importance any
	Urgency    any

	Frequency            Frequency
	Period               string
	CompletionPercentage any
}

// Field is an optional update value. Set reports whether the caller
// touched the field.
type Field[T any] struct {
	Value T
	Set   bool
}

// Set wraps v as a touched field.
func Set[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// TaskUpdate is a partial change to a task. Untouched fields keep their
// current values.
type TaskUpdate struct {
	Title       Field[string]
	Description Field[string]
	Author      Field[string]
	Comment     Field[string]
	Status      Field[Status]

	// StartDate and EndDate take the same raw values as TaskInput.
	StartDate Field[any]
	EndDate   Field[any]

	Importance Field[Level]
	Urgency    Field[Level]

	Frequency            Field[Frequency]
	Period               Field[string]
	CompletionPercentage Field[int]
}

// AsUpdate converts a full form submission into an update that touches
// every field. An empty Status or Frequency leaves the current value.
func (in TaskInput) AsUpdate() TaskUpdate {
	upd := TaskUpdate{
		Title:                Set(in.Title),
		Description:          Set(in.Description),
		Author:               Set(in.Author),
		Comment:              Set(in.Comment),
		StartDate:            Set(in.StartDate),
		EndDate:              Set(in.EndDate),
		Importance:           Set(ParseLevel(in.Importance)),
		Urgency:              Set(ParseLevel(in.Urgency)),
		Period:               Set(in.Period),
		CompletionPercentage: Set(ParsePercentage(in.CompletionPercentage)),
	}
	if in.Status != "" {
		upd.Status = Set(in.Status)
	}
	if in.Frequency != "" {
		upd.Frequency = Set(in.Frequency)
	}
	return upd
}

// Schedule returns the normalized start and end dates of the input.
func (in TaskInput) Schedule() (start, end *time.Time) {
	return NormalizeDate(in.StartDate), NormalizeDate(in.EndDate)
}

// NewID returns a process-unique task identifier. Version 7 UUIDs carry a
// millisecond timestamp followed by random bits.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// CreateTask builds a task from raw input, filling defaults and computing
// the derived fields.
func CreateTask(in TaskInput, now time.Time) Task {
	status := in.Status
	if status == "" {
		status = StatusInProgress
	}
	frequency := in.Frequency
	if frequency == "" {
		frequency = FrequencyOneTime
	}

	start := NormalizeDate(in.StartDate)
	end := NormalizeDate(in.EndDate)
	importance := ParseLevel(in.Importance)
	urgency := ParseLevel(in.Urgency)

	return Task{
		ID:                   NewID(),
		Title:                in.Title,
		Description:          in.Description,
		Author:               in.Author,
		Comment:              in.Comment,
		Status:               status,
		StartDate:            start,
		EndDate:              end,
		Duration:             ComputeDuration(start, end),
		Importance:           importance,
		Urgency:              urgency,
		TotalPriority:        CalculateTotalPriority(importance, urgency),
		Frequency:            frequency,
		Period:               in.Period,
		CompletionPercentage: ParsePercentage(in.CompletionPercentage),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// UpdateTask merges upd over task and returns the result. UpdatedAt is
// always refreshed. TotalPriority is recomputed when importance or urgency
// is touched, and both dates plus Duration are re-derived when either date
// is touched.
func UpdateTask(task Task, upd TaskUpdate, now time.Time) Task {
	out := task

	if upd.Title.Set {
		out.Title = upd.Title.Value
	}
	if upd.Description.Set {
		out.Description = upd.Description.Value
	}
	if upd.Author.Set {
		out.Author = upd.Author.Value
	}
	if upd.Comment.Set {
		out.Comment = upd.Comment.Value
	}
	if upd.Status.Set {
		out.Status = upd.Status.Value
	}
	if upd.Frequency.Set {
		out.Frequency = upd.Frequency.Value
	}
	if upd.Period.Set {
		out.Period = upd.Period.Value
	}
	if upd.CompletionPercentage.Set {
		out.CompletionPercentage = clamp(upd.CompletionPercentage.Value, 0, 100)
	}
	if upd.Importance.Set {
		out.Importance = upd.Importance.Value
	}
	if upd.Urgency.Set {
		out.Urgency = upd.Urgency.Value
	}

	out.UpdatedAt = now

	if upd.Importance.Set || upd.Urgency.Set {
		out.TotalPriority = CalculateTotalPriority(out.Importance, out.Urgency)
	}

	if upd.StartDate.Set || upd.EndDate.Set {
		var start, end any = task.StartDate, task.EndDate
		if upd.StartDate.Set {
			start = upd.StartDate.Value
		}
		if upd.EndDate.Set {
			end = upd.EndDate.Value
		}
		out.StartDate = NormalizeDate(start)
		out.EndDate = NormalizeDate(end)
		out.Duration = ComputeDuration(out.StartDate, out.EndDate)
	}

	return out
}

// CopyTask returns a new task with a fresh id and timestamps and every other
// field carried over. It goes through CreateTask so derived fields are
// recomputed rather than copied.
func CopyTask(task Task, now time.Time) Task {
	return CreateTask(TaskInput{
		Title:                task.Title,
		Description:          task.Description,
		Author:               task.Author,
		Comment:              task.Comment,
		Status:               task.Status,
		StartDate:            task.StartDate,
		EndDate:              task.EndDate,
		Importance:           int(task.Importance),
		Urgency:              int(task.Urgency),
		Frequency:            task.Frequency,
		Period:               task.Period,
		CompletionPercentage: task.CompletionPercentage,
	}, now)
}

// ComputeDuration returns end-start when both are set, clamped at zero.
func ComputeDuration(start, end *time.Time) time.Duration {
	if start == nil || end == nil {
		return 0
	}
	d := end.Sub(*start)
	if d < 0 {
		return 0
	}
	return d
}

// ValidateSchedule rejects an end date that precedes the start date. It is
// meant for form boundaries; CreateTask and UpdateTask accept such input
// and clamp the duration instead.
func ValidateSchedule(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrEndBeforeStart
	}
	return nil
}

// NormalizeDate converts a raw date value to an instant. Empty strings,
// unparseable strings, zero times and unsupported types all become nil.
func NormalizeDate(v any) *time.Time {
	switch d := v.(type) {
	case nil:
		return nil
	case string:
		return parseDate(d)
	case time.Time:
		if d.IsZero() {
			return nil
		}
		return &d
	case *time.Time:
		if d == nil || d.IsZero() {
			return nil
		}
		t := *d
		return &t
	default:
		return nil
	}
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// ParseLevel coerces a raw importance or urgency value. Missing or
// unparseable input yields LevelMedium. Out-of-range numbers are kept as
// they are; CalculateTotalPriority clamps them.
func ParseLevel(v any) Level {
	if v == nil {
		return LevelMedium
	}
	switch x := v.(type) {
	case Level:
		return x
	case string:
		if strings.TrimSpace(x) == "" {
			return LevelMedium
		}
		v = strings.TrimSpace(x)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return LevelMedium
	}
	return Level(n)
}

// ParsePercentage coerces a raw completion value into 0..100.
func ParsePercentage(v any) int {
	if v == nil {
		return 0
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
		if v == "" {
			return 0
		}
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return clamp(n, 0, 100)
}
