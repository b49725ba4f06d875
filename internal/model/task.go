package model

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

// Task status values.
const (
	StatusProject    Status = "project"
	StatusPostponed  Status = "postponed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"

	// StatusUnknown groups tasks with an empty status in summaries. It is
	// not a valid task status.
	StatusUnknown Status = "unknown"
)

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{
		StatusProject,
		StatusInProgress,
		StatusPostponed,
		StatusCompleted,
		StatusCancelled,
	}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusProject, StatusPostponed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidStatus, s)
	}
	return status, nil
}

// Level is a three-step importance or urgency rating.
type Level int

// Importance and urgency levels.
const (
	LevelLow    Level = 0
	LevelMedium Level = 1
	LevelHigh   Level = 2
)

// Levels returns every level from highest to lowest, the order used by
// selectors.
func Levels() []Level {
	return []Level{LevelHigh, LevelMedium, LevelLow}
}

// Valid reports whether l is within the low..high range.
func (l Level) Valid() bool {
	return l >= LevelLow && l <= LevelHigh
}

// Frequency says whether a task happens once or repeats.
type Frequency string

// Frequency values.
const (
	FrequencyOneTime  Frequency = "one_time"
	FrequencyPeriodic Frequency = "periodic"
)

// Frequencies returns every frequency in display order.
func Frequencies() []Frequency {
	return []Frequency{FrequencyOneTime, FrequencyPeriodic}
}

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyOneTime || f == FrequencyPeriodic
}

// Task is a single planned piece of work. Duration and TotalPriority are
// derived; use CreateTask and UpdateTask so they stay consistent.
type Task struct {
	// ID is assigned at creation and never changes.
	ID string `json:"id" db:"id"`

	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Author      string `json:"author" db:"author"`
	Comment     string `json:"comment" db:"comment"`

	Status Status `json:"status" db:"status"`

	// StartDate and EndDate are optional; either, both, or neither may be set.
	StartDate *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" db:"end_date"`

	// Duration is EndDate-StartDate when both are set, otherwise zero.
	// It is never negative.
	Duration time.Duration `json:"duration" db:"duration"`

	Importance Level `json:"importance" db:"importance"`
	Urgency    Level `json:"urgency" db:"urgency"`

	// TotalPriority is derived from Importance and Urgency, range 0..4.
	TotalPriority int `json:"total_priority" db:"total_priority"`

	Frequency Frequency `json:"frequency" db:"frequency"`

	// Period describes the repeat interval; meaningful only for periodic tasks.
	Period string `json:"period" db:"period"`

	CompletionPercentage int `json:"completion_percentage" db:"completion_percentage"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PriorityLevel returns the named priority bucket of the task.
func (t Task) PriorityLevel() PriorityLevel {
	return PriorityStatus(t.TotalPriority)
}

// PriorityColor returns the display color of the task's priority.
func (t Task) PriorityColor() string {
	return PriorityColor(t.TotalPriority)
}

// HasSchedule reports whether both dates are set.
func (t Task) HasSchedule() bool {
	return t.StartDate != nil && t.EndDate != nil
}
