package calendar

import (
	"slices"
	"time"

	"github.com/nhle/inspion/internal/model"
)

// Intensity buckets the number of tasks on a day.
type Intensity string

// Intensity values.
const (
	IntensityNone   Intensity = "none"
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Intensity background colors.
const (
	ColorIntensityHigh   = "#ff6b6b"
	ColorIntensityMedium = "#ffd93d"
	ColorIntensityLow    = "#6bcf7f"
	ColorIntensityNone   = "#f8f9fa"
)

// IntensityFor maps a task count to its bucket.
func IntensityFor(count int) Intensity {
	switch {
	case count <= 0:
		return IntensityNone
	case count == 1:
		return IntensityLow
	case count == 2:
		return IntensityMedium
	default:
		return IntensityHigh
	}
}

// Color returns the background color of the bucket.
func (i Intensity) Color() string {
	switch i {
	case IntensityHigh:
		return ColorIntensityHigh
	case IntensityMedium:
		return ColorIntensityMedium
	case IntensityLow:
		return ColorIntensityLow
	default:
		return ColorIntensityNone
	}
}

var intensityLabels = map[model.Locale]map[Intensity]string{
	model.LocaleEN: {
		IntensityHigh:   "High load",
		IntensityMedium: "Medium load",
		IntensityLow:    "Low load",
		IntensityNone:   "Free",
	},
	model.LocaleRU: {
		IntensityHigh:   "Высокая загруженность",
		IntensityMedium: "Средняя загруженность",
		IntensityLow:    "Низкая загруженность",
		IntensityNone:   "Свободно",
	},
}

// Label returns the legend caption of the bucket.
func (i Intensity) Label(locale model.Locale) string {
	if l, ok := intensityLabels[locale][i]; ok {
		return l
	}
	return intensityLabels[model.LocaleEN][i]
}

// OnDay reports whether task belongs in the month cell for day. With both
// dates set the day must fall within the inclusive date range. With one
// date set the day must equal it. Undated tasks never match.
func OnDay(task model.Task, day time.Time) bool {
	loc := day.Location()
	d := StartOfDay(day)

	switch {
	case task.StartDate != nil && task.EndDate != nil:
		start := StartOfDay(task.StartDate.In(loc))
		end := StartOfDay(task.EndDate.In(loc))
		return !d.Before(start) && !d.After(end)
	case task.StartDate != nil:
		return SameDay(*task.StartDate, day, loc)
	case task.EndDate != nil:
		return SameDay(*task.EndDate, day, loc)
	default:
		return false
	}
}

// TasksOnDay returns the tasks placed on day, ordered by SortTime.
func TasksOnDay(tasks []model.Task, day time.Time) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if OnDay(t, day) {
			out = append(out, t)
		}
	}
	SortByTime(out)
	return out
}

// SortTime is the ordering key inside a cell: the start date, else the end
// date, else the zero time.
func SortTime(t model.Task) time.Time {
	if t.StartDate != nil {
		return *t.StartDate
	}
	if t.EndDate != nil {
		return *t.EndDate
	}
	return time.Time{}
}

// SortByTime orders tasks by SortTime ascending, keeping ties stable.
func SortByTime(tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		return SortTime(a).Compare(SortTime(b))
	})
}

// DayCell is one day of a month grid.
type DayCell struct {
	Date      time.Time
	Tasks     []model.Task
	Intensity Intensity
}

// Month is a month laid out for a seven-column grid.
type Month struct {
	// First is midnight of the first day of the month.
	First time.Time

	// Leading is the number of blank cells before the first day.
	Leading int

	Days []DayCell
}

// MonthGrid builds the grid for ref's month with columns starting at
// weekStart.
func MonthGrid(ref time.Time, tasks []model.Task, weekStart time.Weekday) Month {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	n := daysIn(first)

	m := Month{
		First:   first,
		Leading: (int(first.Weekday()) - int(weekStart) + 7) % 7,
		Days:    make([]DayCell, 0, n),
	}
	for i := range n {
		day := first.AddDate(0, 0, i)
		dayTasks := TasksOnDay(tasks, day)
		m.Days = append(m.Days, DayCell{
			Date:      day,
			Tasks:     dayTasks,
			Intensity: IntensityFor(len(dayTasks)),
		})
	}
	return m
}

// Weeks splits the grid into rows of seven. Blank cells are nil.
func (m Month) Weeks() [][]*DayCell {
	cells := make([]*DayCell, m.Leading, m.Leading+len(m.Days)+6)
	for i := range m.Days {
		cells = append(cells, &m.Days[i])
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}

	weeks := make([][]*DayCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// Cell returns the cell for day of month d (1-based).
func (m Month) Cell(d int) (DayCell, bool) {
	if d < 1 || d > len(m.Days) {
		return DayCell{}, false
	}
	return m.Days[d-1], true
}
