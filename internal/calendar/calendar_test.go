package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/inspion/internal/calendar"
	"github.com/nhle/inspion/internal/model"
)

var created = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
}

func newTask(title string, start, end any) model.Task {
	return model.CreateTask(model.TaskInput{Title: title, StartDate: start, EndDate: end}, created)
}

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestOnDay(t *testing.T) {
	ranged := newTask("ranged", at(time.March, 4, 22, 0), at(time.March, 6, 1, 0))
	startOnly := newTask("start", at(time.March, 5, 15, 0), nil)
	endOnly := newTask("end", nil, at(time.March, 7, 8, 0))
	undated := newTask("undated", nil, nil)

	tests := []struct {
		name string
		task model.Task
		day  time.Time
		want bool
	}{
		{"range first day ignores time", ranged, at(time.March, 4, 0, 0), true},
		{"range middle", ranged, at(time.March, 5, 12, 0), true},
		{"range last day ignores time", ranged, at(time.March, 6, 23, 59), true},
		{"range before", ranged, at(time.March, 3, 23, 59), false},
		{"range after", ranged, at(time.March, 7, 0, 0), false},
		{"start only same day", startOnly, at(time.March, 5, 0, 0), true},
		{"start only other day", startOnly, at(time.March, 6, 0, 0), false},
		{"end only same day", endOnly, at(time.March, 7, 20, 0), true},
		{"end only other day", endOnly, at(time.March, 6, 0, 0), false},
		{"undated", undated, at(time.March, 5, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.OnDay(tt.task, tt.day))
		})
	}
}

func TestTasksOnDay_SortedByStartThenEnd(t *testing.T) {
	tasks := []model.Task{
		newTask("late", at(time.May, 1, 18, 0), at(time.May, 1, 19, 0)),
		newTask("end only", nil, at(time.May, 1, 9, 0)),
		newTask("early", at(time.May, 1, 7, 0), at(time.May, 1, 8, 0)),
		newTask("elsewhere", at(time.May, 2, 7, 0), nil),
	}

	got := calendar.TasksOnDay(tasks, at(time.May, 1, 0, 0))
	assert.Equal(t, []string{"early", "end only", "late"}, titles(got))
}

func TestIntensity(t *testing.T) {
	assert.Equal(t, calendar.IntensityNone, calendar.IntensityFor(0))
	assert.Equal(t, calendar.IntensityLow, calendar.IntensityFor(1))
	assert.Equal(t, calendar.IntensityMedium, calendar.IntensityFor(2))
	assert.Equal(t, calendar.IntensityHigh, calendar.IntensityFor(3))
	assert.Equal(t, calendar.IntensityHigh, calendar.IntensityFor(12))

	assert.Equal(t, "#ff6b6b", calendar.IntensityHigh.Color())
	assert.Equal(t, "#ffd93d", calendar.IntensityMedium.Color())
	assert.Equal(t, "#6bcf7f", calendar.IntensityLow.Color())
	assert.Equal(t, "#f8f9fa", calendar.IntensityNone.Color())
}

func TestMonthGrid_ThreeTasksIsHigh(t *testing.T) {
	tasks := []model.Task{
		newTask("a", at(time.January, 10, 9, 0), at(time.January, 10, 10, 0)),
		newTask("b", at(time.January, 10, 11, 0), nil),
		newTask("c", at(time.January, 9, 11, 0), at(time.January, 11, 11, 0)),
		newTask("d", nil, at(time.January, 11, 8, 0)),
	}

	m := calendar.MonthGrid(at(time.January, 20, 0, 0), tasks, time.Monday)

	require.Len(t, m.Days, 31)
	cell, ok := m.Cell(10)
	require.True(t, ok)
	assert.Equal(t, calendar.IntensityHigh, cell.Intensity)
	assert.Equal(t, "#ff6b6b", cell.Intensity.Color())
	assert.Equal(t, []string{"c", "a", "b"}, titles(cell.Tasks))

	cell, _ = m.Cell(11)
	assert.Equal(t, calendar.IntensityMedium, cell.Intensity)

	cell, _ = m.Cell(9)
	assert.Equal(t, calendar.IntensityLow, cell.Intensity)

	cell, _ = m.Cell(1)
	assert.Equal(t, calendar.IntensityNone, cell.Intensity)
	assert.Empty(t, cell.Tasks)
}

func TestMonthGrid_LeadingBlanks(t *testing.T) {
	// March 2024 starts on a Friday.
	ref := at(time.March, 15, 0, 0)

	monday := calendar.MonthGrid(ref, nil, time.Monday)
	assert.Equal(t, 4, monday.Leading)

	sunday := calendar.MonthGrid(ref, nil, time.Sunday)
	assert.Equal(t, 5, sunday.Leading)

	// April 2024 starts on a Monday.
	april := calendar.MonthGrid(at(time.April, 1, 0, 0), nil, time.Monday)
	assert.Equal(t, 0, april.Leading)
}

func TestMonthWeeks(t *testing.T) {
	m := calendar.MonthGrid(at(time.March, 1, 0, 0), nil, time.Monday)
	weeks := m.Weeks()

	require.Len(t, weeks, 5)
	for _, w := range weeks {
		assert.Len(t, w, 7)
	}
	assert.Nil(t, weeks[0][0])
	require.NotNil(t, weeks[0][4])
	assert.Equal(t, 1, weeks[0][4].Date.Day())
	require.NotNil(t, weeks[4][6])
	assert.Equal(t, 31, weeks[4][6].Date.Day())
}

func TestNavigate(t *testing.T) {
	ref := at(time.January, 31, 9, 0)

	assert.Equal(t, at(time.February, 1, 9, 0), calendar.Navigate(ref, calendar.ModeDay, 1))
	assert.Equal(t, at(time.January, 30, 9, 0), calendar.Navigate(ref, calendar.ModeDay, -1))
	assert.Equal(t, at(time.February, 29, 9, 0), calendar.Navigate(ref, calendar.ModeMonth, 1))
	assert.Equal(t, time.Date(2023, time.December, 31, 9, 0, 0, 0, time.UTC), calendar.Navigate(ref, calendar.ModeMonth, -1))
	assert.Equal(t, at(time.March, 31, 9, 0), calendar.Navigate(ref, calendar.ModeMonth, 2))
}

func TestWeekdayHeaders(t *testing.T) {
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, calendar.WeekdayHeaders(time.Monday, model.LocaleEN))
	assert.Equal(t, []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}, calendar.WeekdayHeaders(time.Sunday, model.LocaleRU))
}

func TestTitles(t *testing.T) {
	d := at(time.March, 5, 0, 0)
	assert.Equal(t, "March 2024", calendar.MonthTitle(d, model.LocaleEN))
	assert.Equal(t, "март 2024", calendar.MonthTitle(d, model.LocaleRU))
	assert.Equal(t, "Tuesday, March 5, 2024", calendar.DayTitle(d, model.LocaleEN))
	assert.Equal(t, "вторник, 5 марта 2024 г.", calendar.DayTitle(d, model.LocaleRU))
}
