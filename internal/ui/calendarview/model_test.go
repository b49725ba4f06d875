package calendarview

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/inspion/internal/calendar"
	"github.com/nhle/inspion/internal/keys"
	"github.com/nhle/inspion/internal/model"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", ChipTitleRunes))
	assert.Equal(t, "exactly fifteen", Truncate("exactly fifteen", ChipTitleRunes))
	assert.Equal(t, "Quarterly repor...", Truncate("Quarterly report draft", ChipTitleRunes))
	assert.Equal(t, "Подготовить пре...", Truncate("Подготовить презентацию", ChipTitleRunes))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc", Fit("abc", 5))
	assert.Equal(t, "ab", Fit("abcdef", 2))
	assert.Equal(t, "", Fit("abc", 0))
}

func TestTimeRange(t *testing.T) {
	day := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "10:00 - 12:30", TimeRange(day.Add(10*time.Hour), day.Add(12*time.Hour+30*time.Minute)))
	assert.Equal(t, "22:00 - 24:00", TimeRange(day.Add(22*time.Hour), day.AddDate(0, 0, 1)))
}

func TestSlotRange_ClampsToDay(t *testing.T) {
	dayStart := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	start := dayStart.Add(-2 * time.Hour)
	end := dayEnd.Add(3 * time.Hour)

	from, to := SlotRange(model.Task{StartDate: &start, EndDate: &end}, dayStart, dayEnd)
	assert.Equal(t, dayStart, from)
	assert.Equal(t, dayEnd, to)
}

func monthData(tasks []model.Task) Data {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return Data{
		Mode:      calendar.ModeMonth,
		Date:      date,
		Today:     date,
		WeekStart: time.Monday,
		Month:     calendar.MonthGrid(date, tasks, time.Monday),
		Timeline:  calendar.DayTimeline(tasks, date),
	}
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestMonth_CursorAndOpenDay(t *testing.T) {
	m := New(keys.DefaultKeyMap(), model.LocaleEN, 120, 40)
	m.SetData(monthData(nil))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := run(t, cmd)
	assert.Equal(t, OpenDayMsg{Date: time.Date(2024, 3, 23, 0, 0, 0, 0, time.UTC)}, msg)
}

func TestMonth_CursorClampsToMonth(t *testing.T) {
	m := New(keys.DefaultKeyMap(), model.LocaleEN, 120, 40)
	m.SetData(monthData(nil))

	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 31, m.cursor)
}

func TestNavigationKeys(t *testing.T) {
	m := New(keys.DefaultKeyMap(), model.LocaleEN, 120, 40)
	m.SetData(monthData(nil))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
	assert.Equal(t, NavigateMsg{Step: 1}, run(t, cmd))

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	assert.Equal(t, ModeMsg{Mode: calendar.ModeDay}, run(t, cmd))

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.Equal(t, TodayMsg{}, run(t, cmd))
}

func TestDay_SelectsSlots(t *testing.T) {
	tasks := []model.Task{
		timed("a", "Standup", 9, 10),
		timed("b", "Review", 14, 16),
	}
	d := monthData(tasks)
	d.Mode = calendar.ModeDay

	m := New(keys.DefaultKeyMap(), model.LocaleEN, 120, 40)
	m.SetData(d)
	require.Len(t, m.entries, 7) // Standup in 08-10, Review in 13-16

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SelectedTaskMsg{TaskID: "a"}, run(t, cmd))

	for range 3 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SelectedTaskMsg{TaskID: "b"}, run(t, cmd))

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeMsg{Mode: calendar.ModeMonth}, run(t, cmd))
}

func TestView_RendersTitles(t *testing.T) {
	tasks := []model.Task{timed("a", "Quarterly report draft", 9, 10)}

	m := New(keys.DefaultKeyMap(), model.LocaleEN, 160, 40)
	m.SetData(monthData(tasks))
	out := m.View()
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "Quarterly repor...")

	d := monthData(tasks)
	d.Mode = calendar.ModeDay
	m.SetData(d)
	out = m.View()
	assert.Contains(t, out, "Friday, March 15, 2024")
	assert.Contains(t, out, "09:00 - 10:00")
}

func timed(id, title string, from, to int) model.Task {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	start := day.Add(time.Duration(from) * time.Hour)
	end := day.Add(time.Duration(to) * time.Hour)
	return model.Task{
		ID:            id,
		Title:         title,
		Status:        model.StatusInProgress,
		StartDate:     &start,
		EndDate:       &end,
		Duration:      end.Sub(start),
		Importance:    model.LevelMedium,
		Urgency:       model.LevelMedium,
		TotalPriority: 2,
	}
}
