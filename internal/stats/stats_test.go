package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/stats"
)

var base = time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

func timed(status model.Status, d time.Duration, importance, urgency int) model.Task {
	in := model.TaskInput{Status: status, Importance: importance, Urgency: urgency}
	if d > 0 {
		in.StartDate = base
		in.EndDate = base.Add(d)
	}
	return model.CreateTask(in, base)
}

func TestSummarize_CompletedScenario(t *testing.T) {
	tasks := []model.Task{
		timed(model.StatusCompleted, time.Hour, 1, 1),
		timed(model.StatusCompleted, 3*time.Hour, 1, 1),
		timed(model.StatusCompleted, 0, 1, 1),
	}

	s := stats.Summarize(tasks)

	require.Len(t, s.ByStatus, 1)
	assert.Equal(t, model.StatusCompleted, s.ByStatus[0].Key)
	assert.Equal(t, 3, s.ByStatus[0].Count)
	assert.Equal(t, 2*time.Hour, s.ByStatus[0].AverageDuration)
	assert.Equal(t, 2*time.Hour, s.OverallAverage)
	assert.Equal(t, 3, s.Total)
}

func TestSummarize_GroupsInFirstSeenOrder(t *testing.T) {
	tasks := []model.Task{
		timed(model.StatusPostponed, 0, 2, 2),
		timed(model.StatusInProgress, time.Hour, 0, 0),
		timed(model.StatusPostponed, 2*time.Hour, 2, 2),
		timed(model.StatusCancelled, 0, 1, 1),
	}

	s := stats.Summarize(tasks)

	var statuses []model.Status
	for _, g := range s.ByStatus {
		statuses = append(statuses, g.Key)
	}
	assert.Equal(t, []model.Status{model.StatusPostponed, model.StatusInProgress, model.StatusCancelled}, statuses)

	var levels []model.PriorityLevel
	for _, g := range s.ByPriority {
		levels = append(levels, g.Key)
	}
	assert.Equal(t, []model.PriorityLevel{model.PriorityVeryHigh, model.PriorityVeryLow, model.PriorityMedium}, levels)

	assert.Equal(t, 2, s.ByPriority[0].Count)
	assert.Equal(t, 2*time.Hour, s.ByPriority[0].AverageDuration)
	assert.Zero(t, s.ByPriority[2].AverageDuration)
	assert.Equal(t, 90*time.Minute, s.OverallAverage)
}

func TestSummarize_EmptyGroupsAbsent(t *testing.T) {
	s := stats.Summarize([]model.Task{timed(model.StatusProject, 0, 1, 1)})

	assert.Len(t, s.ByStatus, 1)
	assert.Len(t, s.ByPriority, 1)
	assert.Zero(t, s.OverallAverage)
}

func TestSummarize_Empty(t *testing.T) {
	s := stats.Summarize(nil)

	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.ByStatus)
	assert.Empty(t, s.ByPriority)
	assert.Zero(t, s.OverallAverage)
}

func TestSummarize_AverageFlooredToMillisecond(t *testing.T) {
	tasks := []model.Task{
		timed(model.StatusInProgress, time.Millisecond, 1, 1),
		timed(model.StatusInProgress, 2*time.Millisecond, 1, 1),
	}

	s := stats.Summarize(tasks)

	assert.Equal(t, time.Millisecond, s.OverallAverage)
	assert.Equal(t, time.Millisecond, s.ByStatus[0].AverageDuration)
}

func TestSummarize_EmptyStatusIsUnknown(t *testing.T) {
	task := timed(model.StatusInProgress, 0, 1, 1)
	task.Status = ""

	s := stats.Summarize([]model.Task{task})

	require.Len(t, s.ByStatus, 1)
	assert.Equal(t, model.StatusUnknown, s.ByStatus[0].Key)
}

func TestSummarize_OutOfRangePriorityIsUnknown(t *testing.T) {
	task := timed(model.StatusInProgress, 0, 1, 1)
	task.TotalPriority = 9

	s := stats.Summarize([]model.Task{task})

	require.Len(t, s.ByPriority, 1)
	assert.Equal(t, model.PriorityUnknown, s.ByPriority[0].Key)
}
