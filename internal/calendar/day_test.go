package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/inspion/internal/calendar"
	"github.com/nhle/inspion/internal/model"
)

func busyHours(buckets []calendar.HourBucket) []int {
	var hours []int
	for _, b := range calendar.Busy(buckets) {
		hours = append(hours, b.Hour)
	}
	return hours
}

func TestDayTimeline_TwoHourTask(t *testing.T) {
	task := newTask("standup", "2024-01-01T10:00:00Z", "2024-01-01T12:00:00Z")
	assert.Equal(t, int64(7200000), task.Duration.Milliseconds())

	buckets := calendar.DayTimeline([]model.Task{task}, at(time.January, 1, 0, 0))

	require.Len(t, buckets, calendar.HoursPerDay)
	assert.Equal(t, []int{9, 10, 11, 12}, busyHours(buckets))

	edge := buckets[9].Slots[0]
	assert.Equal(t, at(time.January, 1, 10, 0), edge.From)
	assert.Equal(t, at(time.January, 1, 10, 0), edge.To)

	slot := buckets[11].Slots[0]
	assert.Equal(t, at(time.January, 1, 11, 0), slot.From)
	assert.Equal(t, at(time.January, 1, 12, 0), slot.To)
}

func TestDayTimeline_ClampsDisplayRange(t *testing.T) {
	task := newTask("meeting", at(time.June, 3, 9, 15), at(time.June, 3, 10, 40))

	buckets := calendar.DayTimeline([]model.Task{task}, at(time.June, 3, 0, 0))

	assert.Equal(t, []int{9, 10}, busyHours(buckets))
	assert.Equal(t, at(time.June, 3, 9, 15), buckets[9].Slots[0].From)
	assert.Equal(t, at(time.June, 3, 10, 0), buckets[9].Slots[0].To)
	assert.Equal(t, at(time.June, 3, 10, 0), buckets[10].Slots[0].From)
	assert.Equal(t, at(time.June, 3, 10, 40), buckets[10].Slots[0].To)
}

func TestDayTimeline_MultiDayTaskFillsDay(t *testing.T) {
	task := newTask("trip", at(time.June, 2, 12, 0), at(time.June, 4, 12, 0))

	buckets := calendar.DayTimeline([]model.Task{task}, at(time.June, 3, 0, 0))

	assert.Len(t, calendar.Busy(buckets), 24)
	assert.Equal(t, at(time.June, 3, 0, 0), buckets[0].Slots[0].From)
	assert.Equal(t, at(time.June, 4, 0, 0), buckets[23].Slots[0].To)
}

func TestDayTimeline_SingleDateExcluded(t *testing.T) {
	startOnly := newTask("start only", at(time.June, 3, 9, 0), nil)
	endOnly := newTask("end only", nil, at(time.June, 3, 9, 0))

	buckets := calendar.DayTimeline([]model.Task{startOnly, endOnly}, at(time.June, 3, 0, 0))

	assert.Empty(t, calendar.Busy(buckets))
	assert.True(t, calendar.OnDay(startOnly, at(time.June, 3, 0, 0)))
	assert.Zero(t, startOnly.Duration)
}

func TestDayTimeline_InstantTask(t *testing.T) {
	task := newTask("ping", at(time.June, 3, 14, 0), at(time.June, 3, 14, 0))

	buckets := calendar.DayTimeline([]model.Task{task}, at(time.June, 3, 0, 0))

	assert.Equal(t, []int{13, 14}, busyHours(buckets))
	assert.Equal(t, at(time.June, 3, 14, 0), buckets[14].Slots[0].From)
}

func TestDayTimeline_ReversedTask(t *testing.T) {
	wide := newTask("backwards", at(time.June, 3, 14, 0), at(time.June, 3, 10, 0))
	narrow := newTask("typo", at(time.June, 3, 10, 30), at(time.June, 3, 10, 10))

	buckets := calendar.DayTimeline([]model.Task{wide, narrow}, at(time.June, 3, 0, 0))

	require.Equal(t, []int{10}, busyHours(buckets))
	require.Len(t, buckets[10].Slots, 1)
	assert.Equal(t, "typo", buckets[10].Slots[0].Task.Title)
}

func TestDayTimeline_OrdersSlotsByStart(t *testing.T) {
	late := newTask("late", at(time.June, 3, 10, 30), at(time.June, 3, 10, 45))
	early := newTask("early", at(time.June, 3, 10, 5), at(time.June, 3, 10, 20))

	buckets := calendar.DayTimeline([]model.Task{late, early}, at(time.June, 3, 0, 0))

	var got []string
	for _, s := range buckets[10].Slots {
		got = append(got, s.Task.Title)
	}
	assert.Equal(t, []string{"early", "late"}, got)
}

func TestDayTimeline_OtherDayExcluded(t *testing.T) {
	task := newTask("yesterday", at(time.June, 2, 9, 0), at(time.June, 2, 10, 0))

	buckets := calendar.DayTimeline([]model.Task{task}, at(time.June, 3, 0, 0))

	assert.Empty(t, calendar.Busy(buckets))
}
