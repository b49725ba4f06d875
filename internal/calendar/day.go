package calendar

import (
	"slices"
	"time"

	"github.com/nhle/inspion/internal/model"
)

// HoursPerDay is the number of timeline buckets.
const HoursPerDay = 24

// Slot is a task shown in an hour bucket, with the part of the task that
// falls inside the hour.
type Slot struct {
	Task model.Task
	From time.Time
	To   time.Time
}

// HourBucket is one [Start, End) hour of the day timeline.
type HourBucket struct {
	Hour  int
	Start time.Time
	End   time.Time
	Slots []Slot
}

// DayTimeline returns 24 hourly buckets for day. Only tasks with both dates
// set are placed. A task lands in an hour when start <= hour end and
// end >= hour start, so a task touching an hour at its edge is listed there
// too. Slots in a bucket are ordered by SortTime.
func DayTimeline(tasks []model.Task, day time.Time) []HourBucket {
	midnight := StartOfDay(day)
	buckets := make([]HourBucket, HoursPerDay)

	for h := range buckets {
		start := midnight.Add(time.Duration(h) * time.Hour)
		end := start.Add(time.Hour)
		b := HourBucket{Hour: h, Start: start, End: end}

		for _, t := range tasks {
			if slot, ok := placeInHour(t, start, end); ok {
				b.Slots = append(b.Slots, slot)
			}
		}
		slices.SortStableFunc(b.Slots, func(x, y Slot) int {
			return SortTime(x.Task).Compare(SortTime(y.Task))
		})
		buckets[h] = b
	}
	return buckets
}

// placeInHour clamps the task to the hour for display.
func placeInHour(t model.Task, start, end time.Time) (Slot, bool) {
	if t.StartDate == nil || t.EndDate == nil {
		return Slot{}, false
	}
	ts, te := *t.StartDate, *t.EndDate
	if ts.After(end) || te.Before(start) {
		return Slot{}, false
	}

	from := ts
	if start.After(from) {
		from = start
	}
	to := te
	if end.Before(to) {
		to = end
	}
	return Slot{Task: t, From: from, To: to}, true
}

// Busy returns the buckets that hold at least one slot.
func Busy(buckets []HourBucket) []HourBucket {
	var out []HourBucket
	for _, b := range buckets {
		if len(b.Slots) > 0 {
			out = append(out, b)
		}
	}
	return out
}
