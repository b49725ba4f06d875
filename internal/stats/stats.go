// Package stats summarizes workload over a task collection.
package stats

import (
	"time"

	"github.com/nhle/inspion/internal/model"
)

// Group is the summary of one status or priority bucket.
type Group[K comparable] struct {
	Key K

	// Count includes every task in the group.
	Count int

	// AverageDuration is the mean over tasks with a positive duration,
	// floored to whole milliseconds. Zero when there are none.
	AverageDuration time.Duration

	total time.Duration
	timed int
}

// Summary holds both groupings plus the collection-wide average.
// Groups appear in the order their key was first seen.
type Summary struct {
	ByStatus   []Group[model.Status]
	ByPriority []Group[model.PriorityLevel]

	// OverallAverage is the mean duration over every task with a positive
	// duration, floored to whole milliseconds.
	OverallAverage time.Duration

	Total int
}

// IsEmpty reports whether the summary covers no tasks.
func (s Summary) IsEmpty() bool {
	return s.Total == 0
}

// Summarize groups tasks by status and by priority level.
func Summarize(tasks []model.Task) Summary {
	var (
		byStatus   = newGrouping[model.Status]()
		byPriority = newGrouping[model.PriorityLevel]()
		total      time.Duration
		timed      int
	)

	for _, t := range tasks {
		status := t.Status
		if status == "" {
			status = model.StatusUnknown
		}
		byStatus.add(status, t.Duration)
		byPriority.add(t.PriorityLevel(), t.Duration)

		if t.Duration > 0 {
			total += t.Duration
			timed++
		}
	}

	return Summary{
		ByStatus:       byStatus.groups(),
		ByPriority:     byPriority.groups(),
		OverallAverage: average(total, timed),
		Total:          len(tasks),
	}
}

// grouping accumulates groups keyed by K in first-seen order.
type grouping[K comparable] struct {
	index map[K]int
	list  []Group[K]
}

func newGrouping[K comparable]() *grouping[K] {
	return &grouping[K]{index: make(map[K]int)}
}

func (g *grouping[K]) add(key K, d time.Duration) {
	i, ok := g.index[key]
	if !ok {
		i = len(g.list)
		g.index[key] = i
		g.list = append(g.list, Group[K]{Key: key})
	}
	grp := &g.list[i]
	grp.Count++
	if d > 0 {
		grp.total += d
		grp.timed++
	}
}

func (g *grouping[K]) groups() []Group[K] {
	for i := range g.list {
		g.list[i].AverageDuration = average(g.list[i].total, g.list[i].timed)
	}
	return g.list
}

func average(total time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return (total / time.Duration(n)).Truncate(time.Millisecond)
}
