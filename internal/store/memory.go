package store

import (
	"slices"

	"github.com/nhle/inspion/internal/model"
)

// TaskCollection is the ordered in-memory set of tasks owned by the
// planner. Insertion order is the display fallback order. Ids are unique.
// It is not safe for concurrent use.
type TaskCollection struct {
	tasks []model.Task
}

// NewTaskCollection returns a collection holding tasks in the given order.
// Later duplicates of an id are dropped.
func NewTaskCollection(tasks ...model.Task) *TaskCollection {
	c := &TaskCollection{}
	c.Reset(tasks)
	return c
}

// Add appends task. It returns false and leaves the collection unchanged
// when the id is already present.
func (c *TaskCollection) Add(task model.Task) bool {
	if c.indexOf(task.ID) >= 0 {
		return false
	}
	c.tasks = append(c.tasks, task)
	return true
}

// Replace swaps the task stored under id for task, keeping its position.
// A missing id is a no-op. The stored id is always kept.
func (c *TaskCollection) Replace(id string, task model.Task) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	task.ID = id
	c.tasks[i] = task
	return true
}

// Remove deletes the task with the given id. A missing id is a no-op.
func (c *TaskCollection) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.tasks = slices.Delete(c.tasks, i, i+1)
	return true
}

// Get returns the task with the given id.
func (c *TaskCollection) Get(id string) (model.Task, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return c.tasks[i], true
}

// All returns a copy of every task in insertion order.
func (c *TaskCollection) All() []model.Task {
	return slices.Clone(c.tasks)
}

// Len returns the number of tasks.
func (c *TaskCollection) Len() int {
	return len(c.tasks)
}

// Reset replaces the contents with tasks, dropping repeated ids.
func (c *TaskCollection) Reset(tasks []model.Task) {
	c.tasks = make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		c.Add(t)
	}
}

func (c *TaskCollection) indexOf(id string) int {
	return slices.IndexFunc(c.tasks, func(t model.Task) bool { return t.ID == id })
}
