package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/store"
)

func task(id, title string) model.Task {
	return model.Task{ID: id, Title: title, Status: model.StatusInProgress}
}

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestTaskCollection_AddKeepsInsertionOrder(t *testing.T) {
	c := store.NewTaskCollection()

	assert.True(t, c.Add(task("a", "first")))
	assert.True(t, c.Add(task("b", "second")))
	assert.True(t, c.Add(task("c", "third")))

	assert.Equal(t, []string{"first", "second", "third"}, titles(c.All()))
	assert.Equal(t, 3, c.Len())
}

func TestTaskCollection_AddDuplicateIsRejected(t *testing.T) {
	c := store.NewTaskCollection(task("a", "first"))

	assert.False(t, c.Add(task("a", "impostor")))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, 1, c.Len())
}

func TestTaskCollection_Replace(t *testing.T) {
	c := store.NewTaskCollection(task("a", "first"), task("b", "second"))

	assert.True(t, c.Replace("a", task("zzz", "renamed")))
	assert.Equal(t, []string{"renamed", "second"}, titles(c.All()))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
}

func TestTaskCollection_ReplaceMissingDoesNotInsert(t *testing.T) {
	c := store.NewTaskCollection(task("a", "first"))

	assert.False(t, c.Replace("missing", task("missing", "ghost")))
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestTaskCollection_Remove(t *testing.T) {
	c := store.NewTaskCollection(task("a", "first"), task("b", "second"), task("c", "third"))

	assert.True(t, c.Remove("b"))
	assert.Equal(t, []string{"first", "third"}, titles(c.All()))

	assert.False(t, c.Remove("b"))
	assert.Equal(t, 2, c.Len())
}

func TestTaskCollection_AllReturnsCopy(t *testing.T) {
	c := store.NewTaskCollection(task("a", "first"))

	all := c.All()
	all[0].Title = "mutated"

	got, _ := c.Get("a")
	assert.Equal(t, "first", got.Title)
}

func TestTaskCollection_ResetDropsRepeatedIDs(t *testing.T) {
	c := store.NewTaskCollection(task("x", "old"))

	c.Reset([]model.Task{task("a", "one"), task("b", "two"), task("a", "dup")})

	assert.Equal(t, []string{"one", "two"}, titles(c.All()))
	_, ok := c.Get("x")
	assert.False(t, ok)
}
