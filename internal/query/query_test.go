package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/query"
	"github.com/nhle/inspion/tests/testutil"
)

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func fixture() []model.Task {
	day := func(d int) time.Time { return testutil.Date(2024, time.March, d, 9, 0) }
	return []model.Task{
		testutil.NewTask("Plan offsite", model.StatusProject, day(10), day(12), model.LevelHigh, model.LevelLow),
		testutil.NewTask("Fix login bug", model.StatusInProgress, day(1), day(2), model.LevelHigh, model.LevelHigh),
		testutil.NewTask("Write docs", model.StatusInProgress, time.Time{}, time.Time{}, model.LevelLow, model.LevelLow),
		testutil.NewTask("Old report", model.StatusCompleted, day(5), time.Time{}, model.LevelMedium, model.LevelMedium),
		testutil.NewTask("Dropped idea", model.StatusCancelled, time.Time{}, day(3), model.LevelLow, model.LevelHigh),
		testutil.NewTask("someday", model.StatusPostponed, time.Time{}, time.Time{}, model.LevelMedium, model.LevelLow),
	}
}

func TestFolderContains(t *testing.T) {
	tests := []struct {
		folder query.Folder
		want   []model.Status
	}{
		{query.FolderProjects, []model.Status{model.StatusProject, model.StatusPostponed}},
		{query.FolderCurrent, []model.Status{model.StatusInProgress}},
		{query.FolderArchive, []model.Status{model.StatusCompleted, model.StatusCancelled}},
		{query.FolderAll, model.Statuses()},
	}

	for _, tt := range tests {
		t.Run(string(tt.folder), func(t *testing.T) {
			for _, s := range model.Statuses() {
				assert.Equal(t, contains(tt.want, s), tt.folder.Contains(s), "status %s", s)
			}
		})
	}
}

func contains(list []model.Status, s model.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestSelect(t *testing.T) {
	tasks := fixture()

	tests := []struct {
		name   string
		filter query.Filter
		want   []string
	}{
		{"zero filter", query.Filter{}, titles(tasks)},
		{"folder current", query.Filter{Folder: query.FolderCurrent}, []string{"Fix login bug", "Write docs"}},
		{"folder archive", query.Filter{Folder: query.FolderArchive}, []string{"Old report", "Dropped idea"}},
		{"search case insensitive", query.Filter{Search: "REPORT"}, []string{"Old report"}},
		{"importance", query.Filter{Importance: ptr(model.LevelHigh)}, []string{"Plan offsite", "Fix login bug"}},
		{"urgency low", query.Filter{Urgency: ptr(model.LevelLow)}, []string{"Plan offsite", "Write docs", "someday"}},
		{"priority medium", query.Filter{Priority: ptr(model.PriorityMedium)}, []string{"Plan offsite", "Old report", "Dropped idea"}},
		{"status", query.Filter{Status: ptr(model.StatusPostponed)}, []string{"someday"}},
		{
			"conjunctive",
			query.Filter{Folder: query.FolderProjects, Importance: ptr(model.LevelHigh), Search: "off"},
			[]string{"Plan offsite"},
		},
		{"folder and status disagree", query.Filter{Folder: query.FolderCurrent, Status: ptr(model.StatusCompleted)}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(query.Select(tasks, tt.filter)))
		})
	}
}

func TestSortTasks(t *testing.T) {
	tests := []struct {
		name string
		sort query.Sort
		want []string
	}{
		{
			"default priority desc",
			query.DefaultSort(),
			[]string{"Fix login bug", "Plan offsite", "Old report", "Dropped idea", "someday", "Write docs"},
		},
		{
			"title asc ignores case",
			query.Sort{Key: query.SortTitle, Direction: query.Asc},
			[]string{"Dropped idea", "Fix login bug", "Old report", "Plan offsite", "someday", "Write docs"},
		},
		{
			"start date asc puts missing first",
			query.Sort{Key: query.SortStartDate, Direction: query.Asc},
			[]string{"Write docs", "Dropped idea", "someday", "Fix login bug", "Old report", "Plan offsite"},
		},
		{
			"end date desc puts missing last",
			query.Sort{Key: query.SortEndDate, Direction: query.Desc},
			[]string{"Plan offsite", "Dropped idea", "Fix login bug", "Write docs", "Old report", "someday"},
		},
		{
			"duration desc",
			query.Sort{Key: query.SortDuration, Direction: query.Desc},
			[]string{"Plan offsite", "Fix login bug", "Write docs", "Old report", "Dropped idea", "someday"},
		},
		{
			"urgency asc",
			query.Sort{Key: query.SortUrgency, Direction: query.Asc},
			[]string{"Plan offsite", "Write docs", "someday", "Old report", "Fix login bug", "Dropped idea"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := fixture()
			query.SortTasks(tasks, tt.sort)
			assert.Equal(t, tt.want, titles(tasks))
		})
	}
}

func TestApply_FiltersThenSorts(t *testing.T) {
	got := query.Apply(fixture(),
		query.Filter{Folder: query.FolderArchive},
		query.Sort{Key: query.SortTitle, Direction: query.Asc})

	assert.Equal(t, []string{"Dropped idea", "Old report"}, titles(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	tasks := fixture()
	before := titles(tasks)

	query.Apply(tasks, query.Filter{}, query.Sort{Key: query.SortTitle, Direction: query.Asc})

	assert.Equal(t, before, titles(tasks))
}

func TestParseFilterValues(t *testing.T) {
	assert.Nil(t, query.ParseLevelFilter("all"))
	assert.Nil(t, query.ParseLevelFilter(""))
	assert.Nil(t, query.ParseLevelFilter("7"))
	require.NotNil(t, query.ParseLevelFilter("0"))
	assert.Equal(t, model.LevelLow, *query.ParseLevelFilter("0"))

	assert.Nil(t, query.ParseStatusFilter("all"))
	assert.Nil(t, query.ParseStatusFilter("bogus"))
	assert.Equal(t, model.StatusCompleted, *query.ParseStatusFilter("completed"))

	assert.Nil(t, query.ParsePriorityFilter("all"))
	assert.Equal(t, model.PriorityVeryHigh, *query.ParsePriorityFilter("very_high"))
}

func TestParseFolderAndSortKey(t *testing.T) {
	f, err := query.ParseFolder("Archive")
	require.NoError(t, err)
	assert.Equal(t, query.FolderArchive, f)

	_, err = query.ParseFolder("trash")
	assert.Error(t, err)

	k, err := query.ParseSortKey("duration")
	require.NoError(t, err)
	assert.Equal(t, query.SortDuration, k)

	_, err = query.ParseSortKey("colour")
	assert.Error(t, err)
}

func TestSortKeyNextCycles(t *testing.T) {
	k := query.SortTotalPriority
	for range query.SortKeys() {
		k = k.Next()
	}
	assert.Equal(t, query.SortTotalPriority, k)
	assert.Equal(t, query.Asc, query.Desc.Toggle())
}

func TestFolderLabel(t *testing.T) {
	assert.Equal(t, "Актуальное", query.FolderCurrent.Label(model.LocaleRU))
	assert.Equal(t, "Archive", query.FolderArchive.Label(model.LocaleEN))
	assert.Equal(t, "?trash", query.Folder("trash").Label(model.LocaleEN))
}
