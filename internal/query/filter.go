// Package query filters, sorts and groups tasks for list display.
package query

import (
	"fmt"
	"strings"

	"github.com/nhle/inspion/internal/model"
)

// Folder is a coarse grouping of statuses shown as list tabs.
type Folder string

// Folder values.
const (
	FolderAll      Folder = "all"
	FolderProjects Folder = "projects"
	FolderCurrent  Folder = "current"
	FolderArchive  Folder = "archive"
)

// Folders returns every folder in tab order.
func Folders() []Folder {
	return []Folder{FolderAll, FolderProjects, FolderCurrent, FolderArchive}
}

// ParseFolder validates a folder name.
func ParseFolder(s string) (Folder, error) {
	f := Folder(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FolderAll, FolderProjects, FolderCurrent, FolderArchive:
		return f, nil
	default:
		return "", fmt.Errorf("unknown folder %q", s)
	}
}

// Contains reports whether a task with status s belongs in the folder.
// FolderAll and unknown folders contain everything.
func (f Folder) Contains(s model.Status) bool {
	switch f {
	case FolderProjects:
		return s == model.StatusProject || s == model.StatusPostponed
	case FolderCurrent:
		return s == model.StatusInProgress
	case FolderArchive:
		return s == model.StatusCompleted || s == model.StatusCancelled
	default:
		return true
	}
}

var folderLabels = map[model.Locale]map[Folder]string{
	model.LocaleEN: {
		FolderAll:      "All tasks",
		FolderProjects: "Planned",
		FolderCurrent:  "Current",
		FolderArchive:  "Archive",
	},
	model.LocaleRU: {
		FolderAll:      "Все задачи",
		FolderProjects: "В планах",
		FolderCurrent:  "Актуальное",
		FolderArchive:  "Архив",
	},
}

// Label returns the tab title of the folder.
func (f Folder) Label(locale model.Locale) string {
	if l, ok := folderLabels[locale][f]; ok {
		return l
	}
	if l, ok := folderLabels[model.LocaleEN][f]; ok {
		return l
	}
	return "?" + string(f)
}

// Filter selects tasks for the list. Nil fields mean "all". Every set
// field must match.
type Filter struct {
	// Search is matched case-insensitively against the title.
	Search string

	Importance *model.Level
	Urgency    *model.Level
	Priority   *model.PriorityLevel
	Status     *model.Status
	Folder     Folder
}

// IsZero reports whether the filter lets every task through.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Importance == nil && f.Urgency == nil &&
		f.Priority == nil && f.Status == nil &&
		(f.Folder == "" || f.Folder == FolderAll)
}

// Match reports whether task passes the filter.
func (f Filter) Match(task model.Task) bool {
	if !f.Folder.Contains(task.Status) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(task.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Importance != nil && task.Importance != *f.Importance {
		return false
	}
	if f.Urgency != nil && task.Urgency != *f.Urgency {
		return false
	}
	if f.Priority != nil && task.PriorityLevel() != *f.Priority {
		return false
	}
	if f.Status != nil && task.Status != *f.Status {
		return false
	}
	return true
}

// Select returns the tasks that pass f, keeping their order.
func Select(tasks []model.Task, f Filter) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Apply filters tasks and then sorts the result.
func Apply(tasks []model.Task, f Filter, s Sort) []model.Task {
	out := Select(tasks, f)
	SortTasks(out, s)
	return out
}

// All is the raw filter value that disables a field.
const All = "all"

// ParseLevelFilter turns a raw selector value into a level filter.
// "all", empty and unparseable values disable the filter.
func ParseLevelFilter(s string) *model.Level {
	s = strings.TrimSpace(s)
	if s == "" || s == All {
		return nil
	}
	switch s {
	case "0", "1", "2":
		l := model.ParseLevel(s)
		return &l
	default:
		return nil
	}
}

// ParseStatusFilter turns a raw selector value into a status filter.
func ParseStatusFilter(s string) *model.Status {
	if strings.TrimSpace(s) == All {
		return nil
	}
	st, err := model.ParseStatus(s)
	if err != nil {
		return nil
	}
	return &st
}

// ParsePriorityFilter turns a raw selector value into a priority filter.
func ParsePriorityFilter(s string) *model.PriorityLevel {
	p := model.PriorityLevel(strings.TrimSpace(s))
	if !p.Valid() {
		return nil
	}
	return &p
}
