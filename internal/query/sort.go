package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nhle/inspion/internal/model"
)

// SortKey names the field the list is ordered by.
type SortKey string

// Sort keys, in selector order.
const (
	SortTotalPriority SortKey = "total_priority"
	SortUrgency       SortKey = "urgency"
	SortImportance    SortKey = "importance"
	SortStartDate     SortKey = "start_date"
	SortEndDate       SortKey = "end_date"
	SortDuration      SortKey = "duration"
	SortTitle         SortKey = "title"
)

// SortKeys returns every key in selector order.
func SortKeys() []SortKey {
	return []SortKey{
		SortTotalPriority,
		SortUrgency,
		SortImportance,
		SortStartDate,
		SortEndDate,
		SortDuration,
		SortTitle,
	}
}

// ParseSortKey validates a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys(), k) {
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Next returns the key after k in selector order, wrapping around.
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	i := slices.Index(keys, k)
	return keys[(i+1)%len(keys)]
}

var sortLabels = map[model.Locale]map[SortKey]string{
	model.LocaleEN: {
		SortTotalPriority: "priority",
		SortUrgency:       "urgency",
		SortImportance:    "importance",
		SortStartDate:     "start date",
		SortEndDate:       "end date",
		SortDuration:      "duration",
		SortTitle:         "title",
	},
	model.LocaleRU: {
		SortTotalPriority: "по приоритету",
		SortUrgency:       "по срочности",
		SortImportance:    "по важности",
		SortStartDate:     "по дате начала",
		SortEndDate:       "по дате окончания",
		SortDuration:      "по продолжительности",
		SortTitle:         "по названию",
	},
}

// Label returns the selector caption of k.
func (k SortKey) Label(locale model.Locale) string {
	if l, ok := sortLabels[locale][k]; ok {
		return l
	}
	if l, ok := sortLabels[model.LocaleEN][k]; ok {
		return l
	}
	return "?" + string(k)
}

// Direction is ascending or descending.
type Direction int

// Sort directions.
const (
	Desc Direction = iota
	Asc
)

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Arrow returns a one-rune indicator of the direction.
func (d Direction) Arrow() string {
	if d == Asc {
		return "↑"
	}
	return "↓"
}

// Sort is a key and a direction.
type Sort struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort orders by total priority, highest first.
func DefaultSort() Sort {
	return Sort{Key: SortTotalPriority, Direction: Desc}
}

// SortTasks orders tasks in place. Ties keep their relative order.
func SortTasks(tasks []model.Task, s Sort) {
	compare := comparator(s.Key)
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		c := compare(a, b)
		if s.Direction == Desc {
			return -c
		}
		return c
	})
}

func comparator(k SortKey) func(a, b model.Task) int {
	switch k {
	case SortTitle:
		return func(a, b model.Task) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortStartDate:
		return func(a, b model.Task) int {
			return dateKey(a.StartDate).Compare(dateKey(b.StartDate))
		}
	case SortEndDate:
		return func(a, b model.Task) int {
			return dateKey(a.EndDate).Compare(dateKey(b.EndDate))
		}
	case SortDuration:
		return func(a, b model.Task) int { return cmp.Compare(a.Duration, b.Duration) }
	case SortImportance:
		return func(a, b model.Task) int { return cmp.Compare(a.Importance, b.Importance) }
	case SortUrgency:
		return func(a, b model.Task) int { return cmp.Compare(a.Urgency, b.Urgency) }
	default:
		return func(a, b model.Task) int { return cmp.Compare(a.TotalPriority, b.TotalPriority) }
	}
}

// dateKey maps a missing date to the earliest instant.
func dateKey(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
