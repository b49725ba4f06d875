package testutil

import (
	"testing"
	"time"

	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// Date returns a local-time instant for building fixtures.
func Date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

// NewTask builds a task through model.CreateTask with the given schedule
// and priority inputs. Zero start or end times leave the date unset.
func NewTask(title string, status model.Status, start, end time.Time, importance, urgency model.Level) model.Task {
	return model.CreateTask(model.TaskInput{
		Title:      title,
		Status:     status,
		StartDate:  start,
		EndDate:    end,
		Importance: int(importance),
		Urgency:    int(urgency),
	}, Date(2024, time.January, 1, 0, 0))
}
