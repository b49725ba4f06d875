package store

import (
	"context"
	"time"

	"github.com/nhle/inspion/internal/model"
)

// SnapshotInfo describes the most recent saved snapshot.
type SnapshotInfo struct {
	SavedAt   time.Time `db:"saved_at"`
	TaskCount int       `db:"task_count"`
}

// Snapshotter saves and restores the whole task collection. It is only used
// by explicit export and import commands; the running application keeps its
// tasks in a TaskCollection.
type Snapshotter interface {
	// SaveSnapshot replaces any previously saved tasks with tasks, keeping
	// their order.
	SaveSnapshot(ctx context.Context, tasks []model.Task) error

	// LoadSnapshot returns the saved tasks in saved order with derived
	// fields recomputed.
	LoadSnapshot(ctx context.Context) ([]model.Task, error)

	// LastSnapshot reports when the current snapshot was written.
	// ok is false when nothing has been saved yet.
	LastSnapshot(ctx context.Context) (info SnapshotInfo, ok bool, err error)

	Close() error
}
