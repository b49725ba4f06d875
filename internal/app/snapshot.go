package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/store"
)

// snapshotTimeout bounds a single export or import.
const snapshotTimeout = 10 * time.Second

var errNoSnapshots = errors.New("snapshot storage is not available")

// snapshotInfoMsg carries the last export time loaded at startup.
type snapshotInfoMsg struct {
	info store.SnapshotInfo
	ok   bool
}

// snapshotSavedMsg is sent after an export finishes.
type snapshotSavedMsg struct {
	info store.SnapshotInfo
	err  error
}

// snapshotLoadedMsg carries the tasks read by an import.
type snapshotLoadedMsg struct {
	tasks []model.Task
	err   error
}

// loadSnapshotInfo reads the last export time. Failures leave the header
// without it.
func (m Model) loadSnapshotInfo() tea.Cmd {
	s := m.snapshots
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		info, ok, err := s.LastSnapshot(ctx)
		if err != nil {
			return snapshotInfoMsg{}
		}
		return snapshotInfoMsg{info: info, ok: ok}
	}
}

// exportSnapshot saves a copy of the current collection.
func (m Model) exportSnapshot() tea.Cmd {
	s := m.snapshots
	tasks := m.planner.Tasks()
	return func() tea.Msg {
		if s == nil {
			return snapshotSavedMsg{err: errNoSnapshots}
		}
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		if err := s.SaveSnapshot(ctx, tasks); err != nil {
			return snapshotSavedMsg{err: err}
		}
		info, _, err := s.LastSnapshot(ctx)
		if err != nil {
			return snapshotSavedMsg{err: err}
		}
		return snapshotSavedMsg{info: info}
	}
}

// importSnapshot reads the saved collection. The planner is only touched
// when the message comes back to Update.
func (m Model) importSnapshot() tea.Cmd {
	s := m.snapshots
	return func() tea.Msg {
		if s == nil {
			return snapshotLoadedMsg{err: errNoSnapshots}
		}
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		tasks, err := s.LoadSnapshot(ctx)
		return snapshotLoadedMsg{tasks: tasks, err: err}
	}
}
