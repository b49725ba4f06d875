package config

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/inspion/internal/keys"
	"github.com/nhle/inspion/internal/model"
)

// runSave completes the form and returns the message produced by the write.
func runSave(t *testing.T, m Model) (Model, configSavedInternalMsg) {
	t.Helper()
	m, cmd := m.save()
	require.Equal(t, ModeSaving, m.Mode())
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(configSavedInternalMsg); ok {
			return m, msg
		}
	}
	t.Fatal("no save result in batch")
	return m, configSavedInternalMsg{}
}

func TestStart_NormalizesBindings(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 40)
	cfg := *model.DefaultAppConfig()
	cfg.Display = model.DisplayConfig{
		Locale:        "ru",
		WeekStart:     "friday",
		DefaultSort:   "colour",
		DefaultFolder: "Archive",
	}

	m.Start(cfg, "")
	assert.Equal(t, ModeForm, m.Mode())
	assert.Equal(t, model.DisplayConfig{
		Locale:          "ru",
		WeekStart:       "monday",
		DefaultSort:     "total_priority",
		DefaultSortDesc: false,
		DefaultFolder:   "archive",
	}, m.Display())
	assert.Contains(t, m.View(), "Settings")
}

func TestSave_WritesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspion", "config.yaml")
	m := New(keys.DefaultKeyMap(), 100, 40)
	m.Start(*model.DefaultAppConfig(), path)
	m.formWeekStart = "sunday"
	m.formSort = "title"

	m, msg := runSave(t, m)
	require.NoError(t, msg.err)

	m, cmd := m.Update(msg)
	assert.Equal(t, ModeIdle, m.Mode())
	require.NotNil(t, cmd)
	saved, ok := cmd().(SavedMsg)
	require.True(t, ok)
	assert.Equal(t, "sunday", saved.Display.WeekStart)

	loaded, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sunday", loaded.Display.WeekStart)
	assert.Equal(t, "title", loaded.Display.DefaultSort)
	assert.True(t, loaded.Display.DefaultSortDesc)
}

func TestSave_FailureReopensForm(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	m := New(keys.DefaultKeyMap(), 100, 40)
	m.Start(*model.DefaultAppConfig(), filepath.Join(blocker, "config.yaml"))

	m, msg := runSave(t, m)
	require.Error(t, msg.err)

	m, _ = m.Update(msg)
	assert.Equal(t, ModeForm, m.Mode())
	assert.Contains(t, m.View(), "Error:")
}

func TestEscCancels(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 40)
	m.Start(*model.DefaultAppConfig(), "")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeIdle, m.Mode())
	require.NotNil(t, cmd)
	_, ok := cmd().(ConfigDoneMsg)
	assert.True(t, ok)
}
