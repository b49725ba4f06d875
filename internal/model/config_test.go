package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/inspion/internal/model"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := model.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Display.Locale)
	assert.Equal(t, "monday", cfg.Display.WeekStart)
	assert.Equal(t, "total_priority", cfg.Display.DefaultSort)
	assert.True(t, cfg.Display.DefaultSortDesc)
	assert.Equal(t, "all", cfg.Display.DefaultFolder)
	assert.NotEmpty(t, cfg.Snapshot.Path)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "display:\n  locale: ru\n  week_start: sunday\nlogging:\n  path: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Display.Locale)
	assert.Equal(t, "sunday", cfg.Display.WeekStart)
	assert.Equal(t, "total_priority", cfg.Display.DefaultSort)
	assert.Empty(t, cfg.Logging.Path)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := model.DefaultAppConfig()
	cfg.Display.Locale = "ru"
	cfg.Display.DefaultFolder = "archive"
	cfg.Snapshot.Path = "/tmp/inspion-test.db"

	require.NoError(t, model.SaveConfig(path, cfg))

	loaded, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ru", loaded.Display.Locale)
	assert.Equal(t, "archive", loaded.Display.DefaultFolder)
	assert.Equal(t, "/tmp/inspion-test.db", loaded.Snapshot.Path)
}
