package logging_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/inspion/internal/logging"
	"github.com/nhle/inspion/internal/model"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := logging.New(model.LoggingConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("discarded")
}

func TestNew_WritesToFile(t *testing.T) {
	for _, dev := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "logs", "inspion.log")

		logger, err := logging.New(model.LoggingConfig{Path: path, Development: dev})
		require.NoError(t, err)

		task := model.CreateTask(model.TaskInput{Title: "logged"}, time.Now())
		logger.Info("task created", logging.Task(task)...)
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "task created")
		assert.Contains(t, string(data), task.ID)
	}
}
