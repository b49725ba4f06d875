// Package logging builds the application's zap logger. Output goes to a
// file because the terminal belongs to the UI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nhle/inspion/internal/model"
)

const timeLayout = "2006/01/02 15:04:05"

// New returns a logger writing to cfg.Path. An empty path disables logging.
func New(cfg model.LoggingConfig) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory for %s: %w", cfg.Path, err)
	}

	var config zap.Config
	if cfg.Development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Sampling = nil
	}
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	config.OutputPaths = []string{cfg.Path}
	config.ErrorOutputPaths = []string{cfg.Path}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// Task returns the standard fields for a task.
func Task(t model.Task) []zap.Field {
	return []zap.Field{
		zap.String("task_id", t.ID),
		zap.String("status", string(t.Status)),
		zap.Int("total_priority", t.TotalPriority),
	}
}
