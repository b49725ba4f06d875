package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/inspion/internal/app"
	"github.com/nhle/inspion/internal/calendar"
	"github.com/nhle/inspion/internal/logging"
	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/planner"
	"github.com/nhle/inspion/internal/query"
	"github.com/nhle/inspion/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "inspion:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var snapshots store.Snapshotter
	db, err := store.NewSQLiteStore(cfg.Snapshot.Path)
	if err != nil {
		logger.Warn("snapshot storage unavailable", zap.String("path", cfg.Snapshot.Path), zap.Error(err))
	} else {
		defer db.Close()
		snapshots = db
	}

	opts := []planner.Option{
		planner.WithLogger(logger),
		planner.WithWeekStart(calendar.ParseWeekStart(cfg.Display.WeekStart)),
	}
	if k, err := query.ParseSortKey(cfg.Display.DefaultSort); err == nil {
		dir := query.Asc
		if cfg.Display.DefaultSortDesc {
			dir = query.Desc
		}
		opts = append(opts, planner.WithSort(query.Sort{Key: k, Direction: dir}))
	} else if cfg.Display.DefaultSort != "" {
		logger.Warn("ignoring default sort", zap.String("sort", cfg.Display.DefaultSort))
	}
	if f, err := query.ParseFolder(cfg.Display.DefaultFolder); err == nil {
		opts = append(opts, planner.WithFolder(f))
	}

	p := planner.New(opts...)
	m := app.New(p, snapshots, model.ParseLocale(cfg.Display.Locale), logger).
		WithConfig(*cfg, model.DefaultConfigPath())

	logger.Info("starting", zap.String("config", model.DefaultConfigPath()))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
