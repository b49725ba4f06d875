package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/inspion/internal/model"
)

// SQLiteStore implements Snapshotter using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

var _ Snapshotter = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration version.
func (s *SQLiteStore) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.GetContext(ctx, &v, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// SaveSnapshot replaces the stored tasks in a single transaction.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, tasks []model.Task) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}

	const query = `
		INSERT INTO tasks (
			id, position, title, description, author, comment,
			status, start_date, end_date,
			importance, urgency, frequency, period,
			completion_percentage, created_at, updated_at
		) VALUES (
			?, ?, ?, ?, ?, ?,
			?, ?, ?,
			?, ?, ?, ?,
			?, ?, ?
		)`

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		_, err = stmt.ExecContext(ctx,
			t.ID, i, t.Title, t.Description, t.Author, t.Comment,
			string(t.Status), nullableUTC(t.StartDate), nullableUTC(t.EndDate),
			int(t.Importance), int(t.Urgency), string(t.Frequency), t.Period,
			t.CompletionPercentage, t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("inserting task %s: %w", t.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO snapshot_meta (id, saved_at, task_count) VALUES (1, ?, ?)",
		time.Now().UTC(), len(tasks),
	)
	if err != nil {
		return fmt.Errorf("recording snapshot metadata: %w", err)
	}

	return tx.Commit()
}

// LoadSnapshot reads every stored task in saved order.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context) ([]model.Task, error) {
	var rows []taskRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, title, description, author, comment,
			status, start_date, end_date,
			importance, urgency, frequency, period,
			completion_percentage, created_at, updated_at
		FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toTask())
	}
	return tasks, nil
}

// LastSnapshot returns metadata for the stored snapshot, if any.
func (s *SQLiteStore) LastSnapshot(ctx context.Context) (SnapshotInfo, bool, error) {
	var info SnapshotInfo
	err := s.db.GetContext(ctx, &info, "SELECT saved_at, task_count FROM snapshot_meta WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return SnapshotInfo{}, false, nil
	}
	if err != nil {
		return SnapshotInfo{}, false, fmt.Errorf("reading snapshot metadata: %w", err)
	}
	return info, true, nil
}

// taskRow mirrors the tasks table. Derived fields are not stored.
type taskRow struct {
	ID                   string       `db:"id"`
	Title                string       `db:"title"`
	Description          string       `db:"description"`
	Author               string       `db:"author"`
	Comment              string       `db:"comment"`
	Status               string       `db:"status"`
	StartDate            sql.NullTime `db:"start_date"`
	EndDate              sql.NullTime `db:"end_date"`
	Importance           int          `db:"importance"`
	Urgency              int          `db:"urgency"`
	Frequency            string       `db:"frequency"`
	Period               string       `db:"period"`
	CompletionPercentage int          `db:"completion_percentage"`
	CreatedAt            time.Time    `db:"created_at"`
	UpdatedAt            time.Time    `db:"updated_at"`
}

// toTask converts a row back into a task in local time and re-derives
// Duration and TotalPriority.
func (r taskRow) toTask() model.Task {
	t := model.Task{
		ID:                   r.ID,
		Title:                r.Title,
		Description:          r.Description,
		Author:               r.Author,
		Comment:              r.Comment,
		Status:               model.Status(r.Status),
		StartDate:            localTime(r.StartDate),
		EndDate:              localTime(r.EndDate),
		Importance:           model.Level(r.Importance),
		Urgency:              model.Level(r.Urgency),
		Frequency:            model.Frequency(r.Frequency),
		Period:               r.Period,
		CompletionPercentage: r.CompletionPercentage,
		CreatedAt:            r.CreatedAt.Local(),
		UpdatedAt:            r.UpdatedAt.Local(),
	}
	t.Duration = model.ComputeDuration(t.StartDate, t.EndDate)
	t.TotalPriority = model.CalculateTotalPriority(t.Importance, t.Urgency)
	return t
}

func localTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.Local()
	return &t
}

// nullableUTC converts an optional instant for storage.
func nullableUTC(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
