package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id                    TEXT PRIMARY KEY,
	position              INTEGER NOT NULL,
	title                 TEXT NOT NULL DEFAULT '',
	description           TEXT NOT NULL DEFAULT '',
	author                TEXT NOT NULL DEFAULT '',
	comment               TEXT NOT NULL DEFAULT '',
	status                TEXT NOT NULL DEFAULT 'in_progress',
	start_date            DATETIME,
	end_date              DATETIME,
	importance            INTEGER NOT NULL DEFAULT 1,
	urgency               INTEGER NOT NULL DEFAULT 1,
	frequency             TEXT NOT NULL DEFAULT 'one_time',
	period                TEXT NOT NULL DEFAULT '',
	completion_percentage INTEGER NOT NULL DEFAULT 0
		CHECK(completion_percentage BETWEEN 0 AND 100),
	created_at            DATETIME NOT NULL,
	updated_at            DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE TABLE IF NOT EXISTS snapshot_meta (
	id         INTEGER PRIMARY KEY CHECK(id = 1),
	saved_at   DATETIME NOT NULL,
	task_count INTEGER NOT NULL
);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
