package db

import "database/sql"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS lists (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	color TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT 'local',
	is_default INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS reminders (
	id TEXT PRIMARY KEY,
	list_id TEXT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	priority INTEGER NOT NULL DEFAULT 0,
	is_completed INTEGER NOT NULL DEFAULT 0,
	completion_date DATETIME,
	start_date DATETIME,
	due_date DATETIME,
	url TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS alarms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reminder_id TEXT NOT NULL REFERENCES reminders(id) ON DELETE CASCADE,
	kind TEXT NOT NULL,
	minutes_before INTEGER NOT NULL DEFAULT 0,
	absolute_date DATETIME,
	location_title TEXT NOT NULL DEFAULT '',
	latitude REAL NOT NULL DEFAULT 0,
	longitude REAL NOT NULL DEFAULT 0,
	radius REAL NOT NULL DEFAULT 0,
	proximity TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS recurrence_rules (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reminder_id TEXT NOT NULL REFERENCES reminders(id) ON DELETE CASCADE,
	frequency TEXT NOT NULL,
	interval INTEGER NOT NULL DEFAULT 1,
	end_date DATETIME,
	occurrence_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_reminders_list ON reminders(list_id);
CREATE INDEX IF NOT EXISTS idx_alarms_reminder ON alarms(reminder_id);
CREATE INDEX IF NOT EXISTS idx_rules_reminder ON recurrence_rules(reminder_id);
`

// GetSchemaSQL returns the authoritative schema. Tests load the schema
// through this function so test and production schemas cannot drift.
func GetSchemaSQL() string {
	return schemaSQL
}

// InitSchema creates the tables if they do not exist yet.
func InitSchema(conn *sql.DB) error {
	_, err := conn.Exec(schemaSQL)
	return err
}
