// Package db persists inventory counts, settings and plan history in SQLite.
package db

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"craftcalc/internal/logger"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	sql *sql.DB
}

// Open opens (or creates) the SQLite database in dataDir and runs migrations.
func Open(dataDir string) (*DB, error) {
	path := filepath.Join(dataDir, "craftcalc.db")
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate() error {
	version := 0
	d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS config (
				key   TEXT PRIMARY KEY,
				value TEXT NOT NULL
			);

			CREATE TABLE IF NOT EXISTS inventory (
				item_id TEXT PRIMARY KEY,
				qty     INTEGER NOT NULL
			);

			CREATE TABLE IF NOT EXISTS plan_history (
				id             INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp      TEXT NOT NULL,
				target_item_id TEXT NOT NULL,
				target_name    TEXT NOT NULL,
				quantity       INTEGER NOT NULL,
				mode           TEXT NOT NULL,
				raw_count      INTEGER NOT NULL,
				craft_count    INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_plan_history_ts ON plan_history(timestamp);

			INSERT INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}
