package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration is one versioned schema step. The SQL ships with the binary so a
// deployment is never missing its migration files.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_analysis_runs",
		SQL: `
			CREATE TABLE IF NOT EXISTS analysis_runs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				source_file TEXT NOT NULL DEFAULT '',
				start_lat REAL NOT NULL,
				start_lon REAL NOT NULL,
				start_radius_m REAL NOT NULL,
				end_lat REAL NOT NULL,
				end_lon REAL NOT NULL,
				end_radius_m REAL NOT NULL,
				status TEXT NOT NULL DEFAULT 'running',
				point_count INTEGER NOT NULL DEFAULT 0,
				cycle_count INTEGER NOT NULL DEFAULT 0,
				error_message TEXT,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_track_points",
		SQL: `
			CREATE TABLE IF NOT EXISTS track_points (
				run_id INTEGER NOT NULL REFERENCES analysis_runs(id) ON DELETE CASCADE,
				seq INTEGER NOT NULL,
				ts INTEGER NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				distance_from_prev_m REAL NOT NULL,
				cumulative_distance_m REAL NOT NULL,
				time_delta_s REAL NOT NULL,
				speed_m_s REAL NOT NULL,
				cycle_id INTEGER,
				PRIMARY KEY (run_id, seq)
			);
			CREATE INDEX IF NOT EXISTS idx_track_points_cycle
				ON track_points(run_id, cycle_id)
		`,
	},
	{
		Version: 3,
		Name:    "create_cycles",
		SQL: `
			CREATE TABLE IF NOT EXISTS cycles (
				run_id INTEGER NOT NULL REFERENCES analysis_runs(id) ON DELETE CASCADE,
				cycle_id INTEGER NOT NULL,
				start_time INTEGER NOT NULL,
				end_time INTEGER NOT NULL,
				duration_min REAL NOT NULL,
				distance_m REAL NOT NULL,
				point_count INTEGER NOT NULL,
				complete INTEGER NOT NULL DEFAULT 1,
				PRIMARY KEY (run_id, cycle_id)
			)
		`,
	},
}

// Migrate applies pending migrations in version order.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("[database] applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}
