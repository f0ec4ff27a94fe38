package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(Config{Path: path})
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, len(migrations), count)

	for _, table := range []string{"analysis_runs", "track_points", "cycles"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not re-apply migrations or fail on existing tables.
	db, err = Open(Config{Path: path})
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, len(migrations), count)
}

func TestForeignKeysEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(Config{Path: path})
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	err = db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(Config{Path: path})
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	err = Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			"INSERT INTO analysis_runs (name, start_lat, start_lon, start_radius_m, end_lat, end_lon, end_radius_m) VALUES ('x', 0, 0, 1, 0, 0, 1)",
		); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM analysis_runs").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
