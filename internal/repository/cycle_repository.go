package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hauldesk/haulcycle-backend-go/internal/database"
	"github.com/hauldesk/haulcycle-backend-go/internal/models"
)

// CycleRepository handles database operations for cycle summaries.
type CycleRepository struct {
	db *sql.DB
}

// NewCycleRepository creates a new cycle repository.
func NewCycleRepository(db *sql.DB) *CycleRepository {
	return &CycleRepository{db: db}
}

// InsertBatch stores the summary table for a run in one transaction.
func (r *CycleRepository) InsertBatch(runID int64, cycles []models.CycleSummary) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO cycles
			(run_id, cycle_id, start_time, end_time, duration_min, distance_m, point_count, complete)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, c := range cycles {
			if _, err := stmt.Exec(
				runID, c.CycleID, c.StartTime.Unix(), c.EndTime.Unix(),
				c.DurationMin, c.DistanceM, c.PointCount, c.Complete,
			); err != nil {
				return fmt.Errorf("failed to insert cycle %d: %w", c.CycleID, err)
			}
		}
		return nil
	})
}

// GetCycles retrieves the cycle summaries for a run ordered by cycle id.
func (r *CycleRepository) GetCycles(runID int64) ([]models.CycleSummary, error) {
	query := `SELECT run_id, cycle_id, start_time, end_time, duration_min, distance_m, point_count, complete
		FROM cycles WHERE run_id = ? ORDER BY cycle_id ASC`

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cycles: %w", err)
	}
	defer rows.Close()

	var cycles []models.CycleSummary
	for rows.Next() {
		var c models.CycleSummary
		var start, end int64
		if err := rows.Scan(
			&c.RunID, &c.CycleID, &start, &end,
			&c.DurationMin, &c.DistanceM, &c.PointCount, &c.Complete,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cycle: %w", err)
		}
		c.StartTime = time.Unix(start, 0).UTC()
		c.EndTime = time.Unix(end, 0).UTC()
		cycles = append(cycles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cycles: %w", err)
	}
	return cycles, nil
}
