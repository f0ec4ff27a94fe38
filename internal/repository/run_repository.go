package repository

import (
	"database/sql"
	"fmt"

	"github.com/hauldesk/haulcycle-backend-go/internal/models"
)

// RunRepository handles database operations for analysis runs.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new run in running state and returns its id.
func (r *RunRepository) Create(run *models.AnalysisRun) (int64, error) {
	query := `INSERT INTO analysis_runs
		(name, source_file, start_lat, start_lon, start_radius_m, end_lat, end_lon, end_radius_m, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.Exec(query,
		run.Name, run.SourceFile,
		run.StartLat, run.StartLon, run.StartRadius,
		run.EndLat, run.EndLon, run.EndRadius,
		models.RunStatusRunning,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// MarkCompleted records final counts and flips the run to completed.
func (r *RunRepository) MarkCompleted(id int64, pointCount, cycleCount int) error {
	query := `UPDATE analysis_runs
		SET status = ?, point_count = ?, cycle_count = ?
		WHERE id = ?`

	if _, err := r.db.Exec(query, models.RunStatusCompleted, pointCount, cycleCount, id); err != nil {
		return fmt.Errorf("failed to mark run completed: %w", err)
	}
	return nil
}

// MarkFailed flips the run to failed with an error message.
func (r *RunRepository) MarkFailed(id int64, errMsg string) error {
	query := `UPDATE analysis_runs SET status = ?, error_message = ? WHERE id = ?`

	if _, err := r.db.Exec(query, models.RunStatusFailed, errMsg, id); err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

const runColumns = `id, name, source_file, start_lat, start_lon, start_radius_m,
	end_lat, end_lon, end_radius_m, status, point_count, cycle_count, error_message, created_at`

// GetByID retrieves a single run, or nil when absent.
func (r *RunRepository) GetByID(id int64) (*models.AnalysisRun, error) {
	query := `SELECT ` + runColumns + ` FROM analysis_runs WHERE id = ?`

	var run models.AnalysisRun
	err := r.db.QueryRow(query, id).Scan(
		&run.ID, &run.Name, &run.SourceFile,
		&run.StartLat, &run.StartLon, &run.StartRadius,
		&run.EndLat, &run.EndLon, &run.EndRadius,
		&run.Status, &run.PointCount, &run.CycleCount, &run.Error, &run.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// List retrieves runs, newest first.
func (r *RunRepository) List(limit int) ([]models.AnalysisRun, error) {
	if limit < 1 {
		limit = 100
	}
	query := `SELECT ` + runColumns + ` FROM analysis_runs ORDER BY id DESC LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.AnalysisRun
	for rows.Next() {
		var run models.AnalysisRun
		if err := rows.Scan(
			&run.ID, &run.Name, &run.SourceFile,
			&run.StartLat, &run.StartLon, &run.StartRadius,
			&run.EndLat, &run.EndLon, &run.EndRadius,
			&run.Status, &run.PointCount, &run.CycleCount, &run.Error, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return runs, nil
}

// Delete removes a run; points and cycles cascade.
func (r *RunRepository) Delete(id int64) error {
	res, err := r.db.Exec("DELETE FROM analysis_runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
