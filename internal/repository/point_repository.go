package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/hauldesk/haulcycle-backend-go/internal/database"
	"github.com/hauldesk/haulcycle-backend-go/internal/models"
)

// PointRepository handles database operations for labeled track points.
type PointRepository struct {
	db *sql.DB
}

// NewPointRepository creates a new point repository.
func NewPointRepository(db *sql.DB) *PointRepository {
	return &PointRepository{db: db}
}

// InsertBatch stores a labeled sequence for a run in one transaction.
// Timestamps are persisted as unix seconds.
func (r *PointRepository) InsertBatch(runID int64, points []models.TrackPoint) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO track_points
			(run_id, seq, ts, latitude, longitude, distance_from_prev_m,
			 cumulative_distance_m, time_delta_s, speed_m_s, cycle_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range points {
			var cycleID interface{}
			if p.CycleID != nil {
				cycleID = *p.CycleID
			}
			if _, err := stmt.Exec(
				runID, p.Seq, p.Time.Unix(), p.Latitude, p.Longitude,
				p.DistanceFromPrev, p.CumulativeDist, p.TimeDelta, p.Speed,
				cycleID,
			); err != nil {
				return fmt.Errorf("failed to insert point %d: %w", p.Seq, err)
			}
		}
		return nil
	})
}

const pointColumns = `seq, ts, latitude, longitude, distance_from_prev_m,
	cumulative_distance_m, time_delta_s, speed_m_s, cycle_id`

// GetPoints retrieves labeled points for a run with filtering and pagination,
// in normalized order.
func (r *PointRepository) GetPoints(runID int64, filter models.TrackPointFilter) ([]models.TrackPoint, int64, error) {
	conditions := []string{"run_id = ?"}
	args := []interface{}{runID}

	if filter.CycleID > 0 {
		conditions = append(conditions, "cycle_id = ?")
		args = append(args, filter.CycleID)
	}
	if filter.StartTime > 0 {
		conditions = append(conditions, "ts >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "ts <= ?")
		args = append(args, filter.EndTime)
	}
	if filter.MinSpeed > 0 {
		conditions = append(conditions, "speed_m_s >= ?")
		args = append(args, filter.MinSpeed)
	}
	if filter.MaxSpeed > 0 {
		conditions = append(conditions, "speed_m_s <= ?")
		args = append(args, filter.MaxSpeed)
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM track_points"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count track points: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 1000
	}
	if filter.PageSize > 10000 {
		filter.PageSize = 10000
	}
	offset := (filter.Page - 1) * filter.PageSize

	query := "SELECT " + pointColumns + " FROM track_points" + where +
		" ORDER BY seq ASC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query track points: %w", err)
	}
	defer rows.Close()

	points, err := scanPoints(rows)
	if err != nil {
		return nil, 0, err
	}
	return points, total, nil
}

// GetAllPoints retrieves every labeled point of a run in normalized order,
// for export and chart rendering.
func (r *PointRepository) GetAllPoints(runID int64) ([]models.TrackPoint, error) {
	query := "SELECT " + pointColumns + " FROM track_points WHERE run_id = ? ORDER BY seq ASC"

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query track points: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

func scanPoints(rows *sql.Rows) ([]models.TrackPoint, error) {
	var points []models.TrackPoint
	for rows.Next() {
		var p models.TrackPoint
		var ts int64
		var cycleID sql.NullInt64
		if err := rows.Scan(
			&p.Seq, &ts, &p.Latitude, &p.Longitude,
			&p.DistanceFromPrev, &p.CumulativeDist, &p.TimeDelta, &p.Speed,
			&cycleID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan track point: %w", err)
		}
		p.Time = time.Unix(ts, 0).UTC()
		if cycleID.Valid {
			id := int(cycleID.Int64)
			p.CycleID = &id
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating track points: %w", err)
	}
	return points, nil
}
