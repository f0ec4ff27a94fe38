package service

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/hauldesk/haulcycle-backend-go/internal/cycle"
	"github.com/hauldesk/haulcycle-backend-go/internal/gpx"
	"github.com/hauldesk/haulcycle-backend-go/internal/models"
	"github.com/hauldesk/haulcycle-backend-go/internal/repository"
	"github.com/hauldesk/haulcycle-backend-go/internal/spatial"
)

// ErrRunNotFound is returned when the requested analysis run does not exist.
var ErrRunNotFound = errors.New("analysis run not found")

// RunService runs the segmentation pipeline and answers queries about stored
// runs.
type RunService struct {
	runRepo   *repository.RunRepository
	pointRepo *repository.PointRepository
	cycleRepo *repository.CycleRepository
}

// NewRunService creates a new run service.
func NewRunService(runRepo *repository.RunRepository, pointRepo *repository.PointRepository, cycleRepo *repository.CycleRepository) *RunService {
	return &RunService{
		runRepo:   runRepo,
		pointRepo: pointRepo,
		cycleRepo: cycleRepo,
	}
}

// Analyze executes the full pipeline over a GPX stream: parse, normalize,
// label, summarize, persist. Collaborator errors (parse failures, malformed
// points) fail the run and are propagated unchanged; an empty or cycle-free
// track is not an error.
func (s *RunService) Analyze(name, sourceFile string, r io.Reader, start, end spatial.Zone) (*models.AnalysisRun, error) {
	if start.RadiusM <= 0 || end.RadiusM <= 0 {
		return nil, fmt.Errorf("zone radius must be positive")
	}

	run := &models.AnalysisRun{
		Name:        name,
		SourceFile:  sourceFile,
		StartLat:    start.Lat,
		StartLon:    start.Lon,
		StartRadius: start.RadiusM,
		EndLat:      end.Lat,
		EndLon:      end.Lon,
		EndRadius:   end.RadiusM,
	}
	runID, err := s.runRepo.Create(run)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	labeled, summaries, err := s.segment(r, start, end)
	if err != nil {
		if markErr := s.runRepo.MarkFailed(runID, err.Error()); markErr != nil {
			log.Printf("[RunService] failed to mark run %d failed: %v", runID, markErr)
		}
		return nil, err
	}

	if err := s.pointRepo.InsertBatch(runID, labeled); err != nil {
		s.runRepo.MarkFailed(runID, err.Error())
		return nil, fmt.Errorf("failed to store points: %w", err)
	}
	if err := s.cycleRepo.InsertBatch(runID, summaries); err != nil {
		s.runRepo.MarkFailed(runID, err.Error())
		return nil, fmt.Errorf("failed to store cycles: %w", err)
	}
	if err := s.runRepo.MarkCompleted(runID, len(labeled), len(summaries)); err != nil {
		return nil, fmt.Errorf("failed to complete run: %w", err)
	}

	log.Printf("[RunService] run %d: %d points, %d cycles", runID, len(labeled), len(summaries))
	return s.GetRun(runID)
}

func (s *RunService) segment(r io.Reader, start, end spatial.Zone) ([]models.TrackPoint, []models.CycleSummary, error) {
	doc, err := gpx.ParseReader(r)
	if err != nil {
		return nil, nil, err
	}
	raw, err := doc.RawPoints()
	if err != nil {
		return nil, nil, err
	}

	normalized := cycle.Normalize(raw)
	labeled, openID := cycle.NewDetector(start, end).Label(normalized)
	summaries := cycle.Summarize(labeled, openID)
	return labeled, summaries, nil
}

// GetRun retrieves a single run.
func (s *RunService) GetRun(id int64) (*models.AnalysisRun, error) {
	run, err := s.runRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if run == nil {
		return nil, ErrRunNotFound
	}
	return run, nil
}

// ListRuns retrieves recent runs, newest first.
func (s *RunService) ListRuns(limit int) (*models.RunsResponse, error) {
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	runs, err := s.runRepo.List(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return &models.RunsResponse{Data: runs, Count: len(runs)}, nil
}

// GetPoints retrieves labeled points for a run with filtering and pagination.
func (s *RunService) GetPoints(runID int64, filter models.TrackPointFilter) (*models.TrackPointsResponse, error) {
	if _, err := s.GetRun(runID); err != nil {
		return nil, err
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

	points, total, err := s.pointRepo.GetPoints(runID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get points: %w", err)
	}

	return &models.TrackPointsResponse{
		Data:       points,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
	}, nil
}

// GetAllPoints retrieves the full labeled sequence of a run for export and
// chart rendering.
func (s *RunService) GetAllPoints(runID int64) ([]models.TrackPoint, error) {
	if _, err := s.GetRun(runID); err != nil {
		return nil, err
	}
	points, err := s.pointRepo.GetAllPoints(runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get points: %w", err)
	}
	return points, nil
}

// GetCycles retrieves the cycle summary table of a run.
func (s *RunService) GetCycles(runID int64) (*models.CyclesResponse, error) {
	if _, err := s.GetRun(runID); err != nil {
		return nil, err
	}
	cycles, err := s.cycleRepo.GetCycles(runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cycles: %w", err)
	}
	return &models.CyclesResponse{RunID: runID, Cycles: cycles, Count: len(cycles)}, nil
}

// Zones returns the zone pair a run was analyzed with.
func (s *RunService) Zones(runID int64) (spatial.Zone, spatial.Zone, error) {
	run, err := s.GetRun(runID)
	if err != nil {
		return spatial.Zone{}, spatial.Zone{}, err
	}
	start := spatial.Zone{Name: "Start Zone", Lat: run.StartLat, Lon: run.StartLon, RadiusM: run.StartRadius}
	end := spatial.Zone{Name: "End Zone", Lat: run.EndLat, Lon: run.EndLon, RadiusM: run.EndRadius}
	return start, end, nil
}

// DeleteRun removes a run together with its points and cycles.
func (s *RunService) DeleteRun(id int64) error {
	err := s.runRepo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRunNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
