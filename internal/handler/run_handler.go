package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hauldesk/haulcycle-backend-go/internal/models"
	"github.com/hauldesk/haulcycle-backend-go/internal/service"
	"github.com/hauldesk/haulcycle-backend-go/internal/spatial"
	"github.com/hauldesk/haulcycle-backend-go/pkg/response"
)

// RunHandler handles HTTP requests for analysis runs.
type RunHandler struct {
	runService *service.RunService

	// Applied when a request omits a zone radius.
	defaultRadius float64
}

// NewRunHandler creates a new run handler.
func NewRunHandler(runService *service.RunService, defaultRadius float64) *RunHandler {
	return &RunHandler{
		runService:    runService,
		defaultRadius: defaultRadius,
	}
}

// analyzeRequest carries the zone configuration of an upload.
type analyzeRequest struct {
	Name        string  `form:"name"`
	StartLat    float64 `form:"startLat"`
	StartLon    float64 `form:"startLon"`
	StartRadius float64 `form:"startRadius"`
	EndLat      float64 `form:"endLat"`
	EndLon      float64 `form:"endLon"`
	EndRadius   float64 `form:"endRadius"`
}

// CreateRun handles POST /api/v1/runs: a multipart GPX upload plus zone
// parameters. The whole pipeline runs synchronously; the response carries the
// finished run.
func (h *RunHandler) CreateRun(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form parameters")
		return
	}
	if req.StartRadius <= 0 {
		req.StartRadius = h.defaultRadius
	}
	if req.EndRadius <= 0 {
		req.EndRadius = h.defaultRadius
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing GPX file upload")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	defer file.Close()

	name := req.Name
	if name == "" {
		name = fileHeader.Filename
	}
	start := spatial.Zone{Name: "Start Zone", Lat: req.StartLat, Lon: req.StartLon, RadiusM: req.StartRadius}
	end := spatial.Zone{Name: "End Zone", Lat: req.EndLat, Lon: req.EndLon, RadiusM: req.EndRadius}

	run, err := h.runService.Analyze(name, fileHeader.Filename, file, start, end)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, run)
}

// ListRuns handles GET /api/v1/runs.
func (h *RunHandler) ListRuns(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	result, err := h.runService.ListRuns(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, result)
}

// GetRun handles GET /api/v1/runs/:id.
func (h *RunHandler) GetRun(c *gin.Context) {
	id, ok := h.runID(c)
	if !ok {
		return
	}

	run, err := h.runService.GetRun(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	response.Success(c, run)
}

// GetPoints handles GET /api/v1/runs/:id/points.
func (h *RunHandler) GetPoints(c *gin.Context) {
	id, ok := h.runID(c)
	if !ok {
		return
	}

	var filter models.TrackPointFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.runService.GetPoints(id, filter)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// GetCycles handles GET /api/v1/runs/:id/cycles.
func (h *RunHandler) GetCycles(c *gin.Context) {
	id, ok := h.runID(c)
	if !ok {
		return
	}

	result, err := h.runService.GetCycles(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteRun handles DELETE /api/v1/runs/:id.
func (h *RunHandler) DeleteRun(c *gin.Context) {
	id, ok := h.runID(c)
	if !ok {
		return
	}

	if err := h.runService.DeleteRun(id); err != nil {
		renderServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}

func (h *RunHandler) runID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid run ID")
		return 0, false
	}
	return id, true
}

func renderServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrRunNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	response.InternalError(c, err.Error())
}
