package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hauldesk/haulcycle-backend-go/internal/export"
	"github.com/hauldesk/haulcycle-backend-go/internal/service"
	"github.com/hauldesk/haulcycle-backend-go/pkg/response"
)

// ExportHandler serves CSV downloads of the analyzed tables.
type ExportHandler struct {
	runService *service.RunService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(runService *service.RunService) *ExportHandler {
	return &ExportHandler{runService: runService}
}

// PointsCSV handles GET /api/v1/runs/:id/export/points.csv.
func (h *ExportHandler) PointsCSV(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid run ID")
		return
	}

	points, err := h.runService.GetAllPoints(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	setCSVHeaders(c, fmt.Sprintf("run_%d_points.csv", id))
	if err := export.WritePointsCSV(c.Writer, points); err != nil {
		// Headers are already out; all we can do is log through gin's error list.
		c.Error(err)
	}
}

// CyclesCSV handles GET /api/v1/runs/:id/export/cycles.csv.
func (h *ExportHandler) CyclesCSV(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid run ID")
		return
	}

	result, err := h.runService.GetCycles(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	setCSVHeaders(c, fmt.Sprintf("run_%d_cycles.csv", id))
	if err := export.WriteCyclesCSV(c.Writer, result.Cycles); err != nil {
		c.Error(err)
	}
}

func setCSVHeaders(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Status(http.StatusOK)
}
