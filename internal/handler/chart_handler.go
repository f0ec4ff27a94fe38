package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hauldesk/haulcycle-backend-go/internal/charts"
	"github.com/hauldesk/haulcycle-backend-go/internal/service"
	"github.com/hauldesk/haulcycle-backend-go/pkg/response"
)

// ChartHandler renders the visual summaries of a run as HTML pages.
type ChartHandler struct {
	runService *service.RunService
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(runService *service.RunService) *ChartHandler {
	return &ChartHandler{runService: runService}
}

// Timeline handles GET /api/v1/runs/:id/charts/timeline.
func (h *ChartHandler) Timeline(c *gin.Context) {
	id, ok := chartRunID(c)
	if !ok {
		return
	}

	result, err := h.runService.GetCycles(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := charts.RenderTimeline(c.Writer, result.Cycles); err != nil {
		c.Error(err)
	}
}

// Speed handles GET /api/v1/runs/:id/charts/speed.
func (h *ChartHandler) Speed(c *gin.Context) {
	id, ok := chartRunID(c)
	if !ok {
		return
	}

	points, err := h.runService.GetAllPoints(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := charts.RenderSpeed(c.Writer, points); err != nil {
		c.Error(err)
	}
}

// Map handles GET /api/v1/runs/:id/charts/map.
func (h *ChartHandler) Map(c *gin.Context) {
	id, ok := chartRunID(c)
	if !ok {
		return
	}

	points, err := h.runService.GetAllPoints(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	start, end, err := h.runService.Zones(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := charts.RenderMap(c.Writer, points, start, end); err != nil {
		c.Error(err)
	}
}

func chartRunID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid run ID")
		return 0, false
	}
	return id, true
}
