package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hauldesk/haulcycle-backend-go/internal/config"
	"github.com/hauldesk/haulcycle-backend-go/internal/handler"
	"github.com/hauldesk/haulcycle-backend-go/internal/middleware"
	"github.com/hauldesk/haulcycle-backend-go/internal/repository"
	"github.com/hauldesk/haulcycle-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the analyst dashboard.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	runService := service.NewRunService(
		repository.NewRunRepository(db),
		repository.NewPointRepository(db),
		repository.NewCycleRepository(db),
	)
	runHandler := handler.NewRunHandler(runService, cfg.DefaultZoneRadius)
	exportHandler := handler.NewExportHandler(runService)
	chartHandler := handler.NewChartHandler(runService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Haul Cycle API is running",
		})
	})

	auth := middleware.BearerAuth(cfg.JWTSecret)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(300, time.Minute))
	{
		runs := api.Group("/runs")
		{
			runs.POST("", auth, runHandler.CreateRun)
			runs.GET("", runHandler.ListRuns)
			runs.GET("/:id", runHandler.GetRun)
			runs.GET("/:id/points", runHandler.GetPoints)
			runs.GET("/:id/cycles", runHandler.GetCycles)
			runs.DELETE("/:id", auth, runHandler.DeleteRun)

			runs.GET("/:id/export/points.csv", exportHandler.PointsCSV)
			runs.GET("/:id/export/cycles.csv", exportHandler.CyclesCSV)

			runs.GET("/:id/charts/timeline", chartHandler.Timeline)
			runs.GET("/:id/charts/speed", chartHandler.Speed)
			runs.GET("/:id/charts/map", chartHandler.Map)
		}
	}

	return r
}
