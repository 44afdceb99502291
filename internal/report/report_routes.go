package report

import (
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, logger *zap.Logger) {
	reports := r.Group("/reports")
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("/quarterly-hires", h.QuarterlyHires)
		reports.GET("/departments-above-average", h.DepartmentsAboveAverage)
		reports.GET("/export", h.Export)
	}
}
