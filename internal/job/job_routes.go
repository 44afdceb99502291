package job

import (
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, logger *zap.Logger) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.ContextLogger(logger))
	{
		jobs.GET("", h.GetAll)
		jobs.GET("/:id", h.GetById)
	}
}
