package department

import (
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, logger *zap.Logger) {
	departments := r.Group("/departments")
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("", h.GetAll)
		departments.GET("/:id", h.GetById)
	}
}
