package hiredemployee

import (
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, logger *zap.Logger) {
	hired := r.Group("/hired_employees")
	hired.Use(middleware.ContextLogger(logger))
	{
		hired.GET("", h.GetAll)
		hired.GET("/:id", h.GetById)
	}
}
