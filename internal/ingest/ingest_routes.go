package ingest

import (
	"time"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const batchReplayTTL = 24 * time.Hour

// RegisterRoutes mounts the write endpoints. A non-nil rdb makes
// /insert_batch honour Idempotency-Key.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, logger *zap.Logger, rdb *redis.Client) {
	r.POST("/upload_csv",
		middleware.RateLimitByIP(0.2, 2),
		middleware.ContextLogger(logger),
		h.UploadCSV,
	)
	r.POST("/insert_batch",
		middleware.RateLimitByIP(1, 5),
		middleware.ContextLogger(logger),
		middleware.Idempotency(rdb, batchReplayTTL),
		h.InsertBatch,
	)
}
