package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	ReplayedHeader    = "Idempotent-Replayed"

	idempotencyLockTTL = 30 * time.Second
	maxIdempotencyKey  = 128
)

type idempotentResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored 2xx response of a POST carrying an
// Idempotency-Key already seen within ttl. A concurrent request with the
// same key gets 409 while the first one runs. A nil rdb or an unreachable
// redis turns the middleware into a pass-through.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(idempKey) > maxIdempotencyKey {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Idempotency-Key is too long", nil)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		cacheKey := "idemp:" + c.FullPath() + ":" + idempKey
		lockKey := cacheKey + ":lock"

		if raw, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var saved idempotentResponse
			if json.Unmarshal(raw, &saved) == nil {
				c.Header(ReplayedHeader, "true")
				c.Data(saved.Status, "application/json; charset=utf-8", saved.Body)
				c.Abort()
				return
			}
		}

		locked, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			c.Next()
			return
		}
		if !locked {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}
		defer rdb.Del(context.WithoutCancel(ctx), lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if status := rec.Status(); status >= 200 && status < 300 {
			if payload, err := json.Marshal(idempotentResponse{Status: status, Body: rec.body.Bytes()}); err == nil {
				rdb.Set(ctx, cacheKey, payload, ttl)
			}
		}
	}
}
