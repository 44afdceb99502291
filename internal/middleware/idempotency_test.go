package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idempTTL  = 24 * time.Hour
	cacheKey  = "idemp:/insert_batch:abc"
	lockKey   = cacheKey + ":lock"
	batchBody = `{"ok":true}`
)

func idempotentRouter(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	r := setupRouter()
	r.POST("/insert_batch", middleware.Idempotency(rdb, idempTTL), func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r, mock
}

func postBatch(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/insert_batch", nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("first request runs handler and stores response", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"status":201,"body":`+batchBody+`}`), idempTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := postBatch(r, "abc")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeated key replays stored response", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)
		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":` + batchBody + `}`)

		w := postBatch(r, "abc")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, calls)
		assert.Equal(t, "true", w.Header().Get(middleware.ReplayedHeader))
		assert.JSONEq(t, batchBody, w.Body.String())
	})

	t.Run("in-flight key conflicts", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := postBatch(r, "abc")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no key passes through", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		w := postBatch(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
