package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, 3, response.NewPaginationMeta(21, 1, 10).TotalPages)
	assert.Equal(t, 2, response.NewPaginationMeta(20, 1, 10).TotalPages)
	assert.Equal(t, 0, response.NewPaginationMeta(5, 1, 0).TotalPages)
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "bad", nil)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "INVALID_INPUT", body["error"].(map[string]any)["code"])
	assert.NotContains(t, body, "data")
}
