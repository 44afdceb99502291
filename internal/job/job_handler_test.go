package job_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job"
	joberrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job/errors"
	jobMock "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := jobMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), "x").Return(job.JobResponse{}, joberrors.ErrInvalidJobID)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/jobs/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "x"}}

		job.NewHandler(svc).GetById(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := jobMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), "2").Return(job.JobResponse{ID: 2, Job: "VP Sales"}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/jobs/2", nil)
		c.Params = gin.Params{{Key: "id", Value: "2"}}

		job.NewHandler(svc).GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"job":"VP Sales"`)
	})
}

func TestJobHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := jobMock.NewMockService(ctrl)
	svc.EXPECT().GetAll(gomock.Any(), 1, 20).Return([]job.JobResponse{}, int64(0), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/jobs?page=-4", nil)

	job.NewHandler(svc).GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}
