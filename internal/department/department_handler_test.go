package department_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/department"
	departmenterrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/department/errors"
	departmentMock "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/department/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(svc department.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	department.RegisterRoutes(r.Group("/api/v1"), department.NewHandler(svc, zap.NewNop()), zap.NewNop())
	return r
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	t.Run("success with pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := departmentMock.NewMockService(ctrl)
		svc.EXPECT().GetAll(gomock.Any(), 2, 5).Return([]department.DepartmentResponse{{ID: 6, Department: "Services"}}, int64(12), nil)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments?page=2&page_size=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Ok   bool `json:"ok"`
			Meta struct {
				TotalPages int `json:"totalPages"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Ok)
		assert.Equal(t, 3, body.Meta.TotalPages)
	})

	t.Run("page size out of range falls back to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := departmentMock.NewMockService(ctrl)
		svc.EXPECT().GetAll(gomock.Any(), 1, 20).Return(nil, int64(0), nil)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments?page_size=1000", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := departmentMock.NewMockService(ctrl)
		svc.EXPECT().GetAll(gomock.Any(), 1, 20).Return(nil, int64(0), errors.New("pq: password authentication failed"))

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
	})
}

func TestDepartmentHandler_GetById(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := departmentMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), "42").Return(department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments/42", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Department not found")
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := departmentMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), "1").Return(department.DepartmentResponse{ID: 1, Department: "Product Management"}, nil)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Product Management")
	})
}
