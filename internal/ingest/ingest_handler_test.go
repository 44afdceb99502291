package ingest_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/ingest"
	ingestMock "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/ingest/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for field, content := range files {
		part, err := w.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestHandler_UploadCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := ingestMock.NewMockService(ctrl)
		h := ingest.NewHandler(svc, t.TempDir(), zap.NewNop())

		body, ct := multipartBody(t, map[string]string{ingest.FieldDepartments: "1,Sales\n"})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/upload_csv", body)
		c.Request.Header.Set("Content-Type", ct)

		h.UploadCSV(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ingest.FieldJobs)
		assert.Contains(t, w.Body.String(), ingest.FieldHiredEmployees)
	})

	t.Run("stores files and ingests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := ingestMock.NewMockService(ctrl)
		dir := t.TempDir()
		h := ingest.NewHandler(svc, dir, zap.NewNop())

		svc.EXPECT().Ingest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, p ingest.Paths) (ingest.Result, error) {
				for _, path := range []string{p.Departments, p.Jobs, p.HiredEmployees} {
					assert.True(t, strings.HasPrefix(path, dir))
					_, err := os.Stat(path)
					assert.NoError(t, err)
				}
				return ingest.Result{Departments: ingest.FileResult{Inserted: 1}}, nil
			})

		body, ct := multipartBody(t, map[string]string{
			ingest.FieldDepartments:    "1,Sales\n",
			ingest.FieldJobs:           "1,Engineer\n",
			ingest.FieldHiredEmployees: "1,Ann,2021-02-15T10:00:00Z,1,1\n",
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/upload_csv", body)
		c.Request.Header.Set("Content-Type", ct)

		h.UploadCSV(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"inserted":1`)
	})

	t.Run("ingest failure is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := ingestMock.NewMockService(ctrl)
		h := ingest.NewHandler(svc, t.TempDir(), zap.NewNop())

		svc.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(ingest.Result{}, errors.New("reconcile jobs: connection refused"))

		body, ct := multipartBody(t, map[string]string{
			ingest.FieldDepartments:    "1,Sales\n",
			ingest.FieldJobs:           "1,Engineer\n",
			ingest.FieldHiredEmployees: "1,Ann,2021-02-15T10:00:00Z,1,1\n",
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/upload_csv", body)
		c.Request.Header.Set("Content-Type", ct)

		h.UploadCSV(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestHandler_InsertBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		setup      func(svc *ingestMock.MockService)
		wantStatus int
	}{
		{
			name: "success",
			body: `[{"table":"departments","data":[{"id":1,"department":"Sales"}]}]`,
			setup: func(svc *ingestMock.MockService) {
				svc.EXPECT().InsertBatch(gomock.Any(), gomock.Len(1)).Return(ingest.Result{}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown table",
			body:       `[{"table":"payroll","data":[]}]`,
			setup:      func(*ingestMock.MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty list",
			body:       `[]`,
			setup:      func(*ingestMock.MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"table":`,
			setup:      func(*ingestMock.MockService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := ingestMock.NewMockService(ctrl)
			tt.setup(svc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/insert_batch", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			ingest.NewHandler(svc, t.TempDir(), zap.NewNop()).InsertBatch(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
