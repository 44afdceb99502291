package ingest

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FieldDepartments    = "file_departments"
	FieldJobs           = "file_jobs"
	FieldHiredEmployees = "file_hired_employees"
)

type Handler struct {
	service   Service
	uploadDir string
	logger    *zap.Logger
}

func NewHandler(service Service, uploadDir string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("ingest.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ingest.handler")
	}
	return &Handler{service: service, uploadDir: uploadDir, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("ingest request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// UploadCSV stores the three uploaded files and ingests them.
func (h *Handler) UploadCSV(c *gin.Context) {
	headers := make(map[string]*multipart.FileHeader, 3)
	var missing []string
	for _, field := range []string{FieldDepartments, FieldJobs, FieldHiredEmployees} {
		fh, err := c.FormFile(field)
		if err != nil {
			missing = append(missing, field)
			continue
		}
		headers[field] = fh
	}
	if len(missing) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"Missing files. Required: file_departments, file_jobs, file_hired_employees", missing)
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.writeServiceError(c, fmt.Errorf("create upload dir: %w", err))
		return
	}

	stored := make(map[string]string, len(headers))
	for field, fh := range headers {
		dst := filepath.Join(h.uploadDir, uuid.NewString()+"_"+filepath.Base(fh.Filename))
		if err := c.SaveUploadedFile(fh, dst); err != nil {
			h.writeServiceError(c, fmt.Errorf("store %s: %w", field, err))
			return
		}
		stored[field] = dst
	}

	h.logger.Info("csv files stored",
		zap.String("departments", stored[FieldDepartments]),
		zap.String("jobs", stored[FieldJobs]),
		zap.String("hired_employees", stored[FieldHiredEmployees]),
	)

	res, err := h.service.Ingest(c.Request.Context(), Paths{
		Departments:    stored[FieldDepartments],
		Jobs:           stored[FieldJobs],
		HiredEmployees: stored[FieldHiredEmployees],
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) InsertBatch(c *gin.Context) {
	var req []BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("insert batch validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if len(req) == 0 {
		h.writeServiceError(c, apperror.RequiredField("batch"))
		return
	}

	res, err := h.service.InsertBatch(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}
