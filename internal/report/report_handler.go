package report

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	reporterrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/report/errors"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service     Service
	defaultYear int
	logger      *zap.Logger
}

func NewHandler(service Service, defaultYear int, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, defaultYear: defaultYear, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) year(c *gin.Context) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return h.defaultYear, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, reporterrors.ErrInvalidYear
	}
	return year, nil
}

func (h *Handler) QuarterlyHires(c *gin.Context) {
	year, err := h.year(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.QuarterlyHires(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DepartmentsAboveAverage(c *gin.Context) {
	year, err := h.year(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.DepartmentsAboveAverage(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Export(c *gin.Context) {
	year, err := h.year(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.service.ExportXLSX(c.Request.Context(), year, &buf); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=hires_report_%d.xlsx", year))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
